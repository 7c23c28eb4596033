package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/storefront/repository/addresses"
	"encore.app/storefront/repository/audit"
	"encore.app/storefront/repository/carts"
	"encore.app/storefront/repository/coupons"
	"encore.app/storefront/repository/emails"
	"encore.app/storefront/repository/orders"
	"encore.app/storefront/repository/posts"
	"encore.app/storefront/repository/products"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Addresses *addresses.Queries
	Audit     *audit.Queries
	Carts     *carts.Queries
	Coupons   *coupons.Queries
	Emails    *emails.Queries
	Orders    *orders.Queries
	Posts     *posts.Queries
	Products  *products.Queries
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Addresses: addresses.New(db),
		Audit:     audit.New(db),
		Carts:     carts.New(db),
		Coupons:   coupons.New(db),
		Emails:    emails.New(db),
		Orders:    orders.New(db),
		Posts:     posts.New(db),
		Products:  products.New(db),
	}
}
