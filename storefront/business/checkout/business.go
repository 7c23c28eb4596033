package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.app/storefront/model"
	"encore.app/storefront/repository/addresses"
	"encore.app/storefront/repository/audit"
	"encore.app/storefront/repository/carts"
	"encore.app/storefront/repository/coupons"
	"encore.app/storefront/repository/orders"
	"encore.app/storefront/repository/products"
)

type Business interface {
	// Checkout turns the user's cart into a pending order.
	Checkout(ctx context.Context, userID uuid.UUID, req model.CheckoutRequest) (*model.Order, error)
	// Quote prices the cart without reserving anything.
	Quote(ctx context.Context, userID uuid.UUID, couponCode string) (*model.Totals, error)
}

type business struct {
	cartRepo    carts.Querier
	productRepo products.Querier
	couponRepo  coupons.Querier
	addressRepo addresses.Querier
	orderRepo   orders.Querier
	auditRepo   audit.Querier
	now         func() time.Time
}

// NewCheckoutBusiness creates the checkout orchestrator
func NewCheckoutBusiness(
	cartRepo carts.Querier,
	productRepo products.Querier,
	couponRepo coupons.Querier,
	addressRepo addresses.Querier,
	orderRepo orders.Querier,
	auditRepo audit.Querier,
) Business {
	return &business{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		addressRepo: addressRepo,
		orderRepo:   orderRepo,
		auditRepo:   auditRepo,
		now:         time.Now,
	}
}
