package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description,omitempty"`
	PriceCents     int64     `json:"price_cents"`
	SalePriceCents *int64    `json:"sale_price_cents,omitempty"`
	Stock          int32     `json:"stock"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EffectivePriceCents is the sale price when one is set, otherwise the list price.
func (p Product) EffectivePriceCents() int64 {
	if p.SalePriceCents != nil {
		return *p.SalePriceCents
	}
	return p.PriceCents
}

// CartLine is a cart row joined with the live product snapshot.
type CartLine struct {
	CartItemID uuid.UUID `json:"cart_item_id"`
	Quantity   int32     `json:"quantity"`
	Product    Product   `json:"product"`
}

type Coupon struct {
	ID               uuid.UUID    `json:"id"`
	Code             string       `json:"code"`
	DiscountType     DiscountType `json:"discount_type"`
	DiscountValue    int64        `json:"discount_value"`
	MinPurchaseCents int64        `json:"min_purchase_cents"`
	UsageLimit       *int32       `json:"usage_limit,omitempty"`
	UsedCount        int32        `json:"used_count"`
	StartDate        time.Time    `json:"start_date"`
	EndDate          *time.Time   `json:"end_date,omitempty"`
	IsActive         bool         `json:"is_active"`
}

type DiscountType string

const (
	// DiscountPercentage values are whole percents.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed values are paise.
	DiscountFixed DiscountType = "fixed"
)

type Address struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	FullName  string      `json:"full_name"`
	Phone     string      `json:"phone"`
	Line1     string      `json:"line1"`
	Line2     string      `json:"line2,omitempty"`
	City      string      `json:"city"`
	State     string      `json:"state"`
	Pincode   string      `json:"pincode"`
	Country   string      `json:"country"`
	Type      AddressType `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
}

type AddressType string

const (
	AddressTypeShipping AddressType = "shipping"
	AddressTypeBilling  AddressType = "billing"
)

type BlogPost struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	HTML        string     `json:"html"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
