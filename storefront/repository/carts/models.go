package carts

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GetCartLinesRow struct {
	CartItemID     uuid.UUID   `json:"cart_item_id"`
	Quantity       int32       `json:"quantity"`
	ProductID      uuid.UUID   `json:"product_id"`
	Name           string      `json:"name"`
	Slug           string      `json:"slug"`
	PriceCents     int64       `json:"price_cents"`
	SalePriceCents pgtype.Int8 `json:"sale_price_cents"`
	Stock          int32       `json:"stock"`
	IsActive       bool        `json:"is_active"`
}
