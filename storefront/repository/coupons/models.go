package coupons

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Coupon struct {
	ID               uuid.UUID          `json:"id"`
	Code             string             `json:"code"`
	DiscountType     string             `json:"discount_type"`
	DiscountValue    int64              `json:"discount_value"`
	MinPurchaseCents int64              `json:"min_purchase_cents"`
	UsageLimit       pgtype.Int4        `json:"usage_limit"`
	UsedCount        int32              `json:"used_count"`
	StartDate        pgtype.Timestamptz `json:"start_date"`
	EndDate          pgtype.Timestamptz `json:"end_date"`
	IsActive         bool               `json:"is_active"`
}
