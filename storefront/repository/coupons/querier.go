package coupons

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	DecrementCouponUsage(ctx context.Context, id uuid.UUID) error
	GetActiveCouponByCode(ctx context.Context, code string) (Coupon, error)
	IncrementCouponUsage(ctx context.Context, id uuid.UUID) (int64, error)
}

var _ Querier = (*Queries)(nil)
