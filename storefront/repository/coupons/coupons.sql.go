package coupons

import (
	"context"

	"github.com/google/uuid"
)

const decrementCouponUsage = `-- name: DecrementCouponUsage :exec
UPDATE coupons SET used_count = GREATEST(used_count - 1, 0) WHERE id = $1
`

func (q *Queries) DecrementCouponUsage(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, decrementCouponUsage, id)
	return err
}

const getActiveCouponByCode = `-- name: GetActiveCouponByCode :one
SELECT id, code, discount_type, discount_value, min_purchase_cents, usage_limit, used_count, start_date, end_date, is_active
FROM coupons
WHERE UPPER(code) = UPPER($1) AND is_active
`

func (q *Queries) GetActiveCouponByCode(ctx context.Context, code string) (Coupon, error) {
	row := q.db.QueryRow(ctx, getActiveCouponByCode, code)
	var i Coupon
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.DiscountType,
		&i.DiscountValue,
		&i.MinPurchaseCents,
		&i.UsageLimit,
		&i.UsedCount,
		&i.StartDate,
		&i.EndDate,
		&i.IsActive,
	)
	return i, err
}

const incrementCouponUsage = `-- name: IncrementCouponUsage :execrows
UPDATE coupons
SET used_count = used_count + 1
WHERE id = $1 AND (usage_limit IS NULL OR used_count < usage_limit)
`

// IncrementCouponUsage returns 0 when the usage limit was reached concurrently.
func (q *Queries) IncrementCouponUsage(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, incrementCouponUsage, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
