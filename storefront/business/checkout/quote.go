package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/storefront/domain"
	"encore.app/storefront/model"
)

// Quote prices the current cart, including the coupon when it applies, without side effects
func (b *business) Quote(ctx context.Context, userID uuid.UUID, couponCode string) (*model.Totals, error) {
	lines, err := b.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	subtotal := Subtotal(lines)
	coupon := b.findCoupon(ctx, couponCode, subtotal)

	var discount int64
	if coupon != nil {
		discount = Discount(*coupon, subtotal)
	}
	totals := ComputeTotals(subtotal, discount)
	totals.Coupon = coupon
	return &totals, nil
}

func (b *business) loadCart(ctx context.Context, userID uuid.UUID) ([]model.CartLine, error) {
	if userID == uuid.Nil {
		return nil, &errs.Error{Code: errs.Unauthenticated, Message: "user not authenticated"}
	}

	rows, err := b.cartRepo.GetCartLines(ctx, userID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load cart"}
	}
	if len(rows) == 0 {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "Cart is empty"}
	}

	lines := make([]model.CartLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, domain.ConvertDBCartLineToModel(row))
	}
	return lines, nil
}

// findCoupon returns the coupon only when every validity rule holds. Any miss is silent.
func (b *business) findCoupon(ctx context.Context, code string, subtotal int64) *model.Coupon {
	code = domain.NormalizeCouponCode(code)
	if code == "" {
		return nil
	}

	dbCoupon, err := b.couponRepo.GetActiveCouponByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			rlog.Warn("coupon lookup failed, continuing without discount", "error", err, "code", code)
		}
		return nil
	}

	coupon := domain.ConvertDBCouponToModel(dbCoupon)
	if !CouponApplies(coupon, subtotal, b.now()) {
		return nil
	}
	return &coupon
}
