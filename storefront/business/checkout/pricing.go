package checkout

import (
	"fmt"
	"math"
	"time"

	"encore.dev/beta/errs"

	"encore.app/storefront/model"
)

const (
	// ShippingFeeCents is the flat shipping charge in paise.
	ShippingFeeCents int64 = 10000
	// TaxRate applies to the discounted subtotal.
	TaxRate = 0.05
)

// CheckStock rejects the cart if any line asks for more than is available.
func CheckStock(lines []model.CartLine) error {
	for _, line := range lines {
		available := line.Product.Stock
		if !line.Product.IsActive {
			available = 0
		}
		if line.Quantity > available {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: fmt.Sprintf("Insufficient stock for %s. Only %d available.", line.Product.Name, available),
			}
		}
	}
	return nil
}

// Subtotal sums the effective unit price times quantity over all lines.
func Subtotal(lines []model.CartLine) int64 {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.Product.EffectivePriceCents() * int64(line.Quantity)
	}
	return subtotal
}

// CouponApplies reports whether the coupon may be used for this subtotal at now.
func CouponApplies(c model.Coupon, subtotal int64, now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if now.Before(c.StartDate) {
		return false
	}
	if c.EndDate != nil && now.After(*c.EndDate) {
		return false
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return false
	}
	return subtotal >= c.MinPurchaseCents
}

// Discount is the amount the coupon takes off the subtotal. It never exceeds the subtotal.
func Discount(c model.Coupon, subtotal int64) int64 {
	var d int64
	switch c.DiscountType {
	case model.DiscountPercentage:
		d = int64(math.Round(float64(subtotal) * float64(c.DiscountValue) / 100))
	case model.DiscountFixed:
		d = c.DiscountValue
	}
	return max(0, min(d, subtotal))
}

// ComputeTotals applies tax and shipping to the subtotal and discount.
func ComputeTotals(subtotal, discount int64) model.Totals {
	tax := int64(math.Round(float64(subtotal-discount) * TaxRate))
	return model.Totals{
		SubtotalCents: subtotal,
		ShippingCents: ShippingFeeCents,
		TaxCents:      tax,
		DiscountCents: discount,
		TotalCents:    subtotal + ShippingFeeCents + tax - discount,
	}
}
