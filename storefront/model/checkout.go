package model

// CheckoutRequest carries what the customer chose on the checkout page.
type CheckoutRequest struct {
	ShippingAddress Address       `json:"shipping_address"`
	BillingAddress  *Address      `json:"billing_address,omitempty"`
	SameAsShipping  bool          `json:"same_as_shipping"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	CouponCode      string        `json:"coupon_code,omitempty"`
	Notes           string        `json:"notes,omitempty"`
}

// Totals is the priced breakdown of a cart.
type Totals struct {
	SubtotalCents int64   `json:"subtotal_cents"`
	ShippingCents int64   `json:"shipping_cents"`
	TaxCents      int64   `json:"tax_cents"`
	DiscountCents int64   `json:"discount_cents"`
	TotalCents    int64   `json:"total_cents"`
	Coupon        *Coupon `json:"coupon,omitempty"`
}
