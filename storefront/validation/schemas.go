package validation

import (
	"time"

	"encore.app/storefront/model"
)

type Email struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

type SignUp struct {
	FullName        string `json:"full_name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Phone           string `json:"phone,omitempty" validate:"omitempty,in_phone"`
	Password        string `json:"password" validate:"required,strong_password"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func (s SignUp) Refine() map[string]string {
	if s.Password != s.ConfirmPassword {
		return map[string]string{"confirm_password": "Passwords don't match"}
	}
	return nil
}

type Address struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"required,in_phone"`
	Line1    string `json:"line1" validate:"required,min=5,max=200"`
	Line2    string `json:"line2,omitempty" validate:"max=200"`
	City     string `json:"city" validate:"required,min=2,max=100"`
	State    string `json:"state" validate:"required,min=2,max=100"`
	Pincode  string `json:"pincode" validate:"required,in_pincode"`
	Country  string `json:"country" validate:"required,max=100"`
	Type     string `json:"type,omitempty" validate:"omitempty,oneof=shipping billing"`
}

// AddressFrom maps a stored or submitted address to its schema.
func AddressFrom(a model.Address) Address {
	country := a.Country
	if country == "" {
		country = "India"
	}
	return Address{
		FullName: a.FullName,
		Phone:    a.Phone,
		Line1:    a.Line1,
		Line2:    a.Line2,
		City:     a.City,
		State:    a.State,
		Pincode:  a.Pincode,
		Country:  country,
		Type:     string(a.Type),
	}
}

type Product struct {
	Name                string   `json:"name" validate:"required,min=3,max=200"`
	Slug                string   `json:"slug" validate:"required,slug,max=200"`
	Description         string   `json:"description,omitempty" validate:"max=5000"`
	PriceCents          int64    `json:"price_cents" validate:"gt=0"`
	CompareAtPriceCents *int64   `json:"compare_at_price_cents,omitempty" validate:"omitempty,gt=0"`
	Stock               int32    `json:"stock" validate:"gte=0"`
	CategoryID          string   `json:"category_id" validate:"required,uuid"`
	SKU                 string   `json:"sku,omitempty" validate:"max=50"`
	Images              []string `json:"images,omitempty" validate:"max=10,dive,url"`
}

func (p Product) Refine() map[string]string {
	if p.CompareAtPriceCents != nil && *p.CompareAtPriceCents <= p.PriceCents {
		return map[string]string{"compare_at_price_cents": "Compare at price must be greater than price"}
	}
	return nil
}

type Checkout struct {
	ShippingAddress Address  `json:"shipping_address"`
	BillingAddress  *Address `json:"billing_address,omitempty" validate:"omitempty"`
	SameAsShipping  bool     `json:"same_as_shipping"`
	PaymentMethod   string   `json:"payment_method" validate:"required,oneof=cod razorpay upi"`
	CouponCode      string   `json:"coupon_code,omitempty" validate:"omitempty,min=3,max=50,alphanum"`
	Notes           string   `json:"notes,omitempty" validate:"max=500"`
}

func (c Checkout) Refine() map[string]string {
	if !c.SameAsShipping && c.BillingAddress == nil {
		return map[string]string{"billing_address": "Billing address is required"}
	}
	return nil
}

// CheckoutFrom maps a checkout request to its schema.
func CheckoutFrom(req model.CheckoutRequest) Checkout {
	c := Checkout{
		ShippingAddress: AddressFrom(req.ShippingAddress),
		SameAsShipping:  req.SameAsShipping,
		PaymentMethod:   string(req.PaymentMethod),
		CouponCode:      req.CouponCode,
		Notes:           req.Notes,
	}
	if req.BillingAddress != nil && !req.SameAsShipping {
		billing := AddressFrom(*req.BillingAddress)
		c.BillingAddress = &billing
	}
	return c
}

type Review struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Title     string `json:"title,omitempty" validate:"max=100"`
	Comment   string `json:"comment" validate:"required,min=10,max=1000"`
}

type Search struct {
	Query         string `json:"query,omitempty" validate:"max=100"`
	CategoryID    string `json:"category_id,omitempty" validate:"omitempty,uuid"`
	MinPriceCents *int64 `json:"min_price_cents,omitempty" validate:"omitempty,gte=0"`
	MaxPriceCents *int64 `json:"max_price_cents,omitempty" validate:"omitempty,gte=0"`
	SortBy        string `json:"sort_by,omitempty" validate:"omitempty,oneof=newest price_asc price_desc popular rating"`
	Page          int    `json:"page" validate:"min=1"`
	Limit         int    `json:"limit" validate:"min=1,max=100"`
}

func (s Search) Refine() map[string]string {
	if s.MinPriceCents != nil && s.MaxPriceCents != nil && *s.MinPriceCents > *s.MaxPriceCents {
		return map[string]string{"max_price_cents": "Maximum price must be greater than minimum price"}
	}
	return nil
}

type Coupon struct {
	Code             string    `json:"code" validate:"required,min=3,max=50,alphanum"`
	DiscountType     string    `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue    int64     `json:"discount_value" validate:"gt=0"`
	MinPurchaseCents int64     `json:"min_purchase_cents" validate:"gte=0"`
	UsageLimit       *int32    `json:"usage_limit,omitempty" validate:"omitempty,gt=0"`
	StartDate        time.Time `json:"start_date" validate:"required"`
	EndDate          time.Time `json:"end_date" validate:"required"`
}

func (c Coupon) Refine() map[string]string {
	errs := map[string]string{}
	if !c.EndDate.After(c.StartDate) {
		errs["end_date"] = "End date must be after start date"
	}
	if c.DiscountType == string(model.DiscountPercentage) && c.DiscountValue > 100 {
		errs["discount_value"] = "Percentage discount cannot exceed 100"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Schemas maps the public schema names to constructors of empty values.
var Schemas = map[string]func() any{
	"email":    func() any { return &Email{} },
	"signup":   func() any { return &SignUp{} },
	"address":  func() any { return &Address{} },
	"product":  func() any { return &Product{} },
	"checkout": func() any { return &Checkout{} },
	"review":   func() any { return &Review{} },
	"search":   func() any { return &Search{} },
	"coupon":   func() any { return &Coupon{} },
}
