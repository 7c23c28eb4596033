package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"encore.app/storefront/model"
)

func validAddress() Address {
	return Address{
		FullName: "Asha Verma",
		Phone:    "9876543210",
		Line1:    "12 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560001",
		Country:  "India",
	}
}

func ptr[T any](v T) *T { return &v }

func TestStrongPassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "strong", password: "Password123!", valid: true},
		{name: "lowercase_only", password: "password", valid: false},
		{name: "no_lowercase_no_special", password: "PASSWORD123", valid: false},
		{name: "no_special_char", password: "Password123", valid: false},
		{name: "too_short", password: "Pa1!", valid: false},
		{name: "symbol_counts_as_special", password: "Password123$", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, StrongPassword(tc.password))

			res := Validate(SignUp{
				FullName:        "Asha Verma",
				Email:           "asha@example.com",
				Password:        tc.password,
				ConfirmPassword: tc.password,
			})
			assert.Equal(t, tc.valid, res.Valid)
			if !tc.valid {
				assert.Contains(t, res.Errors, "password")
			}
		})
	}
}

func TestSignUpPasswordConfirmation(t *testing.T) {
	res := Validate(SignUp{
		FullName:        "Asha Verma",
		Email:           "asha@example.com",
		Password:        "Password123!",
		ConfirmPassword: "Password123?",
	})
	assert.False(t, res.Valid)
	assert.Equal(t, "Passwords don't match", res.Errors["confirm_password"])
}

func TestAddress(t *testing.T) {
	testCases := []struct {
		name       string
		mutate     func(a *Address)
		errorField string
	}{
		{name: "valid", mutate: func(a *Address) {}},
		{name: "phone_starting_with_5", mutate: func(a *Address) { a.Phone = "5876543210" }, errorField: "phone"},
		{name: "phone_too_short", mutate: func(a *Address) { a.Phone = "987654321" }, errorField: "phone"},
		{name: "pincode_leading_zero", mutate: func(a *Address) { a.Pincode = "060001" }, errorField: "pincode"},
		{name: "pincode_letters", mutate: func(a *Address) { a.Pincode = "56A001" }, errorField: "pincode"},
		{name: "missing_city", mutate: func(a *Address) { a.City = "" }, errorField: "city"},
		{name: "bad_type", mutate: func(a *Address) { a.Type = "office" }, errorField: "type"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := validAddress()
			tc.mutate(&a)
			res := Validate(a)
			if tc.errorField == "" {
				assert.True(t, res.Valid)
				assert.Empty(t, res.Errors)
				return
			}
			assert.False(t, res.Valid)
			assert.Contains(t, res.Errors, tc.errorField)
		})
	}
}

func TestProductCompareAtPrice(t *testing.T) {
	base := Product{
		Name:       "Chikankari Kurta",
		Slug:       "chikankari-kurta",
		PriceCents: 149900,
		Stock:      4,
		CategoryID: "7f8b7a4e-6a55-4f0c-9d7a-2a1b9f6c3e11",
	}

	testCases := []struct {
		name      string
		compareAt *int64
		valid     bool
	}{
		{name: "no_compare_at", valid: true},
		{name: "compare_at_greater", compareAt: ptr(int64(199900)), valid: true},
		{name: "compare_at_equal", compareAt: ptr(int64(149900)), valid: false},
		{name: "compare_at_lower", compareAt: ptr(int64(99900)), valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			p.CompareAtPriceCents = tc.compareAt
			res := Validate(p)
			assert.Equal(t, tc.valid, res.Valid)
			if !tc.valid {
				assert.Contains(t, res.Errors, "compare_at_price_cents")
			}
		})
	}
}

func TestProductSlugAndImages(t *testing.T) {
	res := Validate(Product{
		Name:       "Kurta",
		Slug:       "Kurta Set",
		PriceCents: 100,
		CategoryID: "not-a-uuid",
		Images:     []string{"not a url"},
	})
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "slug")
	assert.Contains(t, res.Errors, "category_id")
	assert.Contains(t, res.Errors, "images[0]")
}

func TestRefinementsRunAfterFieldChecks(t *testing.T) {
	res := Validate(Product{
		Name:                "",
		Slug:                "kurta",
		PriceCents:          100,
		CompareAtPriceCents: ptr(int64(50)),
		CategoryID:          "7f8b7a4e-6a55-4f0c-9d7a-2a1b9f6c3e11",
	})
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "name")
	assert.NotContains(t, res.Errors, "compare_at_price_cents")
}

func TestCheckout(t *testing.T) {
	testCases := []struct {
		name       string
		req        model.CheckoutRequest
		errorField string
	}{
		{
			name: "same_as_shipping",
			req: model.CheckoutRequest{
				ShippingAddress: model.Address{FullName: "Asha Verma", Phone: "9876543210", Line1: "12 MG Road", City: "Bengaluru", State: "Karnataka", Pincode: "560001"},
				SameAsShipping:  true,
				PaymentMethod:   model.PaymentMethodCOD,
			},
		},
		{
			name: "missing_billing_address",
			req: model.CheckoutRequest{
				ShippingAddress: model.Address{FullName: "Asha Verma", Phone: "9876543210", Line1: "12 MG Road", City: "Bengaluru", State: "Karnataka", Pincode: "560001"},
				PaymentMethod:   model.PaymentMethodUPI,
			},
			errorField: "billing_address",
		},
		{
			name: "invalid_nested_pincode",
			req: model.CheckoutRequest{
				ShippingAddress: model.Address{FullName: "Asha Verma", Phone: "9876543210", Line1: "12 MG Road", City: "Bengaluru", State: "Karnataka", Pincode: "000000"},
				SameAsShipping:  true,
				PaymentMethod:   model.PaymentMethodCOD,
			},
			errorField: "shipping_address.pincode",
		},
		{
			name: "unknown_payment_method",
			req: model.CheckoutRequest{
				ShippingAddress: model.Address{FullName: "Asha Verma", Phone: "9876543210", Line1: "12 MG Road", City: "Bengaluru", State: "Karnataka", Pincode: "560001"},
				SameAsShipping:  true,
				PaymentMethod:   "cheque",
			},
			errorField: "payment_method",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Validate(CheckoutFrom(tc.req))
			if tc.errorField == "" {
				assert.True(t, res.Valid, "%v", res.Errors)
				return
			}
			assert.False(t, res.Valid)
			assert.Contains(t, res.Errors, tc.errorField)
		})
	}
}

func TestReview(t *testing.T) {
	for _, rating := range []int{0, 6} {
		res := Validate(Review{ProductID: "7f8b7a4e-6a55-4f0c-9d7a-2a1b9f6c3e11", Rating: rating, Comment: "Lovely fabric and fit"})
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors, "rating")
	}
	res := Validate(Review{ProductID: "7f8b7a4e-6a55-4f0c-9d7a-2a1b9f6c3e11", Rating: 5, Comment: "Lovely fabric and fit"})
	assert.True(t, res.Valid)
}

func TestSearchPriceRange(t *testing.T) {
	res := Validate(Search{Page: 1, Limit: 20, MinPriceCents: ptr(int64(5000)), MaxPriceCents: ptr(int64(1000))})
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "max_price_cents")

	res = Validate(Search{Page: 1, Limit: 20, MinPriceCents: ptr(int64(1000)), MaxPriceCents: ptr(int64(5000)), SortBy: "price_asc"})
	assert.True(t, res.Valid)
}

func TestCouponRefinements(t *testing.T) {
	start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		coupon   Coupon
		expected []string
	}{
		{
			name:   "valid_percentage",
			coupon: Coupon{Code: "DIWALI10", DiscountType: "percentage", DiscountValue: 10, StartDate: start, EndDate: start.AddDate(0, 1, 0)},
		},
		{
			name:     "percentage_over_100",
			coupon:   Coupon{Code: "FREE", DiscountType: "percentage", DiscountValue: 150, StartDate: start, EndDate: start.AddDate(0, 1, 0)},
			expected: []string{"discount_value"},
		},
		{
			name:   "fixed_over_100_is_fine",
			coupon: Coupon{Code: "FLAT500", DiscountType: "fixed", DiscountValue: 50000, StartDate: start, EndDate: start.AddDate(0, 1, 0)},
		},
		{
			name:     "end_before_start",
			coupon:   Coupon{Code: "OOPS", DiscountType: "fixed", DiscountValue: 100, StartDate: start, EndDate: start.AddDate(0, 0, -1)},
			expected: []string{"end_date"},
		},
		{
			name:     "both_refinements_fail",
			coupon:   Coupon{Code: "BAD", DiscountType: "percentage", DiscountValue: 101, StartDate: start, EndDate: start},
			expected: []string{"discount_value", "end_date"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Validate(tc.coupon)
			if len(tc.expected) == 0 {
				assert.True(t, res.Valid, "%v", res.Errors)
				return
			}
			assert.False(t, res.Valid)
			assert.Len(t, res.Errors, len(tc.expected))
			for _, field := range tc.expected {
				assert.Contains(t, res.Errors, field)
			}
		})
	}
}

func TestValidateNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		res := Validate(nil)
		assert.False(t, res.Valid)
		res = Validate(42)
		assert.False(t, res.Valid)
	})
}

func TestSchemasRegistry(t *testing.T) {
	for name, newValue := range Schemas {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() { Validate(newValue()) })
		})
	}
}
