package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/storefront/model"
	"encore.app/storefront/workflow"
)

func validCheckoutRequest() *CheckoutRequest {
	return &CheckoutRequest{
		IdempotencyKey: "checkout-key-1",
		ShippingAddress: model.Address{
			FullName: "Ayesha Khan",
			Phone:    "9876543210",
			Line1:    "12 MG Road",
			City:     "Bengaluru",
			State:    "Karnataka",
			Pincode:  "560001",
			Country:  "India",
		},
		SameAsShipping: true,
		PaymentMethod:  model.PaymentMethodCOD,
		CouponCode:     "SAVE10",
	}
}

func TestCheckout(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	placed := &model.Order{
		ID:          uuid.New(),
		OrderNumber: "NZ-20260301-ABC123",
		UserID:      userID,
		Status:      model.OrderStatusPending,
		TotalCents:  104500,
		Items:       []model.OrderItem{{ProductID: productID, ProductName: "Silk Saree", Quantity: 1, UnitPriceCents: 100000, TotalCents: 100000}},
	}

	testCases := []struct {
		name              string
		caller            *AuthData
		mockCheckoutError error
		mockWorkflowError error
		expectCheckout    bool
		expectWorkflow    bool
		expectDirectEmail bool
		expectedCode      errs.ErrCode
	}{
		{
			name:           "order_placed_and_confirmation_scheduled",
			caller:         customer(userID),
			expectCheckout: true,
			expectWorkflow: true,
		},
		{
			name:              "workflow_unavailable_sends_email_directly",
			caller:            customer(userID),
			mockWorkflowError: errors.New("temporal unreachable"),
			expectCheckout:    true,
			expectWorkflow:    true,
			expectDirectEmail: true,
		},
		{
			name:              "stock_failure_returned",
			caller:            customer(userID),
			mockCheckoutError: &errs.Error{Code: errs.FailedPrecondition, Message: "Insufficient stock for Silk Saree. Only 0 available."},
			expectCheckout:    true,
			expectedCode:      errs.FailedPrecondition,
		},
		{
			name:         "unauthenticated",
			expectedCode: errs.Unauthenticated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newTestService(t)
			withCaller(t, tc.caller)
			req := validCheckoutRequest()

			if tc.expectCheckout {
				var ret *model.Order
				if tc.mockCheckoutError == nil {
					ret = placed
				}
				m.checkout.EXPECT().
					Checkout(gomock.Any(), userID, req.toModel()).
					Return(ret, tc.mockCheckoutError).
					Times(1)
			}
			if tc.expectCheckout && tc.mockCheckoutError == nil {
				m.catalog.EXPECT().Invalidate(gomock.Any(), productID).Times(1)
			}
			if tc.expectWorkflow {
				m.temporal.On("ExecuteWorkflow",
					mock.Anything,
					mock.Anything,
					mock.Anything,
					workflow.OrderEmailParams{Kind: workflow.OrderEmailConfirmation, To: "ayesha@example.in", Order: *placed},
				).Return(nil, tc.mockWorkflowError).Once()
			}
			if tc.expectDirectEmail {
				m.emails.EXPECT().SendOrderConfirmation(gomock.Any(), "ayesha@example.in", placed).Return(nil).Times(1)
			}

			response, err := s.Checkout(context.Background(), req)

			if tc.expectedCode != errs.OK {
				assert.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, response)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, placed.OrderNumber, response.Order.OrderNumber)
			assert.Equal(t, int64(104500), response.Order.TotalCents)
		})
	}
}

func TestCheckoutRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(r *CheckoutRequest)
		expectedError string
	}{
		{name: "valid", mutate: func(r *CheckoutRequest) {}},
		{
			name:          "bad_pincode",
			mutate:        func(r *CheckoutRequest) { r.ShippingAddress.Pincode = "012345" },
			expectedError: "shipping_address.pincode",
		},
		{
			name:          "bad_phone",
			mutate:        func(r *CheckoutRequest) { r.ShippingAddress.Phone = "12345" },
			expectedError: "shipping_address.phone",
		},
		{
			name:          "unknown_payment_method",
			mutate:        func(r *CheckoutRequest) { r.PaymentMethod = "cheque" },
			expectedError: "payment_method",
		},
		{
			name:          "billing_address_required",
			mutate:        func(r *CheckoutRequest) { r.SameAsShipping = false },
			expectedError: "Billing address is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCheckoutRequest()
			tc.mutate(req)

			err := req.Validate()

			if tc.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}

func TestQuote(t *testing.T) {
	userID := uuid.New()
	s, m := newTestService(t)
	withCaller(t, customer(userID))

	totals := &model.Totals{SubtotalCents: 100000, ShippingCents: 10000, TaxCents: 4500, DiscountCents: 10000, TotalCents: 104500}
	m.checkout.EXPECT().Quote(gomock.Any(), userID, "SAVE10").Return(totals, nil)

	response, err := s.Quote(context.Background(), &QuoteParams{CouponCode: "SAVE10"})

	assert.NoError(t, err)
	assert.Equal(t, *totals, response.Totals)
}
