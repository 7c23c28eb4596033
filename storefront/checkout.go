package storefront

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/storefront/model"
	"encore.app/storefront/validation"
	"encore.app/storefront/workflow"
)

type CheckoutRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	ShippingAddress model.Address       `json:"shipping_address"`
	BillingAddress  *model.Address      `json:"billing_address,omitempty"`
	SameAsShipping  bool                `json:"same_as_shipping"`
	PaymentMethod   model.PaymentMethod `json:"payment_method"`
	CouponCode      string              `json:"coupon_code,omitempty"`
	Notes           string              `json:"notes,omitempty"`
}

func (r *CheckoutRequest) toModel() model.CheckoutRequest {
	return model.CheckoutRequest{
		ShippingAddress: r.ShippingAddress,
		BillingAddress:  r.BillingAddress,
		SameAsShipping:  r.SameAsShipping,
		PaymentMethod:   r.PaymentMethod,
		CouponCode:      r.CouponCode,
		Notes:           r.Notes,
	}
}

// Validate implements validation for CheckoutRequest using the checkout schema
func (r *CheckoutRequest) Validate() error {
	return invalidResult(validation.Validate(validation.CheckoutFrom(r.toModel())))
}

type OrderResponse struct {
	Order model.Order `json:"order"`
}

//encore:api auth path=/v1/checkout method=POST tag:idempotency
func (s *Service) Checkout(ctx context.Context, req *CheckoutRequest) (*OrderResponse, error) {
	actor, caller, err := requireActor()
	if err != nil {
		return nil, err
	}

	order, err := s.checkout.Checkout(ctx, actor.ID, req.toModel())
	if err != nil {
		rlog.Error("failed to place order", "error", err, "user_id", actor.ID)
		return nil, err
	}

	productIDs := make([]uuid.UUID, 0, len(order.Items))
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	runAsync("invalidate-products", func(ctx context.Context) error {
		s.catalog.Invalidate(ctx, productIDs...)
		return nil
	})

	s.notifyOrder(ctx, workflow.OrderEmailConfirmation, caller.Email, order)

	return &OrderResponse{
		Order: *order,
	}, nil
}

type QuoteParams struct {
	CouponCode string `query:"coupon"`
}

type QuoteResponse struct {
	Totals model.Totals `json:"totals"`
}

//encore:api auth path=/v1/checkout/quote method=GET
func (s *Service) Quote(ctx context.Context, params *QuoteParams) (*QuoteResponse, error) {
	actor, _, err := requireActor()
	if err != nil {
		return nil, err
	}

	totals, err := s.checkout.Quote(ctx, actor.ID, params.CouponCode)
	if err != nil {
		rlog.Error("failed to quote cart", "error", err, "user_id", actor.ID)
		return nil, err
	}

	return &QuoteResponse{
		Totals: *totals,
	}, nil
}

// notifyOrder hands an order email to the OrderEmail workflow. If the workflow
// cannot be started the email is sent in the background instead.
func (s *Service) notifyOrder(ctx context.Context, kind workflow.OrderEmailKind, to string, order *model.Order) {
	if to == "" {
		rlog.Warn("order email skipped, no recipient", "order_id", order.ID, "kind", kind)
		return
	}

	params := workflow.OrderEmailParams{Kind: kind, To: to, Order: *order}
	if err := s.startOrderEmailWorkflow(ctx, params); err != nil {
		rlog.Error("workflow start issue", "order_id", order.ID, "workflow_id", workflow.OrderEmailWorkflowID(params), "error", err)
		runAsync("send-order-email", func(ctx context.Context) error {
			if kind == workflow.OrderEmailCancellation {
				return s.emails.SendOrderCancellation(ctx, to, order)
			}
			return s.emails.SendOrderConfirmation(ctx, to, order)
		})
	}
}

func (s *Service) startOrderEmailWorkflow(ctx context.Context, params workflow.OrderEmailParams) error {
	workflowID := workflow.OrderEmailWorkflowID(params)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: workflow.TaskQueue,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.OrderEmail, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "order_id", params.Order.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid " + what + " ID"}
	}
	return id, nil
}
