package storefront

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"

	"encore.app/storefront/model"
	"encore.app/storefront/workflow"
)

//encore:api auth path=/v1/orders/:id method=GET
func (s *Service) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	orderID, err := parseID(id, "order")
	if err != nil {
		return nil, err
	}
	actor, _, err := requireActor()
	if err != nil {
		return nil, err
	}

	result, err := s.orders.GetOrder(ctx, actor, orderID)
	if err != nil {
		rlog.Error("failed to get order", "error", err, "id", id)
		return nil, err
	}

	return &OrderResponse{
		Order: *result,
	}, nil
}

type ListOrdersParams struct {
	Limit  int32 `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int32 `query:"offset" validate:"omitempty,min=0"`
}

// Validate implements validation for ListOrdersParams
func (p *ListOrdersParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type ListOrdersResponse struct {
	Orders []*model.Order `json:"orders"`
	Total  int64          `json:"total"`
}

const defaultPageSize = 20

// ListOrders returns the caller's orders newest first, or every order for admins.
//
//encore:api auth path=/v1/orders method=GET
func (s *Service) ListOrders(ctx context.Context, params *ListOrdersParams) (*ListOrdersResponse, error) {
	actor, _, err := requireActor()
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	result, total, err := s.orders.ListOrders(ctx, actor, limit, params.Offset)
	if err != nil {
		rlog.Error("failed to list orders", "error", err, "user_id", actor.ID)
		return nil, err
	}

	return &ListOrdersResponse{
		Orders: result,
		Total:  total,
	}, nil
}

type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// Validate implements validation for CancelOrderRequest
func (r *CancelOrderRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

//encore:api auth path=/v1/orders/:id/cancel method=POST
func (s *Service) CancelOrder(ctx context.Context, id string, req *CancelOrderRequest) (*OrderResponse, error) {
	orderID, err := parseID(id, "order")
	if err != nil {
		return nil, err
	}
	actor, caller, err := requireActor()
	if err != nil {
		return nil, err
	}

	result, err := s.orders.CancelOrder(ctx, actor, orderID, req.Reason)
	if err != nil {
		rlog.Error("failed to cancel order", "error", err, "id", id)
		return nil, err
	}

	s.afterRestock(result)
	// Only the customer's own address is known here
	if result.UserID == actor.ID {
		s.notifyOrder(ctx, workflow.OrderEmailCancellation, caller.Email, result)
	}

	return &OrderResponse{
		Order: *result,
	}, nil
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled refunded"`
	Note   string            `json:"note,omitempty" validate:"max=500"`
}

// Validate implements validation for UpdateOrderStatusRequest
func (r *UpdateOrderStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

//encore:api auth path=/v1/admin/orders/:id/status method=POST
func (s *Service) UpdateOrderStatus(ctx context.Context, id string, req *UpdateOrderStatusRequest) (*OrderResponse, error) {
	orderID, err := parseID(id, "order")
	if err != nil {
		return nil, err
	}
	actor, _, err := requireActor()
	if err != nil {
		return nil, err
	}

	result, err := s.orders.UpdateStatus(ctx, actor, orderID, req.Status, req.Note)
	if err != nil {
		rlog.Error("failed to update order status", "error", err, "id", id, "status", req.Status)
		return nil, err
	}

	if result.Status == model.OrderStatusCancelled {
		s.afterRestock(result)
	}

	return &OrderResponse{
		Order: *result,
	}, nil
}

// afterRestock drops cached views of products whose stock a cancellation returned.
func (s *Service) afterRestock(order *model.Order) {
	if len(order.Items) == 0 {
		return
	}
	ids := make([]uuid.UUID, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}
	runAsync("invalidate-products", func(ctx context.Context) error {
		s.catalog.Invalidate(ctx, ids...)
		return nil
	})
}
