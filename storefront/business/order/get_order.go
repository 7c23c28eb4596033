package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/storefront/domain"
	"encore.app/storefront/model"
	"encore.app/storefront/repository/orders"
)

// GetOrder returns the order with its items when the actor may see it
func (b *business) GetOrder(ctx context.Context, actor model.Actor, orderID uuid.UUID) (*model.Order, error) {
	dbOrder, err := b.loadOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	items, err := b.orderRepo.ListOrderItems(ctx, orderID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get order items"}
	}

	order := domain.ConvertDBOrderToModel(dbOrder)
	order.Items = make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		order.Items = append(order.Items, domain.ConvertDBOrderItemToModel(item))
	}
	return order, nil
}

// loadOrder fetches the order and hides it from actors that do not own it.
func (b *business) loadOrder(ctx context.Context, actor model.Actor, orderID uuid.UUID) (orders.Order, error) {
	dbOrder, err := b.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return orders.Order{}, &errs.Error{Code: errs.NotFound, Message: "order not found"}
		}
		return orders.Order{}, &errs.Error{Code: errs.Internal, Message: "failed to get order"}
	}
	if !actor.CanAccess(dbOrder.UserID) {
		return orders.Order{}, &errs.Error{Code: errs.NotFound, Message: "order not found"}
	}
	return dbOrder, nil
}

// withItems converts a committed order and loads its items. The change is
// already durable, so a failed item read only leaves Items empty.
func (b *business) withItems(ctx context.Context, dbOrder orders.Order) *model.Order {
	order := domain.ConvertDBOrderToModel(dbOrder)
	items, err := b.orderRepo.ListOrderItems(ctx, dbOrder.ID)
	if err != nil {
		rlog.Warn("failed to load order items", "error", err, "order_id", dbOrder.ID)
		return order
	}
	order.Items = make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		order.Items = append(order.Items, domain.ConvertDBOrderItemToModel(item))
	}
	return order
}

func requireAdmin(actor model.Actor) error {
	if !actor.Admin {
		return &errs.Error{Code: errs.PermissionDenied, Message: "admin access required"}
	}
	return nil
}
