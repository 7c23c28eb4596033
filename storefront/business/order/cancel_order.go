package order

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/storefront/domain"
	"encore.app/storefront/model"
	"encore.app/storefront/repository/orders"
)

// CancelOrder cancels a pending or processing order and puts its items back in stock.
// The status change, the timeline entry and the restock commit together.
func (b *business) CancelOrder(ctx context.Context, actor model.Actor, orderID uuid.UUID, reason string) (*model.Order, error) {
	note := "Cancelled by customer"
	if actor.Admin {
		note = "Cancelled by admin"
	}
	if reason != "" {
		note += ": " + reason
	}

	var cancelled orders.Order
	err := b.stateMachine.ExecuteWithLock(ctx, orderID, func(tx domain.Tx, current orders.Order) error {
		if !actor.CanAccess(current.UserID) {
			return &errs.Error{Code: errs.NotFound, Message: "order not found"}
		}
		if !model.OrderStatus(current.Status).Cancellable() {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "Only pending or processing orders can be cancelled",
			}
		}

		updated, err := b.stateMachine.TransitionTx(ctx, tx, current, model.OrderStatusCancelled, &actor.ID, note)
		if err != nil {
			return err
		}
		if err := b.stateMachine.RestockTx(ctx, tx, orderID); err != nil {
			return err
		}

		cancelled = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b.withItems(ctx, cancelled), nil
}
