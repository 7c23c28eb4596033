package order

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/storefront/domain"
	"encore.app/storefront/model"
	"encore.app/storefront/repository/orders"
)

// UpdateStatus moves an order along its lifecycle on behalf of an admin
func (b *business) UpdateStatus(ctx context.Context, actor model.Actor, orderID uuid.UUID, status model.OrderStatus, note string) (*model.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "unknown order status"}
	}

	var updated orders.Order
	err := b.stateMachine.ExecuteWithLock(ctx, orderID, func(tx domain.Tx, current orders.Order) error {
		o, err := b.stateMachine.TransitionTx(ctx, tx, current, status, &actor.ID, note)
		if err != nil {
			return err
		}
		if status == model.OrderStatusCancelled {
			if err := b.stateMachine.RestockTx(ctx, tx, orderID); err != nil {
				return err
			}
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b.withItems(ctx, updated), nil
}
