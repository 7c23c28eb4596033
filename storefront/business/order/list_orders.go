package order

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/storefront/domain"
	"encore.app/storefront/model"
	"encore.app/storefront/repository/orders"
)

// ListOrders returns the actor's orders, newest first, and the total count
func (b *business) ListOrders(ctx context.Context, actor model.Actor, limit, offset int32) ([]*model.Order, int64, error) {
	dbOrders, err := b.orderRepo.ListOrdersByUser(ctx, orders.ListOrdersByUserParams{
		UserID: actor.ID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list orders"}
	}

	total, err := b.orderRepo.CountOrdersByUser(ctx, actor.ID)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count orders"}
	}

	result := make([]*model.Order, len(dbOrders))
	for i, o := range dbOrders {
		result[i] = domain.ConvertDBOrderToModel(o)
	}
	return result, total, nil
}
