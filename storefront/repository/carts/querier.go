package carts

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	ClearCart(ctx context.Context, userID uuid.UUID) error
	GetCartLines(ctx context.Context, userID uuid.UUID) ([]GetCartLinesRow, error)
	RestoreCartItem(ctx context.Context, arg RestoreCartItemParams) error
}

var _ Querier = (*Queries)(nil)
