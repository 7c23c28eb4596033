package products

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	CountProducts(ctx context.Context) (int64, error)
	DecrementStock(ctx context.Context, arg DecrementStockParams) (int32, error)
	GetProduct(ctx context.Context, id uuid.UUID) (Product, error)
	IncrementStock(ctx context.Context, arg IncrementStockParams) (int32, error)
	ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error)
}

var _ Querier = (*Queries)(nil)
