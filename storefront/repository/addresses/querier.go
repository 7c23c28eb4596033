package addresses

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	CreateAddress(ctx context.Context, arg CreateAddressParams) (Address, error)
	DeleteAddress(ctx context.Context, id uuid.UUID) error
	GetAddress(ctx context.Context, id uuid.UUID) (Address, error)
}

var _ Querier = (*Queries)(nil)
