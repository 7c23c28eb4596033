package audit

import (
	"context"
)

type Querier interface {
	CreateActivityLog(ctx context.Context, arg CreateActivityLogParams) error
}

var _ Querier = (*Queries)(nil)
