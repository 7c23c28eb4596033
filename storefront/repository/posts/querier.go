package posts

import (
	"context"
)

type Querier interface {
	GetPublishedPostBySlug(ctx context.Context, slug string) (BlogPost, error)
}

var _ Querier = (*Queries)(nil)
