package storefront

import (
	"context"

	"encore.dev/rlog"

	"encore.app/storefront/model"
)

type PostResponse struct {
	Post model.BlogPost `json:"post"`
}

//encore:api public path=/v1/blog/:slug method=GET
func (s *Service) GetPost(ctx context.Context, slug string) (*PostResponse, error) {
	result, err := s.blog.GetPost(ctx, slug)
	if err != nil {
		rlog.Error("failed to get post", "error", err, "slug", slug)
		return nil, err
	}

	return &PostResponse{
		Post: *result,
	}, nil
}
