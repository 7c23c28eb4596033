package blog

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"encore.dev/beta/errs"

	"encore.app/storefront/cache"
	"encore.app/storefront/model"
	"encore.app/storefront/repository/posts"
)

type Business interface {
	GetPost(ctx context.Context, slug string) (*model.BlogPost, error)
}

type business struct {
	postRepo posts.Querier
	cache    *cache.Cache
	ttl      time.Duration
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewBlogBusiness creates post reads rendered once and kept in the indexed cache tier
func NewBlogBusiness(postRepo posts.Querier, c *cache.Cache, ttl time.Duration) Business {
	return &business{
		postRepo: postRepo,
		cache:    c,
		ttl:      ttl,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy:   bluemonday.UGCPolicy(),
	}
}

// GetPost returns a published post with its body rendered to sanitized HTML
func (b *business) GetPost(ctx context.Context, slug string) (*model.BlogPost, error) {
	opts := cache.SetOptions{TTL: b.ttl, Tier: cache.TierIndexed, Compress: true}
	post, err := cache.Remember(ctx, b.cache, "post:"+slug, opts, func(ctx context.Context) (model.BlogPost, error) {
		row, err := b.postRepo.GetPublishedPostBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.BlogPost{}, &errs.Error{Code: errs.NotFound, Message: "post not found"}
			}
			return model.BlogPost{}, &errs.Error{Code: errs.Internal, Message: "failed to get post"}
		}

		html, err := b.render(row.BodyMarkdown)
		if err != nil {
			return model.BlogPost{}, &errs.Error{Code: errs.Internal, Message: "failed to render post"}
		}

		post := model.BlogPost{ID: row.ID, Slug: row.Slug, Title: row.Title, HTML: html}
		if row.PublishedAt.Valid {
			published := row.PublishedAt.Time
			post.PublishedAt = &published
		}
		return post, nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (b *business) render(source string) (string, error) {
	var buf bytes.Buffer
	if err := b.markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return string(b.policy.SanitizeBytes(buf.Bytes())), nil
}
