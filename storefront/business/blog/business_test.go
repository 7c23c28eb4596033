package blog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/storefront/cache"
	"encore.app/storefront/mocks/repository/post_repo"
	"encore.app/storefront/repository/posts"
)

func newIndexedCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.New(context.Background(), cache.Options{
		Version: "test",
		DBPath:  filepath.Join(t.TempDir(), "naaz-cache.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { c.Dispose(context.Background()) })
	return c
}

func TestGetPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := post_repo.NewMockQuerier(ctrl)
	b := NewBlogBusiness(repo, newIndexedCache(t), time.Hour)

	published := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
	repo.EXPECT().GetPublishedPostBySlug(gomock.Any(), "caring-for-silk").Return(posts.BlogPost{
		ID:           uuid.New(),
		Slug:         "caring-for-silk",
		Title:        "Caring for silk",
		BodyMarkdown: "# Washing\n\nUse **cold** water.\n\n<script>alert(1)</script>\n\n[shop](https://naaz.example/shop)",
		PublishedAt:  pgtype.Timestamptz{Time: published, Valid: true},
	}, nil).Times(1)

	post, err := b.GetPost(context.Background(), "caring-for-silk")
	require.NoError(t, err)
	assert.Contains(t, post.HTML, "<h1")
	assert.Contains(t, post.HTML, "<strong>cold</strong>")
	assert.Contains(t, post.HTML, `href="https://naaz.example/shop"`)
	assert.NotContains(t, post.HTML, "<script>")
	require.NotNil(t, post.PublishedAt)
	assert.True(t, published.Equal(*post.PublishedAt))

	cached, err := b.GetPost(context.Background(), "caring-for-silk")
	require.NoError(t, err)
	assert.Equal(t, post.HTML, cached.HTML)
}

func TestGetPostNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := post_repo.NewMockQuerier(ctrl)
	b := NewBlogBusiness(repo, newIndexedCache(t), time.Hour)

	repo.EXPECT().GetPublishedPostBySlug(gomock.Any(), "draft").Return(posts.BlogPost{}, pgx.ErrNoRows).Times(2)

	for range 2 {
		_, err := b.GetPost(context.Background(), "draft")
		assert.Equal(t, errs.NotFound, errs.Code(err))
	}
}
