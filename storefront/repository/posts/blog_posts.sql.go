package posts

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BlogPost struct {
	ID           uuid.UUID          `json:"id"`
	Slug         string             `json:"slug"`
	Title        string             `json:"title"`
	BodyMarkdown string             `json:"body_markdown"`
	PublishedAt  pgtype.Timestamptz `json:"published_at"`
}

const getPublishedPostBySlug = `-- name: GetPublishedPostBySlug :one
SELECT id, slug, title, body_markdown, published_at
FROM blog_posts
WHERE slug = $1 AND published
`

func (q *Queries) GetPublishedPostBySlug(ctx context.Context, slug string) (BlogPost, error) {
	row := q.db.QueryRow(ctx, getPublishedPostBySlug, slug)
	var i BlogPost
	err := row.Scan(
		&i.ID,
		&i.Slug,
		&i.Title,
		&i.BodyMarkdown,
		&i.PublishedAt,
	)
	return i, err
}
