package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createTimelineEntry = `-- name: CreateTimelineEntry :one
INSERT INTO order_timeline (order_id, status, note, actor_id)
VALUES ($1, $2, $3, $4)
RETURNING id, order_id, status, note, actor_id, created_at
`

type CreateTimelineEntryParams struct {
	OrderID uuid.UUID     `json:"order_id"`
	Status  string        `json:"status"`
	Note    pgtype.Text   `json:"note"`
	ActorID uuid.NullUUID `json:"actor_id"`
}

func (q *Queries) CreateTimelineEntry(ctx context.Context, arg CreateTimelineEntryParams) (OrderTimeline, error) {
	row := q.db.QueryRow(ctx, createTimelineEntry,
		arg.OrderID,
		arg.Status,
		arg.Note,
		arg.ActorID,
	)
	var i OrderTimeline
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.Status,
		&i.Note,
		&i.ActorID,
		&i.CreatedAt,
	)
	return i, err
}

const listTimelineEntries = `-- name: ListTimelineEntries :many
SELECT id, order_id, status, note, actor_id, created_at
FROM order_timeline WHERE order_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListTimelineEntries(ctx context.Context, orderID uuid.UUID) ([]OrderTimeline, error) {
	rows, err := q.db.Query(ctx, listTimelineEntries, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderTimeline
	for rows.Next() {
		var i OrderTimeline
		if err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.Status,
			&i.Note,
			&i.ActorID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
