package orders

import (
	"context"

	"github.com/google/uuid"
)

const createOrderNote = `-- name: CreateOrderNote :one
INSERT INTO order_notes (order_id, author_id, body, is_internal)
VALUES ($1, $2, $3, $4)
RETURNING id, order_id, author_id, body, is_internal, created_at
`

type CreateOrderNoteParams struct {
	OrderID    uuid.UUID `json:"order_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	Body       string    `json:"body"`
	IsInternal bool      `json:"is_internal"`
}

func (q *Queries) CreateOrderNote(ctx context.Context, arg CreateOrderNoteParams) (OrderNote, error) {
	row := q.db.QueryRow(ctx, createOrderNote,
		arg.OrderID,
		arg.AuthorID,
		arg.Body,
		arg.IsInternal,
	)
	var i OrderNote
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.AuthorID,
		&i.Body,
		&i.IsInternal,
		&i.CreatedAt,
	)
	return i, err
}

const deleteOrderNote = `-- name: DeleteOrderNote :execrows
DELETE FROM order_notes WHERE id = $1 AND order_id = $2
`

type DeleteOrderNoteParams struct {
	ID      uuid.UUID `json:"id"`
	OrderID uuid.UUID `json:"order_id"`
}

func (q *Queries) DeleteOrderNote(ctx context.Context, arg DeleteOrderNoteParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteOrderNote, arg.ID, arg.OrderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listOrderNotes = `-- name: ListOrderNotes :many
SELECT id, order_id, author_id, body, is_internal, created_at
FROM order_notes WHERE order_id = $1
ORDER BY created_at
`

func (q *Queries) ListOrderNotes(ctx context.Context, orderID uuid.UUID) ([]OrderNote, error) {
	rows, err := q.db.Query(ctx, listOrderNotes, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderNote
	for rows.Next() {
		var i OrderNote
		if err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.AuthorID,
			&i.Body,
			&i.IsInternal,
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
