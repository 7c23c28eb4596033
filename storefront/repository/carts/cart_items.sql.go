package carts

import (
	"context"

	"github.com/google/uuid"
)

const clearCart = `-- name: ClearCart :exec
DELETE FROM cart_items WHERE user_id = $1
`

func (q *Queries) ClearCart(ctx context.Context, userID uuid.UUID) error {
	_, err := q.db.Exec(ctx, clearCart, userID)
	return err
}

const getCartLines = `-- name: GetCartLines :many
SELECT c.id AS cart_item_id, c.quantity,
       p.id AS product_id, p.name, p.slug, p.price_cents, p.sale_price_cents, p.stock, p.is_active
FROM cart_items c
JOIN products p ON p.id = c.product_id
WHERE c.user_id = $1
ORDER BY c.created_at
`

func (q *Queries) GetCartLines(ctx context.Context, userID uuid.UUID) ([]GetCartLinesRow, error) {
	rows, err := q.db.Query(ctx, getCartLines, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetCartLinesRow
	for rows.Next() {
		var i GetCartLinesRow
		if err := rows.Scan(
			&i.CartItemID,
			&i.Quantity,
			&i.ProductID,
			&i.Name,
			&i.Slug,
			&i.PriceCents,
			&i.SalePriceCents,
			&i.Stock,
			&i.IsActive,
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

const restoreCartItem = `-- name: RestoreCartItem :exec
INSERT INTO cart_items (id, user_id, product_id, quantity)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, product_id) DO NOTHING
`

type RestoreCartItemParams struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int32     `json:"quantity"`
}

func (q *Queries) RestoreCartItem(ctx context.Context, arg RestoreCartItemParams) error {
	_, err := q.db.Exec(ctx, restoreCartItem,
		arg.ID,
		arg.UserID,
		arg.ProductID,
		arg.Quantity,
	)
	return err
}
