package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, order_number, user_id, status, subtotal_cents, shipping_cents, tax_cents, discount_cents, total_cents,
shipping_address_id, billing_address_id, payment_method, payment_status, coupon_code, notes, created_at, updated_at`

const countOrdersByUser = `-- name: CountOrdersByUser :one
SELECT COUNT(*) FROM orders WHERE user_id = $1
`

func (q *Queries) CountOrdersByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	row := q.db.QueryRow(ctx, countOrdersByUser, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createOrder = `-- name: CreateOrder :one
INSERT INTO orders (
    order_number, user_id, status, subtotal_cents, shipping_cents, tax_cents, discount_cents, total_cents,
    shipping_address_id, billing_address_id, payment_method, payment_status, coupon_code
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + orderColumns + `
`

type CreateOrderParams struct {
	OrderNumber       string      `json:"order_number"`
	UserID            uuid.UUID   `json:"user_id"`
	Status            string      `json:"status"`
	SubtotalCents     int64       `json:"subtotal_cents"`
	ShippingCents     int64       `json:"shipping_cents"`
	TaxCents          int64       `json:"tax_cents"`
	DiscountCents     int64       `json:"discount_cents"`
	TotalCents        int64       `json:"total_cents"`
	ShippingAddressID uuid.UUID   `json:"shipping_address_id"`
	BillingAddressID  uuid.UUID   `json:"billing_address_id"`
	PaymentMethod     string      `json:"payment_method"`
	PaymentStatus     string      `json:"payment_status"`
	CouponCode        pgtype.Text `json:"coupon_code"`
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder,
		arg.OrderNumber,
		arg.UserID,
		arg.Status,
		arg.SubtotalCents,
		arg.ShippingCents,
		arg.TaxCents,
		arg.DiscountCents,
		arg.TotalCents,
		arg.ShippingAddressID,
		arg.BillingAddressID,
		arg.PaymentMethod,
		arg.PaymentStatus,
		arg.CouponCode,
	)
	return scanOrder(row)
}

const deleteOrder = `-- name: DeleteOrder :exec
DELETE FROM orders WHERE id = $1
`

func (q *Queries) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteOrder, id)
	return err
}

const getOrder = `-- name: GetOrder :one
SELECT ` + orderColumns + ` FROM orders WHERE id = $1
`

func (q *Queries) GetOrder(ctx context.Context, id uuid.UUID) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrder, id))
}

const getOrderForUpdate = `-- name: GetOrderForUpdate :one
SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrderForUpdate, id))
}

const listOrdersByUser = `-- name: ListOrdersByUser :many
SELECT ` + orderColumns + ` FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListOrdersByUserParams struct {
	UserID uuid.UUID `json:"user_id"`
	Limit  int32     `json:"limit"`
	Offset int32     `json:"offset"`
}

func (q *Queries) ListOrdersByUser(ctx context.Context, arg ListOrdersByUserParams) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrdersByUser, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Order
	for rows.Next() {
		i, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const setOrderNotes = `-- name: SetOrderNotes :exec
UPDATE orders SET notes = $2, updated_at = NOW() WHERE id = $1
`

type SetOrderNotesParams struct {
	ID    uuid.UUID   `json:"id"`
	Notes pgtype.Text `json:"notes"`
}

func (q *Queries) SetOrderNotes(ctx context.Context, arg SetOrderNotesParams) error {
	_, err := q.db.Exec(ctx, setOrderNotes, arg.ID, arg.Notes)
	return err
}

const updateOrderStatus = `-- name: UpdateOrderStatus :one
UPDATE orders SET status = $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + orderColumns + `
`

type UpdateOrderStatusParams struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, updateOrderStatus, arg.ID, arg.Status))
}

func scanOrder(row pgx.Row) (Order, error) {
	var i Order
	err := row.Scan(
		&i.ID,
		&i.OrderNumber,
		&i.UserID,
		&i.Status,
		&i.SubtotalCents,
		&i.ShippingCents,
		&i.TaxCents,
		&i.DiscountCents,
		&i.TotalCents,
		&i.ShippingAddressID,
		&i.BillingAddressID,
		&i.PaymentMethod,
		&i.PaymentStatus,
		&i.CouponCode,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
