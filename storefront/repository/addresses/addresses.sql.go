package addresses

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createAddress = `-- name: CreateAddress :one
INSERT INTO addresses (user_id, full_name, phone, line1, line2, city, state, pincode, country, type)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, user_id, full_name, phone, line1, line2, city, state, pincode, country, type, created_at
`

type CreateAddressParams struct {
	UserID   uuid.UUID   `json:"user_id"`
	FullName string      `json:"full_name"`
	Phone    string      `json:"phone"`
	Line1    string      `json:"line1"`
	Line2    pgtype.Text `json:"line2"`
	City     string      `json:"city"`
	State    string      `json:"state"`
	Pincode  string      `json:"pincode"`
	Country  string      `json:"country"`
	Type     string      `json:"type"`
}

func (q *Queries) CreateAddress(ctx context.Context, arg CreateAddressParams) (Address, error) {
	row := q.db.QueryRow(ctx, createAddress,
		arg.UserID,
		arg.FullName,
		arg.Phone,
		arg.Line1,
		arg.Line2,
		arg.City,
		arg.State,
		arg.Pincode,
		arg.Country,
		arg.Type,
	)
	return scanAddress(row)
}

const deleteAddress = `-- name: DeleteAddress :exec
DELETE FROM addresses WHERE id = $1
`

func (q *Queries) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteAddress, id)
	return err
}

const getAddress = `-- name: GetAddress :one
SELECT id, user_id, full_name, phone, line1, line2, city, state, pincode, country, type, created_at
FROM addresses WHERE id = $1
`

func (q *Queries) GetAddress(ctx context.Context, id uuid.UUID) (Address, error) {
	return scanAddress(q.db.QueryRow(ctx, getAddress, id))
}

func scanAddress(row interface{ Scan(dest ...any) error }) (Address, error) {
	var i Address
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.FullName,
		&i.Phone,
		&i.Line1,
		&i.Line2,
		&i.City,
		&i.State,
		&i.Pincode,
		&i.Country,
		&i.Type,
		&i.CreatedAt,
	)
	return i, err
}
