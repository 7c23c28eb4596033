package addresses

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Address struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	FullName  string             `json:"full_name"`
	Phone     string             `json:"phone"`
	Line1     string             `json:"line1"`
	Line2     pgtype.Text        `json:"line2"`
	City      string             `json:"city"`
	State     string             `json:"state"`
	Pincode   string             `json:"pincode"`
	Country   string             `json:"country"`
	Type      string             `json:"type"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}
