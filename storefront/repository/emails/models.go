package emails

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EmailQueue struct {
	ID        uuid.UUID          `json:"id"`
	Recipient string             `json:"recipient"`
	Subject   string             `json:"subject"`
	Html      string             `json:"html"`
	TextBody  string             `json:"text_body"`
	Status    string             `json:"status"`
	Attempts  int32              `json:"attempts"`
	LastError pgtype.Text        `json:"last_error"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
