package emails

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const emailQueueColumns = `id, recipient, subject, html, text_body, status, attempts, last_error, created_at, updated_at`

const enqueueEmail = `-- name: EnqueueEmail :one
INSERT INTO email_queue (recipient, subject, html, text_body, status, last_error)
VALUES ($1, $2, $3, $4, 'pending', $5)
RETURNING ` + emailQueueColumns + `
`

type EnqueueEmailParams struct {
	Recipient string      `json:"recipient"`
	Subject   string      `json:"subject"`
	Html      string      `json:"html"`
	TextBody  string      `json:"text_body"`
	LastError pgtype.Text `json:"last_error"`
}

func (q *Queries) EnqueueEmail(ctx context.Context, arg EnqueueEmailParams) (EmailQueue, error) {
	row := q.db.QueryRow(ctx, enqueueEmail,
		arg.Recipient,
		arg.Subject,
		arg.Html,
		arg.TextBody,
		arg.LastError,
	)
	var i EmailQueue
	err := row.Scan(
		&i.ID,
		&i.Recipient,
		&i.Subject,
		&i.Html,
		&i.TextBody,
		&i.Status,
		&i.Attempts,
		&i.LastError,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listPendingEmails = `-- name: ListPendingEmails :many
SELECT ` + emailQueueColumns + ` FROM email_queue
WHERE status = 'pending' AND attempts < $1
ORDER BY created_at
LIMIT $2
`

type ListPendingEmailsParams struct {
	MaxAttempts int32 `json:"max_attempts"`
	Limit       int32 `json:"limit"`
}

func (q *Queries) ListPendingEmails(ctx context.Context, arg ListPendingEmailsParams) ([]EmailQueue, error) {
	rows, err := q.db.Query(ctx, listPendingEmails, arg.MaxAttempts, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []EmailQueue
	for rows.Next() {
		var i EmailQueue
		if err := rows.Scan(
			&i.ID,
			&i.Recipient,
			&i.Subject,
			&i.Html,
			&i.TextBody,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const markEmailFailed = `-- name: MarkEmailFailed :exec
UPDATE email_queue
SET attempts = attempts + 1, status = $2, last_error = $3, updated_at = NOW()
WHERE id = $1
`

type MarkEmailFailedParams struct {
	ID        uuid.UUID   `json:"id"`
	Status    string      `json:"status"`
	LastError pgtype.Text `json:"last_error"`
}

func (q *Queries) MarkEmailFailed(ctx context.Context, arg MarkEmailFailedParams) error {
	_, err := q.db.Exec(ctx, markEmailFailed, arg.ID, arg.Status, arg.LastError)
	return err
}

const markEmailSent = `-- name: MarkEmailSent :exec
UPDATE email_queue
SET attempts = attempts + 1, status = 'sent', last_error = NULL, updated_at = NOW()
WHERE id = $1
`

func (q *Queries) MarkEmailSent(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, markEmailSent, id)
	return err
}

const recordNotification = `-- name: RecordNotification :exec
INSERT INTO email_notifications (recipient, subject, status, error)
VALUES ($1, $2, $3, $4)
`

type RecordNotificationParams struct {
	Recipient string      `json:"recipient"`
	Subject   string      `json:"subject"`
	Status    string      `json:"status"`
	Error     pgtype.Text `json:"error"`
}

func (q *Queries) RecordNotification(ctx context.Context, arg RecordNotificationParams) error {
	_, err := q.db.Exec(ctx, recordNotification,
		arg.Recipient,
		arg.Subject,
		arg.Status,
		arg.Error,
	)
	return err
}
