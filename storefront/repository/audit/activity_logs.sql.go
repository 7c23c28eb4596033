package audit

import (
	"context"

	"github.com/google/uuid"
)

const createActivityLog = `-- name: CreateActivityLog :exec
INSERT INTO activity_logs (user_id, action, entity_type, entity_id, details)
VALUES ($1, $2, $3, $4, $5)
`

type CreateActivityLogParams struct {
	UserID     uuid.NullUUID `json:"user_id"`
	Action     string        `json:"action"`
	EntityType string        `json:"entity_type"`
	EntityID   string        `json:"entity_id"`
	Details    []byte        `json:"details"`
}

func (q *Queries) CreateActivityLog(ctx context.Context, arg CreateActivityLogParams) error {
	_, err := q.db.Exec(ctx, createActivityLog,
		arg.UserID,
		arg.Action,
		arg.EntityType,
		arg.EntityID,
		arg.Details,
	)
	return err
}
