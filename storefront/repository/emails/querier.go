package emails

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	EnqueueEmail(ctx context.Context, arg EnqueueEmailParams) (EmailQueue, error)
	ListPendingEmails(ctx context.Context, arg ListPendingEmailsParams) ([]EmailQueue, error)
	MarkEmailFailed(ctx context.Context, arg MarkEmailFailedParams) error
	MarkEmailSent(ctx context.Context, id uuid.UUID) error
	RecordNotification(ctx context.Context, arg RecordNotificationParams) error
}

var _ Querier = (*Queries)(nil)
