package email

import (
	"context"

	"encore.app/storefront/model"
	"encore.app/storefront/repository/emails"
)

const (
	// DefaultBatchSize is how many queued emails one drain pass sends.
	DefaultBatchSize int32 = 50
	// DefaultMaxAttempts is the attempt count after which a queued email is given up on.
	DefaultMaxAttempts int32 = 5
)

type Business interface {
	// Send delivers msg now, or queues it for the drain workflow if delivery fails.
	Send(ctx context.Context, msg model.EmailMessage) error
	SendOrderConfirmation(ctx context.Context, to string, order *model.Order) error
	SendOrderCancellation(ctx context.Context, to string, order *model.Order) error
	// ProcessQueue retries up to limit pending emails.
	ProcessQueue(ctx context.Context, limit, maxAttempts int32) (QueueResult, error)
}

// QueueResult counts what one drain pass did.
type QueueResult struct {
	Sent    int `json:"sent"`
	Retried int `json:"retried"`
	Failed  int `json:"failed"`
}

type business struct {
	emailRepo emails.Querier
	sender    Sender
}

// NewEmailBusiness creates the notification business layer
func NewEmailBusiness(emailRepo emails.Querier, sender Sender) Business {
	return &business{
		emailRepo: emailRepo,
		sender:    sender,
	}
}
