package email

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/storefront/model"
	"encore.app/storefront/repository/emails"
)

// Send tries the provider once. A failed delivery is queued, and only a failure
// to queue is returned to the caller.
func (b *business) Send(ctx context.Context, msg model.EmailMessage) error {
	if msg.To == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "email recipient is required"}
	}

	deliverErr := b.sender.Deliver(ctx, msg)
	b.recordAttempt(ctx, msg, deliverErr)
	if deliverErr == nil {
		return nil
	}

	rlog.Warn("email delivery failed, queueing for retry", "error", deliverErr, "subject", msg.Subject)

	if _, err := b.emailRepo.EnqueueEmail(ctx, emails.EnqueueEmailParams{
		Recipient: msg.To,
		Subject:   msg.Subject,
		Html:      msg.HTML,
		TextBody:  msg.Text,
		LastError: pgtype.Text{String: deliverErr.Error(), Valid: true},
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to queue email"}
	}
	return nil
}

// recordAttempt appends to the notification log. It never fails the send.
func (b *business) recordAttempt(ctx context.Context, msg model.EmailMessage, deliverErr error) {
	params := emails.RecordNotificationParams{
		Recipient: msg.To,
		Subject:   msg.Subject,
		Status:    string(model.EmailStatusSent),
	}
	if deliverErr != nil {
		params.Status = string(model.EmailStatusFailed)
		params.Error = pgtype.Text{String: deliverErr.Error(), Valid: true}
	}
	if err := b.emailRepo.RecordNotification(ctx, params); err != nil {
		rlog.Warn("failed to record email notification", "error", err, "subject", msg.Subject)
	}
}
