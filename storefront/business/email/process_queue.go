package email

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/storefront/model"
	"encore.app/storefront/repository/emails"
)

// ProcessQueue sends the oldest pending emails. Each failure increments the
// attempt counter and the row is marked failed once maxAttempts is reached.
func (b *business) ProcessQueue(ctx context.Context, limit, maxAttempts int32) (QueueResult, error) {
	var result QueueResult

	pending, err := b.emailRepo.ListPendingEmails(ctx, emails.ListPendingEmailsParams{
		MaxAttempts: maxAttempts,
		Limit:       limit,
	})
	if err != nil {
		return result, &errs.Error{Code: errs.Internal, Message: "failed to list pending emails"}
	}

	for _, row := range pending {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		msg := model.EmailMessage{To: row.Recipient, Subject: row.Subject, HTML: row.Html, Text: row.TextBody}
		deliverErr := b.sender.Deliver(ctx, msg)
		b.recordAttempt(ctx, msg, deliverErr)

		if deliverErr == nil {
			if err := b.emailRepo.MarkEmailSent(ctx, row.ID); err != nil {
				return result, &errs.Error{Code: errs.Internal, Message: "failed to mark email sent"}
			}
			result.Sent++
			continue
		}

		status := model.EmailStatusPending
		if row.Attempts+1 >= maxAttempts {
			status = model.EmailStatusFailed
		}
		if err := b.emailRepo.MarkEmailFailed(ctx, emails.MarkEmailFailedParams{
			ID:        row.ID,
			Status:    string(status),
			LastError: pgtype.Text{String: deliverErr.Error(), Valid: true},
		}); err != nil {
			return result, &errs.Error{Code: errs.Internal, Message: "failed to mark email failed"}
		}

		if status == model.EmailStatusFailed {
			result.Failed++
		} else {
			result.Retried++
		}
	}

	return result, nil
}
