package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"encore.app/storefront/business/email"
	"encore.app/storefront/model"
)

const (
	TaskQueue = "storefront"

	DrainEmailQueueWorkflowID = "drain-email-queue"
	// DrainEmailQueueSchedule runs the drain every ten minutes.
	DrainEmailQueueSchedule = "*/10 * * * *"
)

// DrainEmailQueueParams bounds one drain run
type DrainEmailQueueParams struct {
	BatchSize   int32 `json:"batch_size"`
	MaxAttempts int32 `json:"max_attempts"`
}

// DrainEmailQueue retries queued emails. It is started as a cron workflow so each
// run handles one batch and the next run picks up whatever is left.
func DrainEmailQueue(ctx workflow.Context, params DrainEmailQueueParams) (email.QueueResult, error) {
	logger := workflow.GetLogger(ctx)

	if params.BatchSize <= 0 {
		params.BatchSize = email.DefaultBatchSize
	}
	if params.MaxAttempts <= 0 {
		params.MaxAttempts = email.DefaultMaxAttempts
	}

	activityCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	})

	var result email.QueueResult
	if err := workflow.ExecuteActivity(activityCtx, ProcessEmailQueueActivity, params).Get(ctx, &result); err != nil {
		logger.Error("Email queue drain failed", "error", err)
		return result, err
	}

	logger.Info("Email queue drained", "sent", result.Sent, "retried", result.Retried, "failed", result.Failed)
	return result, nil
}

// OrderEmailKind selects the order email template
type OrderEmailKind string

const (
	OrderEmailConfirmation OrderEmailKind = "confirmation"
	OrderEmailCancellation OrderEmailKind = "cancellation"
)

// OrderEmailParams contains parameters for the order email workflow
type OrderEmailParams struct {
	Kind  OrderEmailKind `json:"kind"`
	To    string         `json:"to"`
	Order model.Order    `json:"order"`
}

// OrderEmailWorkflowID is unique per order and kind so a retried request does not send twice.
func OrderEmailWorkflowID(params OrderEmailParams) string {
	return "order-email-" + string(params.Kind) + "-" + params.Order.ID.String()
}

// OrderEmail sends one order email with retries
func OrderEmail(ctx workflow.Context, params OrderEmailParams) error {
	activityCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    5,
		},
	})
	return workflow.ExecuteActivity(activityCtx, SendOrderEmailActivity, params).Get(ctx, nil)
}
