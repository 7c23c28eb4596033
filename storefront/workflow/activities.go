package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/storefront/business/email"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	EmailBusiness email.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(emailBusiness email.Business) {
	activityDeps = &ActivityDependencies{
		EmailBusiness: emailBusiness,
	}
}

// ProcessEmailQueueActivity sends one batch of queued emails
func ProcessEmailQueueActivity(ctx context.Context, params DrainEmailQueueParams) (email.QueueResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing email queue", "batchSize", params.BatchSize, "maxAttempts", params.MaxAttempts)

	if activityDeps == nil || activityDeps.EmailBusiness == nil {
		logger.Error("Activity dependencies not set")
		return email.QueueResult{}, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	result, err := activityDeps.EmailBusiness.ProcessQueue(ctx, params.BatchSize, params.MaxAttempts)
	if err != nil {
		logger.Error("Failed to process email queue", "error", err)
		return result, err
	}

	logger.Info("Processed email queue", "sent", result.Sent, "retried", result.Retried, "failed", result.Failed)
	return result, nil
}

// SendOrderEmailActivity renders and sends an order confirmation or cancellation
func SendOrderEmailActivity(ctx context.Context, params OrderEmailParams) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Sending order email", "kind", params.Kind, "orderNumber", params.Order.OrderNumber)

	if activityDeps == nil || activityDeps.EmailBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	var err error
	switch params.Kind {
	case OrderEmailConfirmation:
		err = activityDeps.EmailBusiness.SendOrderConfirmation(ctx, params.To, &params.Order)
	case OrderEmailCancellation:
		err = activityDeps.EmailBusiness.SendOrderCancellation(ctx, params.To, &params.Order)
	default:
		return temporal.NewNonRetryableApplicationError("unknown order email kind", "UNKNOWN_EMAIL_KIND", nil, params.Kind)
	}
	if err != nil {
		logger.Error("Failed to send order email", "orderNumber", params.Order.OrderNumber, "error", err)
		return err
	}
	return nil
}
