package storefront

import (
	"context"

	"encore.dev/pubsub"

	"encore.app/storefront/model"
	"encore.app/storefront/monitor"
)

// UserNotifications carries error messages meant for a signed-in customer,
// keyed by user id. Subscribers live outside this app.
var UserNotifications = pubsub.NewTopic[*model.UserNotification]("user-notifications", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

// topicNotifier publishes monitor notifications to UserNotifications.
type topicNotifier struct{}

func (topicNotifier) Notify(ctx context.Context, n monitor.Notification) error {
	_, err := UserNotifications.Publish(ctx, &model.UserNotification{
		UserID:  n.UserID,
		Level:   string(n.Level),
		Message: n.Message,
	})
	return err
}
