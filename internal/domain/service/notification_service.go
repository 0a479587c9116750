package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SubscribeToTopic registers device tokens on a topic.
	// Returns the number of tokens subscribed and the tokens rejected as invalid.
	SubscribeToTopic(ctx context.Context, tokens []string, topic string) (successCount int, invalidTokens []string, err error)

	// SendTopicNotification pushes a notification to every device on a topic
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
