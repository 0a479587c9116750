package notification

import (
	"context"
	"fmt"

	"locator/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxTopicBatch is the FCM limit of tokens per topic management call.
const maxTopicBatch = 1000

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SubscribeToTopic registers device tokens on a topic, at most 1000 per call
func (s *firebaseService) SubscribeToTopic(ctx context.Context, tokens []string, topic string) (successCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, nil, nil
	}

	if len(tokens) > maxTopicBatch {
		return 0, nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxTopicBatch)
	}

	response, err := s.client.SubscribeToTopic(ctx, tokens, topic)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to subscribe to topic %s: %w", topic, err)
	}

	invalidTokens = make([]string, 0, len(response.Errors))
	for _, info := range response.Errors {
		if info.Index >= 0 && info.Index < len(tokens) {
			invalidTokens = append(invalidTokens, tokens[info.Index])
		}
	}

	return response.SuccessCount, invalidTokens, nil
}

// SendTopicNotification sends a push notification to every device on a topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsInvalidArgument(err) {
			return fmt.Errorf("invalid topic message for %s: %w", topic, err)
		}

		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
