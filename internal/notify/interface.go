package notify

import "context"

// Notifier defines the interface for sending notifications.
type Notifier interface {
	Send(ctx context.Context, message string) error
}
