package analytics

import "context"

// Store defines the interface for persisting analytics events.
type Store interface {
	SaveLinkCreated(ctx context.Context, event *LinkCreatedEvent) error
	SaveMessageReceived(ctx context.Context, event *MessageReceivedEvent) error
}
