package store

import (
	"context"

	"github.com/cosmichub/api/internal/analytics"
	"go.uber.org/zap"
)

// Noop is a no-op implementation of analytics.Store that logs events.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a new no-op analytics store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveLinkCreated(_ context.Context, event *analytics.LinkCreatedEvent) error {
	n.logger.Info("link created event received",
		zap.String("url", event.URL),
		zap.String("date", event.Date),
		zap.Time("createdAt", event.CreatedAt),
	)

	return nil
}

func (n *Noop) SaveMessageReceived(_ context.Context, event *analytics.MessageReceivedEvent) error {
	n.logger.Info("message received event received",
		zap.String("messageId", event.MessageID),
		zap.Int("length", event.Length),
		zap.Time("receivedAt", event.ReceivedAt),
	)

	return nil
}
