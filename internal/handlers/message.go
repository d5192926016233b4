package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/cosmichub/api/internal/analytics"
	"github.com/cosmichub/api/internal/mailer"
	"github.com/cosmichub/api/internal/messaging"
	"go.uber.org/zap"
)

const maxMessageLength = 500

// IDGenerator generates message tracking ids.
type IDGenerator func() string

// MessageHandler accepts contact-form messages and relays them by email.
type MessageHandler struct {
	relay                  *mailer.FormspreeRelay
	generateID             IDGenerator
	publishMessageReceived messaging.Publish[analytics.MessageReceivedEvent]
	logger                 *zap.Logger
}

// NewMessageHandler creates a new contact-form handler.
func NewMessageHandler(
	relay *mailer.FormspreeRelay,
	generateID IDGenerator,
	publishMessageReceived messaging.Publish[analytics.MessageReceivedEvent],
	logger *zap.Logger,
) *MessageHandler {
	return &MessageHandler{
		relay:                  relay,
		generateID:             generateID,
		publishMessageReceived: publishMessageReceived,
		logger:                 logger,
	}
}

// SendMessage validates the message and relays it. Relay failure does not
// fail the request: the message was accepted.
func (h *MessageHandler) SendMessage(ctx context.Context, req *SendMessageRequest) (*SendMessageResponse, error) {
	resp := &SendMessageResponse{}

	body := strings.TrimSpace(req.Body.Message)
	if body == "" {
		resp.Status = http.StatusBadRequest
		resp.Body.Error = "Message is required"

		return resp, nil
	}

	if len(req.Body.Message) > maxMessageLength {
		resp.Status = http.StatusBadRequest
		resp.Body.Error = "Message exceeds 500 characters"

		return resp, nil
	}

	email := req.Body.VisitorEmail
	if email == "" {
		email = mailer.DefaultSenderEmail
	}

	now := time.Now()

	h.relay.Send(ctx, mailer.Message{
		Email:     email,
		Body:      body,
		Timestamp: now,
	})

	meta := RequestMetaFromContext(ctx)
	event := &analytics.MessageReceivedEvent{
		MessageID:  h.generateID(),
		HasEmail:   req.Body.VisitorEmail != "",
		Length:     len(body),
		ReceivedAt: now,
		ClientIP:   meta.ClientIP,
		UserAgent:  meta.UserAgent,
	}

	if err := h.publishMessageReceived(event); err != nil {
		h.logger.Error("failed to publish message received event",
			zap.String("messageId", event.MessageID),
			zap.Error(err),
		)
	}

	resp.Status = http.StatusOK
	resp.Body.Success = true
	resp.Body.Message = "Message received"

	return resp, nil
}
