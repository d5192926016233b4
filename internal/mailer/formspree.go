// Package mailer relays contact-form messages through Formspree. Relay
// failures are logged and swallowed: email delivery is not critical to
// accepting a message.
package mailer

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultSenderEmail is used when the visitor leaves no reply address.
const DefaultSenderEmail = "noreply@cosmic-hub.com"

// Message is one contact-form submission.
type Message struct {
	Email     string
	Body      string
	Timestamp time.Time
}

// FormspreeRelay submits messages to a Formspree form endpoint.
type FormspreeRelay struct {
	endpoint string
	http     *http.Client
	logger   *zap.Logger
}

// NewFormspreeRelay creates a relay for the given form endpoint.
func NewFormspreeRelay(endpoint string, httpClient *http.Client, logger *zap.Logger) *FormspreeRelay {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &FormspreeRelay{
		endpoint: endpoint,
		http:     httpClient,
		logger:   logger,
	}
}

// Send submits the message as a form-encoded POST. A non-2xx status or a
// transport failure is logged but not returned: the caller already accepted
// the message.
func (r *FormspreeRelay) Send(ctx context.Context, msg Message) {
	form := url.Values{}
	form.Set("email", msg.Email)
	form.Set("message", msg.Body)
	form.Set("timestamp", msg.Timestamp.UTC().Format(time.RFC3339))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		r.logger.Error("building formspree request", zap.Error(err))

		return
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		r.logger.Error("email service error", zap.Error(err))

		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Formspree might rate limit; the submission still succeeded for the caller.
		r.logger.Warn("formspree submission status", zap.Int("status", resp.StatusCode))
	}
}
