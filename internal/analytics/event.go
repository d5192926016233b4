package analytics

import "time"

// LinkCreatedEvent represents an event emitted when a link is saved to the
// collection.
type LinkCreatedEvent struct {
	URL       string    `json:"url"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	ClientIP  string    `json:"clientIp"`
	UserAgent string    `json:"userAgent"`
}

// MessageReceivedEvent represents an event emitted when a contact-form
// message is accepted. The message body itself is never published.
type MessageReceivedEvent struct {
	MessageID  string    `json:"messageId"`
	HasEmail   bool      `json:"hasEmail"`
	Length     int       `json:"length"`
	ReceivedAt time.Time `json:"receivedAt"`
	ClientIP   string    `json:"clientIp"`
	UserAgent  string    `json:"userAgent"`
}
