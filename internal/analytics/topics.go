package analytics

// Topics carrying analytics events.
const (
	TopicLinkCreated     = "link.created"
	TopicMessageReceived = "message.received"
)
