// Package events carries live notifications from the bridge to any
// subscribed dashboard client.
package events

import "time"

type Type string

const (
	// TypeMessageReceived carries a conversation+message pair whenever a
	// message lands in the log, inbound or outbound.
	TypeMessageReceived Type = "message-received"

	// TypeConversationUpdated carries a conversation after a dashboard
	// edit or read-mark.
	TypeConversationUpdated Type = "conversation-updated"

	// TypeStatusChanged carries a message id and its new status after a
	// gateway acknowledgment.
	TypeStatusChanged Type = "status-changed"

	// TypeNotification carries a short human-readable string for the
	// dashboard's toast area.
	TypeNotification Type = "notification"
)

// Event is the wire format pushed to subscribers.
type Event struct {
	Type      Type      `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// New builds an event stamped with the current time.
func New(t Type, data any) Event {
	return Event{Type: t, Data: data, Timestamp: time.Now()}
}

// Publisher is the port the service publishes through. Publishing is
// fire-and-forget: a subscriber that cannot keep up is dropped, never
// waited on.
type Publisher interface {
	Publish(e Event)
}

// NopPublisher discards every event. Used when no hub is wired (tests,
// headless runs).
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}

var _ Publisher = NopPublisher{}
