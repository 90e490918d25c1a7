// Package request holds the inbound JSON shapes of the HTTP API.
package request

import "time"

// InboundMessage is the webhook body the gateway posts for each
// incoming message. Gateway versions disagree on field names, so every
// logical field carries an ordered alias list; Resolve* methods pick
// the first non-empty value.
type InboundMessage struct {
	// sender phone: from > sender > phone
	From   string `json:"from"`
	Sender string `json:"sender"`
	Phone  string `json:"phone"`

	// display name: fromName > pushName > name
	FromName string `json:"fromName"`
	PushName string `json:"pushName"`
	Name     string `json:"name"`

	// body: body > text > message
	Body    string `json:"body"`
	Text    string `json:"text"`
	Message string `json:"message"`

	// external id: messageId > id
	MessageID string `json:"messageId"`
	ID        string `json:"id"`

	// media link: mediaUrl > media
	MediaURL string `json:"mediaUrl"`
	Media    string `json:"media"`

	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	IsGroup   bool   `json:"isGroup"`
	GroupName string `json:"groupName"`
}

// firstNonEmpty resolves an ordered alias list.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// SenderPhone resolves the raw (not yet normalized) sender identifier.
func (m InboundMessage) SenderPhone() string {
	return firstNonEmpty(m.From, m.Sender, m.Phone)
}

// DisplayName resolves the sender's display name; empty if no alias is set.
func (m InboundMessage) DisplayName() string {
	return firstNonEmpty(m.FromName, m.PushName, m.Name)
}

// MessageBody resolves the message text; empty for media-only messages.
func (m InboundMessage) MessageBody() string {
	return firstNonEmpty(m.Body, m.Text, m.Message)
}

// ExternalID resolves the gateway's message id; empty when the gateway
// did not supply one.
func (m InboundMessage) ExternalID() string {
	return firstNonEmpty(m.MessageID, m.ID)
}

// MediaLink resolves the media URL for non-text messages.
func (m InboundMessage) MediaLink() string {
	return firstNonEmpty(m.MediaURL, m.Media)
}

// ParsedTimestamp parses the gateway timestamp; the zero time signals
// "use now" to the caller.
func (m InboundMessage) ParsedTimestamp() time.Time {
	if m.Timestamp == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, m.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// SendMessage is the dashboard's send body. Either ConversationID or
// Phone must resolve to a target.
type SendMessage struct {
	ConversationID string `json:"conversationId"`
	Phone          string `json:"phone"`
	Body           string `json:"body"`
	Type           string `json:"type"`
}

// UpdateConversation is the dashboard's partial-update body. Nil fields
// are left untouched.
type UpdateConversation struct {
	Name   *string   `json:"name"`
	Status *string   `json:"status"`
	Labels *[]string `json:"labels"`
	Notes  *string   `json:"notes"`
}

// DispatcherControl starts or stops the in-process outbox dispatcher.
type DispatcherControl struct {
	// Action controls the dispatcher. Allowed values:
	// - "start": begin polling the outbox
	// - "stop":  stop polling
	Action string `json:"action"`
}
