package request

import (
	"encoding/json"
	"testing"
	"time"
)

func TestInboundMessage_AliasOrder(t *testing.T) {
	t.Parallel()

	m := InboundMessage{
		Sender:   "27820000001",
		Phone:    "27820000002",
		PushName: "push",
		Name:     "plain",
		Text:     "text-body",
		Message:  "message-body",
		ID:       "fallback-id",
		Media:    "fallback-media",
	}

	if got := m.SenderPhone(); got != "27820000001" {
		t.Fatalf("expected sender alias to win, got %q", got)
	}
	if got := m.DisplayName(); got != "push" {
		t.Fatalf("expected pushName alias to win, got %q", got)
	}
	if got := m.MessageBody(); got != "text-body" {
		t.Fatalf("expected text alias to win, got %q", got)
	}
	if got := m.ExternalID(); got != "fallback-id" {
		t.Fatalf("expected id alias, got %q", got)
	}
	if got := m.MediaLink(); got != "fallback-media" {
		t.Fatalf("expected media alias, got %q", got)
	}

	// Primary names always win over fallbacks.
	m.From = "27820000000"
	m.FromName = "primary"
	m.Body = "body"
	m.MessageID = "primary-id"
	m.MediaURL = "primary-media"

	if got := m.SenderPhone(); got != "27820000000" {
		t.Fatalf("expected from to win, got %q", got)
	}
	if got := m.DisplayName(); got != "primary" {
		t.Fatalf("expected fromName to win, got %q", got)
	}
	if got := m.MessageBody(); got != "body" {
		t.Fatalf("expected body to win, got %q", got)
	}
	if got := m.ExternalID(); got != "primary-id" {
		t.Fatalf("expected messageId to win, got %q", got)
	}
	if got := m.MediaLink(); got != "primary-media" {
		t.Fatalf("expected mediaUrl to win, got %q", got)
	}
}

func TestInboundMessage_ParsedTimestamp(t *testing.T) {
	t.Parallel()

	var m InboundMessage
	if !m.ParsedTimestamp().IsZero() {
		t.Fatalf("missing timestamp must yield the zero time")
	}

	m.Timestamp = "not-a-time"
	if !m.ParsedTimestamp().IsZero() {
		t.Fatalf("unparseable timestamp must yield the zero time")
	}

	m.Timestamp = "2026-02-15T10:30:00Z"
	want := time.Date(2026, 2, 15, 10, 30, 0, 0, time.UTC)
	if got := m.ParsedTimestamp(); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestInboundMessage_DecodesGatewayPayload(t *testing.T) {
	t.Parallel()

	raw := `{"from":"0825551234","pushName":"Lerato","body":"Hi","type":"text","messageId":"wa_1","isGroup":false}`

	var m InboundMessage
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if m.SenderPhone() != "0825551234" {
		t.Fatalf("unexpected phone %q", m.SenderPhone())
	}
	if m.DisplayName() != "Lerato" {
		t.Fatalf("unexpected name %q", m.DisplayName())
	}
	if m.ExternalID() != "wa_1" {
		t.Fatalf("unexpected id %q", m.ExternalID())
	}
}
