package message

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewIncoming_Defaults(t *testing.T) {
	t.Parallel()

	convID := uuid.New()

	m, err := NewIncoming(convID, "27825551234", "Hi", "", "", "", "Lerato", time.Time{})
	if err != nil {
		t.Fatalf("NewIncoming() error: %v", err)
	}

	if m.Direction != DirectionIncoming {
		t.Fatalf("expected direction %q, got %q", DirectionIncoming, m.Direction)
	}
	if m.Status != StatusReceived {
		t.Fatalf("expected status %q, got %q", StatusReceived, m.Status)
	}
	if m.Type != DefaultType {
		t.Fatalf("expected default type %q, got %q", DefaultType, m.Type)
	}
	if m.MessageID == "" {
		t.Fatalf("expected a generated external message id")
	}
	if m.Timestamp.IsZero() {
		t.Fatalf("expected a defaulted timestamp")
	}
}

func TestNewIncoming_PreservesExternalID(t *testing.T) {
	t.Parallel()

	m, err := NewIncoming(uuid.New(), "27825551234", "Hi", "text", "", "wa_msg_123", "Lerato", time.Now())
	if err != nil {
		t.Fatalf("NewIncoming() error: %v", err)
	}
	if m.MessageID != "wa_msg_123" {
		t.Fatalf("expected external id to be preserved, got %q", m.MessageID)
	}
}

func TestNewOutgoing_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewOutgoing(uuid.Nil, "", "hello", "", "Blaze"); !errors.Is(err, ErrEmptyPhone) {
		t.Fatalf("expected ErrEmptyPhone, got %v", err)
	}
	if _, err := NewOutgoing(uuid.Nil, "27825551234", "   ", "", "Blaze"); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("expected ErrEmptyBody, got %v", err)
	}

	m, err := NewOutgoing(uuid.Nil, "27825551234", "We'll reply soon", "", "Blaze")
	if err != nil {
		t.Fatalf("NewOutgoing() error: %v", err)
	}
	if m.Status != StatusQueued {
		t.Fatalf("expected status %q, got %q", StatusQueued, m.Status)
	}
}

func TestAdvance_ForwardOnly(t *testing.T) {
	t.Parallel()

	m, err := NewOutgoing(uuid.Nil, "27825551234", "hello", "", "Blaze")
	if err != nil {
		t.Fatalf("NewOutgoing() error: %v", err)
	}

	if err := m.Advance(StatusSent); err != nil {
		t.Fatalf("queued -> sent should be allowed: %v", err)
	}
	if err := m.Advance(StatusQueued); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("sent -> queued should be rejected, got %v", err)
	}
	if err := m.Advance(StatusSent); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("sent -> sent should be rejected, got %v", err)
	}
	if err := m.Advance(StatusDelivered); err != nil {
		t.Fatalf("sent -> delivered should be allowed: %v", err)
	}
	if m.Status != StatusDelivered {
		t.Fatalf("expected status %q, got %q", StatusDelivered, m.Status)
	}
}

func TestAdvance_IncomingIsTerminal(t *testing.T) {
	t.Parallel()

	m, err := NewIncoming(uuid.New(), "27825551234", "Hi", "text", "", "", "Lerato", time.Now())
	if err != nil {
		t.Fatalf("NewIncoming() error: %v", err)
	}
	if err := m.Advance(StatusSent); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("incoming messages must not advance, got %v", err)
	}
	if m.Status != StatusReceived {
		t.Fatalf("status changed on rejected transition: %q", m.Status)
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	m, _ := NewIncoming(uuid.New(), "27825551234", "", "image", "https://cdn/img.jpg", "", "Lerato", time.Now())
	if got := m.Preview(); got != "[image]" {
		t.Fatalf("expected media preview marker, got %q", got)
	}

	m2, _ := NewIncoming(uuid.New(), "27825551234", "Hi there", "text", "", "", "Lerato", time.Now())
	if got := m2.Preview(); got != "Hi there" {
		t.Fatalf("expected body preview, got %q", got)
	}
}
