package conversation

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	if _, err := New("", "Lerato", "Hi", false, ""); !errors.Is(err, ErrEmptyPhone) {
		t.Fatalf("expected ErrEmptyPhone, got %v", err)
	}

	c, err := New("27825551234", "", "Hi", false, "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if c.Name != "27825551234" {
		t.Fatalf("expected phone as fallback name, got %q", c.Name)
	}
	if c.UnreadCount != 1 {
		t.Fatalf("expected the first inbound message to count as unread, got %d", c.UnreadCount)
	}
	if c.Status != StatusActive {
		t.Fatalf("expected status %q, got %q", StatusActive, c.Status)
	}
}

func TestApplyInbound(t *testing.T) {
	t.Parallel()

	c, _ := New("27825551234", "Lerato", "Hi", false, "")

	c.ApplyInbound("", "Still there?")
	if c.Name != "Lerato" {
		t.Fatalf("empty sender name must not overwrite, got %q", c.Name)
	}
	if c.UnreadCount != 2 {
		t.Fatalf("expected unread 2, got %d", c.UnreadCount)
	}
	if c.LastMessage != "Still there?" {
		t.Fatalf("expected preview update, got %q", c.LastMessage)
	}

	c.Status = StatusArchived
	c.ApplyInbound("Lerato M", "Hello again")
	if c.Status != StatusActive {
		t.Fatalf("inbound message must reactivate the conversation")
	}
	if c.Name != "Lerato M" {
		t.Fatalf("non-empty sender name should win, got %q", c.Name)
	}
}

func TestTouchOutbound_KeepsUnread(t *testing.T) {
	t.Parallel()

	c, _ := New("27825551234", "Lerato", "Hi", false, "")
	c.ApplyInbound("", "Second")

	c.TouchOutbound("We'll reply soon")
	if c.UnreadCount != 2 {
		t.Fatalf("outbound send must not touch unread, got %d", c.UnreadCount)
	}
	if c.LastMessage != "We'll reply soon" {
		t.Fatalf("expected preview update, got %q", c.LastMessage)
	}
}

func TestMarkRead(t *testing.T) {
	t.Parallel()

	c, _ := New("27825551234", "Lerato", "Hi", false, "")
	c.ApplyInbound("", "Second")
	c.MarkRead()
	if c.UnreadCount != 0 {
		t.Fatalf("expected unread 0 after read, got %d", c.UnreadCount)
	}
}

func TestApplyPatch(t *testing.T) {
	t.Parallel()

	c, _ := New("27825551234", "Lerato", "Hi", false, "")

	notes := "VIP customer"
	labels := []string{"hot-lead"}
	status := StatusArchived
	c.Apply(Patch{Notes: &notes, Labels: &labels, Status: &status})

	if c.Notes != notes {
		t.Fatalf("expected notes %q, got %q", notes, c.Notes)
	}
	if len(c.Labels) != 1 || c.Labels[0] != "hot-lead" {
		t.Fatalf("expected labels merged, got %v", c.Labels)
	}
	if c.Status != StatusArchived {
		t.Fatalf("expected status archived, got %q", c.Status)
	}

	// nil fields leave state alone
	c.Apply(Patch{})
	if c.Notes != notes || c.Status != StatusArchived {
		t.Fatalf("empty patch must not change anything")
	}
}
