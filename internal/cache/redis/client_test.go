package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	return New(mr.Addr(), "", 0), mr
}

func TestClient_SetGet(t *testing.T) {
	t.Parallel()

	c, mr := newTestClient(t)
	ctx := context.Background()

	if err := c.Set(ctx, "sent_items:abc", "2026-02-15T10:30:00Z", 10*time.Second); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	if !mr.Exists("sent_items:abc") {
		t.Fatalf("expected key to exist")
	}
	if ttl := mr.TTL("sent_items:abc"); ttl <= 0 {
		t.Fatalf("expected TTL to be set, got %v", ttl)
	}

	got, err := c.Get(ctx, "sent_items:abc")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != "2026-02-15T10:30:00Z" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestClient_SetNX_DedupeSemantics(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)
	ctx := context.Background()

	stored, err := c.SetNX(ctx, "inbound_dedupe:wa_msg_123", "x", time.Minute)
	if err != nil {
		t.Fatalf("SetNX() error: %v", err)
	}
	if !stored {
		t.Fatalf("first SetNX must store")
	}

	stored, err = c.SetNX(ctx, "inbound_dedupe:wa_msg_123", "y", time.Minute)
	if err != nil {
		t.Fatalf("SetNX() error: %v", err)
	}
	if stored {
		t.Fatalf("second SetNX for the same key must not store")
	}

	// The original value survives.
	got, err := c.Get(ctx, "inbound_dedupe:wa_msg_123")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != "x" {
		t.Fatalf("expected first value to win, got %q", got)
	}
}

func TestClient_Del(t *testing.T) {
	t.Parallel()

	c, mr := newTestClient(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("Del() error: %v", err)
	}
	if mr.Exists("k") {
		t.Fatalf("expected key to be deleted")
	}
	// Deleting a missing key is a no-op.
	if err := c.Del(ctx, "missing"); err != nil {
		t.Fatalf("Del(missing) error: %v", err)
	}
}
