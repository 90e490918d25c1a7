// Package memory provides in-memory repositories. They back the service
// when Postgres is unreachable at startup (reduced durability, kept
// available) and double as test fixtures.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/blazeos/blaze-bridge/internal/domain/conversation"
	"github.com/google/uuid"
)

// ConversationRepo is a mutex-guarded in-memory conversation ledger.
type ConversationRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*conversation.Conversation
}

func NewConversationRepo() *ConversationRepo {
	return &ConversationRepo{items: make(map[uuid.UUID]*conversation.Conversation)}
}

func (r *ConversationRepo) Save(ctx context.Context, c *conversation.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *ConversationRepo) GetByID(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, conversation.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *ConversationRepo) GetByPhone(ctx context.Context, phone string) (*conversation.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		if c.Phone == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, conversation.ErrNotFound
}

func (r *ConversationRepo) List(ctx context.Context) ([]*conversation.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*conversation.Conversation, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}

	// Newest first; conversations without messages sort last.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastMessageAt, out[j].LastMessageAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	return out, nil
}

func (r *ConversationRepo) Update(ctx context.Context, c *conversation.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.ID]; !ok {
		return conversation.ErrNotFound
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *ConversationRepo) Stats(ctx context.Context) (total, active, unread int64, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		total++
		if c.Status == conversation.StatusActive {
			active++
		}
		unread += int64(c.UnreadCount)
	}
	return total, active, unread, nil
}

var _ conversation.Repository = (*ConversationRepo)(nil)
