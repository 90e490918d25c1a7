package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/blazeos/blaze-bridge/internal/domain/message"
	"github.com/google/uuid"
)

// MessageRepo is a mutex-guarded in-memory message log.
type MessageRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*message.Message
	order []uuid.UUID // insertion order, tie-breaker for equal timestamps
}

func NewMessageRepo() *MessageRepo {
	return &MessageRepo{items: make(map[uuid.UUID]*message.Message)}
}

func (r *MessageRepo) Save(ctx context.Context, m *message.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *m
	r.items[m.ID] = &cp
	r.order = append(r.order, m.ID)
	return nil
}

func (r *MessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*message.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	if !ok {
		return nil, message.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *MessageRepo) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*message.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*message.Message
	for _, id := range r.order {
		m := r.items[id]
		if m.ConversationID == conversationID {
			cp := *m
			out = append(out, &cp)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ta, tb := a.Timestamp, b.Timestamp
		if ta.IsZero() {
			ta = a.CreatedAt
		}
		if tb.IsZero() {
			tb = b.CreatedAt
		}
		return ta.Before(tb)
	})

	return out, nil
}

func (r *MessageRepo) UpdateStatus(ctx context.Context, m *message.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.items[m.ID]
	if !ok {
		// Tolerated: the outbox drives this transition and may race
		// with other state changes. Mirrors the gorm repo, where an
		// UPDATE on a missing row affects nothing and returns nil.
		return nil
	}
	cur.Status = m.Status
	return nil
}

func (r *MessageRepo) CountByDirection(ctx context.Context) (incoming, outgoing int64, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.items {
		switch m.Direction {
		case message.DirectionIncoming:
			incoming++
		case message.DirectionOutgoing:
			outgoing++
		}
	}
	return incoming, outgoing, nil
}

var _ message.Repository = (*MessageRepo)(nil)
