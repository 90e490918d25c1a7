package memory

import (
	"context"
	"sync"

	"github.com/blazeos/blaze-bridge/internal/domain/outbox"
	"github.com/google/uuid"
)

// OutboxRepo is a mutex-guarded in-memory outbox queue. Pending order
// is insertion order.
type OutboxRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*outbox.Item
	order []uuid.UUID
}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{items: make(map[uuid.UUID]*outbox.Item)}
}

func (r *OutboxRepo) Save(ctx context.Context, i *outbox.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *i
	r.items[i.ID] = &cp
	r.order = append(r.order, i.ID)
	return nil
}

func (r *OutboxRepo) GetByID(ctx context.Context, id uuid.UUID) (*outbox.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.items[id]
	if !ok {
		return nil, outbox.ErrNotFound
	}
	cp := *i
	return &cp, nil
}

func (r *OutboxRepo) ListPending(ctx context.Context) ([]*outbox.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*outbox.Item
	for _, id := range r.order {
		if i := r.items[id]; i.Status == outbox.StatusPending {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *OutboxRepo) Update(ctx context.Context, i *outbox.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[i.ID]; !ok {
		return outbox.ErrNotFound
	}
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

var _ outbox.Repository = (*OutboxRepo)(nil)
