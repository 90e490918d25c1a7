package service

import (
	"context"
	"log"
	"sync"

	"github.com/blazeos/blaze-bridge/internal/domain/outbox"
)

// ProcessBatch drains the pending outbox through the gateway. Each item
// is delivered with its own timeout; delivery failures leave the item
// pending for the next cycle. Safe to call with no gateway configured.
func (s *bridgeService) ProcessBatch(ctx context.Context) error {
	if s.gw == nil {
		log.Println("[Dispatcher] No gateway configured, skipping batch")
		return nil
	}

	items, err := s.pending.ListPending(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	workerCount := s.maxWorkers
	if len(items) < workerCount {
		workerCount = len(items)
	}

	log.Printf("[Dispatcher] Dispatching %d pending item(s) across %d worker(s)", len(items), workerCount)

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := offset; i < len(items); i += workerCount {
				s.deliver(ctx, items[i])
			}
		}(w)
	}
	wg.Wait()

	return nil
}

func (s *bridgeService) deliver(ctx context.Context, item *outbox.Item) {
	sendCtx, cancel := context.WithTimeout(ctx, s.perItemTimeout)
	defer cancel()

	raw, err := s.gw.Send(sendCtx, item.Phone, item.Body, item.Type)
	if err != nil {
		log.Printf("[Dispatcher] Delivery failed for %s (item %s): %v", item.Phone, item.ID, err)
		return
	}

	if _, err := s.AcknowledgeOutbox(ctx, item.ID); err != nil {
		log.Printf("[Dispatcher] Delivered but failed to acknowledge item %s: %v", item.ID, err)
		return
	}

	log.Printf("[Dispatcher] Delivered item %s to %s (%s)", item.ID, item.Phone, truncate(raw, 80))
}
