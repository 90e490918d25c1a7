package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/blazeos/blaze-bridge/internal/cache"
	"github.com/blazeos/blaze-bridge/internal/domain/conversation"
	"github.com/blazeos/blaze-bridge/internal/domain/message"
	"github.com/blazeos/blaze-bridge/internal/domain/outbox"
	"github.com/blazeos/blaze-bridge/internal/events"
	"github.com/blazeos/blaze-bridge/internal/phone"
	"github.com/google/uuid"
)

// Send creates the outgoing message and its outbox item, refreshes the
// conversation preview and broadcasts. Message and outbox item are two
// writes with no transaction boundary between them; a crash in between
// leaves a queued message that never reaches the gateway.
func (s *bridgeService) Send(ctx context.Context, req SendMessage) (*message.Message, error) {
	target := req.Phone
	if req.ConversationID != uuid.Nil {
		c, err := s.convs.GetByID(ctx, req.ConversationID)
		switch {
		case err == nil:
			target = c.Phone
		case errors.Is(err, conversation.ErrNotFound):
			// Fall back to the raw phone, as the original did.
		default:
			return nil, fmt.Errorf("resolve conversation %s: %w", req.ConversationID, err)
		}
	}

	canonical, err := phone.Normalize(target)
	if err != nil {
		return nil, fmt.Errorf("send target: %w", err)
	}

	unlock := s.locks.lock("phone:" + canonical)
	defer unlock()

	// The pre-lock read only resolved the target phone. Re-read the
	// conversation under the lock so TouchOutbound cannot write back a
	// copy an inbound delivery has since moved past.
	var convo *conversation.Conversation
	if req.ConversationID != uuid.Nil {
		if c, err := s.convs.GetByID(ctx, req.ConversationID); err == nil {
			convo = c
		}
	}

	convID := uuid.Nil
	if convo != nil {
		convID = convo.ID
	}

	msg, err := message.NewOutgoing(convID, canonical, req.Body, req.Type, s.senderName)
	if err != nil {
		return nil, err
	}
	if err := s.msgs.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("append outgoing message: %w", err)
	}

	item := outbox.NewItem(msg.ID, canonical, msg.Body, msg.Type)
	if err := s.pending.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("enqueue outbox item: %w", err)
	}

	if convo != nil {
		convo.TouchOutbound(msg.Body)
		if err := s.convs.Update(ctx, convo); err != nil {
			log.Printf("[Bridge] Failed to touch conversation %s: %v", convo.ID, err)
		}
	}

	s.pub.Publish(events.New(events.TypeMessageReceived, map[string]any{
		"conversation": convo,
		"message":      msg,
	}))

	log.Printf("[Bridge] OUT queued %s: %s", canonical, truncate(msg.Body, 60))

	return msg, nil
}

// AcknowledgeOutbox transitions one item pending -> sent and advances
// the referenced message. Serialized per item id so a racing double-ack
// cannot publish two status events for one delivery.
func (s *bridgeService) AcknowledgeOutbox(ctx context.Context, id uuid.UUID) (*outbox.Item, error) {
	unlock := s.locks.lock("outbox:" + id.String())
	defer unlock()

	item, err := s.pending.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !item.Acknowledge() {
		// Already sent: idempotent no-op, no second event.
		return item, nil
	}

	if err := s.pending.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("acknowledge outbox item %s: %w", id, err)
	}

	// The message may have been removed since; that is tolerated, the
	// outbox is the authoritative driver of this transition.
	if msg, err := s.msgs.GetByID(ctx, item.MessageID); err == nil {
		if err := msg.Advance(message.StatusSent); err == nil {
			if err := s.msgs.UpdateStatus(ctx, msg); err != nil {
				log.Printf("[Bridge] Failed to mark message %s sent: %v", msg.ID, err)
			}
		}
	}

	if s.cache != nil && item.SentAt != nil {
		key := cache.SentItems.Key(item.ID.String())
		if err := s.cache.Set(ctx, key, item.SentAt.Format(time.RFC3339), s.dedupeTTL); err != nil {
			log.Printf("[Bridge] Failed to cache sent timestamp for %s: %v", item.ID, err)
		}
	}

	s.pub.Publish(events.New(events.TypeStatusChanged, map[string]any{
		"messageId": item.MessageID.String(),
		"status":    string(message.StatusSent),
	}))

	return item, nil
}
