package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/blazeos/blaze-bridge/internal/cache"
	"github.com/blazeos/blaze-bridge/internal/domain/conversation"
	"github.com/blazeos/blaze-bridge/internal/domain/message"
	"github.com/blazeos/blaze-bridge/internal/events"
	"github.com/blazeos/blaze-bridge/internal/phone"
	"github.com/google/uuid"
)

// notifyPreviewLen bounds the body excerpt in operator notifications.
const notifyPreviewLen = 50

// HandleInbound processes one webhook delivery from the gateway:
// normalize the sender, upsert the conversation, append the message and
// broadcast. Mutations for one phone are serialized so concurrent
// deliveries from the same sender cannot lose unread counts.
func (s *bridgeService) HandleInbound(ctx context.Context, in InboundMessage) (*InboundResult, error) {
	canonical, err := phone.Normalize(in.Phone)
	if err != nil {
		return nil, fmt.Errorf("inbound sender: %w", err)
	}

	// Best-effort dedupe on the gateway's message id. A cache failure
	// never blocks the webhook: without the index we simply accept the
	// duplicate, which is what the protocol tolerates anyway.
	dedupeKey := ""
	if s.cache != nil && in.ExternalID != "" {
		dedupeKey = cache.InboundDedupe.Key(in.ExternalID)

		stored, nxErr := s.cache.SetNX(ctx, dedupeKey, "pending", s.dedupeTTL)
		if nxErr != nil {
			log.Printf("[Bridge] Dedupe index unavailable: %v", nxErr)
			dedupeKey = ""
		} else if !stored {
			if res := s.replayInbound(ctx, dedupeKey); res != nil {
				log.Printf("[Bridge] Duplicate delivery for gateway id %s", in.ExternalID)
				return res, nil
			}
			// Reservation exists but carries no ids yet (either a
			// concurrent first delivery or a stale entry): process
			// normally, at-least-once beats dropping a message.
		}
	}

	unlock := s.locks.lock("phone:" + canonical)
	defer unlock()

	name := in.Name
	if name == "" {
		name = canonical
	}
	preview := in.Body
	if preview == "" {
		msgType := in.Type
		if msgType == "" {
			msgType = message.DefaultType
		}
		preview = "[" + msgType + "]"
	}

	convo, err := s.convs.GetByPhone(ctx, canonical)
	switch {
	case err == nil:
		convo.ApplyInbound(in.Name, preview)
		if err := s.convs.Update(ctx, convo); err != nil {
			return nil, fmt.Errorf("update conversation %s: %w", convo.ID, err)
		}
	case errors.Is(err, conversation.ErrNotFound):
		convo, err = conversation.New(canonical, name, preview, in.IsGroup, in.GroupName)
		if err != nil {
			return nil, err
		}
		if err := s.convs.Save(ctx, convo); err != nil {
			return nil, fmt.Errorf("create conversation for %s: %w", canonical, err)
		}
	default:
		return nil, fmt.Errorf("lookup conversation for %s: %w", canonical, err)
	}

	msg, err := message.NewIncoming(convo.ID, canonical, in.Body, in.Type, in.MediaURL, in.ExternalID, name, in.Timestamp)
	if err != nil {
		return nil, err
	}
	if err := s.msgs.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("append inbound message: %w", err)
	}

	if dedupeKey != "" {
		value := msg.ID.String() + " " + convo.ID.String()
		if err := s.cache.Set(ctx, dedupeKey, value, s.dedupeTTL); err != nil {
			log.Printf("[Bridge] Failed to record dedupe entry: %v", err)
		}
	}

	s.pub.Publish(events.New(events.TypeMessageReceived, map[string]any{
		"conversation": convo,
		"message":      msg,
	}))

	excerpt := truncate(in.Body, notifyPreviewLen)
	s.pub.Publish(events.New(events.TypeNotification,
		fmt.Sprintf("New WhatsApp from %s: %s", name, excerpt)))

	s.notifyOperator(fmt.Sprintf("WhatsApp from %s (%s): %s", name, canonical, excerpt))

	log.Printf("[Bridge] IN %s (%s): %s", name, canonical, truncate(in.Body, 60))

	return &InboundResult{Conversation: convo, Message: msg}, nil
}

// replayInbound resolves a previously accepted delivery from the dedupe
// index. Returns nil when the stored entry carries no ids.
func (s *bridgeService) replayInbound(ctx context.Context, key string) *InboundResult {
	v, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	parts := strings.Fields(v)
	if len(parts) != 2 {
		return nil
	}
	msgID, err := uuid.Parse(parts[0])
	if err != nil {
		return nil
	}
	convID, err := uuid.Parse(parts[1])
	if err != nil {
		return nil
	}

	msg, err := s.msgs.GetByID(ctx, msgID)
	if err != nil {
		return nil
	}
	convo, err := s.convs.GetByID(ctx, convID)
	if err != nil {
		return nil
	}

	return &InboundResult{Conversation: convo, Message: msg, Duplicate: true}
}

// notifyOperator relays a short notification off the request path. A
// dead relay is logged and forgotten; local state is already committed.
func (s *bridgeService) notifyOperator(text string) {
	if s.notifier == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.notifier.Notify(ctx, text); err != nil {
			log.Printf("[Bridge] Operator notify failed: %v", err)
		}
	}()
}

// truncate keeps the first n characters, never splitting a rune.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
