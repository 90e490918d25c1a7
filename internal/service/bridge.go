// Package service implements the bridge protocol between the dashboard
// and the external messaging gateway: the inbound webhook path, the
// outbound send/outbox/ack cycle and the queries the dashboard needs.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/blazeos/blaze-bridge/internal/cache"
	"github.com/blazeos/blaze-bridge/internal/domain/conversation"
	"github.com/blazeos/blaze-bridge/internal/domain/message"
	"github.com/blazeos/blaze-bridge/internal/domain/outbox"
	"github.com/blazeos/blaze-bridge/internal/events"
	"github.com/blazeos/blaze-bridge/internal/gateway"
	"github.com/google/uuid"
)

// InboundMessage is the resolved (alias-free) form of a webhook payload.
type InboundMessage struct {
	Phone      string // raw sender identifier, normalized by the service
	Name       string
	Body       string
	Type       string
	MediaURL   string
	ExternalID string
	Timestamp  time.Time // zero means "use now"
	IsGroup    bool
	GroupName  string
}

// InboundResult reports what the webhook produced.
type InboundResult struct {
	Conversation *conversation.Conversation
	Message      *message.Message
	Duplicate    bool
}

// SendMessage is a dashboard-initiated send. Either ConversationID or
// Phone must resolve to a target.
type SendMessage struct {
	ConversationID uuid.UUID // uuid.Nil when sending by raw phone
	Phone          string
	Body           string
	Type           string
}

// Stats aggregates the counters behind the stats endpoint.
type Stats struct {
	TotalConversations  int64
	ActiveConversations int64
	TotalMessages       int64
	Incoming            int64
	Outgoing            int64
	UnreadCount         int64
}

// BridgeService is the application core wired into the HTTP layer and
// the dispatcher.
type BridgeService interface {
	// HandleInbound processes one gateway webhook delivery.
	HandleInbound(ctx context.Context, in InboundMessage) (*InboundResult, error)

	// Send queues one outbound message and its outbox item.
	Send(ctx context.Context, req SendMessage) (*message.Message, error)

	ListConversations(ctx context.Context) ([]*conversation.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error)
	UpdateConversation(ctx context.Context, id uuid.UUID, patch conversation.Patch) (*conversation.Conversation, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*message.Message, error)

	ListPendingOutbox(ctx context.Context) ([]*outbox.Item, error)

	// AcknowledgeOutbox records a gateway delivery. Acknowledging an
	// already-sent item is an idempotent no-op: no second transition,
	// no second status event.
	AcknowledgeOutbox(ctx context.Context, id uuid.UUID) (*outbox.Item, error)

	Stats(ctx context.Context) (Stats, error)

	// ProcessBatch delivers pending outbox items through the gateway
	// client. It is the scheduler's tick target.
	ProcessBatch(ctx context.Context) error
}

// Config carries the optional collaborators and tuning knobs.
type Config struct {
	Gateway  gateway.Client   // nil: delivery left to an external poller
	Notifier gateway.Notifier // nil: no operator relay
	Cache    cache.Cache      // nil: no dedupe index

	SenderName     string
	MaxWorkers     int
	PerItemTimeout time.Duration
	DedupeTTL      time.Duration
}

// DefaultSenderName labels dashboard-sent messages in chat history.
const DefaultSenderName = "Blaze Ignite"

type bridgeService struct {
	convs   conversation.Repository
	msgs    message.Repository
	pending outbox.Repository

	gw       gateway.Client
	notifier gateway.Notifier
	cache    cache.Cache
	pub      events.Publisher

	senderName     string
	maxWorkers     int
	perItemTimeout time.Duration
	dedupeTTL      time.Duration

	locks keyedMutex
}

// NewBridgeService creates the bridge core with the given repositories,
// event publisher and optional collaborators. Zero config values fall
// back to sane defaults.
func NewBridgeService(
	convs conversation.Repository,
	msgs message.Repository,
	pending outbox.Repository,
	pub events.Publisher,
	cfg Config,
) BridgeService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	if cfg.SenderName == "" {
		cfg.SenderName = DefaultSenderName
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	if cfg.PerItemTimeout <= 0 {
		cfg.PerItemTimeout = 5 * time.Second
	}
	if cfg.DedupeTTL <= 0 {
		cfg.DedupeTTL = 24 * time.Hour
	}

	return &bridgeService{
		convs:          convs,
		msgs:           msgs,
		pending:        pending,
		gw:             cfg.Gateway,
		notifier:       cfg.Notifier,
		cache:          cfg.Cache,
		pub:            pub,
		senderName:     cfg.SenderName,
		maxWorkers:     cfg.MaxWorkers,
		perItemTimeout: cfg.PerItemTimeout,
		dedupeTTL:      cfg.DedupeTTL,
		locks:          keyedMutex{locks: make(map[string]*sync.Mutex)},
	}
}

func (s *bridgeService) ListConversations(ctx context.Context) ([]*conversation.Conversation, error) {
	return s.convs.List(ctx)
}

func (s *bridgeService) GetConversation(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error) {
	return s.convs.GetByID(ctx, id)
}

func (s *bridgeService) UpdateConversation(ctx context.Context, id uuid.UUID, patch conversation.Patch) (*conversation.Conversation, error) {
	c, err := s.convs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Every conversation mutation serializes on the canonical phone,
	// the same key the inbound path takes before a conversation exists.
	// The first read only resolved the key; re-read under the lock.
	unlock := s.locks.lock("phone:" + c.Phone)
	defer unlock()

	c, err = s.convs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Apply(patch)
	if err := s.convs.Update(ctx, c); err != nil {
		return nil, err
	}

	s.pub.Publish(events.New(events.TypeConversationUpdated, c))
	return c, nil
}

func (s *bridgeService) MarkRead(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error) {
	c, err := s.convs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock("phone:" + c.Phone)
	defer unlock()

	c, err = s.convs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.MarkRead()
	if err := s.convs.Update(ctx, c); err != nil {
		return nil, err
	}

	s.pub.Publish(events.New(events.TypeConversationUpdated, c))
	return c, nil
}

func (s *bridgeService) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*message.Message, error) {
	return s.msgs.ListByConversation(ctx, conversationID)
}

func (s *bridgeService) ListPendingOutbox(ctx context.Context) ([]*outbox.Item, error) {
	return s.pending.ListPending(ctx)
}

func (s *bridgeService) Stats(ctx context.Context) (Stats, error) {
	total, active, unread, err := s.convs.Stats(ctx)
	if err != nil {
		return Stats{}, err
	}

	incoming, outgoing, err := s.msgs.CountByDirection(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		TotalConversations:  total,
		ActiveConversations: active,
		TotalMessages:       incoming + outgoing,
		Incoming:            incoming,
		Outgoing:            outgoing,
		UnreadCount:         unread,
	}, nil
}

// keyedMutex serializes read-modify-write cycles per key. Conversation
// mutations all key on the canonical phone ("phone:<canonical>"), no
// matter whether the caller arrived with a phone or a conversation id,
// so inbound, send and dashboard updates exclude each other on the same
// record; outbox acks key on the item id. Entries are never freed; the
// map is bounded by the number of distinct keys ever seen.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
