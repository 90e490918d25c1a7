package cache

import "fmt"

type Prefix string

const (
	// InboundDedupe indexes gateway message ids already accepted by the
	// webhook, so duplicate deliveries can be recognized.
	InboundDedupe Prefix = "inbound_dedupe"

	// SentItems records when an outbox item was acknowledged.
	SentItems Prefix = "sent_items"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
