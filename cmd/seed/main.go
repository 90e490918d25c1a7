package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/blazeos/blaze-bridge/internal/config"
	"github.com/blazeos/blaze-bridge/internal/db/gormdb"
	"github.com/blazeos/blaze-bridge/internal/domain/conversation"
	"github.com/blazeos/blaze-bridge/internal/domain/message"
	convRepo "github.com/blazeos/blaze-bridge/internal/repository/gorm/conversation"
	mesgRepo "github.com/blazeos/blaze-bridge/internal/repository/gorm/message"
	outbRepo "github.com/blazeos/blaze-bridge/internal/repository/gorm/outbox"
)

// Demo contacts for a fresh dashboard. Phones are already canonical
// (ZA country code) so they match what the webhook would produce.
var contacts = []struct {
	name  string
	first string
}{
	{"Thandi Mokoena", "Hi! Do you still have the braai packs special?"},
	{"Sipho Dlamini", "What time do you open on Saturdays?"},
	{"Ayesha Patel", "Please send me the price list"},
	{"Johan van der Merwe", "Following up on my order from last week"},
	{"Lerato Nkosi", "Can I collect tomorrow morning?"},
}

func main() {
	ctx := context.Background()

	// Load application configuration (DB, Redis, etc.) from env/.env.
	cfg := config.New()

	// Open a Postgres connection through our GORM adapter.
	gormAdapter, err := gormdb.New(cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("[Seed] Failed to connect to database: %v", err)
	}

	log.Printf("[Seed] Connected to database %q", cfg.DB.Name)

	if err := gormAdapter.Migrate(
		&convRepo.ConversationModel{},
		&mesgRepo.MessageModel{},
		&outbRepo.ItemModel{},
	); err != nil {
		log.Fatalf("[Seed] AutoMigrate failed: %v", err)
	}
	log.Println("[Seed] Tables are up to date (AutoMigrate completed).")

	convs := convRepo.NewRepository(gormAdapter)
	msgs := mesgRepo.NewRepository(gormAdapter)

	log.Printf("[Seed] Inserting %d demo conversations...", len(contacts))

	for i, c := range contacts {
		phone := randomPhone()

		// Go through the domain constructors so unread counters,
		// previews and statuses come out the way the webhook path
		// would produce them.
		convo, err := conversation.New(phone, c.name, c.first, false, "")
		if err != nil {
			log.Fatalf("[Seed] Failed to build conversation #%d: %v", i+1, err)
		}
		if err := convs.Save(ctx, convo); err != nil {
			log.Fatalf("[Seed] Failed to save conversation #%d: %v", i+1, err)
		}

		msg, err := message.NewIncoming(convo.ID, phone, c.first, "", "", "", c.name, convo.CreatedAt)
		if err != nil {
			log.Fatalf("[Seed] Failed to build message #%d: %v", i+1, err)
		}
		if err := msgs.Save(ctx, msg); err != nil {
			log.Fatalf("[Seed] Failed to save message #%d: %v", i+1, err)
		}

		log.Printf("[Seed] Created conversation #%d: id=%s phone=%s name=%q",
			i+1, convo.ID.String(), phone, c.name)
	}

	log.Printf("[Seed] Done. Inserted %d conversations with one message each.", len(contacts))
}

// randomPhone generates a canonical South African mobile number.
// Example output: 27821234567
func randomPhone() string {
	n := rand.Intn(90000000) + 10000000 // 8 digits
	return fmt.Sprintf("278%d", n)
}
