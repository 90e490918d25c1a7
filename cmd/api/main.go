package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blazeos/blaze-bridge/internal/cache"
	"github.com/blazeos/blaze-bridge/internal/cache/redis"
	"github.com/blazeos/blaze-bridge/internal/config"
	"github.com/blazeos/blaze-bridge/internal/db/gormdb"
	"github.com/blazeos/blaze-bridge/internal/domain/conversation"
	"github.com/blazeos/blaze-bridge/internal/domain/message"
	"github.com/blazeos/blaze-bridge/internal/domain/outbox"
	"github.com/blazeos/blaze-bridge/internal/events"
	"github.com/blazeos/blaze-bridge/internal/gateway"
	"github.com/blazeos/blaze-bridge/internal/handler"
	convRepo "github.com/blazeos/blaze-bridge/internal/repository/gorm/conversation"
	mesgRepo "github.com/blazeos/blaze-bridge/internal/repository/gorm/message"
	outbRepo "github.com/blazeos/blaze-bridge/internal/repository/gorm/outbox"
	"github.com/blazeos/blaze-bridge/internal/repository/memory"
	routes "github.com/blazeos/blaze-bridge/internal/router"
	"github.com/blazeos/blaze-bridge/internal/scheduler"
	"github.com/blazeos/blaze-bridge/internal/server"
	"github.com/blazeos/blaze-bridge/internal/service"
)

func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg := config.New()

	// Init cache. The bridge runs without it: dedupe becomes
	// best-effort-off, which the protocol tolerates.
	var dedupeCache cache.Cache
	redisCache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(rootCtx); err != nil {
		log.Printf("[Main] Redis unreachable, running without dedupe index: %v", err)
	} else {
		dedupeCache = redisCache
	}

	// Init repositories. Postgres is preferred; when it is unreachable
	// the bridge falls back to in-memory stores so the webhook keeps
	// accepting messages. Availability over durability.
	var (
		convs conversation.Repository
		msgs  message.Repository
		queue outbox.Repository
	)

	db, err := gormdb.New(cfg.PostgresDSN())
	if err == nil {
		err = db.Migrate(
			&convRepo.ConversationModel{},
			&mesgRepo.MessageModel{},
			&outbRepo.ItemModel{},
		)
	}
	if err != nil {
		log.Printf("[Main] WARNING: Postgres unavailable, using in-memory stores (state is lost on restart): %v", err)
		convs = memory.NewConversationRepo()
		msgs = memory.NewMessageRepo()
		queue = memory.NewOutboxRepo()
	} else {
		convs = convRepo.NewRepository(db)
		msgs = mesgRepo.NewRepository(db)
		queue = outbRepo.NewRepository(db)
	}

	// Init gateway client (only needed by the in-process dispatcher;
	// an external gateway can poll the outbox endpoints instead).
	var gw gateway.Client
	if cfg.Gateway.URL != "" {
		gw = gateway.NewWebhookClient(cfg.Gateway.URL, cfg.Gateway.APIKey)
	}

	// Init Telegram operator relay.
	var notifier gateway.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		notifier = gateway.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	}

	// Init websocket event hub.
	hub := events.NewHub()

	// Bridge core.
	bridge := service.NewBridgeService(convs, msgs, queue, hub, service.Config{
		Gateway:        gw,
		Notifier:       notifier,
		Cache:          dedupeCache,
		MaxWorkers:     cfg.Outbox.MaxWorkers,
		PerItemTimeout: cfg.Outbox.PerItemTimeout,
	})

	// Dispatcher scheduler.
	dispatcher := scheduler.New(
		bridge,
		cfg.Dispatcher.Interval,
		cfg.Dispatcher.BatchTimeout,
	)

	// HTTP dependencies & server wiring.

	// Handlers
	homeHandler := handler.NewHomeHandler()
	webhookHandler := handler.NewWebhookHandler(bridge)
	whatsAppHandler := handler.NewWhatsAppHandler(bridge, dispatcher)

	// Init route dependencies
	deps := routes.AppDeps{
		Home:     homeHandler,
		Webhook:  webhookHandler,
		WhatsApp: whatsAppHandler,
		Events:   hub,
	}

	// Init Server
	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the HTTP server in a separate goroutine so we can listen for signals.
	go func() {
		log.Printf("HTTP server listening on %s", addr)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// The dispatcher only runs when explicitly enabled and a gateway is
	// configured; it can also be started later via the control endpoint.
	if cfg.Dispatcher.Enabled {
		if gw == nil {
			log.Println("[Main] DISPATCHER_ENABLED set but GATEWAY_URL missing, dispatcher stays idle")
		} else if err := dispatcher.Start(); err != nil {
			log.Fatalf("Dispatcher error: %v", err)
		} else {
			log.Println("[Main] Dispatcher started.")
		}
	}

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	log.Println("[Main] Shutdown signal received, starting graceful shutdown...")

	// Give components some time to shut down cleanly.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop the dispatcher (waits for the in-flight batch to finish).
	if dispatcher.IsRunning() {
		log.Println("[Main] Stopping dispatcher...")
		if err := dispatcher.Stop(); err != nil {
			log.Printf("[Main] Dispatcher stop failed: %v", err)
		} else {
			log.Println("[Main] Dispatcher stopped.")
		}
	}

	// Gracefully shut down the HTTP server.
	log.Println("[Main] Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] HTTP server graceful shutdown failed: %v", err)
	} else {
		log.Println("[Main] HTTP server stopped.")
	}

	log.Println("[Main] Shutdown complete.")
}
