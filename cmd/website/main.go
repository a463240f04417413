package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/we3pr0/AbundantLifeChurch/internal/app"
	"github.com/we3pr0/AbundantLifeChurch/internal/config"
	"github.com/we3pr0/AbundantLifeChurch/internal/logger"
	"github.com/we3pr0/AbundantLifeChurch/internal/store"
	"github.com/we3pr0/AbundantLifeChurch/internal/store/memory"
	"github.com/we3pr0/AbundantLifeChurch/internal/store/postgres"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic("Invalid configuration: " + err.Error())
	}

	log, err := logger.InitLogger(cfg.Logger)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	appTraceID := uuid.New().String()
	log = log.With(zap.String("app_trace_id", appTraceID))
	log.Info("Starting application")

	// The publishable key lives client-side; without it the card path is
	// disabled in the browser but the rest of the site keeps working.
	if cfg.Stripe.PublishableKey == "" {
		log.Warn("Stripe publishable key is missing; card payments are disabled")
	}

	var (
		eventStore        store.EventStore
		contactStore      store.ContactMessageStore
		donationStore     store.DonationStore
		webhookEventStore store.WebhookEventStore
	)

	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pg, err := postgres.NewStore(cfg.Database)
		if err != nil {
			log.Fatal("Failed to create store", zap.Error(err))
		}
		defer func() {
			if err := pg.Close(); err != nil {
				log.Error("Failed to close store", zap.Error(err))
			}
		}()
		eventStore = pg.EventStore()
		contactStore = pg.ContactMessageStore()
		donationStore = pg.DonationStore()
		webhookEventStore = pg.WebhookEventStore()
	default:
		log.Warn("Using ephemeral in-memory store; data is lost on restart")
		mem := memory.NewStore()
		eventStore = mem.EventStore()
		contactStore = mem.ContactMessageStore()
		donationStore = mem.DonationStore()
		webhookEventStore = mem.WebhookEventStore()
	}

	application := app.NewApp(cfg, eventStore, contactStore, donationStore, webhookEventStore, log)

	go handleSignals(application, log)

	if err := application.Start(ctx); err != nil {
		log.Fatal("Failed to start application", zap.Error(err))
	}
}

// handleSignals handles application shutdown signals
func handleSignals(application *app.App, log *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	application.Stop()
}
