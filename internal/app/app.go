package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/we3pr0/AbundantLifeChurch/internal/config"
	"github.com/we3pr0/AbundantLifeChurch/internal/dependency"
	"github.com/we3pr0/AbundantLifeChurch/internal/domain/contact"
	"github.com/we3pr0/AbundantLifeChurch/internal/domain/donations"
	"github.com/we3pr0/AbundantLifeChurch/internal/domain/events"
	"github.com/we3pr0/AbundantLifeChurch/internal/store"
)

// App represents the church website application
type App struct {
	cfg        config.Config
	httpServer *http.Server
	logger     *zap.Logger
}

// NewApp creates a new App instance
func NewApp(
	cfg config.Config,
	eventStore store.EventStore,
	contactStore store.ContactMessageStore,
	donationStore store.DonationStore,
	webhookEventStore store.WebhookEventStore,
	logger *zap.Logger,
) *App {
	// Create clients for the payment processor
	paymentClient := dependency.NewStripePaymentIntentClient(cfg.Stripe)
	webhookVerifier := dependency.NewStripeWebhookVerifier(cfg.Stripe.WebhookSecret)

	// Create domain servers
	eventsServer := events.NewServer(eventStore)
	contactServer := contact.NewServer(contactStore)
	donationsServer := donations.NewServer(donationStore, webhookEventStore, paymentClient, webhookVerifier)

	if cfg.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(RequestLogger(logger), gin.Recovery())

	api := engine.Group("/api")
	api.GET("/health/liveness", livenessHandler)
	eventsServer.Register(api)
	contactServer.Register(api)
	donationsServer.Register(api)

	return &App{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.HTTP.Port),
			Handler: engine,
		},
		logger: logger,
	}
}

// Start starts the application
func (a *App) Start(ctx context.Context) error {
	a.logger.Info("Starting HTTP server", zap.String("port", a.cfg.HTTP.Port))

	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Stop stops the application, draining in-flight requests
func (a *App) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Error shutting down HTTP server", zap.Error(err))
	}

	a.logger.Info("Application stopped")
}

func livenessHandler(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
