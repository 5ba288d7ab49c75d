package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/webbplats/site/internal/api/handlers"
	"github.com/webbplats/site/internal/config"
	"github.com/webbplats/site/internal/contact"
	"github.com/webbplats/site/internal/content"
	"github.com/webbplats/site/internal/db"
	"github.com/webbplats/site/internal/logging"
	"github.com/webbplats/site/internal/placeholder"
	"github.com/webbplats/site/internal/server"
	"github.com/webbplats/site/internal/server/routes"
	"github.com/webbplats/site/internal/tasks"
	"github.com/webbplats/site/internal/telemetry"
	"github.com/webbplats/site/internal/utils"
	"github.com/webbplats/site/internal/version"

	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Configure and get logger
	if err := logging.InitLogger(&logging.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	}); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode (%s)", cfg.Environment, version.Info())
	for _, warning := range cfg.Warnings {
		logger.Warn("Config: %s", warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.OTLPEndpoint, version.Version)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	metrics := telemetry.NewMetrics()
	httpClient := utils.NewHTTPClient(cfg.HTTPTimeout)

	// Shared content cache is optional; fall back to process memory
	var cache content.Cache = content.NewMemoryCache()
	var rdb *redis.Client
	switch client, err := db.Initialize(cfg.Redis); {
	case err == nil:
		rdb = client
		defer rdb.Close()
		cache = content.NewRedisCache(rdb, content.DefaultRedisPrefix)
		logger.Info("Using redis content cache at %s", cfg.Redis.Address)
	case errors.Is(err, db.ErrNotConfigured):
		logger.Info("Redis not configured, using in-memory content cache")
	default:
		logger.Warn("Redis unavailable, using in-memory content cache: %v", err)
	}

	normalizer := placeholder.New(placeholder.Values{
		SiteBaseURL:  cfg.Site.BaseURL,
		SiteName:     cfg.Site.Name,
		CompanyEmail: cfg.Site.ContactEmail,
	})

	contentClient, err := content.New(cfg.Content, normalizer,
		content.WithHTTPClient(httpClient),
		content.WithCache(cache),
		content.WithLogger(logger),
		content.WithMetrics(metrics),
	)
	if err != nil {
		logger.Error("Failed to create content client: %v", err)
		os.Exit(1)
	}

	ledger := contact.NewLedger(cfg.Contact.RateLimitWindow, cfg.Contact.RateLimitMax)
	relay := contact.NewWebhookRelay(cfg.Contact.WebhookURL, httpClient)
	if !relay.Configured() {
		logger.Warn("CONTACT_FORM_WEBHOOK is not set, contact submissions will be rejected")
	}
	gate := contact.NewGate(ledger, relay,
		contact.WithMinFillTime(cfg.Contact.MinFillTime),
		contact.WithGateLogger(logger),
		contact.WithGateMetrics(metrics),
	)

	// Start rate-limit ledger sweep task
	sweep := tasks.NewLedgerSweep(ledger, cfg.Contact.SweepInterval)
	sweep.Start()
	defer sweep.Stop()
	logger.Info("Started contact ledger sweep task")

	h := &routes.Handlers{
		Health:  handlers.NewHealthHandler(healthCache(rdb)),
		Content: handlers.NewContentHandler(contentClient, cfg.Site, cfg.Content.ServiceCandidates),
		Contact: handlers.NewContactHandler(gate),
		Metrics: metrics.Handler(),
	}
	srv := server.NewServer(cfg, h, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server stopped: %v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}

// healthCache avoids handing a typed nil client to the health handler.
func healthCache(rdb *redis.Client) redis.UniversalClient {
	if rdb == nil {
		return nil
	}
	return rdb
}
