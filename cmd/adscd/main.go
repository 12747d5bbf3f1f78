// Command adscd runs ADSC as a standalone daemon: an evaluation
// engine bound to a simulated host, a reference Switcher wired to
// Postgres audit persistence and Redis decision fan-out, and an
// admin/metrics HTTP surface, wired together with the usual
// config/tracing/store/errgroup/signal-handling shape.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/admin"
	"github.com/emperorhan/auto-data-switch-controller/internal/config"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
	"github.com/emperorhan/auto-data-switch-controller/internal/engine"
	"github.com/emperorhan/auto-data-switch-controller/internal/host"
	"github.com/emperorhan/auto-data-switch-controller/internal/notify"
	"github.com/emperorhan/auto-data-switch-controller/internal/store/postgres"
	redisstore "github.com/emperorhan/auto-data-switch-controller/internal/store/redis"
	"github.com/emperorhan/auto-data-switch-controller/internal/switcher"
	"github.com/emperorhan/auto-data-switch-controller/internal/tracing"
	"golang.org/x/sync/errgroup"
)

const migrationsDir = "internal/store/postgres/migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	switch cfg.Log.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	logger.Info("starting adscd",
		"stability_dwell", cfg.Switch.StabilityDwell,
		"score_tolerance", cfg.Switch.ScoreTolerance,
		"require_ping", cfg.Switch.RequirePing,
		"allow_roaming_switch", cfg.Switch.AllowRoamingSwitch,
		"admin_port", cfg.Admin.Port,
	)

	shutdownTracing, err := tracing.Init(context.Background(), cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, true)
	if err != nil {
		logger.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown error", "error", err)
		}
	}()
	if cfg.Tracing.Endpoint != "" {
		logger.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint)
	}

	db, err := postgres.New(postgres.Config{
		URL:             cfg.DB.URL,
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.RunMigrations(migrationsDir); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	decisionRepo := postgres.NewDecisionRepo(db)

	stream, err := redisstore.NewStream(cfg.Redis.URL, cfg.Redis.Channel)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer stream.Close()
	logger.Info("connected to redis", "channel", cfg.Redis.Channel)

	simHost := host.NewSimHost(cfg.Switch.Domain())
	seedDevSlots(simHost)

	notifier := notify.NewOneShotNotifier(logger, notifyChannels(cfg.Notify)...)
	sw := switcher.New(simHost, notifier, logger,
		switcher.WithAuditSink(decisionRepo),
		switcher.WithFanoutSink(stream),
	)

	eng := engine.New(simHost, sw, logger, engine.WithTracer(tracing.EngineTracer()))

	rateLimit := admin.NewRateLimitMiddleware(logger).WithDefaultLimit(cfg.Admin.RateLimitRPS, cfg.Admin.RateLimitBurst)
	adminServer := admin.NewServer(eng, eng, logger, admin.WithRateLimitMiddleware(rateLimit))
	defer adminServer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return eng.Run(gCtx)
	})

	g.Go(func() error {
		return runAdminServer(gCtx, cfg.Admin.Port, adminServer.Handler(), logger)
	})

	g.Go(func() error {
		select {
		case sig := <-sigCh:
			logger.Info("received signal, shutting down", "signal", sig)
			cancel()
			return nil
		case <-gCtx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("adscd exited with error", "error", err)
		os.Exit(1)
	}

	logger.Info("adscd shut down gracefully")
}

// notifyChannels builds the notification fan-out list from config: a
// webhook channel if one is configured, otherwise a no-op so the
// notifier always has at least one channel to cancel-then-post
// against.
func notifyChannels(cfg config.NotifyConfig) []notify.Channel {
	if cfg.WebhookURL == "" {
		return []notify.Channel{notify.NoopChannel{}}
	}
	return []notify.Channel{notify.NewWebhookChannel(cfg.WebhookURL)}
}

// seedDevSlots gives the simulated host two subscriptions so the
// engine has something to evaluate out of the box; a real deployment
// would instead bind SimHost's setters to actual telephony broadcast
// receivers, which is outside this module's scope (spec.md Non-goals
// exclude the host integration itself).
func seedDevSlots(h *host.SimHost) {
	h.AddSlot(model.SlotId(0), 1)
	h.AddSlot(model.SlotId(1), 2)
	h.SetDefaultDataSubId(1)
	h.SetPreferredDataSlot(model.SlotId(0))
	h.MutateSlot(model.SlotId(0), func(s *host.SlotState) { s.RegState = model.Home })
	h.MutateSlot(model.SlotId(1), func(s *host.SlotState) { s.RegState = model.Home })
}

func runAdminServer(ctx context.Context, port int, handler http.Handler, logger *slog.Logger) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
			logger.Warn("admin server shutdown error", "error", err)
		}
	}()

	logger.Info("admin server started", "port", port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("admin server: %w", err)
	}
	return nil
}
