package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"ledgerchat/internal/alerts"
	"ledgerchat/internal/assistant"
	"ledgerchat/internal/config"
	apphttp "ledgerchat/internal/http"
	"ledgerchat/internal/llm"
	applog "ledgerchat/internal/log"
	"ledgerchat/internal/store"
)

func main() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}

	st := store.New()

	provider, err := buildProvider(cfg)
	if err != nil {
		logger.Error("Failed to build model provider", applog.FieldError, err)
		os.Exit(1)
	}

	var publisher assistant.AlertPublisher
	var alertClient *alerts.Client
	if cfg.AMQPURL != "" {
		alertsLog := logger.WithComponent(applog.ComponentAlerts)
		alertClient, err = alerts.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			alertsLog.Warn("Budget alerts disabled: AMQP connection failed", applog.FieldError, err)
		} else {
			alertsLog.Info("Budget alerts enabled",
				"exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
			publisher = alertClient
			defer alertClient.Close()
		}
	}

	asst := assistant.New(provider, st, publisher)

	srv := apphttp.NewServer(":"+cfg.Port, asst, st, apphttp.Options{
		CORSOrigins:        cfg.CORSOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		ChatTimeout:        cfg.LLMTimeout + 10*time.Second,
	})
	srv.ReadTimeout = 15 * time.Second
	srv.WriteTimeout = 2 * time.Minute
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 20

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting",
			"port", cfg.Port,
			applog.FieldProvider, cfg.LLMProvider,
			"alerts_enabled", publisher != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func buildProvider(cfg *config.Config) (llm.Provider, error) {
	switch cfg.LLMProvider {
	case config.ProviderAnthropic:
		return llm.NewAnthropic(cfg.AnthropicAPIKey, cfg.LLMModel), nil
	case config.ProviderLocal:
		return llm.NewLocal(cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTimeout), nil
	default:
		return nil, errors.New("unknown LLM provider: " + cfg.LLMProvider)
	}
}
