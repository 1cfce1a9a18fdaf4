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
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/zhouzirui/solace/backend/internal/config"
	"github.com/zhouzirui/solace/backend/internal/handler"
	"github.com/zhouzirui/solace/backend/internal/logging"
	"github.com/zhouzirui/solace/backend/internal/model/language"
	"github.com/zhouzirui/solace/backend/internal/model/support"
	"github.com/zhouzirui/solace/backend/internal/service/ai"
	"github.com/zhouzirui/solace/backend/internal/service/chat"
	"github.com/zhouzirui/solace/backend/internal/service/fallback"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(cfg.Log.Env, cfg.Log.Level)
	zlog.Logger = logger
	if envErr != nil {
		logger.Debug().Err(envErr).Msg("no .env file loaded, using process environment only")
	}

	languages := language.NewMemoryStore(language.Seed())

	provider := newProvider(ctx, cfg.AI, logger)
	generator := ai.NewGenerator(provider, fallback.NewCatalog(nil), languages, ai.GeneratorConfig{
		Timeout: cfg.AI.Timeout,
		Logger:  logger.With().Str("component", "generator").Logger(),
	})

	store := chat.NewStore(chat.StoreConfig{
		TTL:           cfg.Session.TTL,
		SweepInterval: cfg.Session.SweepInterval,
		Logger:        logger.With().Str("component", "session-store").Logger(),
	})
	go store.Run(ctx)

	chatService := chat.NewService(store, generator, languages, logger.With().Str("component", "chat").Logger())

	router := handler.NewRouter(ctx, logger, cfg.Server.AllowedOrigins, languages, support.Seed(), chatService)

	startServer(ctx, cfg.Server, router, logger)
}

// newProvider returns nil when no provider is configured or it fails to
// start; the generator then answers from the fallback catalogue.
func newProvider(ctx context.Context, cfg config.AIConfig, logger zerolog.Logger) ai.Provider {
	switch cfg.Provider {
	case config.ProviderArk:
		chatModel, err := cfg.NewChatModel(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to create Ark chat model, continuing with fallback replies only")
			return nil
		}
		provider, err := ai.NewChainProvider(ctx, chatModel)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to build AI chain, continuing with fallback replies only")
			return nil
		}
		logger.Info().Str("provider", cfg.Provider).Str("model", cfg.Model).Msg("AI provider initialized")
		return provider
	case config.ProviderInference:
		provider, err := ai.NewInferenceProvider(ai.InferenceConfig{
			URL:         cfg.InferenceURL,
			Token:       cfg.InferenceToken,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("failed to create inference provider, continuing with fallback replies only")
			return nil
		}
		logger.Info().Str("provider", cfg.Provider).Str("url", cfg.InferenceURL).Msg("AI provider initialized")
		return provider
	default:
		logger.Info().Msg("no AI provider configured, replies come from the fallback catalogue")
		return nil
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger zerolog.Logger) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info().Str("addr", addr).Msg("Solace backend listening")
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
	logger.Info().Msg("server stopped")
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
