package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"agent-discovery/config"
	discoveryHTTP "agent-discovery/internal/discovery/delivery/http"
	agentRepo "agent-discovery/internal/discovery/repository/memory"
	discoveryUC "agent-discovery/internal/discovery/usecase"
	"agent-discovery/internal/httpserver"
	"agent-discovery/internal/middleware"
	"agent-discovery/internal/router"
	"agent-discovery/internal/session"
	"agent-discovery/internal/synthesis"
	"agent-discovery/pkg/llmprovider"
	"agent-discovery/pkg/log"
	"agent-discovery/pkg/metrics"
)

// @title       Agent Discovery API
// @description Conversational requirements discovery that turns a chat into a ready-to-deploy assistant configuration.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Agent Discovery...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	m := metrics.New(metrics.DefaultNamespace)

	// 3. Completion service
	var completer llmprovider.Completer
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No completion provider available, running on keyword rules and skeletons: %v", err)
	} else {
		completer = llmprovider.NewManager(providers, managerConfig(cfg.LLM), logger)
		logger.Infof(ctx, "Completion providers initialized: %d", len(providers))
	}

	// 4. Discovery domain
	store := session.NewMemoryStore(logger, m)

	var classifier router.Classifier = router.NewKeyword(logger)
	if completer != nil {
		classifier = router.NewFallback(
			router.NewSemantic(completer, logger, cfg.Discovery.ClassifyTemperature),
			classifier,
			logger, m,
		)
	}

	synth := synthesis.New(completer, logger, m, synthesis.Config{
		Elaborate: cfg.Discovery.Elaborate,
		Timeout:   cfg.Discovery.CompletionTimeout,
		MaxTokens: cfg.Discovery.SynthesisMaxTokens,
		MaxChars:  cfg.Discovery.SynthesisMaxChars,
	})

	uc := discoveryUC.New(logger, store, classifier, synth, agentRepo.NewAgentRepository(), m, discoveryUC.Config{
		CompletionTimeout: cfg.Discovery.CompletionTimeout,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Middleware:        middleware.New(logger, m, cfg.RateLimit),
		Metrics:           m,
		DiscoveryHandler:  discoveryHTTP.New(logger, uc),
		Sessions:          store,
		CompletionEnabled: completer != nil,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run server and session janitor until a signal arrives
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	g.Go(func() error {
		return session.RunJanitor(gctx, store, logger, cfg.Discovery.CleanupInterval, cfg.Discovery.SessionTTL)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Server stopped with error: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func managerConfig(cfg config.LLMConfig) *llmprovider.Config {
	out := &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	// Durations were validated by config.Load.
	out.RetryDelay, _ = time.ParseDuration(cfg.RetryDelay)
	out.MaxTotalTimeout, _ = time.ParseDuration(cfg.MaxTotalTimeout)
	return out
}
