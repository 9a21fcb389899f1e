package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"ai-orchestrator/internal/config"
	"ai-orchestrator/internal/domain/textops"
	"ai-orchestrator/internal/infrastructure/logger"
	"ai-orchestrator/internal/infrastructure/ollama"
	"ai-orchestrator/internal/infrastructure/opensearch"
	"ai-orchestrator/internal/interfaces/httpserver"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the HTTP server until the context is cancelled.
func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	holder := ollama.NewBackendHolder()
	locator := ollama.NewLocator(cfg.OllamaURLs, cfg.ProbeTimeout, log)
	ollamaClient := ollama.NewClient(holder, locator, cfg.GenerateTimeout, log)

	recorder := opensearch.NewRecorder(cfg.OpenSearchURL, cfg.OpenSearchIndex, cfg.OpenSearchTimeout, log)

	textService := textops.NewService(ollamaClient, recorder, cfg.DefaultModel, log)

	// Warm the backend cache once at startup. Not fatal: endpoints keep
	// re-probing lazily until a backend shows up.
	if url, ok := locator.Locate(ctx); ok {
		holder.Set(url)
		log.Info().Str("url", url).Msg("ollama is ready")
	} else {
		log.Warn().Msg("ollama is not available - generation endpoints will fail until it is")
	}

	httpServer := httpserver.New(cfg, log, textService, holder)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
