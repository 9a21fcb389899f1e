package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the orchestrator.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"ai-orchestrator"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Ollama backend discovery. Candidates are probed in order; the first
	// responsive one is used until a connection failure invalidates it.
	OllamaURLs      []string      `env:"OLLAMA_URLS" envSeparator:"," envDefault:"http://localhost:11434,http://host.docker.internal:11434,http://ollama:11434"`
	DefaultModel    string        `env:"OLLAMA_DEFAULT_MODEL" envDefault:"llama3.1:8b"`
	ProbeTimeout    time.Duration `env:"OLLAMA_PROBE_TIMEOUT" envDefault:"5s"`
	GenerateTimeout time.Duration `env:"OLLAMA_GENERATE_TIMEOUT" envDefault:"120s"`

	// OpenSearch usage logging (best effort side channel).
	OpenSearchURL     string        `env:"OPENSEARCH_URL" envDefault:"http://localhost:9200"`
	OpenSearchIndex   string        `env:"OPENSEARCH_INDEX" envDefault:"ai-requests"`
	OpenSearchTimeout time.Duration `env:"OPENSEARCH_TIMEOUT" envDefault:"10s"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if len(cfg.OllamaURLs) == 0 {
		return nil, fmt.Errorf("OLLAMA_URLS must list at least one candidate")
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
