// Package ollama discovers and talks to a locally reachable Ollama backend.
package ollama

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"ai-orchestrator/internal/utils/httpclients"
)

const tagsPath = "/api/tags"

// Locator probes a fixed ordered list of candidate base URLs and returns the
// first one whose liveness endpoint answers. The list is immutable for the
// process lifetime.
type Locator struct {
	candidates []string
	httpClient *resty.Client
	log        zerolog.Logger
}

// NewLocator builds a locator over the given candidates with a bounded probe
// timeout.
func NewLocator(candidates []string, probeTimeout time.Duration, log zerolog.Logger) *Locator {
	return &Locator{
		candidates: candidates,
		httpClient: httpclients.New("ollama-probe", probeTimeout, log),
		log:        log.With().Str("component", "ollama-locator").Logger(),
	}
}

// Locate probes the candidates in order and returns the first live base URL.
// Probe failures are swallowed and logged at debug level; when every
// candidate fails the second return is false.
func (l *Locator) Locate(ctx context.Context) (string, bool) {
	for _, base := range l.candidates {
		resp, err := l.httpClient.R().SetContext(ctx).Get(base + tagsPath)
		if err != nil {
			l.log.Debug().Err(err).Str("url", base).Msg("ollama probe failed")
			continue
		}
		if resp.StatusCode() == http.StatusOK {
			l.log.Info().Str("url", base).Msg("ollama backend found")
			return base, true
		}
		l.log.Debug().Int("status", resp.StatusCode()).Str("url", base).Msg("ollama probe rejected")
	}

	l.log.Error().Msg("no ollama endpoint responding")
	return "", false
}
