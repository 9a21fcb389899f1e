package ollama

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"ai-orchestrator/internal/infrastructure/metrics"
	"ai-orchestrator/internal/utils/httpclients"
)

const (
	generatePath = "/api/generate"

	// Fixed sampling parameters for the non-streaming generate call.
	defaultTemperature = 0.1
	defaultNumPredict  = 500
)

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Client issues single-attempt generate calls against the backend resolved
// by the locator. There are no retries: callers get a typed *BackendError
// and may retry at a higher layer.
type Client struct {
	holder     *BackendHolder
	locator    *Locator
	httpClient *resty.Client
	log        zerolog.Logger
}

// NewClient wires the inference client with its URL holder and locator.
func NewClient(holder *BackendHolder, locator *Locator, generateTimeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		holder:     holder,
		locator:    locator,
		httpClient: httpclients.New("ollama-generate", generateTimeout, log),
		log:        log.With().Str("component", "ollama-client").Logger(),
	}
}

// Generate runs one non-streaming generation against the cached backend,
// lazily resolving the URL when absent. Connection-level failures clear the
// cached URL so the next call re-probes. A response without a text field
// yields an empty string.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	base, ok := c.holder.Get()
	if !ok {
		base, ok = c.locator.Locate(ctx)
		if !ok {
			return "", &BackendError{Kind: KindBackendUnavailable}
		}
		c.holder.Set(base)
	}

	var result generateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(generateRequest{
			Model:  model,
			Prompt: prompt,
			Stream: false,
			Options: generateOptions{
				Temperature: defaultTemperature,
				NumPredict:  defaultNumPredict,
			},
		}).
		SetResult(&result).
		Post(base + generatePath)

	if err != nil {
		kind := classify(err)
		metrics.RecordOllamaError(string(kind))
		if kind == KindUpstreamUnreachable {
			c.holder.Clear()
		}
		if kind == KindUnknown {
			c.log.Error().Err(err).Str("url", base).Msg("ollama generate failed")
		}
		return "", &BackendError{Kind: kind, Err: err}
	}

	if resp.IsError() {
		metrics.RecordOllamaError(string(KindUpstreamError))
		return "", &BackendError{
			Kind:   KindUpstreamError,
			Status: resp.StatusCode(),
			Body:   resp.String(),
		}
	}

	return result.Response, nil
}

// classify sorts a transport error into the failure taxonomy. Timeouts are
// checked first: a deadline hit mid-connect must not count as unreachable.
func classify(err error) FailureKind {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return KindUpstreamTimeout
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return KindUpstreamUnreachable
	}

	return KindUnknown
}
