// Package opensearch writes usage records to the search index.
package opensearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ai-orchestrator/internal/utils/httpclients"
)

// maxInputChars bounds the stored input text.
const maxInputChars = 1000

// Document is the usage record shape indexed per request/response pair.
// Write-only: nothing in this service reads it back.
type Document struct {
	Endpoint   string  `json:"endpoint"`
	InputText  string  `json:"input_text"`
	OutputText string  `json:"output_text"`
	Model      string  `json:"model"`
	Timestamp  float64 `json:"timestamp"`
}

// Recorder performs best-effort index writes. Every call opens a fresh
// client: the store is an optional side channel and gets no pooled
// connections.
type Recorder struct {
	baseURL string
	index   string
	timeout time.Duration
	log     zerolog.Logger
}

// NewRecorder builds a recorder against the given OpenSearch address and
// index name.
func NewRecorder(baseURL, index string, timeout time.Duration, log zerolog.Logger) *Recorder {
	return &Recorder{
		baseURL: strings.TrimRight(baseURL, "/"),
		index:   index,
		timeout: timeout,
		log:     log.With().Str("component", "usage-recorder").Logger(),
	}
}

// Record indexes one usage document. The returned error exists so callers
// can log and discard it; it must never be allowed to affect the
// user-facing response.
func (r *Recorder) Record(ctx context.Context, endpoint, inputText, outputText, model string) error {
	doc := Document{
		Endpoint:   endpoint,
		InputText:  truncate(inputText, maxInputChars),
		OutputText: outputText,
		Model:      model,
		Timestamp:  float64(time.Now().UnixNano()) / float64(time.Second),
	}

	client := httpclients.New("opensearch", r.timeout, r.log)
	resp, err := client.R().
		SetContext(ctx).
		SetBody(doc).
		Post(fmt.Sprintf("%s/%s/_doc", r.baseURL, r.index))
	if err != nil {
		return fmt.Errorf("opensearch index write: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("opensearch index write: status %d: %s", resp.StatusCode(), resp.String())
	}

	r.log.Info().Str("endpoint", endpoint).Msg("usage record saved")
	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
