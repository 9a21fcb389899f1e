package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-orchestrator/internal/domain/textops"
	"ai-orchestrator/internal/infrastructure/ollama"
)

type stubService struct {
	result string
	err    error
}

func (s *stubService) Summarize(context.Context, textops.SummarizeRequest) (string, error) {
	return s.result, s.err
}

func (s *stubService) Translate(context.Context, textops.TranslateRequest) (string, error) {
	return s.result, s.err
}

func (s *stubService) AnalyzeSentiment(context.Context, textops.SentimentRequest) (string, error) {
	return s.result, s.err
}

func newTestRouter(svc textops.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewTextHandler(svc, zerolog.Nop())
	engine.POST("/summarize", h.Summarize)
	engine.POST("/translate", h.Translate)
	engine.POST("/analyze_sentiment", h.AnalyzeSentiment)
	return engine
}

func doJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSummarizeSuccess(t *testing.T) {
	engine := newTestRouter(&stubService{result: "um resumo"})

	rec := doJSON(engine, "/summarize", `{"text":"texto longo"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"summary":"um resumo"}`, rec.Body.String())
}

func TestTranslateSuccess(t *testing.T) {
	engine := newTestRouter(&stubService{result: "hello"})

	rec := doJSON(engine, "/translate", `{"text":"olá","target_language":"inglês"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"translation":"hello"}`, rec.Body.String())
}

func TestAnalyzeSentimentSuccess(t *testing.T) {
	engine := newTestRouter(&stubService{result: "positivo"})

	rec := doJSON(engine, "/analyze_sentiment", `{"text":"adorei"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sentiment":"positivo"}`, rec.Body.String())
}

func TestMissingTextIsBadRequest(t *testing.T) {
	engine := newTestRouter(&stubService{result: "unused"})

	for _, path := range []string{"/summarize", "/translate", "/analyze_sentiment"} {
		rec := doJSON(engine, path, `{}`)
		assert.Equalf(t, http.StatusBadRequest, rec.Code, "path %s", path)
	}
}

func TestBackendErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        *ollama.BackendError
		wantStatus int
		wantDetail string
	}{
		{
			name:       "backend unavailable",
			err:        &ollama.BackendError{Kind: ollama.KindBackendUnavailable},
			wantStatus: http.StatusServiceUnavailable,
			wantDetail: "Ollama not available",
		},
		{
			name:       "upstream timeout",
			err:        &ollama.BackendError{Kind: ollama.KindUpstreamTimeout},
			wantStatus: http.StatusGatewayTimeout,
			wantDetail: "Ollama request timeout",
		},
		{
			name:       "upstream unreachable",
			err:        &ollama.BackendError{Kind: ollama.KindUpstreamUnreachable},
			wantStatus: http.StatusServiceUnavailable,
			wantDetail: "Cannot connect to Ollama",
		},
		{
			name:       "upstream error passes status through",
			err:        &ollama.BackendError{Kind: ollama.KindUpstreamError, Status: http.StatusTooManyRequests, Body: "slow down"},
			wantStatus: http.StatusTooManyRequests,
			wantDetail: "Ollama API error: slow down",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := newTestRouter(&stubService{err: tc.err})

			rec := doJSON(engine, "/summarize", `{"text":"t"}`)

			require.Equal(t, tc.wantStatus, rec.Code)
			assert.JSONEq(t, `{"error":"`+tc.wantDetail+`"}`, rec.Body.String())
		})
	}
}

func TestUnknownErrorIsInternalServerError(t *testing.T) {
	engine := newTestRouter(&stubService{err: assert.AnError})

	rec := doJSON(engine, "/summarize", `{"text":"t"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"summarize failed"}`, rec.Body.String())
}
