package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-orchestrator/internal/infrastructure/metrics"
	"ai-orchestrator/internal/infrastructure/ollama"
	"ai-orchestrator/internal/interfaces/httpserver/responses"
)

// HealthHandler reports service status from the cached backend URL. No fresh
// probe is issued: health reflects the holder state only.
type HealthHandler struct {
	holder *ollama.BackendHolder
}

// NewHealthHandler wires the health handler.
func NewHealthHandler(holder *ollama.BackendHolder) *HealthHandler {
	return &HealthHandler{holder: holder}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	metrics.RecordRequest("/health", http.MethodGet)

	resp := responses.HealthResponse{
		Status:     "degraded",
		Ollama:     "unavailable",
		OpenSearch: "connected",
	}
	if url, ok := h.holder.Get(); ok {
		resp.Status = "healthy"
		resp.Ollama = "healthy"
		resp.OllamaURL = &url
	}

	c.JSON(http.StatusOK, resp)
}

// Root handles GET / with a static capability listing.
func (h *HealthHandler) Root(c *gin.Context) {
	metrics.RecordRequest("/", http.MethodGet)

	url, ok := h.holder.Get()
	status := "ready"
	if !ok {
		status = "waiting for Ollama"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "AI Orchestrator API",
		"status":     status,
		"ollama_url": url,
		"endpoints": gin.H{
			"/summarize":         "POST - Summarize text",
			"/translate":         "POST - Translate text",
			"/analyze_sentiment": "POST - Analyze sentiment",
			"/health":            "GET - Health check",
			"/metrics":           "GET - Prometheus metrics",
		},
	})
}
