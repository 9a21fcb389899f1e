package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ai-orchestrator/internal/domain/textops"
	"ai-orchestrator/internal/infrastructure/metrics"
	"ai-orchestrator/internal/interfaces/httpserver/requests"
	"ai-orchestrator/internal/interfaces/httpserver/responses"
)

// TextHandler exposes the text operation endpoints.
type TextHandler struct {
	service textops.Service
	log     zerolog.Logger
}

// NewTextHandler wires the text handler with the domain service.
func NewTextHandler(service textops.Service, log zerolog.Logger) *TextHandler {
	return &TextHandler{
		service: service,
		log:     log.With().Str("component", "text-handler").Logger(),
	}
}

// Summarize handles POST /summarize.
func (h *TextHandler) Summarize(c *gin.Context) {
	start := time.Now()
	metrics.RecordRequest("/summarize", http.MethodPost)

	var req requests.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleBindError(c, err)
		return
	}

	summary, err := h.service.Summarize(c.Request.Context(), textops.SummarizeRequest{
		Text:  req.Text,
		Model: req.Model,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("summarize failed")
		responses.HandleError(c, err, "summarize failed")
		return
	}

	metrics.RequestDuration.Observe(time.Since(start).Seconds())
	c.JSON(http.StatusOK, responses.SummarizeResponse{Summary: summary})
}

// Translate handles POST /translate.
func (h *TextHandler) Translate(c *gin.Context) {
	start := time.Now()
	metrics.RecordRequest("/translate", http.MethodPost)

	var req requests.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleBindError(c, err)
		return
	}

	translation, err := h.service.Translate(c.Request.Context(), textops.TranslateRequest{
		Text:           req.Text,
		Model:          req.Model,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("translate failed")
		responses.HandleError(c, err, "translate failed")
		return
	}

	metrics.RequestDuration.Observe(time.Since(start).Seconds())
	c.JSON(http.StatusOK, responses.TranslateResponse{Translation: translation})
}

// AnalyzeSentiment handles POST /analyze_sentiment.
func (h *TextHandler) AnalyzeSentiment(c *gin.Context) {
	start := time.Now()
	metrics.RecordRequest("/analyze_sentiment", http.MethodPost)

	var req requests.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleBindError(c, err)
		return
	}

	sentiment, err := h.service.AnalyzeSentiment(c.Request.Context(), textops.SentimentRequest{
		Text:  req.Text,
		Model: req.Model,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("analyze sentiment failed")
		responses.HandleError(c, err, "analyze sentiment failed")
		return
	}

	metrics.RequestDuration.Observe(time.Since(start).Seconds())
	c.JSON(http.StatusOK, responses.SentimentResponse{Sentiment: sentiment})
}
