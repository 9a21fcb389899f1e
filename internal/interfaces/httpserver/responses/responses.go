// Package responses contains HTTP response DTOs and error shaping.
package responses

// SummarizeResponse is the body returned by /summarize.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// TranslateResponse is the body returned by /translate.
type TranslateResponse struct {
	Translation string `json:"translation"`
}

// SentimentResponse is the body returned by /analyze_sentiment.
type SentimentResponse struct {
	Sentiment string `json:"sentiment"`
}

// HealthResponse is the body returned by /health. The opensearch field is a
// static claim, never verified against the store.
type HealthResponse struct {
	Status     string  `json:"status"`
	Ollama     string  `json:"ollama"`
	OllamaURL  *string `json:"ollama_url"`
	OpenSearch string  `json:"opensearch"`
}

// ErrorResponse is the shape of every error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
