// Package requests contains the inbound HTTP payload types.
package requests

// TextRequest is the body for /summarize and /analyze_sentiment.
type TextRequest struct {
	Text  string `json:"text" binding:"required"`
	Model string `json:"model"`
}

// TranslateRequest is the body for /translate.
type TranslateRequest struct {
	Text           string `json:"text" binding:"required"`
	Model          string `json:"model"`
	TargetLanguage string `json:"target_language"`
}
