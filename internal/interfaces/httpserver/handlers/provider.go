// Package handlers contains the HTTP handlers for the orchestrator.
package handlers

import (
	"github.com/rs/zerolog"

	"ai-orchestrator/internal/domain/textops"
	"ai-orchestrator/internal/infrastructure/ollama"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Text   *TextHandler
	Health *HealthHandler
}

// NewProvider constructs the handler provider.
func NewProvider(textService textops.Service, holder *ollama.BackendHolder, log zerolog.Logger) *Provider {
	return &Provider{
		Text:   NewTextHandler(textService, log),
		Health: NewHealthHandler(holder),
	}
}
