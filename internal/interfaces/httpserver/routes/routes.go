// Package routes registers the public HTTP surface.
package routes

import (
	"github.com/gin-gonic/gin"

	"ai-orchestrator/internal/interfaces/httpserver/handlers"
)

// Provider encapsulates route registration.
type Provider struct {
	handlers *handlers.Provider
}

// NewProvider builds the route registrar.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{handlers: handlerProvider}
}

// Register attaches all routes to the engine. The endpoints live at the
// root, mirroring the original public surface.
func (p *Provider) Register(engine *gin.Engine) {
	engine.POST("/summarize", p.handlers.Text.Summarize)
	engine.POST("/translate", p.handlers.Text.Translate)
	engine.POST("/analyze_sentiment", p.handlers.Text.AnalyzeSentiment)
	engine.GET("/health", p.handlers.Health.Health)
	engine.GET("/", p.handlers.Health.Root)
}
