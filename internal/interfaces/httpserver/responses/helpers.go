package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-orchestrator/internal/infrastructure/ollama"
)

// HandleError maps backend failures to their HTTP status codes. Anything
// outside the backend taxonomy becomes a 500 with the fallback message.
func HandleError(c *gin.Context, err error, message string) {
	var backendErr *ollama.BackendError
	if errors.As(err, &backendErr) {
		c.AbortWithStatusJSON(backendErr.HTTPStatus(), ErrorResponse{Error: backendErr.Detail()})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// HandleBindError writes a 400 for malformed or invalid request payloads.
func HandleBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
