package ollama

import (
	"fmt"
	"net/http"
)

// FailureKind categorizes backend call failures. The values double as the
// "type" label on the ollama_errors_total metric.
type FailureKind string

const (
	// KindBackendUnavailable means no candidate backend answered a probe.
	KindBackendUnavailable FailureKind = "backend_unavailable"
	// KindUpstreamTimeout means the generation call exceeded its deadline.
	KindUpstreamTimeout FailureKind = "timeout"
	// KindUpstreamUnreachable means a connection-level failure; the cached
	// backend URL is invalidated as a side effect.
	KindUpstreamUnreachable FailureKind = "connection"
	// KindUpstreamError means the backend answered with a non-success status.
	KindUpstreamError FailureKind = "http_error"
	// KindUnknown covers any other fault.
	KindUnknown FailureKind = "other"
)

// BackendError is the typed failure surface of the inference client.
type BackendError struct {
	Kind FailureKind
	// Status and Body carry the backend's own response for KindUpstreamError.
	Status int
	Body   string
	Err    error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ollama %s: %v", e.Kind, e.Err)
	}
	if e.Kind == KindUpstreamError {
		return fmt.Sprintf("ollama %s: status %d: %s", e.Kind, e.Status, e.Body)
	}
	return fmt.Sprintf("ollama %s", e.Kind)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the failure to the user-visible status code. Upstream
// errors pass the backend's own status through unchanged.
func (e *BackendError) HTTPStatus() int {
	switch e.Kind {
	case KindBackendUnavailable, KindUpstreamUnreachable:
		return http.StatusServiceUnavailable
	case KindUpstreamTimeout:
		return http.StatusGatewayTimeout
	case KindUpstreamError:
		return e.Status
	default:
		return http.StatusInternalServerError
	}
}

// Detail is the human readable message surfaced in error responses.
func (e *BackendError) Detail() string {
	switch e.Kind {
	case KindBackendUnavailable:
		return "Ollama not available"
	case KindUpstreamTimeout:
		return "Ollama request timeout"
	case KindUpstreamUnreachable:
		return "Cannot connect to Ollama"
	case KindUpstreamError:
		return fmt.Sprintf("Ollama API error: %s", e.Body)
	default:
		return fmt.Sprintf("Ollama API error: %v", e.Err)
	}
}
