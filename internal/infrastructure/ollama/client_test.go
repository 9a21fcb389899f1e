package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// backendStub serves both the liveness and generate endpoints so a single
// httptest server can play a full Ollama backend.
func backendStub(t *testing.T, response string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			w.WriteHeader(http.StatusOK)
		case "/api/generate":
			if status != http.StatusOK {
				w.WriteHeader(status)
				w.Write([]byte(response))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"response": response})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestClient(holder *BackendHolder, candidates []string, timeout time.Duration) *Client {
	locator := NewLocator(candidates, timeout, zerolog.Nop())
	return NewClient(holder, locator, timeout, zerolog.Nop())
}

func TestGenerateReturnsResponseText(t *testing.T) {
	srv := backendStub(t, "hello there", http.StatusOK)
	defer srv.Close()

	holder := NewBackendHolder()
	holder.Set(srv.URL)
	client := newTestClient(holder, nil, time.Second)

	got, err := client.Generate(context.Background(), "llama3.1:8b", "say hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello there" {
		t.Fatalf("expected %q, got %q", "hello there", got)
	}
}

func TestGenerateEmptyBodyYieldsEmptyString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	holder := NewBackendHolder()
	holder.Set(srv.URL)
	client := newTestClient(holder, nil, time.Second)

	got, err := client.Generate(context.Background(), "llama3.1:8b", "say hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty response, got %q", got)
	}
}

func TestGenerateUpstreamErrorCarriesStatusAndBody(t *testing.T) {
	srv := backendStub(t, "oops", http.StatusInternalServerError)
	defer srv.Close()

	holder := NewBackendHolder()
	holder.Set(srv.URL)
	client := newTestClient(holder, nil, time.Second)

	_, err := client.Generate(context.Background(), "llama3.1:8b", "say hi")

	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("expected *BackendError, got %v", err)
	}
	if backendErr.Kind != KindUpstreamError {
		t.Fatalf("expected kind %s, got %s", KindUpstreamError, backendErr.Kind)
	}
	if backendErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", backendErr.Status)
	}
	if backendErr.Body != "oops" {
		t.Fatalf("expected body %q, got %q", "oops", backendErr.Body)
	}
	if _, ok := holder.Get(); !ok {
		t.Fatal("an upstream HTTP error must not evict the cached URL")
	}
}

func TestGenerateConnectionFailureClearsCacheThenReprobes(t *testing.T) {
	live := backendStub(t, "recovered", http.StatusOK)
	defer live.Close()

	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	holder := NewBackendHolder()
	holder.Set(deadURL)
	client := newTestClient(holder, []string{live.URL}, time.Second)

	_, err := client.Generate(context.Background(), "llama3.1:8b", "first")
	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("expected *BackendError, got %v", err)
	}
	if backendErr.Kind != KindUpstreamUnreachable {
		t.Fatalf("expected kind %s, got %s", KindUpstreamUnreachable, backendErr.Kind)
	}
	if _, ok := holder.Get(); ok {
		t.Fatal("connection failure must clear the cached URL")
	}

	got, err := client.Generate(context.Background(), "llama3.1:8b", "second")
	if err != nil {
		t.Fatalf("expected re-probe to recover, got %v", err)
	}
	if got != "recovered" {
		t.Fatalf("expected %q, got %q", "recovered", got)
	}
	if url, ok := holder.Get(); !ok || url != live.URL {
		t.Fatalf("expected cache refreshed to %s, got %s (ok=%v)", live.URL, url, ok)
	}
}

func TestGenerateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"response":"too late"}`))
	}))
	defer srv.Close()

	holder := NewBackendHolder()
	holder.Set(srv.URL)
	client := newTestClient(holder, nil, 50*time.Millisecond)

	_, err := client.Generate(context.Background(), "llama3.1:8b", "slow")

	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("expected *BackendError, got %v", err)
	}
	if backendErr.Kind != KindUpstreamTimeout {
		t.Fatalf("expected kind %s, got %s", KindUpstreamTimeout, backendErr.Kind)
	}
}

func TestGenerateUnavailableWhenNoBackendFound(t *testing.T) {
	client := newTestClient(NewBackendHolder(), nil, time.Second)

	_, err := client.Generate(context.Background(), "llama3.1:8b", "anyone there")

	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("expected *BackendError, got %v", err)
	}
	if backendErr.Kind != KindBackendUnavailable {
		t.Fatalf("expected kind %s, got %s", KindBackendUnavailable, backendErr.Kind)
	}
	if backendErr.HTTPStatus() != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", backendErr.HTTPStatus())
	}
}
