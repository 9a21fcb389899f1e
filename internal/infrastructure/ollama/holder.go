package ollama

import "sync"

// BackendHolder owns the resolved backend base URL. It is the only shared
// mutable state in the process: handlers read it, the client sets it after a
// successful probe and clears it on a connection failure. Concurrent callers
// may race between Get and the next Set/Clear; the worst case is a redundant
// probe or one extra failed call, never corruption.
type BackendHolder struct {
	mu  sync.RWMutex
	url string
}

// NewBackendHolder creates an empty holder.
func NewBackendHolder() *BackendHolder {
	return &BackendHolder{}
}

// Get returns the cached base URL and whether one is set.
func (h *BackendHolder) Get() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.url, h.url != ""
}

// Set stores a base URL as the trusted backend address.
func (h *BackendHolder) Set(url string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.url = url
}

// Clear drops the cached address so the next call re-probes.
func (h *BackendHolder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.url = ""
}
