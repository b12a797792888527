// Package results implements the result sink and the file-backed test
// record source.
package results

import (
	"sync"

	"github.com/gantrybuild/gantry/internal/core/domain"
)

// Holder implements ports.ResultSink with an in-memory value.
type Holder struct {
	mu      sync.RWMutex
	current domain.Result
}

// NewHolder creates a sink starting at SUCCESS.
func NewHolder() *Holder {
	return &Holder{}
}

// Record combines r into the current result, worst wins.
func (h *Holder) Record(r domain.Result) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = h.current.Combine(r)
}

// Current returns the result recorded so far.
func (h *Holder) Current() domain.Result {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Reset restores the sink to SUCCESS for a fresh run.
func (h *Holder) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = domain.ResultSuccess
}
