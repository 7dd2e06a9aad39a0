package varstars

import (
	"sync"

	"github.com/agentstation/varstars/pkg/records"
)

// Hook function types for conversion events
type (
	// RecordRejectedHook is called for every catalog field that could not be
	// decoded.
	RecordRejectedHook func(d records.Diagnostic)

	// UnmatchedHook is called for every Krakow record no GCVS record consumed.
	UnmatchedHook func(rec records.KrakowRecord)
)

// hooks manages event callbacks for a conversion
type hooks struct {
	mu               sync.RWMutex
	onRecordRejected []RecordRejectedHook
	onUnmatched      []UnmatchedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnRecordRejected registers a callback for decode diagnostics
func (h *hooks) OnRecordRejected(fn RecordRejectedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRecordRejected = append(h.onRecordRejected, fn)
}

// OnUnmatched registers a callback for unmatched Krakow records
func (h *hooks) OnUnmatched(fn UnmatchedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnmatched = append(h.onUnmatched, fn)
}

// reporter returns a records.Reporter that fans diagnostics out to the
// registered hooks.
func (h *hooks) reporter() records.Reporter {
	return func(d records.Diagnostic) {
		h.mu.RLock()
		defer h.mu.RUnlock()
		for _, hook := range h.onRecordRejected {
			hook(d)
		}
	}
}

// triggerUnmatched calls the unmatched hooks for each record in order
func (h *hooks) triggerUnmatched(unmatched []records.KrakowRecord) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, rec := range unmatched {
		for _, hook := range h.onUnmatched {
			hook(rec)
		}
	}
}
