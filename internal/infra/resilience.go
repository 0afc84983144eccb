// Package infra provides shared infrastructure for the Freshdesk Solutions client:
// the one-way rate-limit gate and request deduplication.
package infra

import (
	"context"
	"sync"
	"time"
)

// RequestDeduplicator coalesces identical in-flight requests to reduce API load.
// When multiple goroutines request the same data simultaneously, only one request
// is made and all waiters receive the same result.
type RequestDeduplicator struct {
	mu       sync.Mutex
	inflight map[string]*inflightRequest
}

// inflightRequest tracks a request in progress with waiters
type inflightRequest struct {
	done   chan struct{}
	result interface{}
	err    error
	count  int // Number of waiters for metrics
}

// NewRequestDeduplicator creates a new request deduplicator
func NewRequestDeduplicator() *RequestDeduplicator {
	return &RequestDeduplicator{
		inflight: make(map[string]*inflightRequest),
	}
}

// Do executes fn only if no identical request (by key) is in flight.
// If a request with the same key is already running, waits for its result.
// Returns the result, whether it was shared from another request, and any error.
func (d *RequestDeduplicator) Do(ctx context.Context, key string, fn func() (interface{}, error)) (interface{}, bool, error) {
	d.mu.Lock()

	// Check if request is already in flight
	if req, ok := d.inflight[key]; ok {
		req.count++
		d.mu.Unlock()

		// Wait for the in-flight request to complete
		select {
		case <-req.done:
			return req.result, true, req.err
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}

	// Create new in-flight request
	req := &inflightRequest{
		done:  make(chan struct{}),
		count: 1,
	}
	d.inflight[key] = req
	d.mu.Unlock()

	// Execute the actual request
	req.result, req.err = fn()

	// Signal completion and cleanup
	close(req.done)

	d.mu.Lock()
	delete(d.inflight, key)
	d.mu.Unlock()

	return req.result, false, req.err
}

// Stats returns the current number of in-flight requests
func (d *RequestDeduplicator) Stats() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.inflight)
}

// RateLimitGate is a one-way circuit breaker for write operations. Once the
// remote API answers 429, the gate trips and stays tripped for the lifetime
// of the owning client. There is no reset and no backoff timer: the caller
// decides when to resume by creating a new client.
type RateLimitGate struct {
	mu sync.RWMutex

	state      GateState
	trippedAt  time.Time
	retryAfter string // Retry-After header from the 429 that tripped the gate
}

// GateState represents the current state of the rate-limit gate
type GateState int

const (
	GateOpen    GateState = iota // Normal operation, requests allowed
	GateTripped                  // Rate limited, write requests skipped
)

func (s GateState) String() string {
	switch s {
	case GateOpen:
		return "open"
	case GateTripped:
		return "tripped"
	default:
		return "unknown"
	}
}

// NewRateLimitGate creates a gate in the open state
func NewRateLimitGate() *RateLimitGate {
	return &RateLimitGate{state: GateOpen}
}

// Allow reports whether a write request may proceed
func (g *RateLimitGate) Allow() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state == GateOpen
}

// Trip moves the gate to the tripped state, recording the Retry-After value
// from the rate-limit response. The first trip wins; later calls keep the
// originally captured value.
func (g *RateLimitGate) Trip(retryAfter string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == GateTripped {
		return
	}
	g.state = GateTripped
	g.trippedAt = time.Now()
	g.retryAfter = retryAfter
}

// State returns the current gate state
func (g *RateLimitGate) State() GateState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Stats returns gate statistics for callers deciding on a retry policy
func (g *RateLimitGate) Stats() RateLimitGateStats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return RateLimitGateStats{
		State:      g.state.String(),
		TrippedAt:  g.trippedAt,
		RetryAfter: g.retryAfter,
	}
}

// RateLimitGateStats contains rate-limit gate statistics
type RateLimitGateStats struct {
	State      string    `json:"state"`
	TrippedAt  time.Time `json:"tripped_at,omitempty"`
	RetryAfter string    `json:"retry_after,omitempty"`
}
