package service

import (
	"errors"
	"sync"
)

// ErrSuperseded is returned when a newer request for the same plan started
// while this one was waiting on the assistant. The stale result is
// discarded without touching the plan.
var ErrSuperseded = errors.New("request superseded by a newer one")

// requestTracker hands out a monotonically increasing generation per plan.
// A response only commits if its generation is still the latest.
type requestTracker struct {
	mu   sync.Mutex
	gens map[string]uint64
}

func newRequestTracker() *requestTracker {
	return &requestTracker{gens: make(map[string]uint64)}
}

func (t *requestTracker) begin(planID string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gens[planID]++
	return t.gens[planID]
}

func (t *requestTracker) isCurrent(planID string, gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gens[planID] == gen
}
