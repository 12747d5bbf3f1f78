// Package decisionlog restores the original AutoDataSwitchController's
// bounded LocalLog(128) as a structured ring buffer of decision
// records, surfaced through the admin debug dump. The engine's log is
// kept in memory only; the Postgres audit table and the Redis fan-out
// receive the reference Switcher's own records, which reuse the
// Decision type.
package decisionlog

import (
	"container/list"
	"sync"
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/domain/event"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
)

// DefaultCapacity mirrors the original's LocalLog(128).
const DefaultCapacity = 128

// Outcome classifies what an evaluation pass decided to do.
type Outcome string

const (
	OutcomeArmed        Outcome = "armed_stability_check"
	OutcomeCancelled    Outcome = "cancelled_pending_switch"
	OutcomeImmediate    Outcome = "immediate_switch"
	OutcomeNoOp         Outcome = "no_op"
	OutcomeValidated    Outcome = "validation_requested"
	OutcomeRetryFailed  Outcome = "validation_failed_retry_scheduled"
	OutcomeRetryGaveUp  Outcome = "validation_failed_retries_exhausted"
)

// Decision is one entry in the ring buffer: enough context to
// reconstruct why the engine did what it did without re-running it.
type Decision struct {
	At      time.Time
	Reason  event.Reason
	Outcome Outcome
	Target  model.SlotId
	Detail  string
}

// Log is a fixed-capacity ring buffer of Decision records, generic
// over nothing but shaped exactly like the teacher's LRU cache: a
// doubly linked list for O(1) push-front/evict-oldest, guarded by a
// mutex because the admin HTTP server reads it from a different
// goroutine than the engine's serial loop.
type Log struct {
	mu       sync.RWMutex
	capacity int
	order    *list.List
}

// New creates a decision log with the given capacity.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity, order: list.New()}
}

// Record appends a decision, evicting the oldest entry if the log is
// at capacity.
func (l *Log) Record(d Decision) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.order.PushFront(d)
	if l.order.Len() > l.capacity {
		l.order.Remove(l.order.Back())
	}
}

// Recent returns up to n decisions, newest first. n <= 0 means "all".
func (l *Log) Recent(n int) []Decision {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 || n > l.order.Len() {
		n = l.order.Len()
	}
	out := make([]Decision, 0, n)
	for e := l.order.Front(); e != nil && len(out) < n; e = e.Next() {
		out = append(out, e.Value.(Decision))
	}
	return out
}

// Len reports how many decisions are currently buffered.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.order.Len()
}
