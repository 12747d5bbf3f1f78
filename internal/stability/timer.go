// Package stability implements ADSC's stability-check timer
// (spec.md §4.4): a debounced one-shot timer that only actuates a
// decision once conditions have persisted for a configured dwell
// time, with identity-based deduplication so a repeated request for
// the same (target, need_validation) never postpones the deadline.
package stability

import (
	"sync"
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
)

// Identity is the compound key a stability timer is armed under.
// Re-arming with the same Identity while a timer is already armed is a
// no-op; a different Identity cancels and re-arms.
type Identity struct {
	Target         model.SlotId
	NeedValidation bool
}

// ExpireFunc is invoked exactly once, off the caller's goroutine, when
// an armed timer's dwell elapses without being cancelled or
// re-armed with a different identity.
type ExpireFunc func(Identity)

// afterFunc abstracts time.AfterFunc so tests can supply a fake clock
// without sleeping in real time.
type afterFunc func(d time.Duration, f func()) stoppable

type stoppable interface{ Stop() bool }

// Timer is the single stability-check timer ADSC ever has armed. Its
// zero value is not usable; construct with New.
type Timer struct {
	mu       sync.Mutex
	dwell    time.Duration
	armed    bool
	identity Identity
	pending  stoppable
	after    afterFunc
}

// New creates a stability timer with the given dwell duration. Per
// spec.md §3, a negative dwell means the feature is disabled
// entirely: Arm becomes a no-op and Armed always reports false.
func New(dwell time.Duration) *Timer {
	return &Timer{
		dwell: dwell,
		after: func(d time.Duration, f func()) stoppable { return time.AfterFunc(d, f) },
	}
}

// Arm arms the timer for identity, invoking onExpire when the dwell
// elapses. If a timer with the same identity is already armed, this
// is a no-op (preserves the earliest deadline). Otherwise any armed
// timer is cancelled and a new one is scheduled at now + dwell.
func (t *Timer) Arm(identity Identity, onExpire ExpireFunc) {
	if t.dwell < 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.armed && t.identity == identity {
		return
	}
	t.stopLocked()

	t.identity = identity
	t.armed = true
	t.pending = t.after(t.dwell, func() {
		t.fire(identity, onExpire)
	})
}

func (t *Timer) fire(identity Identity, onExpire ExpireFunc) {
	t.mu.Lock()
	if !t.armed || t.identity != identity {
		t.mu.Unlock()
		return
	}
	t.armed = false
	t.mu.Unlock()

	onExpire(identity)
}

// Cancel disarms any pending timer. It is a no-op if nothing is
// armed.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.armed = false
}

func (t *Timer) stopLocked() {
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

// Armed reports whether a stability timer is currently armed, and for
// which identity.
func (t *Timer) Armed() (Identity, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.identity, t.armed
}
