package stability

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeStoppable/fakeAfter let tests control exactly when a scheduled
// callback runs instead of sleeping in real time.
type fakeStoppable struct {
	stopped bool
}

func (f *fakeStoppable) Stop() bool {
	was := f.stopped
	f.stopped = true
	return !was
}

type scheduledCall struct {
	delay time.Duration
	fn    func()
	h     *fakeStoppable
}

type fakeScheduler struct {
	mu    sync.Mutex
	calls []*scheduledCall
}

func (s *fakeScheduler) after(d time.Duration, f func()) stoppable {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := &fakeStoppable{}
	s.calls = append(s.calls, &scheduledCall{delay: d, fn: f, h: h})
	return h
}

// fireLatest runs the most recently scheduled, still-pending call.
func (s *fakeScheduler) fireLatest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.calls) - 1; i >= 0; i-- {
		if !s.calls[i].h.stopped {
			s.calls[i].fn()
			return
		}
	}
}

func newTestTimer(dwell time.Duration) (*Timer, *fakeScheduler) {
	sched := &fakeScheduler{}
	tm := New(dwell)
	tm.after = sched.after
	return tm, sched
}

func TestTimer_ArmsAndFires(t *testing.T) {
	tm, sched := newTestTimer(10 * time.Second)

	var fired Identity
	tm.Arm(Identity{Target: 1, NeedValidation: true}, func(id Identity) { fired = id })

	id, armed := tm.Armed()
	assert.True(t, armed)
	assert.Equal(t, Identity{Target: 1, NeedValidation: true}, id)

	sched.fireLatest()
	assert.Equal(t, Identity{Target: 1, NeedValidation: true}, fired)
	_, armed = tm.Armed()
	assert.False(t, armed)
}

// S6 — re-requesting the same identity does not postpone the
// deadline; a different identity cancels and re-arms.
func TestTimer_S6_IdentityDedup(t *testing.T) {
	tm, sched := newTestTimer(10 * time.Second)

	fireCount := 0
	var lastFired Identity
	onExpire := func(id Identity) { fireCount++; lastFired = id }

	tm.Arm(Identity{Target: 1, NeedValidation: true}, onExpire)
	firstDelay := sched.calls[0].delay
	assert.Equal(t, 10*time.Second, firstDelay)

	// Re-request same identity: must not schedule a second timer.
	tm.Arm(Identity{Target: 1, NeedValidation: true}, onExpire)
	assert.Len(t, sched.calls, 1, "same identity must not re-arm")

	// Different identity: cancels the first, arms a new one.
	tm.Arm(Identity{Target: 1, NeedValidation: false}, onExpire)
	assert.Len(t, sched.calls, 2)
	assert.True(t, sched.calls[0].h.stopped, "prior timer must be cancelled")

	sched.fireLatest()
	assert.Equal(t, 1, fireCount)
	assert.Equal(t, Identity{Target: 1, NeedValidation: false}, lastFired)
}

func TestTimer_CancelDisarms(t *testing.T) {
	tm, sched := newTestTimer(time.Second)
	tm.Arm(Identity{Target: 1}, func(Identity) {})
	tm.Cancel()

	_, armed := tm.Armed()
	assert.False(t, armed)
	assert.True(t, sched.calls[0].h.stopped)
}

func TestTimer_NegativeDwellDisablesArming(t *testing.T) {
	tm, sched := newTestTimer(-1)
	tm.Arm(Identity{Target: 1}, func(Identity) {})

	_, armed := tm.Armed()
	assert.False(t, armed)
	assert.Empty(t, sched.calls)
}

func TestTimer_StaleFireIgnored(t *testing.T) {
	tm, sched := newTestTimer(time.Second)
	called := false
	tm.Arm(Identity{Target: 1}, func(Identity) { called = true })
	tm.Cancel()

	// Simulate the old goroutine's callback still running after cancel.
	sched.calls[0].fn()
	assert.False(t, called)
}
