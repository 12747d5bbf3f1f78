package switcher

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/emperorhan/auto-data-switch-controller/internal/decisionlog"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/event"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
	"github.com/emperorhan/auto-data-switch-controller/internal/host"
	"github.com/emperorhan/auto-data-switch-controller/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAuditSink struct {
	decisions []decisionlog.Decision
}

func (f *fakeAuditSink) Append(_ context.Context, d decisionlog.Decision) error {
	f.decisions = append(f.decisions, d)
	return nil
}

type fakeFanoutSink struct {
	decisions []decisionlog.Decision
}

func (f *fakeFanoutSink) PublishDecision(_ context.Context, d decisionlog.Decision) error {
	f.decisions = append(f.decisions, d)
	return nil
}

type recordingChannel struct {
	posted []notify.Notification
}

func (r *recordingChannel) Post(_ context.Context, n notify.Notification) error {
	r.posted = append(r.posted, n)
	return nil
}

func TestReferenceSwitcher_ImmediatelySwitchTo_RecordsAndNotifies(t *testing.T) {
	h := host.NewSimHost(model.Config{}).AddSlot(model.SlotId(1), 2)
	ch := &recordingChannel{}
	notifier := notify.NewOneShotNotifier(testLogger(), ch)
	audit := &fakeAuditSink{}
	fanout := &fakeFanoutSink{}

	sw := New(h, notifier, testLogger(), WithAuditSink(audit), WithFanoutSink(fanout))
	sw.ImmediatelySwitchTo(model.SlotId(1), event.ReasonDataSettingsChanged)

	require.Len(t, audit.decisions, 1)
	assert.Equal(t, decisionlog.OutcomeImmediate, audit.decisions[0].Outcome)
	require.Len(t, fanout.decisions, 1)
	require.Len(t, ch.posted, 1)
	assert.Equal(t, model.SlotId(1), ch.posted[0].Target)
}

func TestReferenceSwitcher_SwitchToDefault_NeverNotifies(t *testing.T) {
	h := host.NewSimHost(model.Config{})
	ch := &recordingChannel{}
	notifier := notify.NewOneShotNotifier(testLogger(), ch)
	sw := New(h, notifier, testLogger())

	sw.ImmediatelySwitchTo(model.DefaultSlotIndex, event.ReasonDataSettingsChanged)

	assert.Empty(t, ch.posted)
}

func TestReferenceSwitcher_RequireValidation_SuppressesForOpportunisticSlot(t *testing.T) {
	h := host.NewSimHost(model.Config{}).AddSlot(model.SlotId(1), 2)
	h.MutateSlot(model.SlotId(1), func(s *host.SlotState) { s.Opportunistic = true })
	ch := &recordingChannel{}
	notifier := notify.NewOneShotNotifier(testLogger(), ch)
	sw := New(h, notifier, testLogger())

	sw.RequireValidation(model.SlotId(1), true)

	assert.Empty(t, ch.posted)
}

func TestReferenceSwitcher_CancelPendingValidation_DoesNotPanicWithoutSinks(t *testing.T) {
	h := host.NewSimHost(model.Config{})
	sw := New(h, notify.NewOneShotNotifier(testLogger(), notify.NoopChannel{}), testLogger())
	assert.NotPanics(t, func() { sw.CancelPendingValidation() })
}
