package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

type recordingChannel struct {
	posts     int
	cancels   int
	returnErr error
}

func (r *recordingChannel) Post(_ context.Context, _ Notification) error {
	r.posts++
	return r.returnErr
}

func (r *recordingChannel) Cancel(_ context.Context) { r.cancels++ }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOneShotNotifier_PostsOnceForAutoSwitch(t *testing.T) {
	ch := &recordingChannel{}
	n := NewOneShotNotifier(testLogger(), ch)

	n.OnAutoSwitch(context.Background(), true, false, Notification{Target: 1})
	assert.True(t, n.Displayed())
	assert.Equal(t, 1, ch.posts)
	assert.Equal(t, 1, ch.cancels)

	// A second auto-switch never posts again.
	n.OnAutoSwitch(context.Background(), true, false, Notification{Target: 2})
	assert.Equal(t, 1, ch.posts)
	assert.Equal(t, 2, ch.cancels, "cancel always runs first, even when already displayed")
}

func TestOneShotNotifier_SkipsUserInitiatedSwitch(t *testing.T) {
	ch := &recordingChannel{}
	n := NewOneShotNotifier(testLogger(), ch)

	n.OnAutoSwitch(context.Background(), false, false, Notification{Target: 1})
	assert.False(t, n.Displayed())
	assert.Equal(t, 0, ch.posts)
}

func TestOneShotNotifier_SkipsOpportunisticSubscription(t *testing.T) {
	ch := &recordingChannel{}
	n := NewOneShotNotifier(testLogger(), ch)

	n.OnAutoSwitch(context.Background(), true, true, Notification{Target: 1})
	assert.False(t, n.Displayed())
	assert.Equal(t, 0, ch.posts)
}

func TestOneShotNotifier_NoopChannelNeverErrors(t *testing.T) {
	n := NewOneShotNotifier(testLogger(), NoopChannel{})
	n.OnAutoSwitch(context.Background(), true, false, Notification{Target: model.DefaultSlotIndex})
	assert.True(t, n.Displayed())
}
