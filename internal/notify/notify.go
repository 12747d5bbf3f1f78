// Package notify implements ADSC's first-switch notification
// side-effect collaborator (spec.md §4.6). It is invoked by the
// Switcher when it actuates a switch and never re-enters the engine.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
)

// Notification describes the one-time notification posted the first
// time ADSC causes a switch for a non-opportunistic subscription.
type Notification struct {
	Target       model.SlotId
	SettingsLink string
}

// Channel delivers a Notification somewhere — to a real push
// notification service, a Slack channel, a generic webhook, or
// nowhere at all (NoopChannel).
type Channel interface {
	Post(ctx context.Context, n Notification) error
}

// Canceler cancels whatever notification is currently displayed for
// this Channel, if any. Channels that don't track presented state can
// satisfy this with a no-op.
type Canceler interface {
	Cancel(ctx context.Context)
}

// OneShotNotifier reproduces the original's exact ordering: any
// currently-posted notification is cancelled unconditionally before
// deciding whether to post a new one, and the notification is posted
// at most once for the lifetime of the controller.
type OneShotNotifier struct {
	channels []Channel
	logger   *slog.Logger

	mu        sync.Mutex
	displayed bool
}

// NewOneShotNotifier creates a notifier fanning out to the given
// channels. Channels that also implement Canceler are cancelled first.
func NewOneShotNotifier(logger *slog.Logger, channels ...Channel) *OneShotNotifier {
	return &OneShotNotifier{
		channels: channels,
		logger:   logger.With("component", "notify"),
	}
}

// OnAutoSwitch is the Switcher's notification hook: called whenever it
// actuates a switch, telling the notifier whether the switch was
// caused by the auto-switch feature (as opposed to a direct user
// action) and whether the target subscription is opportunistic.
func (n *OneShotNotifier) OnAutoSwitch(ctx context.Context, causedByAutoSwitch, opportunistic bool, notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.cancelCurrent(ctx)

	if n.displayed {
		return
	}
	if !causedByAutoSwitch {
		n.logger.Debug("skipping notification for user-initiated switch")
		return
	}
	if opportunistic {
		n.logger.Debug("skipping notification for opportunistic subscription")
		return
	}

	for _, ch := range n.channels {
		if err := ch.Post(ctx, notification); err != nil {
			n.logger.Warn("notification channel post failed", "error", err)
		}
	}
	n.displayed = true
}

func (n *OneShotNotifier) cancelCurrent(ctx context.Context) {
	for _, ch := range n.channels {
		if c, ok := ch.(Canceler); ok {
			c.Cancel(ctx)
		}
	}
}

// Displayed reports whether the one-time notification has already
// been shown.
func (n *OneShotNotifier) Displayed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.displayed
}

// NoopChannel discards every notification. Used when no channel is
// configured.
type NoopChannel struct{}

func (NoopChannel) Post(_ context.Context, _ Notification) error { return nil }
