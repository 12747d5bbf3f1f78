package switcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/decisionlog"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/event"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
	"github.com/emperorhan/auto-data-switch-controller/internal/host"
	"github.com/emperorhan/auto-data-switch-controller/internal/notify"
)

// AuditSink persists one actuation decision durably. Satisfied by
// *postgres.DecisionRepo.
type AuditSink interface {
	Append(ctx context.Context, d decisionlog.Decision) error
}

// FanoutSink publishes one actuation decision for external
// subscribers. Satisfied by *redis.Stream.
type FanoutSink interface {
	PublishDecision(ctx context.Context, d decisionlog.Decision) error
}

// ReferenceSwitcher is ADSC's reference Switcher: it never performs
// the radio switch itself (spec.md's Non-goals reserve that to the
// host's real phone-switching component) but records every actuation
// request, fans it out, and drives the one-shot notification — the
// full set of side effects spec.md §4.6 and §6 assign to the
// Switcher boundary. A real deployment wraps this with (or is
// wrapped by) the host's actual switching logic.
type ReferenceSwitcher struct {
	host     host.Host
	notifier *notify.OneShotNotifier
	logger   *slog.Logger
	audit    AuditSink
	fanout   FanoutSink
}

// Option customizes a ReferenceSwitcher at construction.
type Option func(*ReferenceSwitcher)

// WithAuditSink attaches durable decision persistence.
func WithAuditSink(a AuditSink) Option {
	return func(s *ReferenceSwitcher) { s.audit = a }
}

// WithFanoutSink attaches decision pub/sub fan-out.
func WithFanoutSink(f FanoutSink) Option {
	return func(s *ReferenceSwitcher) { s.fanout = f }
}

// New creates a ReferenceSwitcher bound to h for opportunistic-slot
// lookups and notifier for the first-switch notification.
func New(h host.Host, notifier *notify.OneShotNotifier, logger *slog.Logger, opts ...Option) *ReferenceSwitcher {
	s := &ReferenceSwitcher{
		host:     h,
		notifier: notifier,
		logger:   logger.With("component", "switcher"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ReferenceSwitcher) RequireValidation(target model.SlotId, needValidation bool) {
	s.logger.Info("validation requested", "target", target.String(), "need_validation", needValidation)
	s.record(event.ReasonRetryValidation, decisionlog.OutcomeValidated, target, "require_validation")
	s.notify(target)
}

func (s *ReferenceSwitcher) ImmediatelySwitchTo(target model.SlotId, reason event.Reason) {
	s.logger.Info("immediate switch requested", "target", target.String(), "reason", reason.String())
	s.record(reason, decisionlog.OutcomeImmediate, target, "immediate_switch")
	s.notify(target)
}

func (s *ReferenceSwitcher) CancelPendingValidation() {
	s.logger.Info("pending validation cancelled")
}

// notify fires the one-shot notification for a non-default target,
// looking up the target's opportunistic flag from the host. Reverts
// to the default subscription (model.DefaultSlotIndex) never
// notify — there's nothing for the user to act on.
func (s *ReferenceSwitcher) notify(target model.SlotId) {
	if s.notifier == nil || target == model.DefaultSlotIndex || target == model.InvalidSlot {
		return
	}

	opportunistic := false
	for _, sub := range s.host.ActiveSubscriptions() {
		if sub.Slot == target {
			opportunistic = sub.Opportunistic
			break
		}
	}

	s.notifier.OnAutoSwitch(context.Background(), true, opportunistic, notify.Notification{
		Target:       target,
		SettingsLink: "settings://network/mobile-data",
	})
}

func (s *ReferenceSwitcher) record(reason event.Reason, outcome decisionlog.Outcome, target model.SlotId, detail string) {
	d := decisionlog.Decision{
		At:      time.Now().UTC(),
		Reason:  reason,
		Outcome: outcome,
		Target:  target,
		Detail:  detail,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.audit != nil {
		if err := s.audit.Append(ctx, d); err != nil {
			s.logger.Warn("audit sink append failed", "error", err)
		}
	}
	if s.fanout != nil {
		if err := s.fanout.PublishDecision(ctx, d); err != nil {
			s.logger.Warn("fanout sink publish failed", "error", err)
		}
	}
}
