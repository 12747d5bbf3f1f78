package engine

import (
	"context"
	"sort"
	"strconv"

	"github.com/emperorhan/auto-data-switch-controller/internal/decisionlog"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/event"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
	"github.com/emperorhan/auto-data-switch-controller/internal/metrics"
	"github.com/emperorhan/auto-data-switch-controller/internal/policy"
	"github.com/emperorhan/auto-data-switch-controller/internal/retry"
	"github.com/emperorhan/auto-data-switch-controller/internal/stability"
)

// evaluate is the main decision routine (spec.md §4.3), invoked at
// most once per coalesced batch of ingress events. Fast exits: the
// feature is disabled, fewer than two subscriptions are active, or
// the default-data slot can't be resolved.
func (e *Engine) evaluate(reason event.Reason) {
	if !e.cfg.FeatureEnabled() {
		return
	}

	subs := e.host.ActiveSubscriptions()
	if len(subs) < 2 {
		return
	}

	defaultSlot, ok := e.resolveDefaultSlot()
	if !ok {
		e.logger.Warn("cannot resolve default data slot, aborting evaluation", "reason", reason.String())
		return
	}

	_, end := e.startSpan(context.Background(), reason)
	defer end()

	preferred := e.host.PreferredDataSlot()
	if preferred == defaultSlot {
		e.evaluateCaseA(reason, defaultSlot)
	} else {
		e.evaluateCaseB(reason, defaultSlot, preferred)
	}
}

func (e *Engine) resolveDefaultSlot() (model.SlotId, bool) {
	subId := e.host.DefaultDataSubId()
	if subId < 0 {
		return model.InvalidSlot, false
	}
	return e.host.SlotForSubId(subId)
}

// sortedSlots returns every tracked slot id in ascending order — the
// stable tie-break spec.md §4.3 requires for candidate enumeration.
func (e *Engine) sortedSlots() []model.SlotId {
	slots := make([]model.SlotId, 0, len(e.phones))
	for s := range e.phones {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// evaluateCaseA handles "currently on default; consider switching
// away" (spec.md §4.3 Case A).
func (e *Engine) evaluateCaseA(reason event.Reason, defaultSlot model.SlotId) {
	candidate := e.switchCandidate(defaultSlot)
	if candidate == model.InvalidSlot {
		e.cancelAnyPendingSwitch(reason)
		return
	}
	e.armStability(reason, candidate, e.cfg.RequirePing)
}

func (e *Engine) switchCandidate(defaultSlot model.SlotId) model.SlotId {
	if !e.host.UserDataEnabled(defaultSlot) || e.defaultOnNonCellular {
		return model.InvalidSlot
	}

	d := e.phones[defaultSlot]
	if d == nil {
		return model.InvalidSlot
	}

	if e.cfg.AllowRoamingSwitch {
		if !e.cfg.ScoreSwitchEnabled() && policy.Usable(e.host, d) == model.HomeUsable {
			return model.InvalidSlot
		}
	} else {
		if !e.cfg.ScoreSwitchEnabled() && d.RegState.InService() {
			return model.InvalidSlot
		}
	}

	for _, i := range e.sortedSlots() {
		if i == defaultSlot {
			continue
		}
		candidateStatus := e.phones[i]
		if !e.slotBeatsDefault(candidateStatus, d) {
			continue
		}
		if e.host.DataAllowed(i) {
			return i
		}
	}
	return model.InvalidSlot
}

func (e *Engine) slotBeatsDefault(candidate, def *model.PhoneSignalStatus) bool {
	if e.cfg.AllowRoamingSwitch {
		uCandidate := policy.Usable(e.host, candidate)
		uDefault := policy.Usable(e.host, def)
		if uCandidate > uDefault {
			return true
		}
		if e.cfg.ScoreSwitchEnabled() && uCandidate == uDefault && uCandidate != model.NotUsable {
			return policy.Score(e.host, candidate)-policy.Score(e.host, def) > e.cfg.ScoreTolerance
		}
		return false
	}

	// Legacy path. switchCandidate already guaranteed score-based
	// switching is enabled whenever def is in service (the guard
	// above returns early otherwise), so no need to recheck it here.
	if policy.Usable(e.host, candidate) != model.HomeUsable {
		return false
	}
	if def.RegState.InService() {
		return policy.Score(e.host, candidate)-policy.Score(e.host, def) > e.cfg.ScoreTolerance
	}
	return true
}

// evaluateCaseB handles "currently on backup; consider switching
// back" (spec.md §4.3 Case B).
func (e *Engine) evaluateCaseB(reason event.Reason, defaultSlot, preferred model.SlotId) {
	if !e.host.UserDataEnabled(defaultSlot) || !e.host.DataAllowed(preferred) {
		e.switcher.ImmediatelySwitchTo(model.DefaultSlotIndex, event.ReasonDataSettingsChanged)
		e.recordDecision(reason, decisionlog.OutcomeImmediate, model.DefaultSlotIndex, "user data disabled on default or backup no longer allowed")
		return
	}

	d := e.phones[defaultSlot]
	p := e.phones[preferred]
	if d == nil || p == nil {
		e.cancelAnyPendingSwitch(reason)
		return
	}

	backToDefault, needValidation := e.decideBackToDefault(d, p)
	if !backToDefault {
		e.cancelAnyPendingSwitch(reason)
		return
	}
	e.armStability(reason, model.DefaultSlotIndex, needValidation)
}

func (e *Engine) decideBackToDefault(d, p *model.PhoneSignalStatus) (backToDefault, needValidation bool) {
	if e.defaultOnNonCellular {
		return true, false
	}

	if e.cfg.AllowRoamingSwitch {
		uP := policy.Usable(e.host, p)
		uD := policy.Usable(e.host, d)
		switch {
		case uP < uD:
			return true, uP != model.NotUsable && e.cfg.RequirePing
		case uP == uD:
			if uP == model.NotUsable {
				return true, false
			}
			if e.cfg.ScoreSwitchEnabled() && policy.Score(e.host, d)-policy.Score(e.host, p) > e.cfg.ScoreTolerance {
				return true, e.cfg.RequirePing
			}
			if !e.cfg.ScoreSwitchEnabled() {
				return true, e.cfg.RequirePing
			}
			return false, false
		default:
			return false, false
		}
	}

	// Legacy path.
	if p.RegState != model.Home {
		return true, false
	}
	if e.cfg.ScoreSwitchEnabled() && policy.Score(e.host, d)-policy.Score(e.host, p) > e.cfg.ScoreTolerance {
		return true, e.cfg.RequirePing
	}
	if d.RegState.InService() {
		return true, e.cfg.RequirePing
	}
	return false, false
}

// armStability arms the stability timer for target, updating
// selected_target (spec.md §4.4). Identity-based dedup inside
// stability.Timer handles the re-request-preserves-deadline rule.
func (e *Engine) armStability(reason event.Reason, target model.SlotId, needValidation bool) {
	e.selectedTarget = target
	id := stability.Identity{Target: target, NeedValidation: needValidation}
	e.stabilityTimer.Arm(id, e.onStabilityExpire)
	metrics.StabilityArmedTotal.WithLabelValues(strconv.FormatBool(needValidation)).Inc()
	e.recordDecision(reason, decisionlog.OutcomeArmed, target, "")
}

// cancelAnyPendingSwitch implements spec.md §4.4's cancellation
// totality law: clears selected_target, resets the retry counter,
// cancels the timer, and tells the Switcher to drop anything in
// flight.
func (e *Engine) cancelAnyPendingSwitch(reason event.Reason) {
	e.selectedTarget = model.InvalidSlot
	e.retryCounter.Reset()
	e.stabilityTimer.Cancel()
	e.switcher.CancelPendingValidation()
	metrics.StabilityCancelledTotal.Inc()
	e.recordDecision(reason, decisionlog.OutcomeCancelled, model.InvalidSlot, "")
}

// onStabilityExpire is invoked by stability.Timer's own goroutine. It
// must not touch Engine state directly — only the serial loop may —
// so it posts a closure through the internal channel, the one
// thread-safe enqueue point spec.md §5 calls for.
func (e *Engine) onStabilityExpire(id stability.Identity) {
	e.internal <- func() { e.handleStabilityExpire(id) }
}

func (e *Engine) handleStabilityExpire(id stability.Identity) {
	e.switcher.RequireValidation(id.Target, id.NeedValidation)
	e.selectedTarget = model.InvalidSlot
	metrics.StabilityFiredTotal.Inc()
	e.recordDecision(event.ReasonRetryValidation, decisionlog.OutcomeValidated, id.Target, "")
}

// handleValidationFailure implements the retry/backoff discipline of
// spec.md §4.4/§7: schedule Evaluate(RetryValidation) with exponential
// backoff up to max_validation_retries, then silently give up. err is
// classified for metrics/logging only.
func (e *Engine) handleValidationFailure(err error) {
	metrics.ValidationFailuresTotal.WithLabelValues(string(retry.Classify(err))).Inc()

	delay, shouldRetry := e.retryCounter.Fail(e.cfg.StabilityDwell)
	if !shouldRetry {
		metrics.RetriesExhaustedTotal.Inc()
		e.recordDecision(event.ReasonRetryValidation, decisionlog.OutcomeRetryGaveUp, model.InvalidSlot, "")
		return
	}
	metrics.RetriesScheduledTotal.Inc()
	e.recordDecision(event.ReasonRetryValidation, decisionlog.OutcomeRetryFailed, model.InvalidSlot, strconv.Itoa(e.retryCounter.Count())+" "+delay.String())
	e.scheduleRetry(delay)
}
