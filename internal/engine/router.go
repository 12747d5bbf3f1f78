package engine

import (
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/domain/event"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
	"github.com/emperorhan/auto-data-switch-controller/internal/policy"
)

// applyRaw updates tracker/runtime state for a single ingress event
// and, per spec.md §4.1's per-slot update semantics, marks an
// evaluation as pending when the event could plausibly change the
// outcome. It never itself runs the evaluation — that happens once
// per coalesced batch in processBatch.
func (e *Engine) applyRaw(ev event.Event) {
	switch ev.Kind {
	case event.KindServiceStateChanged:
		e.applyServiceStateChanged(ev.Slot)
	case event.KindDisplayInfoChanged:
		e.applyDisplayInfoChanged(ev.Slot)
	case event.KindSignalStrengthChanged:
		e.applySignalStrengthChanged(ev.Slot)
	case event.KindDefaultNetworkChanged:
		e.applyDefaultNetworkChanged(ev.Capabilities)
	case event.KindDataSettingsChanged:
		e.requestEvaluate(event.ReasonDataSettingsChanged)
	case event.KindRetryValidation:
		e.requestEvaluate(event.ReasonRetryValidation)
	case event.KindSimLoaded:
		e.requestEvaluate(event.ReasonSimLoaded)
	case event.KindVoiceCallEnded:
		e.requestEvaluate(event.ReasonVoiceCallEnded)
	case event.KindSubscriptionsChanged:
		e.applySubscriptionsChanged()
	case event.KindMultiSimConfigChanged:
		e.applyMultiSimConfigChanged(ev.ModemCount)
	case event.KindEvaluate:
		e.requestEvaluate(ev.Reason)
	}
}

func (e *Engine) applyServiceStateChanged(slot model.SlotId) {
	st, ok := e.phones[slot]
	if !ok {
		e.logger.Debug("service state change for unknown slot, dropping", "slot", slot.String())
		return
	}
	if st.SetRegState(e.host.RegistrationState(slot)) {
		e.requestEvaluate(event.ReasonServiceStateChanged)
	}
}

func (e *Engine) applyDisplayInfoChanged(slot model.SlotId) {
	st, ok := e.phones[slot]
	if !ok {
		e.logger.Debug("display info change for unknown slot, dropping", "slot", slot.String())
		return
	}
	st.DisplayInfo = e.host.DisplayInfo(slot)
	e.maybeEvaluateOnScorePrefilter(event.ReasonDisplayInfoChanged)
}

func (e *Engine) applySignalStrengthChanged(slot model.SlotId) {
	st, ok := e.phones[slot]
	if !ok {
		e.logger.Debug("signal strength change for unknown slot, dropping", "slot", slot.String())
		return
	}
	st.SignalStrength = e.host.SignalStrength(slot)
	e.maybeEvaluateOnScorePrefilter(event.ReasonSignalStrengthChanged)
}

// maybeEvaluateOnScorePrefilter implements spec.md §4.1's cheap
// prefilter: a display-info/signal update only triggers evaluation if
// the higher-scoring candidate would now differ from selected_target.
func (e *Engine) maybeEvaluateOnScorePrefilter(reason event.Reason) {
	phones := make([]*model.PhoneSignalStatus, 0, len(e.phones))
	for _, st := range e.phones {
		phones = append(phones, st)
	}
	candidate := policy.HigherScoreCandidate(e.host, phones, e.host.PreferredDataSlot(), e.cfg.ScoreTolerance)
	if candidate != e.selectedTarget {
		e.requestEvaluate(reason)
	}
}

// applyDefaultNetworkChanged implements spec.md §4.5.
func (e *Engine) applyDefaultNetworkChanged(caps *event.NetworkCapabilities) {
	if caps == nil {
		e.defaultOnNonCellular = false
		e.requestEvaluate(event.ReasonDefaultNetworkLost)
		return
	}

	e.defaultOnNonCellular = !caps.HasCellular
	if e.defaultOnNonCellular && e.host.AutoSelectedDataSubId() >= 0 {
		e.requestEvaluate(event.ReasonDefaultNetworkChanged)
	}
}

// applySubscriptionsChanged recomputes which slots are subscribed
// (spec.md §4.1 subscription lifecycle). If fewer than two active,
// visible slots exist, none are listened to.
func (e *Engine) applySubscriptionsChanged() {
	subs := e.host.ActiveSubscriptions()

	visibleCount := 0
	for _, s := range subs {
		if s.Visible {
			visibleCount++
		}
	}

	active := make(map[model.SlotId]bool, len(subs))
	if visibleCount >= 2 {
		for _, s := range subs {
			if s.Visible {
				active[s.Slot] = true
			}
		}
	}

	for slot, st := range e.phones {
		want := active[slot]
		if want && !st.Listening {
			st.Listening = true
		} else if !want && st.Listening {
			st.Listening = false
		}
	}

	e.requestEvaluate(event.ReasonSubscriptionsChanged)
}

// applyMultiSimConfigChanged resizes the slot array: slots at or
// beyond n are unsubscribed (kept, in case they reappear, but marked
// not-listening), and every slot in [0, n) is (re-)marked listening —
// a regrow after a shrink must restore Listening on an already-known
// slot, not just on first creation, mirroring the Java original's
// registerAllEventsForPhone being re-run for the whole grown range.
func (e *Engine) applyMultiSimConfigChanged(n int) {
	for slot, st := range e.phones {
		if int(slot) >= n {
			st.Listening = false
		}
	}
	for i := 0; i < n; i++ {
		e.ensureTracker(model.SlotId(i), true).Listening = true
	}
	e.requestEvaluate(event.ReasonMultiSimConfigChanged)
}

// scheduleRetry posts Evaluate(RetryValidation) onto the ingress
// channel after delay — the only timer besides the stability check,
// and the other cross-thread enqueue point in the engine.
func (e *Engine) scheduleRetry(delay time.Duration) {
	time.AfterFunc(delay, func() {
		e.Submit(event.RetryValidation())
	})
}
