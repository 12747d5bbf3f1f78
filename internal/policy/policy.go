// Package policy implements ADSC's scoring and usability policy: pure
// functions mapping a slot's tracker state to a numeric RAT/signal
// score and a usable-state rank. Nothing here touches the Host or the
// Switcher; every function is a deterministic projection of its
// arguments.
package policy

import "github.com/emperorhan/auto-data-switch-controller/internal/domain/model"

// Scorer supplies the one host-dependent value the policy needs: the
// opaque, non-negative score the host assigns to a (displayInfo,
// signalStrength) pair. It is one of the two capabilities this package
// borrows from the host; RoamingEnabler is the other.
type Scorer interface {
	AutoDataSwitchScore(display model.DisplayInfo, signal model.SignalStrength) int
}

// RoamingEnabler reports whether the owner of a slot has data roaming
// enabled, needed to resolve UsableState for a Roaming slot.
type RoamingEnabler interface {
	DataRoamingEnabled(slot model.SlotId) bool
}

// Score returns 0 if status is not in service, else the host's
// opaque score for its current display info and signal strength.
func Score(scorer Scorer, status *model.PhoneSignalStatus) int {
	if !status.RegState.InService() {
		return 0
	}
	return scorer.AutoDataSwitchScore(status.DisplayInfo, status.SignalStrength)
}

// Usable maps a tracker's registration state to an UsableState rank:
// Home maps to HomeUsable; Roaming maps to RoamingEnabled if the
// slot's owner has data roaming enabled, else NotUsable; every other
// state maps to NotUsable.
func Usable(roaming RoamingEnabler, status *model.PhoneSignalStatus) model.UsableState {
	switch status.RegState {
	case model.Home:
		return model.HomeUsable
	case model.Roaming:
		if roaming.DataRoamingEnabled(status.SlotId) {
			return model.RoamingEnabled
		}
		return model.NotUsable
	default:
		return model.NotUsable
	}
}

// HigherScoreCandidate is the cheap prefilter used by the event router
// to suppress unnecessary evaluations on noisy signal-strength
// updates: given the current host-preferred slot p, return any slot
// i != p whose score exceeds p's score by more than scoreTolerance;
// else model.InvalidSlot. If p itself is invalid, always returns
// InvalidSlot.
func HigherScoreCandidate(scorer Scorer, phones []*model.PhoneSignalStatus, preferred model.SlotId, scoreTolerance int) model.SlotId {
	if preferred == model.InvalidSlot {
		return model.InvalidSlot
	}
	var preferredStatus *model.PhoneSignalStatus
	for _, p := range phones {
		if p.SlotId == preferred {
			preferredStatus = p
			break
		}
	}
	if preferredStatus == nil {
		return model.InvalidSlot
	}
	preferredScore := Score(scorer, preferredStatus)
	for _, p := range phones {
		if p.SlotId == preferred {
			continue
		}
		if Score(scorer, p)-preferredScore > scoreTolerance {
			return p.SlotId
		}
	}
	return model.InvalidSlot
}
