package engine

import (
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/event"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
)

// PhoneSnapshot is a read-only copy of one slot's tracker state, for
// the debug dump (spec.md §6).
type PhoneSnapshot struct {
	Slot          model.SlotId `json:"slot"`
	RegState      string       `json:"reg_state"`
	Listening     bool         `json:"listening"`
	SignalLevel   int          `json:"signal_level"`
	NetworkType   string       `json:"network_type_override"`
}

// Snapshot is ADSC's debug dump: configuration, retry count, selected
// target, default_on_non_cellular, and each slot's tracker state.
type Snapshot struct {
	Config               model.Config    `json:"config"`
	SelectedTarget        model.SlotId    `json:"selected_target"`
	DefaultOnNonCellular  bool            `json:"default_on_non_cellular"`
	ValidationRetryCount  int             `json:"validation_retry_count"`
	Phones                []PhoneSnapshot `json:"phones"`
	RecentDecisions       []string        `json:"recent_decisions"`
}

// Snapshot posts a closure onto the internal channel so the dump
// reflects a consistent view of engine state — the same cross-thread
// discipline every other external entry point uses — and blocks for
// the result.
func (e *Engine) Snapshot() Snapshot {
	result := make(chan Snapshot, 1)
	e.internal <- func() { result <- e.buildSnapshot() }
	return <-result
}

func (e *Engine) buildSnapshot() Snapshot {
	phones := make([]PhoneSnapshot, 0, len(e.phones))
	for _, slot := range e.sortedSlots() {
		st := e.phones[slot]
		phones = append(phones, PhoneSnapshot{
			Slot:        slot,
			RegState:    st.RegState.String(),
			Listening:   st.Listening,
			SignalLevel: st.SignalStrength.Level,
			NetworkType: st.DisplayInfo.NetworkTypeOverride,
		})
	}

	decisions := e.log.Recent(20)
	recent := make([]string, 0, len(decisions))
	for _, d := range decisions {
		recent = append(recent, d.Reason.String()+" -> "+string(d.Outcome))
	}

	return Snapshot{
		Config:               e.cfg,
		SelectedTarget:       e.selectedTarget,
		DefaultOnNonCellular: e.defaultOnNonCellular,
		ValidationRetryCount: e.retryCounter.Count(),
		Phones:               phones,
		RecentDecisions:      recent,
	}
}

// ForceEvaluate requests an evaluation pass outside the normal trigger
// set — the admin API's force-evaluate operation.
func (e *Engine) ForceEvaluate() {
	e.Submit(event.Evaluate(event.ReasonForced))
}
