package host

import (
	"sync"

	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
)

// SlotState is the mutable per-slot state SimHost serves to the
// engine. Tests and cmd/simulate mutate it directly through the
// setter methods below; SimHost itself never changes a slot's state
// on its own.
type SlotState struct {
	SubId                int
	Visible              bool
	Opportunistic        bool
	RegState             model.RegState
	Display              model.DisplayInfo
	Signal                model.SignalStrength
	DataRoamingEnabled   bool
	UserDataEnabled      bool
	DataAllowed          bool
}

// SimHost is an in-memory implementation of host.Host: the
// "simulated host" spec.md §6 calls for in place of the real
// telephony framework, driven by explicit setters rather than actual
// radio events. Both cmd/adscd (seeded from fixed config at startup)
// and cmd/simulate (driven by a YAML scenario file) share this type,
// following the teacher's repository-interface style of giving every
// store a single concrete, swappable implementation.
type SimHost struct {
	mu sync.RWMutex

	cfg model.Config

	slots             map[model.SlotId]*SlotState
	defaultDataSubId  int
	preferredDataSlot model.SlotId
	autoSelectedSubId int

	// scoreFn computes AutoDataSwitchScore. Defaults to a simple
	// signal-level passthrough; WithScoreFunc replaces it (cmd/simulate
	// and cmd/adscd keep the default).
	scoreFn func(model.DisplayInfo, model.SignalStrength) int
}

// NewSimHost creates an empty simulated host with the given
// configuration. Slots are added via AddSlot.
func NewSimHost(cfg model.Config) *SimHost {
	return &SimHost{
		cfg:               cfg,
		slots:             make(map[model.SlotId]*SlotState),
		defaultDataSubId:  -1,
		preferredDataSlot: model.InvalidSlot,
		autoSelectedSubId: -1,
		scoreFn: func(_ model.DisplayInfo, signal model.SignalStrength) int {
			return signal.Level
		},
	}
}

// WithScoreFunc overrides the default score function.
func (h *SimHost) WithScoreFunc(fn func(model.DisplayInfo, model.SignalStrength) int) *SimHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.scoreFn = fn
	return h
}

// AddSlot registers a slot with its subscription id and initial
// state. visible/userDataEnabled/dataAllowed default true; every other
// field defaults to its zero value (NotRegistered, not opportunistic).
func (h *SimHost) AddSlot(slot model.SlotId, subId int) *SimHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.slots[slot] = &SlotState{
		SubId:           subId,
		Visible:         true,
		UserDataEnabled: true,
		DataAllowed:     true,
	}
	return h
}

// SetDefaultDataSubId sets the user-selected default-data subscription.
func (h *SimHost) SetDefaultDataSubId(subId int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.defaultDataSubId = subId
}

// SetPreferredDataSlot records which slot the Switcher currently
// routes data through. Only callers set it (cmd/adscd and
// cmd/simulate seed it at startup); the reference Switcher never
// changes it.
func (h *SimHost) SetPreferredDataSlot(slot model.SlotId) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.preferredDataSlot = slot
}

// SetAutoSelectedDataSubId records the subscription id ADSC most
// recently selected.
func (h *SimHost) SetAutoSelectedDataSubId(subId int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.autoSelectedSubId = subId
}

// MutateSlot applies fn to slot's state under lock. It is a no-op if
// the slot is unknown.
func (h *SimHost) MutateSlot(slot model.SlotId, fn func(*SlotState)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if st, ok := h.slots[slot]; ok {
		fn(st)
	}
}

func (h *SimHost) slot(s model.SlotId) SlotState {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if st, ok := h.slots[s]; ok {
		return *st
	}
	return SlotState{}
}

func (h *SimHost) ActiveSubscriptions() []Subscription {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Subscription, 0, len(h.slots))
	for slot, st := range h.slots {
		out = append(out, Subscription{
			SubId:         st.SubId,
			Slot:          slot,
			Visible:       st.Visible,
			Opportunistic: st.Opportunistic,
		})
	}
	return out
}

func (h *SimHost) DefaultDataSubId() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.defaultDataSubId
}

func (h *SimHost) PreferredDataSlot() model.SlotId {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.preferredDataSlot
}

func (h *SimHost) AutoSelectedDataSubId() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.autoSelectedSubId
}

func (h *SimHost) SlotForSubId(subId int) (model.SlotId, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for slot, st := range h.slots {
		if st.SubId == subId {
			return slot, true
		}
	}
	return model.InvalidSlot, false
}

func (h *SimHost) RegistrationState(slot model.SlotId) model.RegState {
	return h.slot(slot).RegState
}

func (h *SimHost) DisplayInfo(slot model.SlotId) model.DisplayInfo {
	return h.slot(slot).Display
}

func (h *SimHost) SignalStrength(slot model.SlotId) model.SignalStrength {
	return h.slot(slot).Signal
}

func (h *SimHost) DataRoamingEnabled(slot model.SlotId) bool {
	return h.slot(slot).DataRoamingEnabled
}

func (h *SimHost) UserDataEnabled(slot model.SlotId) bool {
	return h.slot(slot).UserDataEnabled
}

func (h *SimHost) DataAllowed(slot model.SlotId) bool {
	return h.slot(slot).DataAllowed
}

func (h *SimHost) AutoDataSwitchScore(display model.DisplayInfo, signal model.SignalStrength) int {
	h.mu.RLock()
	fn := h.scoreFn
	h.mu.RUnlock()
	return fn(display, signal)
}

func (h *SimHost) Config() model.Config {
	return h.cfg
}
