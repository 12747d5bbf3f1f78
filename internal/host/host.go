// Package host defines the capabilities ADSC borrows from its host
// environment: the pull-style queries enumerated in spec.md §6. The
// host outlives ADSC; these interfaces are borrowed capabilities, not
// owned resources.
package host

import "github.com/emperorhan/auto-data-switch-controller/internal/domain/model"

// Subscription describes one active, user-visible (or opportunistic)
// SIM subscription as reported by the host.
type Subscription struct {
	SubId         int
	Slot          model.SlotId
	Visible       bool
	Opportunistic bool
}

// Host is the full capability surface ADSC pulls from its
// environment. It composes the policy package's Scorer and
// RoamingEnabler so the engine can hand a single Host value to every
// collaborator that needs host data.
type Host interface {
	// ActiveSubscriptions returns every subscription the host
	// currently considers active.
	ActiveSubscriptions() []Subscription

	// DefaultDataSubId returns the user-selected default-data
	// subscription id, or -1 if unresolvable.
	DefaultDataSubId() int

	// PreferredDataSlot returns the slot the Switcher currently
	// routes data through.
	PreferredDataSlot() model.SlotId

	// AutoSelectedDataSubId returns the subscription id most recently
	// chosen by ADSC, or -1 if none.
	AutoSelectedDataSubId() int

	// SlotForSubId resolves a subscription id to its slot, and
	// reports whether the subscription is currently known.
	SlotForSubId(subId int) (model.SlotId, bool)

	RegistrationState(slot model.SlotId) model.RegState
	DisplayInfo(slot model.SlotId) model.DisplayInfo
	SignalStrength(slot model.SlotId) model.SignalStrength
	DataRoamingEnabled(slot model.SlotId) bool
	UserDataEnabled(slot model.SlotId) bool
	DataAllowed(slot model.SlotId) bool
	AutoDataSwitchScore(display model.DisplayInfo, signal model.SignalStrength) int

	// Config returns the configuration read once at construction.
	Config() model.Config
}
