// Package event defines ADSC's ingress event sum type: the tagged
// variant dispatched by the event router in a single place, and the
// evaluation reasons attached to Evaluate events for logging, tracing,
// and the Switcher's immediate-switch callback.
package event

import "github.com/emperorhan/auto-data-switch-controller/internal/domain/model"

// Reason names why an evaluation was requested. Carried on Evaluate
// events for structured logging/tracing and passed verbatim to
// ImmediatelySwitchTo when the Switcher needs to know why.
type Reason string

const (
	ReasonServiceStateChanged    Reason = "SERVICE_STATE_CHANGED"
	ReasonDisplayInfoChanged     Reason = "DISPLAY_INFO_CHANGED"
	ReasonSignalStrengthChanged  Reason = "SIGNAL_STRENGTH_CHANGED"
	ReasonDefaultNetworkChanged  Reason = "DEFAULT_NETWORK_CHANGED"
	ReasonDataSettingsChanged    Reason = "DATA_SETTINGS_CHANGED"
	ReasonRetryValidation        Reason = "RETRY_VALIDATION"
	ReasonSimLoaded              Reason = "SIM_LOADED"
	ReasonVoiceCallEnded         Reason = "VOICE_CALL_ENDED"
	ReasonSubscriptionsChanged   Reason = "SUBSCRIPTIONS_CHANGED"
	ReasonMultiSimConfigChanged  Reason = "MULTI_SIM_CONFIG_CHANGED"
	ReasonDefaultNetworkLost     Reason = "DEFAULT_NETWORK_LOST"
	ReasonForced                 Reason = "FORCED"
)

func (r Reason) String() string { return string(r) }

// Event is the sum type over every ingress message the router
// dispatches. Exactly one of the typed fields is meaningful per Kind.
type Event struct {
	Kind Kind

	Slot         model.SlotId // ServiceState, DisplayInfo, SignalStrength
	Capabilities *NetworkCapabilities // DefaultNetworkChanged; nil means "lost"
	ModemCount   int                  // MultiSimConfigChanged
	Reason       Reason               // Evaluate
}

// Kind discriminates Event.
type Kind int

const (
	KindServiceStateChanged Kind = iota
	KindDisplayInfoChanged
	KindSignalStrengthChanged
	KindDefaultNetworkChanged
	KindDataSettingsChanged
	KindRetryValidation
	KindSimLoaded
	KindVoiceCallEnded
	KindSubscriptionsChanged
	KindMultiSimConfigChanged
	KindEvaluate
)

func (k Kind) String() string {
	switch k {
	case KindServiceStateChanged:
		return "ServiceStateChanged"
	case KindDisplayInfoChanged:
		return "DisplayInfoChanged"
	case KindSignalStrengthChanged:
		return "SignalStrengthChanged"
	case KindDefaultNetworkChanged:
		return "DefaultNetworkChanged"
	case KindDataSettingsChanged:
		return "DataSettingsChanged"
	case KindRetryValidation:
		return "RetryValidation"
	case KindSimLoaded:
		return "SimLoaded"
	case KindVoiceCallEnded:
		return "VoiceCallEnded"
	case KindSubscriptionsChanged:
		return "SubscriptionsChanged"
	case KindMultiSimConfigChanged:
		return "MultiSimConfigChanged"
	case KindEvaluate:
		return "Evaluate"
	default:
		return "unknown"
	}
}

// NetworkCapabilities describes the system's current default-network
// transport. Only HasCellular is consulted by the engine.
type NetworkCapabilities struct {
	HasCellular bool
}

// ServiceStateChanged builds the event for a slot's registration
// state possibly having changed.
func ServiceStateChanged(slot model.SlotId) Event {
	return Event{Kind: KindServiceStateChanged, Slot: slot}
}

// DisplayInfoChanged builds the event for a slot's display info
// having changed.
func DisplayInfoChanged(slot model.SlotId) Event {
	return Event{Kind: KindDisplayInfoChanged, Slot: slot}
}

// SignalStrengthChanged builds the event for a slot's signal strength
// having changed.
func SignalStrengthChanged(slot model.SlotId) Event {
	return Event{Kind: KindSignalStrengthChanged, Slot: slot}
}

// DefaultNetworkChanged builds the event carrying the new default
// network's capabilities, or nil if the default network was lost.
func DefaultNetworkChanged(caps *NetworkCapabilities) Event {
	return Event{Kind: KindDefaultNetworkChanged, Capabilities: caps}
}

// DataSettingsChanged builds the event for a user data/roaming toggle.
func DataSettingsChanged() Event { return Event{Kind: KindDataSettingsChanged} }

// RetryValidation builds the self-enqueued retry event.
func RetryValidation() Event { return Event{Kind: KindRetryValidation} }

// SimLoaded builds the opaque SIM-loaded trigger event.
func SimLoaded() Event { return Event{Kind: KindSimLoaded} }

// VoiceCallEnded builds the opaque voice-call-ended trigger event.
func VoiceCallEnded() Event { return Event{Kind: KindVoiceCallEnded} }

// SubscriptionsChanged builds the event for an active-SIM composition
// change.
func SubscriptionsChanged() Event { return Event{Kind: KindSubscriptionsChanged} }

// MultiSimConfigChanged builds the event for a change in the number of
// active modems.
func MultiSimConfigChanged(n int) Event {
	return Event{Kind: KindMultiSimConfigChanged, ModemCount: n}
}

// Evaluate builds the internal request to run the evaluation engine,
// carrying the reason it was requested.
func Evaluate(reason Reason) Event {
	return Event{Kind: KindEvaluate, Reason: reason}
}
