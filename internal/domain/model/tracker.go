package model

// PhoneSignalStatus is the per-slot tracker record: registration
// state, display info, signal strength, and whether the slot's event
// streams are currently subscribed.
//
// score() and usable() are not methods here — they are pure functions
// of policy.Scorer over a PhoneSignalStatus, kept out of this package
// so the tracker stays a plain record (see internal/policy).
type PhoneSignalStatus struct {
	SlotId         SlotId
	RegState       RegState
	DisplayInfo    DisplayInfo
	SignalStrength SignalStrength
	Listening      bool
}

// NewPhoneSignalStatus creates a tracker initialized from the host at
// slot-registration time. RegState starts NotRegistered regardless of
// what the host reports until the first ServiceStateChanged event.
func NewPhoneSignalStatus(slot SlotId, display DisplayInfo, signal SignalStrength) *PhoneSignalStatus {
	return &PhoneSignalStatus{
		SlotId:         slot,
		RegState:       NotRegistered,
		DisplayInfo:    display,
		SignalStrength: signal,
	}
}

// servicePartition groups registration states for same-partition
// change suppression in the event router: {NotInService, Home,
// OtherInService}.
type servicePartition int

const (
	partitionNotInService servicePartition = iota
	partitionHome
	partitionOtherInService
)

func (p *PhoneSignalStatus) partition() servicePartition {
	switch {
	case p.RegState == Home:
		return partitionHome
	case p.RegState.InService():
		return partitionOtherInService
	default:
		return partitionNotInService
	}
}

// SetRegState updates the registration state and reports whether the
// change crossed a service partition boundary — the only condition
// under which the event router should trigger a re-evaluation for a
// ServiceStateChanged event.
func (p *PhoneSignalStatus) SetRegState(next RegState) (partitionChanged bool) {
	before := p.partition()
	p.RegState = next
	return p.partition() != before
}
