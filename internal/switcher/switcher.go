// Package switcher defines the outbound callback contract ADSC
// invokes on the "phone switcher" host collaborator: exactly the
// three methods in spec.md §6. The validation-failure feedback path
// runs the other way and lives on engine.Engine
// (SubmitValidationFailure).
package switcher

import (
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/event"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
)

// Switcher is implemented by the host's phone-switching component.
// ADSC never executes a switch or validates connectivity itself —
// every mutating action flows through these three methods.
type Switcher interface {
	// RequireValidation asks the Switcher to switch to target if it
	// independently agrees conditions are stable, optionally
	// ping-testing first.
	RequireValidation(target model.SlotId, needValidation bool)

	// ImmediatelySwitchTo asks the Switcher to revert/switch now, no
	// dwell, no validation.
	ImmediatelySwitchTo(target model.SlotId, reason event.Reason)

	// CancelPendingValidation asks the Switcher to drop any
	// validation it had in flight on ADSC's behalf.
	CancelPendingValidation()
}
