package engine

import (
	"context"
	"testing"
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/domain/event"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
	"github.com/emperorhan/auto-data-switch-controller/internal/host/hostmocks"
	"github.com/emperorhan/auto-data-switch-controller/internal/switcher/switchermocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestApplyMultiSimConfigChanged_RegrowRestoresListening covers a
// shrink-then-regrow of the modem count: slot 1 is dropped when the
// config shrinks to one modem, then must come back Listening once the
// config grows back to two, not stay stuck at the false value the
// shrink left it in.
func TestApplyMultiSimConfigChanged_RegrowRestoresListening(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := hostmocks.NewMockHost(ctrl)
	sw := switchermocks.NewMockSwitcher(ctrl)

	cfg := baseConfig(time.Hour)
	h.EXPECT().Config().Return(cfg).AnyTimes()
	h.EXPECT().ActiveSubscriptions().Return(twoHomeSubs()).AnyTimes()
	h.EXPECT().DisplayInfo(gomock.Any()).Return(model.DisplayInfo{}).AnyTimes()
	h.EXPECT().SignalStrength(gomock.Any()).Return(model.SignalStrength{}).AnyTimes()
	h.EXPECT().DefaultDataSubId().Return(1).AnyTimes()
	h.EXPECT().SlotForSubId(1).Return(model.SlotId(0), true).AnyTimes()
	h.EXPECT().PreferredDataSlot().Return(model.SlotId(0)).AnyTimes()
	h.EXPECT().UserDataEnabled(gomock.Any()).Return(true).AnyTimes()
	h.EXPECT().DataAllowed(gomock.Any()).Return(true).AnyTimes()
	h.EXPECT().DataRoamingEnabled(gomock.Any()).Return(false).AnyTimes()
	h.EXPECT().RegistrationState(gomock.Any()).Return(model.Home).AnyTimes()
	// Trackers start NotRegistered, so each pass cancels.
	sw.EXPECT().CancelPendingValidation().AnyTimes()

	e := New(h, sw, testLogger())

	go e.Run(context.Background())
	e.Submit(event.MultiSimConfigChanged(2))
	e.Submit(event.MultiSimConfigChanged(1))

	require.Eventually(t, func() bool {
		snap := e.Snapshot()
		return len(snap.Phones) == 2 && !listeningAt(snap, model.SlotId(1))
	}, time.Second, 2*time.Millisecond, "slot 1 never dropped out of listening after shrink")

	e.Submit(event.MultiSimConfigChanged(2))

	require.Eventually(t, func() bool {
		return listeningAt(e.Snapshot(), model.SlotId(1))
	}, time.Second, 2*time.Millisecond, "slot 1 never resumed listening after regrow")
}

func listeningAt(snap Snapshot, slot model.SlotId) bool {
	for _, p := range snap.Phones {
		if p.Slot == slot {
			return p.Listening
		}
	}
	return false
}
