package engine

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/domain/event"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
	"github.com/emperorhan/auto-data-switch-controller/internal/host"
	"github.com/emperorhan/auto-data-switch-controller/internal/host/hostmocks"
	"github.com/emperorhan/auto-data-switch-controller/internal/switcher/switchermocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// baseConfig returns a Config with score-based switching and roaming
// disabled, matching the legacy Home-only path most tests exercise.
func baseConfig(dwell time.Duration) model.Config {
	return model.Config{
		StabilityDwell:           dwell,
		ScoreTolerance:           2,
		RequirePing:              false,
		MaxValidationRetries:     3,
		AllowRoamingSwitch:       false,
		FeatureScoreBasedEnabled: false,
	}
}

func twoHomeSubs() []host.Subscription {
	return []host.Subscription{
		{SubId: 1, Slot: model.SlotId(0), Visible: true},
		{SubId: 2, Slot: model.SlotId(1), Visible: true},
	}
}

func TestEngine_CaseA_ArmsStabilityWhenBackupBeatsDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := hostmocks.NewMockHost(ctrl)
	sw := switchermocks.NewMockSwitcher(ctrl)

	cfg := baseConfig(20 * time.Millisecond)
	h.EXPECT().Config().Return(cfg).AnyTimes()
	h.EXPECT().ActiveSubscriptions().Return(twoHomeSubs()).AnyTimes()
	h.EXPECT().DisplayInfo(gomock.Any()).Return(model.DisplayInfo{}).AnyTimes()
	h.EXPECT().SignalStrength(gomock.Any()).Return(model.SignalStrength{}).AnyTimes()
	h.EXPECT().DefaultDataSubId().Return(1).AnyTimes()
	h.EXPECT().SlotForSubId(1).Return(model.SlotId(0), true).AnyTimes()
	h.EXPECT().PreferredDataSlot().Return(model.SlotId(0)).AnyTimes()
	h.EXPECT().UserDataEnabled(model.SlotId(0)).Return(true).AnyTimes()
	h.EXPECT().DataAllowed(model.SlotId(1)).Return(true).AnyTimes()
	h.EXPECT().DataRoamingEnabled(gomock.Any()).Return(false).AnyTimes()

	e := New(h, sw, testLogger())

	// Slot 0 (default) drops out of service; slot 1 (backup) is Home.
	h.EXPECT().RegistrationState(model.SlotId(0)).Return(model.NotRegistered).AnyTimes()
	h.EXPECT().RegistrationState(model.SlotId(1)).Return(model.Home).AnyTimes()

	go e.Run(context.Background())
	e.Submit(event.ServiceStateChanged(model.SlotId(1)))
	e.Submit(event.ServiceStateChanged(model.SlotId(0)))

	sw.EXPECT().RequireValidation(model.SlotId(1), false).Times(1)

	// First the timer arms (selected_target becomes the candidate slot),
	// then it fires and the engine clears selected_target again.
	require.Eventually(t, func() bool {
		return e.Snapshot().SelectedTarget == model.SlotId(1)
	}, time.Second, 2*time.Millisecond, "stability timer never armed")
	require.Eventually(t, func() bool {
		return e.Snapshot().SelectedTarget == model.InvalidSlot
	}, time.Second, 2*time.Millisecond, "stability timer never fired")
}

func TestEngine_CaseB_RevertsImmediatelyWhenUserDataDisabledOnDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := hostmocks.NewMockHost(ctrl)
	sw := switchermocks.NewMockSwitcher(ctrl)

	cfg := baseConfig(time.Hour) // dwell irrelevant: this path is immediate.
	h.EXPECT().Config().Return(cfg).AnyTimes()
	h.EXPECT().ActiveSubscriptions().Return(twoHomeSubs()).AnyTimes()
	h.EXPECT().DisplayInfo(gomock.Any()).Return(model.DisplayInfo{}).AnyTimes()
	h.EXPECT().SignalStrength(gomock.Any()).Return(model.SignalStrength{}).AnyTimes()
	h.EXPECT().DefaultDataSubId().Return(1).AnyTimes()
	h.EXPECT().SlotForSubId(1).Return(model.SlotId(0), true).AnyTimes()
	h.EXPECT().PreferredDataSlot().Return(model.SlotId(1)).AnyTimes() // on backup already
	h.EXPECT().UserDataEnabled(model.SlotId(0)).Return(false).AnyTimes()
	h.EXPECT().RegistrationState(gomock.Any()).Return(model.Home).AnyTimes()

	e := New(h, sw, testLogger())

	sw.EXPECT().ImmediatelySwitchTo(model.DefaultSlotIndex, event.ReasonDataSettingsChanged).Times(1)

	go e.Run(context.Background())
	e.Submit(event.DataSettingsChanged())

	require.Eventually(t, func() bool {
		return len(e.Snapshot().RecentDecisions) > 0
	}, time.Second, 5*time.Millisecond)
}

func TestEngine_Evaluate_FeatureDisabledNeverCallsSwitcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := hostmocks.NewMockHost(ctrl)
	sw := switchermocks.NewMockSwitcher(ctrl)

	cfg := baseConfig(-1) // negative dwell disables the feature entirely.
	h.EXPECT().Config().Return(cfg).AnyTimes()
	h.EXPECT().ActiveSubscriptions().Return(twoHomeSubs()).AnyTimes()
	h.EXPECT().DisplayInfo(gomock.Any()).Return(model.DisplayInfo{}).AnyTimes()
	h.EXPECT().SignalStrength(gomock.Any()).Return(model.SignalStrength{}).AnyTimes()

	e := New(h, sw, testLogger())

	// No Switcher call is ever expected; gomock fails the test if one occurs.
	go e.Run(context.Background())
	e.Submit(event.DataSettingsChanged())
	e.Submit(event.Evaluate(event.ReasonForced))

	require.Eventually(t, func() bool {
		return e.Snapshot().Config.StabilityDwell == -1
	}, time.Second, 5*time.Millisecond)
}

func TestEngine_HandleValidationFailure_SchedulesRetryThenGivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := hostmocks.NewMockHost(ctrl)
	sw := switchermocks.NewMockSwitcher(ctrl)

	cfg := baseConfig(time.Millisecond)
	cfg.MaxValidationRetries = 1
	h.EXPECT().Config().Return(cfg).AnyTimes()
	h.EXPECT().ActiveSubscriptions().Return(nil).AnyTimes()
	h.EXPECT().DisplayInfo(gomock.Any()).Return(model.DisplayInfo{}).AnyTimes()
	h.EXPECT().SignalStrength(gomock.Any()).Return(model.SignalStrength{}).AnyTimes()

	e := New(h, sw, testLogger())
	go e.Run(context.Background())

	e.SubmitValidationFailure(nil)
	require.Eventually(t, func() bool {
		return e.Snapshot().ValidationRetryCount == 1
	}, time.Second, 5*time.Millisecond)

	e.SubmitValidationFailure(nil)
	require.Eventually(t, func() bool {
		return e.Snapshot().ValidationRetryCount == 0
	}, time.Second, 5*time.Millisecond)
}

func TestEngine_ForceEvaluate_RunsBetweenOneAndThreePasses(t *testing.T) {
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
	h.EXPECT().UserDataEnabled(model.SlotId(0)).Return(true).AnyTimes()
	h.EXPECT().RegistrationState(gomock.Any()).Return(model.NotRegistered).AnyTimes()
	// No slot is in service, so every pass finds no candidate and cancels.
	sw.EXPECT().CancelPendingValidation().MinTimes(1)

	e := New(h, sw, testLogger())
	go e.Run(context.Background())

	e.ForceEvaluate()
	e.ForceEvaluate()
	e.ForceEvaluate()

	// Each pass records one decision; requests already queued when the
	// loop takes its turn share a single pass.
	assert.Eventually(t, func() bool {
		return len(e.Snapshot().RecentDecisions) >= 1
	}, time.Second, 5*time.Millisecond)
	assert.LessOrEqual(t, len(e.Snapshot().RecentDecisions), 3)
}
