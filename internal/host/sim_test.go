package host

import (
	"testing"

	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost() *SimHost {
	return NewSimHost(model.Config{ScoreTolerance: 1}).
		AddSlot(model.SlotId(0), 1).
		AddSlot(model.SlotId(1), 2)
}

func TestSimHost_SlotForSubId(t *testing.T) {
	h := newTestHost()

	slot, ok := h.SlotForSubId(2)
	require.True(t, ok)
	assert.Equal(t, model.SlotId(1), slot)

	_, ok = h.SlotForSubId(99)
	assert.False(t, ok)
}

func TestSimHost_ActiveSubscriptions_ReflectsOpportunisticFlag(t *testing.T) {
	h := newTestHost()
	h.MutateSlot(model.SlotId(1), func(s *SlotState) { s.Opportunistic = true })

	var found bool
	for _, sub := range h.ActiveSubscriptions() {
		if sub.Slot == model.SlotId(1) {
			found = true
			assert.True(t, sub.Opportunistic)
		}
	}
	assert.True(t, found)
}

func TestSimHost_MutateSlot_UnknownSlotIsNoop(t *testing.T) {
	h := newTestHost()
	assert.NotPanics(t, func() {
		h.MutateSlot(model.SlotId(99), func(s *SlotState) { s.RegState = model.Home })
	})
}

func TestSimHost_DefaultScoreFunc_UsesSignalLevel(t *testing.T) {
	h := newTestHost()
	score := h.AutoDataSwitchScore(model.DisplayInfo{}, model.SignalStrength{Level: 4})
	assert.Equal(t, 4, score)
}

func TestSimHost_WithScoreFunc_Override(t *testing.T) {
	h := newTestHost().WithScoreFunc(func(model.DisplayInfo, model.SignalStrength) int { return 7 })
	assert.Equal(t, 7, h.AutoDataSwitchScore(model.DisplayInfo{}, model.SignalStrength{Level: 1}))
}

func TestSimHost_DefaultDataSubIdAndPreferredSlot(t *testing.T) {
	h := newTestHost()
	h.SetDefaultDataSubId(1)
	h.SetPreferredDataSlot(model.SlotId(0))
	h.SetAutoSelectedDataSubId(2)

	assert.Equal(t, 1, h.DefaultDataSubId())
	assert.Equal(t, model.SlotId(0), h.PreferredDataSlot())
	assert.Equal(t, 2, h.AutoSelectedDataSubId())
}

func TestSimHost_UnknownSlotReturnsZeroValues(t *testing.T) {
	h := newTestHost()
	assert.Equal(t, model.NotRegistered, h.RegistrationState(model.SlotId(99)))
	assert.False(t, h.UserDataEnabled(model.SlotId(99)))
	assert.False(t, h.DataAllowed(model.SlotId(99)))
}
