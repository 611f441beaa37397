package state

import (
	"sync"
	"testing"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSelection(t *testing.T) {
	sm := NewManager()
	unit := "Q1"
	sauna := model.NewSlotKey("sauna", nil, "18:00")
	quadra := model.NewSlotKey("quadra", &unit, "08:00")

	assert.True(t, sm.ToggleSelection(1, "2026-03-14", sauna))
	assert.True(t, sm.ToggleSelection(1, "2026-03-14", quadra))
	assert.Equal(t, StateSelectingSlots, sm.GetState(1))
	assert.Equal(t, []model.SlotKey{quadra, sauna}, sm.Selection(1, "2026-03-14"))

	assert.False(t, sm.ToggleSelection(1, "2026-03-14", sauna))
	assert.Equal(t, []model.SlotKey{quadra}, sm.Selection(1, "2026-03-14"))

	assert.Empty(t, sm.Selection(1, "2026-03-15"), "other date sees nothing")
	assert.Empty(t, sm.Selection(2, "2026-03-14"), "other admin sees nothing")

	sm.ToggleSelection(1, "2026-03-15", sauna)
	assert.Empty(t, sm.Selection(1, "2026-03-14"), "switching date resets")

	sm.ClearSelection(1)
	assert.Empty(t, sm.Selection(1, "2026-03-15"))
	assert.Equal(t, StateNone, sm.GetState(1))
}

func TestState(t *testing.T) {
	sm := NewManager()

	sm.SetState(7, StateSelectingSlots)
	assert.Equal(t, StateSelectingSlots, sm.GetState(7))

	sm.ToggleSelection(7, "2026-03-14", model.NewSlotKey("sauna", nil, "18:00"))
	sm.SetState(7, StateEnteringGuestName)
	sm.ClearState(7)
	assert.Equal(t, StateNone, sm.GetState(7))
	assert.Empty(t, sm.Selection(7, "2026-03-14"), "clear state drops the selection")
}

func TestConcurrentToggle(t *testing.T) {
	sm := NewManager()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sm.ToggleSelection(1, "2026-03-14", model.NewSlotKey("sauna", nil, string(rune('a'+i%26))))
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, len(sm.Selection(1, "2026-03-14")), 26)
}

func TestGuestDialogEndsWithSelection(t *testing.T) {
	sm := NewManager()
	sauna := model.NewSlotKey("sauna", nil, "18:00")

	_, ok := sm.SelectionDate(3)
	assert.False(t, ok)

	sm.ToggleSelection(3, "2026-03-14", sauna)
	sm.SetState(3, StateEnteringGuestName)

	date, ok := sm.SelectionDate(3)
	assert.True(t, ok)
	assert.Equal(t, "2026-03-14", date)

	sm.ClearSelection(3)
	assert.Equal(t, StateNone, sm.GetState(3))
	_, ok = sm.SelectionDate(3)
	assert.False(t, ok)
}
