package board

import (
	"testing"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var brt = time.FixedZone("BRT", -3*60*60)

func quadraBoard(units ...string) *availability.Board {
	structures := []model.Structure{{
		ID:             "quadra",
		Name:           "Quadra",
		ManagementType: model.ManagementByUnit,
		Units:          units,
		TimeSlots:      []model.TimeSlot{{StartTime: "16:00", EndTime: "17:00"}},
		DefaultStatus:  model.StructureOpen,
	}}
	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, brt)
	now := time.Date(2026, time.March, 14, 8, 0, 0, 0, brt)
	return availability.BuildBoard(structures, date, nil, nil, nil, now)
}

func argsFor(t *testing.T, data string) common.CallbackArgs {
	t.Helper()
	args, err := common.ParseCallbackArgs(data)
	require.NoError(t, err)
	return args
}

func TestSlotAt(t *testing.T) {
	rendered := quadraBoard("Q1", "Q2")
	q2 := rendered.Slots[1]
	data := common.ItemCallbackData(common.ActionToggle, rendered.Date, 1, q2.Key.String())

	slot, err := slotAt(rendered, argsFor(t, data))
	require.NoError(t, err)
	assert.Equal(t, q2.Key, slot.Key)

	// Q1 убрали после отрисовки: под индексом 1 теперь другой юнит
	changed := quadraBoard("Q2", "Q3")
	_, err = slotAt(changed, argsFor(t, data))
	assert.ErrorIs(t, err, common.ErrStaleButton)

	_, err = slotAt(rendered, argsFor(t, common.CallbackData(common.ActionToggle, rendered.Date, 1)))
	assert.ErrorIs(t, err, common.ErrStaleButton, "button without stamp")

	_, err = slotAt(rendered, argsFor(t, common.ItemCallbackData(common.ActionToggle, rendered.Date, 5, q2.Key.String())))
	assert.ErrorIs(t, err, common.ErrSlotNotFound)
}

func TestStructureAt(t *testing.T) {
	structures := []model.Structure{{ID: "sauna"}, {ID: "caiaque"}}
	data := common.ItemCallbackData(common.ActionClose, "2026-03-14", 1, "caiaque")

	id, err := structureAt(structures, argsFor(t, data))
	require.NoError(t, err)
	assert.Equal(t, "caiaque", id)

	reordered := []model.Structure{{ID: "caiaque"}, {ID: "sauna"}}
	_, err = structureAt(reordered, argsFor(t, data))
	assert.ErrorIs(t, err, common.ErrStaleButton)

	_, err = structureAt(structures[:1], argsFor(t, data))
	assert.ErrorIs(t, err, common.ErrInvalidFormat)
}
