package common

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var brt = time.FixedZone("BRT", -3*60*60)

func sampleBoard(t *testing.T) (*availability.Board, time.Time, time.Time) {
	t.Helper()

	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, brt)
	now := time.Date(2026, time.March, 14, 12, 0, 0, 0, brt)
	structures := []model.Structure{
		{
			ID:             "sauna",
			Name:           "Sauna",
			ManagementType: model.ManagementByStructure,
			TimeSlots: []model.TimeSlot{
				{StartTime: "09:00", EndTime: "10:00"},
				{StartTime: "18:00", EndTime: "19:00"},
			},
			DefaultStatus: model.StructureOpen,
		},
		{
			ID:             "quadra",
			Name:           "Quadra <Tênis>",
			ManagementType: model.ManagementByUnit,
			Units:          []string{"Q1", "Q2"},
			TimeSlots:      []model.TimeSlot{{StartTime: "16:00", EndTime: "17:30"}},
			DefaultStatus:  model.StructureOpen,
		},
	}
	q2 := "Q2"
	bookings := []model.Booking{
		{StructureID: "sauna", Date: "2026-03-14", StartTime: "18:00", Status: model.BookingStatusPending, GuestName: "Ana", CabinName: "Chalé 1"},
		{StructureID: "quadra", UnitID: &q2, Date: "2026-03-14", StartTime: "16:00", Status: model.BookingStatusBlocked},
	}
	board := availability.BuildBoard(structures, date, bookings, nil, nil, now)
	return board, date, now
}

func TestParseCallbackArgs(t *testing.T) {
	args, err := ParseCallbackArgs("sel:2026-03-14:12")
	require.NoError(t, err)
	assert.Equal(t, CallbackArgs{Action: "sel", Date: "2026-03-14", Index: 12, HasIndex: true}, args)

	args, err = ParseCallbackArgs(CallbackData(ActionBlock, "2026-03-14"))
	require.NoError(t, err)
	assert.Equal(t, "blk", args.Action)
	assert.False(t, args.HasIndex)

	args, err = ParseCallbackArgs("apv:2026-03-14:3:1a2b3c4d")
	require.NoError(t, err)
	assert.Equal(t, CallbackArgs{Action: "apv", Date: "2026-03-14", Index: 3, HasIndex: true, Stamp: "1a2b3c4d"}, args)

	for _, bad := range []string{"", "noop", "sel:14.03.2026", "sel:2026-03-14:x", "sel:2026-03-14:-1", "a:2026-03-14:1:", "a:2026-03-14:1:2:3"} {
		_, err := ParseCallbackArgs(bad)
		assert.ErrorIs(t, err, ErrInvalidFormat, bad)
	}
}

func TestCallbackDataFitsTelegramLimit(t *testing.T) {
	assert.LessOrEqual(t, len(CallbackData(ActionKitchenPDF, "2026-03-14", 9999)), 64)

	longKey := model.NewSlotKey(strings.Repeat("s", 200), nil, "18:00").String()
	assert.LessOrEqual(t, len(ItemCallbackData(ActionResetDefault, "2026-03-14", 9999, longKey)), 64)
}

func TestCallbackArgsMatches(t *testing.T) {
	key := model.NewSlotKey("sauna", nil, "18:00").String()
	args, err := ParseCallbackArgs(ItemCallbackData(ActionToggle, "2026-03-14", 1, key))
	require.NoError(t, err)

	assert.Len(t, args.Stamp, 8)
	assert.True(t, args.Matches(key))
	assert.False(t, args.Matches(model.NewSlotKey("sauna", nil, "19:00").String()))
	assert.False(t, CallbackArgs{}.Matches(key))
}

func TestBuildBoardScreen(t *testing.T) {
	board, date, now := sampleBoard(t)
	selected := map[model.SlotKey]bool{model.NewSlotKey("sauna", nil, "18:00"): true}

	text, kb := BuildBoardScreen(board, date, now, selected)

	assert.Contains(t, text, "Quadro de sábado, 14/03/2026")
	assert.Contains(t, text, "Quadra &lt;Tênis&gt;", "names are escaped for HTML")
	assert.Contains(t, text, "☑️ 🟡 18:00–19:00 — Pendente · Ana (Chalé 1)")
	assert.Contains(t, text, "⌛ 09:00–10:00 — Passou")
	assert.Contains(t, text, "⛔ 16:00–17:30 · Q2 — Bloqueado")

	var callbacks []string
	for _, row := range kb.InlineKeyboard {
		for _, button := range row {
			callbacks = append(callbacks, button.CallbackData)
		}
	}
	assert.NotContains(t, callbacks,
		ItemCallbackData(ActionToggle, "2026-03-14", 0, model.NewSlotKey("sauna", nil, "09:00").String()),
		"past slot is not selectable")
	assert.Contains(t, callbacks,
		ItemCallbackData(ActionToggle, "2026-03-14", 1, model.NewSlotKey("sauna", nil, "18:00").String()))
	assert.Contains(t, callbacks, "blk:2026-03-14")
	assert.Contains(t, callbacks, "res:2026-03-14")
	assert.Contains(t, callbacks, "day:2026-03-15")
}

func TestBuildBoardScreen_NoSelectionHidesActions(t *testing.T) {
	board, date, now := sampleBoard(t)
	_, kb := BuildBoardScreen(board, date, now, nil)

	for _, row := range kb.InlineKeyboard {
		for _, button := range row {
			assert.False(t, strings.HasPrefix(button.CallbackData, ActionBlock+":"))
		}
	}
}

func TestBuildPendingScreen(t *testing.T) {
	board, date, _ := sampleBoard(t)
	text, kb := BuildPendingScreen(board, date)

	assert.Contains(t, text, "Ana")
	require.Len(t, kb.InlineKeyboard, 2)
	key := model.NewSlotKey("sauna", nil, "18:00").String()
	assert.Equal(t, ItemCallbackData(ActionApprove, "2026-03-14", 1, key), kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, ItemCallbackData(ActionDecline, "2026-03-14", 1, key), kb.InlineKeyboard[0][1].CallbackData)
}

func TestBuildOverridesScreen(t *testing.T) {
	structures := []model.Structure{
		{ID: "sauna", Name: "Sauna", DefaultStatus: model.StructureOpen},
		{ID: "caiaque", Name: "Caiaques", DefaultStatus: model.StructureClosed},
	}
	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, brt)

	text, kb := BuildOverridesScreen(structures, model.Overrides{"sauna": model.StructureClosed}, date)

	assert.Contains(t, text, "Sauna</b> — Fechada (exceção do dia)")
	assert.Contains(t, text, "Caiaques</b> — Fechada (padrão)")
	assert.Equal(t, ItemCallbackData(ActionOpen, "2026-03-14", 0, "sauna"), kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, ItemCallbackData(ActionResetDefault, "2026-03-14", 0, "sauna"), kb.InlineKeyboard[0][1].CallbackData)
	assert.Equal(t, ItemCallbackData(ActionOpen, "2026-03-14", 1, "caiaque"), kb.InlineKeyboard[1][0].CallbackData)
}

func TestGenerateBoardImage(t *testing.T) {
	board, date, now := sampleBoard(t)

	data, err := GenerateBoardImage(board, date, now)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageHeight, img.Bounds().Dy())
	assert.GreaterOrEqual(t, img.Bounds().Dx(), minImageWidth)
}

func TestCalculateHourRange(t *testing.T) {
	board, _, _ := sampleBoard(t)
	hours := calculateHourRange(board.Slots)
	assert.Equal(t, 8, hours.start)
	assert.Equal(t, 20, hours.end)

	empty := calculateHourRange(nil)
	assert.Equal(t, defaultMinHour-hourPaddingTop, empty.start)
}
