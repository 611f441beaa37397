package availability

import (
	"testing"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, time.March, 14, 0, 0, 0, 0, saoPaulo)
}

func sauna(defaultStatus model.StructureStatus) model.Structure {
	return model.Structure{
		ID:             "sauna",
		Name:           "Sauna",
		ManagementType: model.ManagementByStructure,
		TimeSlots: []model.TimeSlot{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "18:00", EndTime: "19:00"},
		},
		DefaultStatus: defaultStatus,
	}
}

func booking(structureID string, unit *string, start string, status model.BookingStatus) model.Booking {
	return model.Booking{
		StructureID: structureID,
		UnitID:      unit,
		Date:        "2026-03-14",
		StartTime:   start,
		Status:      status,
	}
}

func strPtr(s string) *string { return &s }

func TestResolveSlotStatus_ElapsedWinsOverEverything(t *testing.T) {
	date := day(t)
	now := time.Date(2026, time.March, 14, 12, 0, 0, 0, saoPaulo)
	slot := model.TimeSlot{StartTime: "09:00", EndTime: "10:00"}

	for _, status := range []model.BookingStatus{
		model.BookingStatusConfirmed,
		model.BookingStatusPending,
		model.BookingStatusBlocked,
	} {
		bookings := []model.Booking{booking("sauna", nil, "09:00", status)}
		got := ResolveSlotStatus(sauna(model.StructureOpen), nil, slot, date, bookings, model.Overrides{"sauna": model.StructureClosed}, now)
		assert.Equal(t, model.SlotStatusPast, got, "booking status %s", status)
	}

	got := ResolveSlotStatus(sauna(model.StructureClosed), nil, slot, date, nil, nil, now)
	assert.Equal(t, model.SlotStatusPast, got)
}

func TestResolveSlotStatus_BookingMapping(t *testing.T) {
	date := day(t)
	now := date.Add(time.Hour)
	slot := model.TimeSlot{StartTime: "18:00", EndTime: "19:00"}

	tests := []struct {
		status model.BookingStatus
		want   model.SlotStatus
	}{
		{model.BookingStatusConfirmed, model.SlotStatusReserved},
		{model.BookingStatusPending, model.SlotStatusPending},
		{model.BookingStatusBlocked, model.SlotStatusBlocked},
		{model.BookingStatus("cancelado"), model.SlotStatusAvailable},
		{model.BookingStatus(""), model.SlotStatusAvailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			bookings := []model.Booking{booking("sauna", nil, "18:00", tt.status)}
			overrides := model.Overrides{"sauna": model.StructureClosed}
			got := ResolveSlotStatus(sauna(model.StructureClosed), nil, slot, date, bookings, overrides, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSlotStatus_OverrideBeatsDefault(t *testing.T) {
	date := day(t)
	now := date
	slot := model.TimeSlot{StartTime: "18:00", EndTime: "19:00"}

	got := ResolveSlotStatus(sauna(model.StructureClosed), nil, slot, date, nil, model.Overrides{"sauna": model.StructureOpen}, now)
	assert.Equal(t, model.SlotStatusAvailable, got)

	got = ResolveSlotStatus(sauna(model.StructureOpen), nil, slot, date, nil, model.Overrides{"sauna": model.StructureClosed}, now)
	assert.Equal(t, model.SlotStatusClosed, got)
}

func TestResolveSlotStatus_FallsBackToDefault(t *testing.T) {
	date := day(t)
	slot := model.TimeSlot{StartTime: "18:00", EndTime: "19:00"}
	otherOverride := model.Overrides{"pool": model.StructureClosed}

	assert.Equal(t, model.SlotStatusAvailable,
		ResolveSlotStatus(sauna(model.StructureOpen), nil, slot, date, nil, otherOverride, date))
	assert.Equal(t, model.SlotStatusClosed,
		ResolveSlotStatus(sauna(model.StructureClosed), nil, slot, date, nil, otherOverride, date))
	assert.Equal(t, model.SlotStatusClosed,
		ResolveSlotStatus(sauna(""), nil, slot, date, nil, nil, date))
}

func TestResolveSlotStatus_UsesDisplayedDateNotBookingDate(t *testing.T) {
	date := day(t)
	now := time.Date(2026, time.March, 14, 8, 0, 0, 0, saoPaulo)
	slot := model.TimeSlot{StartTime: "09:00", EndTime: "10:00"}

	b := booking("sauna", nil, "09:00", model.BookingStatusConfirmed)
	b.Date = ""

	got := ResolveSlotStatus(sauna(model.StructureOpen), nil, slot, date, []model.Booking{b}, nil, now)
	assert.Equal(t, model.SlotStatusReserved, got)
}

func TestResolveSlotStatus_IgnoresBookingsOfOtherDates(t *testing.T) {
	date := day(t)
	slot := model.TimeSlot{StartTime: "18:00", EndTime: "19:00"}

	b := booking("sauna", nil, "18:00", model.BookingStatusConfirmed)
	b.Date = "2026-03-15"

	got := ResolveSlotStatus(sauna(model.StructureOpen), nil, slot, date, []model.Booking{b}, nil, date)
	assert.Equal(t, model.SlotStatusAvailable, got)
}

func TestResolveSlotStatus_UnitsAreIndependent(t *testing.T) {
	date := day(t)
	court := model.Structure{
		ID:             "court",
		ManagementType: model.ManagementByUnit,
		Units:          []string{"A", "B"},
		TimeSlots:      []model.TimeSlot{{StartTime: "18:00", EndTime: "19:00"}},
		DefaultStatus:  model.StructureOpen,
	}
	bookings := []model.Booking{booking("court", strPtr("A"), "18:00", model.BookingStatusConfirmed)}

	assert.Equal(t, model.SlotStatusReserved,
		ResolveSlotStatus(court, strPtr("A"), court.TimeSlots[0], date, bookings, nil, date))
	assert.Equal(t, model.SlotStatusAvailable,
		ResolveSlotStatus(court, strPtr("B"), court.TimeSlots[0], date, bookings, nil, date))
	assert.Equal(t, model.SlotStatusAvailable,
		ResolveSlotStatus(court, nil, court.TimeSlots[0], date, bookings, nil, date))
}

func TestResolveSlotStatus_IsTotal(t *testing.T) {
	date := day(t)
	valid := map[model.SlotStatus]bool{}
	for _, status := range model.AllSlotStatuses {
		valid[status] = true
	}

	slots := []model.TimeSlot{
		{StartTime: "09:00"},
		{StartTime: "bad"},
		{StartTime: ""},
		{StartTime: "25:99"},
		{StartTime: "23:59:00"},
	}
	defaults := []model.StructureStatus{model.StructureOpen, model.StructureClosed, "", "weird"}
	overrides := []model.Overrides{nil, {}, {"sauna": model.StructureOpen}, {"sauna": "weird"}}
	statuses := []model.BookingStatus{"", model.BookingStatusConfirmed, "typo"}
	nows := []time.Time{{}, date, date.Add(48 * time.Hour)}

	for _, slot := range slots {
		for _, def := range defaults {
			for _, ov := range overrides {
				for _, st := range statuses {
					for _, now := range nows {
						bookings := []model.Booking{booking("sauna", nil, slot.StartTime, st)}
						got := ResolveSlotStatus(sauna(def), nil, slot, date, bookings, ov, now)
						assert.True(t, valid[got], "unexpected status %q", got)
					}
				}
			}
		}
	}
}

func TestSlotStart(t *testing.T) {
	date := day(t)

	assert.Equal(t, time.Date(2026, time.March, 14, 18, 30, 0, 0, saoPaulo), SlotStart(date, "18:30"))
	assert.Equal(t, time.Date(2026, time.March, 14, 7, 0, 0, 0, saoPaulo), SlotStart(date, "07:00:00"))
	assert.Equal(t, date, SlotStart(date, "nope"))
	assert.Equal(t, time.Date(2026, time.March, 14, 9, 0, 0, 0, saoPaulo), SlotStart(date, "9:00"))
	assert.Equal(t, time.Date(2026, time.March, 14, 9, 15, 0, 0, saoPaulo), SlotStart(date, " 9:15 "))
}

func TestParseClock(t *testing.T) {
	cases := map[string]struct {
		hour, minute int
		ok           bool
	}{
		"18:30":    {18, 30, true},
		"07:00:00": {7, 0, true},
		"9:00":     {9, 0, true},
		"9:05:00":  {9, 5, true},
		"":         {0, 0, false},
		"25:00":    {0, 0, false},
		"18h30":    {0, 0, false},
	}
	for input, want := range cases {
		hour, minute, ok := ParseClock(input)
		assert.Equal(t, want.ok, ok, input)
		assert.Equal(t, want.hour, hour, input)
		assert.Equal(t, want.minute, minute, input)
	}
}

func TestResolveSlotStatus_SingleDigitHourIsNotElapsed(t *testing.T) {
	date := day(t)
	structure := model.Structure{ID: "sauna", DefaultStatus: model.StructureOpen}
	now := time.Date(2026, time.March, 14, 8, 0, 0, 0, saoPaulo)

	status := ResolveSlotStatus(structure, nil, model.TimeSlot{StartTime: "9:00", EndTime: "10:00"}, date, nil, nil, now)
	assert.Equal(t, model.SlotStatusAvailable, status)
}

func TestStatusOf(t *testing.T) {
	status, ok := StatusOf(model.BookingStatusPending)
	assert.True(t, ok)
	assert.Equal(t, model.SlotStatusPending, status)

	status, ok = StatusOf("confirmed")
	assert.False(t, ok)
	assert.Equal(t, model.SlotStatusAvailable, status)
}
