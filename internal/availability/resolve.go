// Package availability вычисляет состояние бронируемых слотов по расписанию структуры,
// дневным исключениям и существующим броням. Все функции чистые и безопасны
// для одновременного вызова.
package availability

import (
	"strings"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/model"
)

var bookingToSlot = map[model.BookingStatus]model.SlotStatus{
	model.BookingStatusConfirmed: model.SlotStatusReserved,
	model.BookingStatusPending:   model.SlotStatusPending,
	model.BookingStatusBlocked:   model.SlotStatusBlocked,
}

// StatusOf переводит статус брони в статус слота.
// Неизвестный статус даёт disponivel и ok=false, чтобы вызывающий мог это залогировать.
func StatusOf(status model.BookingStatus) (model.SlotStatus, bool) {
	if slotStatus, ok := bookingToSlot[status]; ok {
		return slotStatus, true
	}
	return model.SlotStatusAvailable, false
}

// ResolveSlotStatus определяет статус слота. Порядок: прошедшее время, бронь, дневное
// исключение, статус структуры по умолчанию. Функция тотальна и никогда не падает.
func ResolveSlotStatus(
	structure model.Structure,
	unit *string,
	slot model.TimeSlot,
	date time.Time,
	bookings []model.Booking,
	overrides model.Overrides,
	now time.Time,
) model.SlotStatus {
	index := NewBookingIndex(model.DateKey(date), bookings)
	return resolve(structure, unit, slot, date, index, overrides, now)
}

func resolve(
	structure model.Structure,
	unit *string,
	slot model.TimeSlot,
	date time.Time,
	index *BookingIndex,
	overrides model.Overrides,
	now time.Time,
) model.SlotStatus {
	if SlotStart(date, slot.StartTime).Before(now) {
		return model.SlotStatusPast
	}

	if booking, ok := index.Lookup(model.NewSlotKey(structure.ID, unit, slot.StartTime)); ok {
		status, _ := StatusOf(booking.Status)
		return status
	}

	if override, ok := overrides[structure.ID]; ok {
		if override == model.StructureOpen {
			return model.SlotStatusAvailable
		}
		return model.SlotStatusClosed
	}

	if structure.DefaultStatus == model.StructureOpen {
		return model.SlotStatusAvailable
	}
	return model.SlotStatusClosed
}

// SlotStart совмещает отображаемую дату со временем начала слота.
// Дата брони (Booking.Date) здесь намеренно не используется.
// Некорректное HH:MM трактуется как начало дня.
func SlotStart(date time.Time, startTime string) time.Time {
	hour, minute, _ := ParseClock(startTime)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// clockLayouts - допустимые формы времени слота; час может быть однозначным ("9:00")
var clockLayouts = []string{"15:04", "15:04:05"}

// ParseClock разбирает "HH:MM", "H:MM" и те же формы с секундами
func ParseClock(s string) (hour, minute int, ok bool) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}
	return 0, 0, false
}
