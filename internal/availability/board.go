package availability

import (
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/model"
)

// Board - все слоты всех структур на одну дату
type Board struct {
	Date  string       `json:"date"`
	Slots []model.Slot `json:"slots"`

	// Duplicates - брони, нарушающие инвариант одного ключа
	Duplicates []model.Booking `json:"-"`
	// Unrecognized - брони с неизвестным статусом (показаны как disponivel)
	Unrecognized []model.Booking `json:"-"`
}

// BuildBoard раскрывает каждую тройку (структура, юнит, интервал) в слот со статусом.
// Прошедшие слоты сохраняют привязанную бронь для отображения.
// Гость, которого ещё нет в ленте активных гостей, не ломает построение.
func BuildBoard(
	structures []model.Structure,
	date time.Time,
	bookings []model.Booking,
	overrides model.Overrides,
	guests []model.Guest,
	now time.Time,
) *Board {
	dateKey := model.DateKey(date)
	index := NewBookingIndex(dateKey, bookings)

	guestsByID := make(map[string]model.Guest, len(guests))
	for _, guest := range guests {
		guestsByID[guest.ID] = guest
	}

	board := &Board{
		Date:       dateKey,
		Slots:      make([]model.Slot, 0),
		Duplicates: index.Duplicates(),
	}

	for _, structure := range structures {
		for _, unit := range structure.BoardUnits() {
			for _, timeSlot := range structure.TimeSlots {
				key := model.NewSlotKey(structure.ID, unit, timeSlot.StartTime)
				slot := model.Slot{
					Key:           key,
					StructureName: structure.Name,
					TimeSlot:      timeSlot,
					Date:          dateKey,
					Status:        resolve(structure, unit, timeSlot, date, index, overrides, now),
				}

				if booking, ok := index.Lookup(key); ok {
					slot.Booking = booking
					slot.GuestName, slot.CabinName = guestLabel(booking, guestsByID)
					if _, known := StatusOf(booking.Status); !known {
						board.Unrecognized = append(board.Unrecognized, *booking)
					}
				}

				board.Slots = append(board.Slots, slot)
			}
		}
	}

	return board
}

func guestLabel(booking *model.Booking, guests map[string]model.Guest) (string, string) {
	if booking.StayID == "" {
		return booking.GuestName, booking.CabinName
	}
	if guest, ok := guests[booking.StayID]; ok {
		return guest.GuestName, guest.CabinName
	}
	if booking.GuestName != "" {
		return booking.GuestName, booking.CabinName
	}
	return model.UnknownGuest, booking.CabinName
}

// Summary считает слоты по статусам
func (b *Board) Summary() map[model.SlotStatus]int {
	summary := make(map[model.SlotStatus]int, len(model.AllSlotStatuses))
	for _, slot := range b.Slots {
		summary[slot.Status]++
	}
	return summary
}

// Find ищет слот по ключу
func (b *Board) Find(key model.SlotKey) (*model.Slot, bool) {
	for i := range b.Slots {
		if b.Slots[i].Key == key {
			return &b.Slots[i], true
		}
	}
	return nil, false
}

// Pending возвращает слоты, ожидающие одобрения
func (b *Board) Pending() []model.Slot {
	var pending []model.Slot
	for _, slot := range b.Slots {
		if slot.Status == model.SlotStatusPending {
			pending = append(pending, slot)
		}
	}
	return pending
}

// FindTimeSlot ищет структуру и интервал, которым соответствует ключ.
// Ключ с юнитом подходит только by_unit структуре с таким юнитом, ключ без юнита - by_structure.
func FindTimeSlot(structures []model.Structure, key model.SlotKey) (model.Structure, model.TimeSlot, bool) {
	for _, structure := range structures {
		if structure.ID != key.StructureID {
			continue
		}
		if !unitMatches(structure, key) {
			return model.Structure{}, model.TimeSlot{}, false
		}
		for _, timeSlot := range structure.TimeSlots {
			if timeSlot.StartTime == key.StartTime {
				return structure, timeSlot, true
			}
		}
		return model.Structure{}, model.TimeSlot{}, false
	}
	return model.Structure{}, model.TimeSlot{}, false
}

func unitMatches(structure model.Structure, key model.SlotKey) bool {
	for _, unit := range structure.BoardUnits() {
		if unit == nil && !key.HasUnit {
			return true
		}
		if unit != nil && key.HasUnit && *unit == key.UnitID {
			return true
		}
	}
	return false
}
