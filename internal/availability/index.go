package availability

import "github.com/Freeeeeet/pousada_bot/internal/model"

// BookingIndex - брони одной даты по составному ключу слота.
// Инвариант "не больше одной живой брони на ключ" держится картой:
// при дубликатах побеждает самая поздняя по CreatedAt, остальные попадают в Duplicates.
type BookingIndex struct {
	date       string
	byKey      map[model.SlotKey]*model.Booking
	duplicates []model.Booking
}

// NewBookingIndex строит индекс. Брони с другой непустой датой пропускаются:
// ленты данных могут прийти в рассинхроне.
func NewBookingIndex(date string, bookings []model.Booking) *BookingIndex {
	index := &BookingIndex{
		date:  date,
		byKey: make(map[model.SlotKey]*model.Booking, len(bookings)),
	}

	for i := range bookings {
		booking := bookings[i]
		if booking.Date != "" && date != "" && booking.Date != date {
			continue
		}

		key := booking.Key()
		existing, ok := index.byKey[key]
		if !ok {
			index.byKey[key] = &booking
			continue
		}

		if booking.CreatedAt.Before(existing.CreatedAt) {
			index.duplicates = append(index.duplicates, booking)
			continue
		}
		index.duplicates = append(index.duplicates, *existing)
		index.byKey[key] = &booking
	}

	return index
}

// Lookup ищет бронь по ключу
func (ix *BookingIndex) Lookup(key model.SlotKey) (*model.Booking, bool) {
	if ix == nil {
		return nil, false
	}
	booking, ok := ix.byKey[key]
	return booking, ok
}

// Duplicates возвращает брони, вытесненные другой бронью на тот же ключ
func (ix *BookingIndex) Duplicates() []model.Booking {
	return ix.duplicates
}

// Len возвращает количество ключей с бронью
func (ix *BookingIndex) Len() int {
	return len(ix.byKey)
}

// Date возвращает дату индекса
func (ix *BookingIndex) Date() string {
	return ix.date
}
