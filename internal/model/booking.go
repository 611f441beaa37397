package model

import "github.com/google/uuid"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmado" // Подтверждена
	BookingStatusPending   BookingStatus = "pendente"   // Ожидает одобрения
	BookingStatusBlocked   BookingStatus = "bloqueado"  // Заблокирована администратором
)

// IsKnown проверяет что статус брони один из известных
func (s BookingStatus) IsKnown() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusPending, BookingStatusBlocked:
		return true
	}
	return false
}

// Booking - бронь слота. Отмена/отклонение/освобождение удаляют запись, а не меняют статус.
type Booking struct {
	ID          uuid.UUID     `json:"id"`
	StructureID string        `json:"structureId"`
	UnitID      *string       `json:"unitId"`
	StayID      string        `json:"stayId,omitempty"`
	GuestID     string        `json:"guestId,omitempty"`
	Date        string        `json:"date"`
	StartTime   string        `json:"startTime"`
	EndTime     string        `json:"endTime"`
	Status      BookingStatus `json:"status"`
	GuestName   string        `json:"guestName,omitempty"`
	CabinName   string        `json:"cabinName,omitempty"`
	CreatedAt   Timestamp     `json:"createdAt"`
}

// Key возвращает составной ключ слота брони
func (b *Booking) Key() SlotKey {
	return NewSlotKey(b.StructureID, b.UnitID, b.StartTime)
}
