package model

import (
	"time"

	"github.com/google/uuid"
)

// IntentAction - административное действие над слотом
type IntentAction string

const (
	IntentBlock   IntentAction = "block"
	IntentRelease IntentAction = "release"
	IntentCreate  IntentAction = "create"
	IntentCancel  IntentAction = "cancel"
	IntentApprove IntentAction = "approve"
	IntentDecline IntentAction = "decline"
)

// IsValid проверяет что действие известно
func (a IntentAction) IsValid() bool {
	switch a {
	case IntentBlock, IntentRelease, IntentCreate, IntentCancel, IntentApprove, IntentDecline:
		return true
	}
	return false
}

// BookingPayload - данные новой брони для IntentCreate
type BookingPayload struct {
	StayID    string        `json:"stayId"`
	GuestID   string        `json:"guestId"`
	GuestName string        `json:"guestName"`
	CabinName string        `json:"cabinName"`
	EndTime   string        `json:"endTime"`
	Status    BookingStatus `json:"status"`
}

// Intent - намерение изменить слот; вызывающий превращает список в атомарный batch
type Intent struct {
	Action  IntentAction    `json:"action"`
	Key     SlotKey         `json:"slotKey"`
	Payload *BookingPayload `json:"payload,omitempty"`
}

// AuditEntry - запись журнала, пишется в той же транзакции, что и изменение
type AuditEntry struct {
	ID        uuid.UUID    `json:"id"`
	BatchID   uuid.UUID    `json:"batchId"`
	Date      string       `json:"date"`
	Action    IntentAction `json:"action"`
	SlotKey   string       `json:"slotKey"`
	Actor     string       `json:"actor"`
	CreatedAt time.Time    `json:"createdAt"`
}
