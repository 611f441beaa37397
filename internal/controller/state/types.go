package state

import "github.com/Freeeeeet/pousada_bot/internal/model"

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Администратор отмечает слоты на доске
	StateSelectingSlots UserState = "selecting_slots"

	// Администратор вводит имя гостя для брони отмеченных слотов
	StateEnteringGuestName UserState = "entering_guest_name"
)

// UserData хранит состояние диалога и выделение пользователя
type UserData struct {
	State     UserState
	Selection *Selection
}

// Selection - отмеченные слоты одной даты
type Selection struct {
	Date string
	Keys map[model.SlotKey]bool
}
