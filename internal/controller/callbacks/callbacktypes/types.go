package callbacktypes

import (
	"github.com/Freeeeeet/pousada_bot/internal/controller/state"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/Freeeeeet/pousada_bot/internal/service"
	"go.uber.org/zap"
)

// StateManager интерфейс для управления состоянием и выделением слотов
type StateManager interface {
	GetState(telegramID int64) state.UserState
	SetState(telegramID int64, state state.UserState)
	ClearState(telegramID int64)
	ToggleSelection(telegramID int64, date string, key model.SlotKey) bool
	SelectedSet(telegramID int64, date string) map[model.SlotKey]bool
	Selection(telegramID int64, date string) []model.SlotKey
	ClearSelection(telegramID int64)
}

// Admins - Telegram ID, которым разрешено управлять доской
type Admins map[int64]bool

// NewAdmins строит множество администраторов
func NewAdmins(ids []int64) Admins {
	admins := make(Admins, len(ids))
	for _, id := range ids {
		admins[id] = true
	}
	return admins
}

// Allows проверяет доступ
func (a Admins) Allows(telegramID int64) bool {
	return a[telegramID]
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	BoardService   *service.BoardService
	BookingService *service.BookingService
	KitchenService *service.KitchenService
	StateManager   StateManager
	Admins         Admins
	Logger         *zap.Logger
}
