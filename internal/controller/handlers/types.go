package handlers

import (
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/pousada_bot/internal/controller/state"
	"github.com/Freeeeeet/pousada_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	boardService   *service.BoardService
	bookingService *service.BookingService
	kitchenService *service.KitchenService
	stateManager   *state.Manager
	admins         callbacktypes.Admins
	logger         *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	boardService *service.BoardService,
	bookingService *service.BookingService,
	kitchenService *service.KitchenService,
	stateManager *state.Manager,
	admins callbacktypes.Admins,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		boardService:   boardService,
		bookingService: bookingService,
		kitchenService: kitchenService,
		stateManager:   stateManager,
		admins:         admins,
		logger:         logger,
	}
}
