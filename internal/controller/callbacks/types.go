package callbacks

import (
	"context"

	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/pousada_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler обертка для callbacktypes.Handler с методами
type Handler struct {
	*callbacktypes.Handler
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(
	boardService *service.BoardService,
	bookingService *service.BookingService,
	kitchenService *service.KitchenService,
	stateManager callbacktypes.StateManager,
	admins callbacktypes.Admins,
	logger *zap.Logger,
) *Handler {
	inner := &callbacktypes.Handler{
		BoardService:   boardService,
		BookingService: bookingService,
		KitchenService: kitchenService,
		StateManager:   stateManager,
		Admins:         admins,
		Logger:         logger,
	}
	return &Handler{Handler: inner}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery
	h.Logger.Info("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	Route(ctx, b, callback, h.Handler)
}
