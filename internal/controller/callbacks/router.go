package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/board"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/ticket"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Noop - кнопка без действия (заголовки, разделители)
const Noop = "noop"

type routeFunc func(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler)

// routes сопоставляет действие из callback data с обработчиком
var routes = map[string]routeFunc{
	common.ActionDay:          board.HandleShowDay,
	common.ActionToggle:       board.HandleToggle,
	common.ActionBlock:        board.HandleBlock,
	common.ActionRelease:      board.HandleRelease,
	common.ActionClear:        board.HandleClear,
	common.ActionReserve:      board.HandleReserve,
	common.ActionImage:        board.HandleImage,
	common.ActionPending:      board.HandlePending,
	common.ActionApprove:      board.HandleApprove,
	common.ActionDecline:      board.HandleDecline,
	common.ActionOverrides:    board.HandleOverrides,
	common.ActionOpen:         board.HandleSetOpen,
	common.ActionClose:        board.HandleSetClosed,
	common.ActionResetDefault: board.HandleResetDefault,
	common.ActionKitchen:      ticket.HandleTicket,
	common.ActionKitchenPDF:   ticket.HandleTicketPDF,
}

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	if data == Noop {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	action, _, _ := strings.Cut(data, ":")
	handler, ok := routes[action]
	if !ok {
		h.Logger.Warn("Unknown callback",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Comando desconhecido")
		return
	}

	handler(ctx, b, callback, h)
	h.Logger.Debug("Callback routed", zap.String("data", data))
}
