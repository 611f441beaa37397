package board

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandlePending показывает pending брони даты
func HandlePending(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if err := renderPending(hc); err != nil {
			common.HandleError(hc, err, "show pending")
			return
		}
		hc.Answer("")
	})
}

func renderPending(hc *common.HandlerContext) error {
	date, board, err := loadBoard(hc)
	if err != nil {
		return err
	}
	text, keyboard := common.BuildPendingScreen(board, date)
	return hc.EditMessage(text, keyboard)
}

// HandleApprove подтверждает pending бронь
func HandleApprove(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	decide(ctx, b, callback, h, model.IntentApprove, "✅ Reserva confirmada")
}

// HandleDecline отклоняет pending бронь; запись удаляется
func HandleDecline(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	decide(ctx, b, callback, h, model.IntentDecline, "❌ Reserva recusada")
}

func decide(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	action model.IntentAction,
	answer string,
) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		date, board, err := loadBoard(hc)
		if err != nil {
			common.HandleError(hc, err, "decide pending")
			return
		}

		slot, err := slotAt(board, hc.Args)
		if err != nil {
			common.HandleError(hc, err, "decide pending")
			return
		}
		if slot.Status != model.SlotStatusPending {
			hc.AnswerAlert("Essa reserva não está mais pendente")
			if err := renderPending(hc); err != nil {
				common.HandleError(hc, err, "show pending")
			}
			return
		}

		intent := model.Intent{Action: action, Key: slot.Key}
		if _, err := hc.Handler.BookingService.Apply(hc.Ctx, date, []model.Intent{intent}, hc.Actor()); err != nil {
			common.HandleError(hc, err, fmt.Sprintf("%s booking", action))
			return
		}

		if err := renderPending(hc); err != nil {
			common.HandleError(hc, err, "show pending")
			return
		}
		common.LogAndAnswer(hc, "Pending booking decided", answer)
	})
}
