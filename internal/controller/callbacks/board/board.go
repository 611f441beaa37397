package board

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/pousada_bot/internal/controller/state"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleShowDay показывает доску выбранной даты
func HandleShowDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if err := RenderBoard(hc); err != nil {
			common.HandleError(hc, err, "show board")
			return
		}
		hc.Answer("")
	})
}

// RenderBoard перерисовывает сообщение с доской даты из hc.Args
func RenderBoard(hc *common.HandlerContext) error {
	date, board, err := loadBoard(hc)
	if err != nil {
		return err
	}

	selected := hc.Handler.StateManager.SelectedSet(hc.TelegramID, board.Date)
	text, keyboard := common.BuildBoardScreen(board, date, hc.Handler.BoardService.Calendar().Today(), selected)
	return hc.EditMessage(text, keyboard)
}

func loadBoard(hc *common.HandlerContext) (time.Time, *availability.Board, error) {
	date, err := hc.Date()
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
	}

	board, err := hc.Handler.BoardService.DayBoard(hc.Ctx, date)
	if err != nil {
		return time.Time{}, nil, err
	}
	return date, board, nil
}

// slotAt возвращает слот доски по индексу из callback data. Если с момента отрисовки
// структуры или юниты поменялись, под индексом окажется другой ключ и кнопка отклоняется.
func slotAt(board *availability.Board, args common.CallbackArgs) (model.Slot, error) {
	if !args.HasIndex || args.Index >= len(board.Slots) {
		return model.Slot{}, common.ErrSlotNotFound
	}
	slot := board.Slots[args.Index]
	if !args.Matches(slot.Key.String()) {
		return model.Slot{}, common.ErrStaleButton
	}
	return slot, nil
}

// HandleToggle отмечает слот или снимает отметку
func HandleToggle(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		date, board, err := loadBoard(hc)
		if err != nil {
			common.HandleError(hc, err, "toggle slot")
			return
		}

		slot, err := slotAt(board, hc.Args)
		if err != nil {
			common.HandleError(hc, err, "toggle slot")
			return
		}
		if slot.Status == model.SlotStatusPast {
			hc.AnswerAlert(common.ErrorMessage(availability.ErrSlotElapsed))
			return
		}

		selectedNow := hc.Handler.StateManager.ToggleSelection(hc.TelegramID, board.Date, slot.Key)
		selected := hc.Handler.StateManager.SelectedSet(hc.TelegramID, board.Date)

		text, keyboard := common.BuildBoardScreen(board, date, hc.Handler.BoardService.Calendar().Today(), selected)
		if err := hc.EditMessage(text, keyboard); err != nil {
			common.HandleError(hc, err, "toggle slot")
			return
		}

		if selectedNow {
			hc.Answer(fmt.Sprintf("☑️ %s %s", slot.Key.StartTime, slot.StructureName))
		} else {
			hc.Answer("Desmarcado")
		}
	})
}

// HandleClear снимает все отметки
func HandleClear(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.Handler.StateManager.ClearSelection(hc.TelegramID)
		if err := RenderBoard(hc); err != nil {
			common.HandleError(hc, err, "clear selection")
			return
		}
		hc.Answer("Seleção limpa")
	})
}

// HandleBlock блокирует все отмеченные слоты одним batch
func HandleBlock(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	applySelection(ctx, b, callback, h, model.IntentBlock, "⛔ Bloqueados: %d")
}

// HandleRelease освобождает все отмеченные слоты одним batch
func HandleRelease(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	applySelection(ctx, b, callback, h, model.IntentRelease, "🔓 Liberados: %d")
}

func applySelection(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	action model.IntentAction,
	answerFormat string,
) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		keys := hc.Handler.StateManager.Selection(hc.TelegramID, hc.Args.Date)
		if len(keys) == 0 {
			hc.AnswerAlert(common.ErrorMessage(common.ErrEmptySelection))
			return
		}

		date, err := hc.Date()
		if err != nil {
			common.HandleError(hc, fmt.Errorf("%w: %v", common.ErrInvalidFormat, err), "apply selection")
			return
		}

		intents := make([]model.Intent, 0, len(keys))
		for _, key := range keys {
			intents = append(intents, model.Intent{Action: action, Key: key})
		}

		result, err := hc.Handler.BookingService.Apply(hc.Ctx, date, intents, hc.Actor())
		if err != nil {
			common.HandleError(hc, err, "apply selection")
			return
		}

		hc.Handler.StateManager.ClearSelection(hc.TelegramID)
		hc.Handler.Logger.Info("Selection applied from bot",
			zap.String("action", string(action)),
			zap.String("batch_id", result.BatchID.String()),
			zap.Int64("telegram_id", hc.TelegramID))

		if err := RenderBoard(hc); err != nil {
			common.HandleError(hc, err, "render board")
			return
		}
		hc.Answer(fmt.Sprintf(answerFormat, result.Intents))
	})
}

// HandleImage отправляет картинку доски
func HandleImage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		date, board, err := loadBoard(hc)
		if err != nil {
			common.HandleError(hc, err, "board image")
			return
		}

		data, err := common.GenerateBoardImage(board, date, hc.Handler.BoardService.Calendar().Now())
		if err != nil {
			common.HandleError(hc, err, "board image")
			return
		}

		caption := fmt.Sprintf("📋 %s\n%s", board.Date, common.SummaryLine(board))
		if err := hc.SendDocument(fmt.Sprintf("quadro-%s.png", board.Date), data, caption); err != nil {
			common.HandleError(hc, err, "send board image")
			return
		}
		hc.Answer("")
	})
}

// HandleReserve начинает диалог брони отмеченных слотов: следующим сообщением ждём имя гостя
func HandleReserve(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		keys := hc.Handler.StateManager.Selection(hc.TelegramID, hc.Args.Date)
		if len(keys) == 0 {
			hc.AnswerAlert(common.ErrorMessage(common.ErrEmptySelection))
			return
		}

		hc.Handler.StateManager.SetState(hc.TelegramID, state.StateEnteringGuestName)

		text := fmt.Sprintf("📝 Reserva de %d horário(s).\n\n"+
			"Envie o nome do hóspede. Para informar o chalé use <code>Nome / Chalé</code>.\n"+
			"/cancel para desistir.", len(keys))
		if err := hc.SendMessage(text, nil); err != nil {
			common.HandleError(hc, err, "start reserve dialog")
			return
		}
		hc.Answer("")
	})
}
