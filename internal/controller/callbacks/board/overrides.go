package board

import (
	"context"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleOverrides показывает открытие/закрытие структур на день
func HandleOverrides(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if err := renderOverrides(hc); err != nil {
			common.HandleError(hc, err, "show overrides")
			return
		}
		hc.Answer("")
	})
}

func renderOverrides(hc *common.HandlerContext) error {
	date, board, err := loadBoard(hc)
	if err != nil {
		return err
	}
	structures, overrides, err := overridesFor(hc, board.Date)
	if err != nil {
		return err
	}
	text, keyboard := common.BuildOverridesScreen(structures, overrides, date)
	return hc.EditMessage(text, keyboard)
}

func overridesFor(hc *common.HandlerContext, dateKey string) ([]model.Structure, model.Overrides, error) {
	structures, err := hc.Handler.BoardService.Structures(hc.Ctx)
	if err != nil {
		return nil, nil, err
	}
	overrides, err := hc.Handler.BoardService.Overrides(hc.Ctx, dateKey)
	if err != nil {
		return nil, nil, err
	}
	return structures, overrides, nil
}

// HandleSetOpen открывает структуру на день
func HandleSetOpen(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	changeOverride(ctx, b, callback, h, func(hc *common.HandlerContext, date time.Time, structureID string) error {
		return hc.Handler.BoardService.SetOverride(hc.Ctx, date, structureID, model.StructureOpen)
	}, "🟢 Aberta para o dia")
}

// HandleSetClosed закрывает структуру на день
func HandleSetClosed(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	changeOverride(ctx, b, callback, h, func(hc *common.HandlerContext, date time.Time, structureID string) error {
		return hc.Handler.BoardService.SetOverride(hc.Ctx, date, structureID, model.StructureClosed)
	}, "⚫ Fechada para o dia")
}

// HandleResetDefault убирает исключение дня
func HandleResetDefault(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	changeOverride(ctx, b, callback, h, func(hc *common.HandlerContext, date time.Time, structureID string) error {
		return hc.Handler.BoardService.ClearOverride(hc.Ctx, date, structureID)
	}, "↩️ Status padrão restaurado")
}

func changeOverride(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	apply func(hc *common.HandlerContext, date time.Time, structureID string) error,
	answer string,
) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		date, err := hc.Date()
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "change override")
			return
		}

		structures, err := hc.Handler.BoardService.Structures(hc.Ctx)
		if err != nil {
			common.HandleError(hc, err, "change override")
			return
		}
		structureID, err := structureAt(structures, hc.Args)
		if err != nil {
			common.HandleError(hc, err, "change override")
			return
		}

		if err := apply(hc, date, structureID); err != nil {
			common.HandleError(hc, err, "change override")
			return
		}

		if err := renderOverrides(hc); err != nil {
			common.HandleError(hc, err, "show overrides")
			return
		}
		common.LogAndAnswer(hc, "Daily override changed from bot", answer)
	})
}

// structureAt возвращает ID структуры по индексу кнопки, сверяя отпечаток
func structureAt(structures []model.Structure, args common.CallbackArgs) (string, error) {
	if !args.HasIndex || args.Index >= len(structures) {
		return "", common.ErrInvalidFormat
	}
	structureID := structures[args.Index].ID
	if !args.Matches(structureID) {
		return "", common.ErrStaleButton
	}
	return structureID, nil
}
