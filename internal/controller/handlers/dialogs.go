package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/pousada_bot/internal/controller/state"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются другими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	if !h.admins.Allows(telegramID) {
		return
	}

	switch currentState := h.stateManager.GetState(telegramID); currentState {
	case state.StateEnteringGuestName:
		h.handleGuestName(ctx, b, update)
	case state.StateNone, state.StateSelectingSlots:
		// свободный текст вне диалога игнорируем
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}

// handleGuestName создаёт брони отмеченных слотов на введённого гостя
func (h *Handlers) handleGuestName(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	payload, ok := parseGuest(update.Message.Text)
	if !ok {
		h.sendError(ctx, b, chatID, "❌ Nome inválido. Envie o nome do hóspede ou /cancel.")
		return
	}

	dateKey, ok := h.stateManager.SelectionDate(telegramID)
	if !ok {
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(common.ErrEmptySelection))
		return
	}

	date, err := model.ParseDate(dateKey, h.boardService.Calendar().Location())
	if err != nil {
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	keys := h.stateManager.Selection(telegramID, dateKey)
	intents := make([]model.Intent, 0, len(keys))
	for _, key := range keys {
		p := payload
		intents = append(intents, model.Intent{Action: model.IntentCreate, Key: key, Payload: &p})
	}

	result, err := h.bookingService.Apply(ctx, date, intents, actorOf(update.Message.From))
	if err != nil {
		h.logger.Error("Failed to create bookings from dialog",
			zap.Int64("telegram_id", telegramID),
			zap.String("date", dateKey),
			zap.Error(err))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	h.stateManager.ClearState(telegramID)
	h.logger.Info("Bookings created from bot",
		zap.Int64("telegram_id", telegramID),
		zap.String("batch_id", result.BatchID.String()),
		zap.Int("count", result.Inserted))

	h.sendMessage(ctx, b, chatID, "✅ Reserva registrada.", nil)
	h.showBoard(ctx, b, chatID, dateKey)
}

func actorOf(user *models.User) string {
	name := user.Username
	if name == "" {
		name = user.FirstName
	}
	return "telegram:" + name
}
