package handlers

import (
	"context"
	"fmt"
	"html"

	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/ticket"
	"github.com/Freeeeeet/pousada_bot/internal/controller/state"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📚 <b>Comandos</b>\n\n" +
	"/board [data] - Quadro de horários do dia (hoje, amanha, 14.03.2026)\n" +
	"/pending - Reservas aguardando aprovação\n" +
	"/kitchen [data] - Pedidos do café da manhã para a cozinha\n" +
	"/cancel - Cancelar a operação atual\n" +
	"/help - Mostrar esta ajuda\n\n" +
	"No quadro toque nos horários para marcar e depois escolha Bloquear, Liberar ou Reservar."

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	user := update.Message.From
	if !h.admins.Allows(user.ID) {
		h.logger.Info("Start from non-admin", zap.Int64("telegram_id", user.ID), zap.String("username", user.Username))
		h.sendMessage(ctx, b, update.Message.Chat.ID, fmt.Sprintf(
			"👋 Olá, %s!\n\nEste bot é de uso da administração da pousada.\n"+
				"Seu ID do Telegram: <code>%d</code>", html.EscapeString(user.FirstName), user.ID), nil)
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		fmt.Sprintf("👋 Olá, %s!\n\n", html.EscapeString(user.FirstName))+helpText, nil)
	h.showBoard(ctx, b, update.Message.Chat.ID, "")
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleBoard обрабатывает команду /board [data]
func (h *Handlers) HandleBoard(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	h.showBoard(ctx, b, update.Message.Chat.ID, commandArg(update.Message.Text))
}

// showBoard отправляет доску дня новым сообщением
func (h *Handlers) showBoard(ctx context.Context, b *bot.Bot, chatID int64, dayArg string) {
	calendar := h.boardService.Calendar()
	date, err := calendar.ParseDay(dayArg)
	if err != nil {
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	board, err := h.boardService.DayBoard(ctx, date)
	if err != nil {
		h.logger.Error("Failed to build board", zap.String("date", model.DateKey(date)), zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	text, keyboard := common.BuildBoardScreen(board, date, calendar.Today(), nil)
	h.sendMessage(ctx, b, chatID, text, keyboard)
}

// HandlePending обрабатывает команду /pending
func (h *Handlers) HandlePending(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	bookings, err := h.bookingService.PendingUpcoming(ctx)
	if err != nil {
		h.logger.Error("Failed to get pending bookings", zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	structures, err := h.boardService.Structures(ctx)
	if err != nil {
		h.logger.Error("Failed to get structures", zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}
	names := make(map[string]string, len(structures))
	for _, structure := range structures {
		names[structure.ID] = structure.Name
	}

	text, keyboard := common.BuildUpcomingPendingScreen(bookings, names, h.boardService.Calendar().Location())
	h.sendMessage(ctx, b, chatID, text, keyboard)
}

// HandleKitchen обрабатывает команду /kitchen [data]
func (h *Handlers) HandleKitchen(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	date, err := h.boardService.Calendar().ParseDay(commandArg(update.Message.Text))
	if err != nil {
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	t, err := h.kitchenService.Ticket(ctx, date)
	if err != nil {
		h.logger.Error("Failed to build kitchen ticket", zap.String("date", model.DateKey(date)), zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	text, keyboard := ticket.BuildTicketScreen(t, model.DateKey(date))
	h.sendMessage(ctx, b, chatID, text, keyboard)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога и выделения
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	telegramID := update.Message.From.ID
	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Nenhuma operação ativa para cancelar.", nil)
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Operação cancelada.\n\nUse /help para ver os comandos.", nil)
}
