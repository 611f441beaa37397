package controller

import (
	"context"

	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/pousada_bot/internal/controller/handlers"
	"github.com/Freeeeeet/pousada_bot/internal/controller/state"
	"github.com/Freeeeeet/pousada_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	boardService *service.BoardService,
	bookingService *service.BookingService,
	kitchenService *service.KitchenService,
	adminIDs []int64,
	logger *zap.Logger,
) *BotController {
	// Выделение слотов и диалоги живут в памяти процесса
	stateManager := state.NewManager()
	admins := callbacktypes.NewAdmins(adminIDs)

	cmdHandlers := handlers.NewHandlers(
		boardService,
		bookingService,
		kitchenService,
		stateManager,
		admins,
		logger,
	)

	callbackHandler := callbacks.NewHandler(
		boardService,
		bookingService,
		kitchenService,
		stateManager,
		admins,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/pending", bot.MatchTypeExact, c.handlers.HandlePending)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Команды с необязательной датой: /board 14.03.2026
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/board", bot.MatchTypePrefix, c.handlers.HandleBoard)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/kitchen", bot.MatchTypePrefix, c.handlers.HandleKitchen)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "board", Description: "📋 Quadro de horários do dia"},
		{Command: "pending", Description: "🟡 Reservas pendentes"},
		{Command: "kitchen", Description: "🍳 Pedidos do café da manhã"},
		{Command: "cancel", Description: "✖️ Cancelar operação"},
		{Command: "help", Description: "❓ Ajuda"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота; блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
