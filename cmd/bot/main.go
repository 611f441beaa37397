package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/api"
	"github.com/Freeeeeet/pousada_bot/internal/app"
	"github.com/Freeeeeet/pousada_bot/internal/config"
	"github.com/Freeeeeet/pousada_bot/internal/controller"
	"github.com/Freeeeeet/pousada_bot/internal/repository"
	"github.com/Freeeeeet/pousada_bot/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// apiBurst - сколько запросов клиент может сделать разом сверх средней частоты
const apiBurst = 20

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Pousada bot stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting pousada bot",
		zap.String("environment", cfg.Environment),
		zap.String("timezone", cfg.Timezone),
		zap.Int("admins", len(cfg.AdminIDs)))
	if len(cfg.AdminIDs) == 0 {
		logger.Warn("ADMIN_IDS is empty, nobody can use the bot")
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		return err
	}
	if err := migrator.Run(ctx); err != nil {
		migrator.Close()
		return err
	}
	migrator.Close()

	// Репозитории
	structureRepo := repository.NewStructureRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	overrideRepo := repository.NewOverrideRepository(pool)
	stayRepo := repository.NewStayRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)

	// Сервисы
	calendar := service.NewCalendar(loc)
	boardService := service.NewBoardService(structureRepo, bookingRepo, overrideRepo, stayRepo, calendar, logger)
	bookingService := service.NewBookingService(boardService, bookingRepo, logger)
	kitchenService := service.NewKitchenService(orderRepo, menuRepo, logger)

	// Telegram
	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(b, boardService, bookingService, kitchenService, cfg.AdminIDs, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		// Меню команд не критично для работы
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	// Фоновая рассылка чека кухни
	scheduler := app.NewScheduler(kitchenService, botController, calendar, cfg.KitchenChatID, cfg.KitchenTicketHour, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	// HTTP API
	var server *api.Server
	auth := api.AuthConfig{StaticTokens: cfg.StaticTokens, JWTSecret: cfg.JWTSecret}
	switch {
	case cfg.HTTPAddr == "":
		logger.Info("HTTP_ADDR not set, HTTP API disabled")
	case !auth.Enabled():
		logger.Warn("HTTP API disabled: set STATIC_TOKENS or JWT_HMAC_SECRET")
	default:
		if cfg.Environment == "production" {
			gin.SetMode(gin.ReleaseMode)
		}
		limiter := api.NewRateLimiter(cfg.APIRatePerSec, apiBurst)
		server = api.NewServer(cfg.HTTPAddr, boardService, bookingService, kitchenService, auth, limiter, logger)
		go func() {
			if err := server.Run(); err != nil {
				logger.Error("HTTP API failed", zap.Error(err))
				stop()
			}
		}()
	}

	// Блокируется до сигнала остановки
	botController.Start(ctx)

	logger.Info("Shutting down...")
	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP API shutdown failed", zap.Error(err))
		}
	}

	return nil
}
