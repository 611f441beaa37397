package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/kitchen"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/Freeeeeet/pousada_bot/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BoardService - операции доски, нужные API
type BoardService interface {
	Calendar() *service.Calendar
	DayBoard(ctx context.Context, date time.Time) (*availability.Board, error)
	SetOverride(ctx context.Context, date time.Time, structureID string, status model.StructureStatus) error
	ClearOverride(ctx context.Context, date time.Time, structureID string) error
}

// BookingService применяет пакеты намерений
type BookingService interface {
	Apply(ctx context.Context, date time.Time, intents []model.Intent, actor string) (*service.ApplyResult, error)
}

// KitchenService принимает заказы завтрака и строит кухонный чек
type KitchenService interface {
	Ticket(ctx context.Context, date time.Time) (*kitchen.Ticket, error)
	PlaceOrder(ctx context.Context, order *model.BreakfastOrder) error
}

// Server - HTTP API для веб-интерфейса ресепшена
type Server struct {
	boards   BoardService
	bookings BookingService
	kitchen  KitchenService
	auth     AuthConfig
	limiter  *RateLimiter
	logger   *zap.Logger

	httpServer *http.Server
}

func NewServer(
	addr string,
	boards BoardService,
	bookings BookingService,
	kitchenService KitchenService,
	auth AuthConfig,
	limiter *RateLimiter,
	logger *zap.Logger,
) *Server {
	s := &Server{
		boards:   boards,
		bookings: bookings,
		kitchen:  kitchenService,
		auth:     auth,
		limiter:  limiter,
		logger:   logger,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router собирает маршруты API
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	if s.limiter != nil {
		api.Use(s.limiter.Middleware())
	}
	api.Use(AuthMiddleware(s.auth))
	{
		api.GET("/board", s.GetBoardHandler)
		api.POST("/batches", s.ApplyBatchHandler)

		overrides := api.Group("/overrides")
		{
			overrides.PUT("/:structureId", s.SetOverrideHandler)
			overrides.DELETE("/:structureId", s.ClearOverrideHandler)
		}

		api.POST("/orders", s.PlaceOrderHandler)
		api.GET("/kitchen", s.GetKitchenHandler)
		api.GET("/kitchen.pdf", s.GetKitchenPDFHandler)
	}

	return router
}

// requestLogger пишет каждый запрос в zap
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// Run слушает адрес до ошибки или Shutdown
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP API", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen http: %w", err)
	}
	return nil
}

// Shutdown дожидается завершения активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Stopping HTTP API")
	return s.httpServer.Shutdown(ctx)
}
