package app

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/kitchen"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"go.uber.org/zap"
)

// TicketSource строит кухонный чек на дату
type TicketSource interface {
	Ticket(ctx context.Context, date time.Time) (*kitchen.Ticket, error)
}

// TicketSender доставляет чек в чат кухни
type TicketSender interface {
	SendKitchenTicket(ctx context.Context, chatID int64, ticket *kitchen.Ticket) error
}

// Clock - источник текущего времени в часовом поясе пансиона
type Clock interface {
	Now() time.Time
}

// checkInterval - как часто планировщик проверяет, не пора ли отправить чек
const checkInterval = time.Minute

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	tickets TicketSource
	sender  TicketSender
	clock   Clock
	chatID  int64
	hour    int
	logger  *zap.Logger

	stopChan chan struct{}
	stopOnce sync.Once

	// lastSent - дата (YYYY-MM-DD), для которой чек уже отправлен
	lastSent string
}

// NewScheduler создаёт новый планировщик ежедневной рассылки чека кухни
func NewScheduler(tickets TicketSource, sender TicketSender, clock Clock, chatID int64, hour int, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		tickets:  tickets,
		sender:   sender,
		clock:    clock,
		chatID:   chatID,
		hour:     hour,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	if s.chatID == 0 {
		s.logger.Info("Kitchen chat not configured, ticket delivery disabled")
		return
	}

	s.logger.Info("Starting background scheduler",
		zap.Int64("kitchen_chat_id", s.chatID),
		zap.Int("hour", s.hour))

	go s.runKitchenTicketTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping background scheduler")
		close(s.stopChan)
	})
}

func (s *Scheduler) runKitchenTicketTask(ctx context.Context) {
	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Tick(ctx)
		case <-s.stopChan:
			s.logger.Info("Kitchen ticket task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Kitchen ticket task cancelled")
			return
		}
	}
}

// Tick отправляет чек на завтра, если наступил час рассылки и он ещё не отправлен.
// Возвращает true, если чек отправлен.
func (s *Scheduler) Tick(ctx context.Context) bool {
	now := s.clock.Now()
	if now.Hour() < s.hour {
		return false
	}

	tomorrow := model.DayStart(now).AddDate(0, 0, 1)
	dateKey := model.DateKey(tomorrow)
	if s.lastSent == dateKey {
		return false
	}

	ticket, err := s.tickets.Ticket(ctx, tomorrow)
	if err != nil {
		s.logger.Error("Failed to build kitchen ticket", zap.String("date", dateKey), zap.Error(err))
		return false
	}

	if err := s.sender.SendKitchenTicket(ctx, s.chatID, ticket); err != nil {
		s.logger.Error("Failed to send kitchen ticket", zap.String("date", dateKey), zap.Error(err))
		return false
	}

	s.lastSent = dateKey
	s.logger.Info("Kitchen ticket sent",
		zap.String("date", dateKey),
		zap.Int("orders", ticket.Orders))
	return true
}
