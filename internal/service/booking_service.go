package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService struct {
	boards   *BoardService
	bookings BookingStore
	planner  *availability.Planner
	logger   *zap.Logger
}

func NewBookingService(boards *BoardService, bookings BookingStore, logger *zap.Logger) *BookingService {
	planner := availability.NewPlanner()
	planner.Now = boards.Calendar().Now

	return &BookingService{
		boards:   boards,
		bookings: bookings,
		planner:  planner,
		logger:   logger,
	}
}

// ApplyResult - итог применения batch
type ApplyResult struct {
	BatchID  uuid.UUID `json:"batchId"`
	Date     string    `json:"date"`
	Intents  int       `json:"intents"`
	Inserted int       `json:"inserted"`
}

// Apply проверяет намерения и применяет их одной транзакцией вместе с журналом.
// Если хотя бы одно намерение неверно, ничего не записывается.
func (s *BookingService) Apply(ctx context.Context, date time.Time, intents []model.Intent, actor string) (*ApplyResult, error) {
	structures, err := s.boards.Structures(ctx)
	if err != nil {
		return nil, err
	}

	endTimes := make(map[model.SlotKey]string, len(intents))
	for i, intent := range intents {
		_, timeSlot, ok := availability.FindTimeSlot(structures, intent.Key)
		if !ok {
			return nil, fmt.Errorf("intent %d: %w: %s", i, ErrUnknownSlot, intent.Key)
		}
		endTimes[intent.Key] = timeSlot.EndTime
	}

	dateKey := model.DateKey(date)
	existing, err := s.bookings.ListByDate(ctx, dateKey)
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	batch, err := s.planner.Plan(date, intents, availability.NewBookingIndex(dateKey, existing))
	if err != nil {
		return nil, fmt.Errorf("plan batch: %w", err)
	}

	inserts := batch.Inserts()
	for _, booking := range inserts {
		if booking.EndTime == "" {
			booking.EndTime = endTimes[booking.Key()]
		}
	}

	audit := s.planner.Audit(batch, actor)
	if err := s.bookings.ApplyBatch(ctx, batch, audit); err != nil {
		return nil, fmt.Errorf("apply batch: %w", err)
	}

	s.logger.Info("Booking batch applied",
		zap.String("batch_id", batch.ID.String()),
		zap.String("date", dateKey),
		zap.String("actor", actor),
		zap.Int("intents", len(intents)),
		zap.Int("ops", len(batch.Ops)),
	)

	return &ApplyResult{
		BatchID:  batch.ID,
		Date:     dateKey,
		Intents:  len(intents),
		Inserted: len(inserts),
	}, nil
}

// PendingForDate возвращает слоты даты, ожидающие одобрения
func (s *BookingService) PendingForDate(ctx context.Context, date time.Time) ([]model.Slot, error) {
	board, err := s.boards.DayBoard(ctx, date)
	if err != nil {
		return nil, err
	}
	return board.Pending(), nil
}

// PendingUpcoming возвращает pending брони начиная с сегодняшнего дня
func (s *BookingService) PendingUpcoming(ctx context.Context) ([]model.Booking, error) {
	today := model.DateKey(s.boards.Calendar().Today())
	bookings, err := s.bookings.ListPendingFrom(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("get pending bookings: %w", err)
	}
	return bookings, nil
}
