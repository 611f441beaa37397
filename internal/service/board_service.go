package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"go.uber.org/zap"
)

type BoardService struct {
	structures StructureStore
	bookings   BookingStore
	overrides  OverrideStore
	guests     GuestStore
	calendar   *Calendar
	logger     *zap.Logger
}

func NewBoardService(
	structures StructureStore,
	bookings BookingStore,
	overrides OverrideStore,
	guests GuestStore,
	calendar *Calendar,
	logger *zap.Logger,
) *BoardService {
	return &BoardService{
		structures: structures,
		bookings:   bookings,
		overrides:  overrides,
		guests:     guests,
		calendar:   calendar,
		logger:     logger,
	}
}

// Calendar возвращает календарь сервиса
func (s *BoardService) Calendar() *Calendar {
	return s.calendar
}

// Structures возвращает каталог структур
func (s *BoardService) Structures(ctx context.Context) ([]model.Structure, error) {
	structures, err := s.structures.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get structures: %w", err)
	}
	return structures, nil
}

// DayBoard строит доску слотов на дату
func (s *BoardService) DayBoard(ctx context.Context, date time.Time) (*availability.Board, error) {
	dateKey := model.DateKey(date)

	structures, err := s.Structures(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListByDate(ctx, dateKey)
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	overrides, err := s.overrides.ListByDate(ctx, dateKey)
	if err != nil {
		return nil, fmt.Errorf("get overrides: %w", err)
	}

	guests, err := s.guests.ListActive(ctx, dateKey)
	if err != nil {
		return nil, fmt.Errorf("get active guests: %w", err)
	}

	board := availability.BuildBoard(structures, date, bookings, overrides, guests, s.calendar.Now())
	s.reportAnomalies(board)

	return board, nil
}

// reportAnomalies логирует данные, которые доска показывает, но которых быть не должно
func (s *BoardService) reportAnomalies(board *availability.Board) {
	for _, booking := range board.Duplicates {
		s.logger.Warn("Duplicate booking for slot key, older one hidden",
			zap.String("date", board.Date),
			zap.String("slot_key", booking.Key().String()),
			zap.String("booking_id", booking.ID.String()),
		)
	}
	for _, booking := range board.Unrecognized {
		s.logger.Warn("Unrecognized booking status, slot shown as available",
			zap.String("date", board.Date),
			zap.String("slot_key", booking.Key().String()),
			zap.String("booking_id", booking.ID.String()),
			zap.String("status", string(booking.Status)),
		)
	}
}

// Overrides возвращает исключения дня по структурам
func (s *BoardService) Overrides(ctx context.Context, dateKey string) (model.Overrides, error) {
	overrides, err := s.overrides.ListByDate(ctx, dateKey)
	if err != nil {
		return nil, fmt.Errorf("get overrides: %w", err)
	}
	return overrides, nil
}

// SetOverride открывает или закрывает структуру на день
func (s *BoardService) SetOverride(ctx context.Context, date time.Time, structureID string, status model.StructureStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if err := s.requireStructure(ctx, structureID); err != nil {
		return err
	}

	override := model.DailyOverride{
		Date:        model.DateKey(date),
		StructureID: structureID,
		Status:      status,
	}
	if err := s.overrides.Set(ctx, override); err != nil {
		return fmt.Errorf("set override: %w", err)
	}

	s.logger.Info("Daily override set",
		zap.String("date", override.Date),
		zap.String("structure_id", structureID),
		zap.String("status", string(status)),
	)
	return nil
}

// ClearOverride возвращает структуре статус по умолчанию на день
func (s *BoardService) ClearOverride(ctx context.Context, date time.Time, structureID string) error {
	if err := s.requireStructure(ctx, structureID); err != nil {
		return err
	}

	dateKey := model.DateKey(date)
	removed, err := s.overrides.Delete(ctx, dateKey, structureID)
	if err != nil {
		return fmt.Errorf("clear override: %w", err)
	}

	s.logger.Info("Daily override cleared",
		zap.String("date", dateKey),
		zap.String("structure_id", structureID),
		zap.Bool("existed", removed),
	)
	return nil
}

func (s *BoardService) requireStructure(ctx context.Context, structureID string) error {
	structures, err := s.Structures(ctx)
	if err != nil {
		return err
	}
	for _, structure := range structures {
		if structure.ID == structureID {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrStructureNotFound, structureID)
}
