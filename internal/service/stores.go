package service

import (
	"context"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/model"
)

// StructureStore - каталог бронируемых структур
type StructureStore interface {
	List(ctx context.Context) ([]model.Structure, error)
}

// BookingStore - брони и атомарная запись batch
type BookingStore interface {
	ListByDate(ctx context.Context, date string) ([]model.Booking, error)
	ListPendingFrom(ctx context.Context, date string) ([]model.Booking, error)
	ApplyBatch(ctx context.Context, batch *availability.Batch, audit []model.AuditEntry) error
}

// OverrideStore - дневные исключения
type OverrideStore interface {
	ListByDate(ctx context.Context, date string) (model.Overrides, error)
	Set(ctx context.Context, override model.DailyOverride) error
	Delete(ctx context.Context, date, structureID string) (bool, error)
}

// GuestStore - лента активных гостей; может отставать от броней
type GuestStore interface {
	ListActive(ctx context.Context, date string) ([]model.Guest, error)
}

type OrderStore interface {
	ListByDate(ctx context.Context, date string) ([]model.BreakfastOrder, error)
	Create(ctx context.Context, order *model.BreakfastOrder) error
}

type MenuStore interface {
	List(ctx context.Context) ([]model.MenuItem, error)
}
