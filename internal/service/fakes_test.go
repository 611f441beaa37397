package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/model"
)

var errStoreDown = errors.New("store down")

type fakeStructures struct {
	structures []model.Structure
	err        error
}

func (f *fakeStructures) List(context.Context) ([]model.Structure, error) {
	return f.structures, f.err
}

// fakeBookings применяет batch к памяти так же, как транзакция: либо всё, либо ничего
type fakeBookings struct {
	mu       sync.Mutex
	bookings []model.Booking
	audit    []model.AuditEntry
	applyErr error
	batches  int
}

func (f *fakeBookings) ListByDate(_ context.Context, date string) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) ListPendingFrom(_ context.Context, date string) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Booking
	for _, b := range f.bookings {
		if b.Date >= date && b.Status == model.BookingStatusPending {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) ApplyBatch(_ context.Context, batch *availability.Batch, audit []model.AuditEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applyErr != nil {
		return f.applyErr
	}

	next := append([]model.Booking(nil), f.bookings...)
	for _, op := range batch.Ops {
		switch op.Kind {
		case availability.OpDelete:
			kept := next[:0:0]
			for _, b := range next {
				if b.Date == batch.Date && b.Key() == op.Key {
					continue
				}
				kept = append(kept, b)
			}
			next = kept
		case availability.OpInsert:
			next = append(next, *op.Booking)
		}
	}

	f.bookings = next
	f.audit = append(f.audit, audit...)
	f.batches++
	return nil
}

type fakeOverrides struct {
	byDate map[string]model.Overrides
}

func newFakeOverrides() *fakeOverrides {
	return &fakeOverrides{byDate: make(map[string]model.Overrides)}
}

func (f *fakeOverrides) ListByDate(_ context.Context, date string) (model.Overrides, error) {
	out := make(model.Overrides)
	for id, status := range f.byDate[date] {
		out[id] = status
	}
	return out, nil
}

func (f *fakeOverrides) Set(_ context.Context, o model.DailyOverride) error {
	if f.byDate[o.Date] == nil {
		f.byDate[o.Date] = make(model.Overrides)
	}
	f.byDate[o.Date][o.StructureID] = o.Status
	return nil
}

func (f *fakeOverrides) Delete(_ context.Context, date, structureID string) (bool, error) {
	_, ok := f.byDate[date][structureID]
	delete(f.byDate[date], structureID)
	return ok, nil
}

type fakeGuests struct {
	guests []model.Guest
}

func (f *fakeGuests) ListActive(context.Context, string) ([]model.Guest, error) {
	return f.guests, nil
}

type fakeOrders struct {
	orders []model.BreakfastOrder
	err    error
}

func (f *fakeOrders) ListByDate(_ context.Context, date string) ([]model.BreakfastOrder, error) {
	var out []model.BreakfastOrder
	for _, o := range f.orders {
		if o.Date == date {
			out = append(out, o)
		}
	}
	return out, f.err
}

func (f *fakeOrders) Create(_ context.Context, order *model.BreakfastOrder) error {
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, *order)
	return nil
}

type fakeMenu struct {
	items []model.MenuItem
}

func (f *fakeMenu) List(context.Context) ([]model.MenuItem, error) {
	return f.items, nil
}
