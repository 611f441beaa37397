package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/google/uuid"
)

var (
	ErrInvalidIntent = errors.New("invalid intent")
	ErrSlotElapsed   = errors.New("slot time has already passed")
	ErrNotPending    = errors.New("no pending booking at slot")
)

// OpKind - вид операции записи
type OpKind int

const (
	OpDelete OpKind = iota
	OpInsert
)

// Op - одна операция записи в batch
type Op struct {
	Kind    OpKind
	Key     model.SlotKey
	Booking *model.Booking // только для OpInsert
}

// Batch - упорядоченные операции, применяемые одной транзакцией
type Batch struct {
	ID      uuid.UUID
	Date    string
	Ops     []Op
	Intents []model.Intent
}

// Planner превращает намерения в batch. NewID и Now подменяются в тестах.
type Planner struct {
	NewID func() uuid.UUID
	Now   func() time.Time
}

// NewPlanner создаёт планировщик с uuid.New и time.Now
func NewPlanner() *Planner {
	return &Planner{NewID: uuid.New, Now: time.Now}
}

// Plan проверяет все намерения и строит batch. Любая ошибка отклоняет весь batch
// до того, как что-либо будет записано.
// Каждое изменяющее действие - delete-then-insert по ключу, поэтому после применения
// на ключ приходится не больше одной брони.
func (p *Planner) Plan(date time.Time, intents []model.Intent, existing *BookingIndex) (*Batch, error) {
	if len(intents) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrInvalidIntent)
	}

	now := p.Now()
	dateKey := model.DateKey(date)
	batch := &Batch{
		ID:      p.NewID(),
		Date:    dateKey,
		Intents: intents,
	}

	seen := make(map[model.SlotKey]bool, len(intents))
	for i, intent := range intents {
		if !intent.Action.IsValid() {
			return nil, fmt.Errorf("intent %d: %w: unknown action %q", i, ErrInvalidIntent, intent.Action)
		}
		if intent.Key.IsZero() {
			return nil, fmt.Errorf("intent %d: %w: empty slot key", i, ErrInvalidIntent)
		}
		if seen[intent.Key] {
			return nil, fmt.Errorf("intent %d: %w: slot %s appears twice", i, ErrInvalidIntent, intent.Key)
		}
		seen[intent.Key] = true

		deleteOp := Op{Kind: OpDelete, Key: intent.Key}
		elapsed := SlotStart(date, intent.Key.StartTime).Before(now)

		switch intent.Action {
		case model.IntentRelease, model.IntentCancel, model.IntentDecline:
			batch.Ops = append(batch.Ops, deleteOp)

		case model.IntentBlock:
			if elapsed {
				return nil, fmt.Errorf("intent %d: %w: %s", i, ErrSlotElapsed, intent.Key)
			}
			booking := p.newBooking(dateKey, intent.Key, now)
			booking.Status = model.BookingStatusBlocked
			if prev, ok := existing.Lookup(intent.Key); ok {
				booking.EndTime = prev.EndTime
			}
			batch.Ops = append(batch.Ops, deleteOp, Op{Kind: OpInsert, Key: intent.Key, Booking: booking})

		case model.IntentCreate:
			if elapsed {
				return nil, fmt.Errorf("intent %d: %w: %s", i, ErrSlotElapsed, intent.Key)
			}
			payload := intent.Payload
			if payload == nil || (payload.StayID == "" && payload.GuestName == "") {
				return nil, fmt.Errorf("intent %d: %w: create needs a guest", i, ErrInvalidIntent)
			}
			status := payload.Status
			if status == "" {
				status = model.BookingStatusPending
			}
			if status != model.BookingStatusPending && status != model.BookingStatusConfirmed {
				return nil, fmt.Errorf("intent %d: %w: create with status %q", i, ErrInvalidIntent, status)
			}
			booking := p.newBooking(dateKey, intent.Key, now)
			booking.Status = status
			booking.StayID = payload.StayID
			booking.GuestID = payload.GuestID
			booking.GuestName = payload.GuestName
			booking.CabinName = payload.CabinName
			booking.EndTime = payload.EndTime
			batch.Ops = append(batch.Ops, deleteOp, Op{Kind: OpInsert, Key: intent.Key, Booking: booking})

		case model.IntentApprove:
			if elapsed {
				return nil, fmt.Errorf("intent %d: %w: %s", i, ErrSlotElapsed, intent.Key)
			}
			prev, ok := existing.Lookup(intent.Key)
			if !ok || prev.Status != model.BookingStatusPending {
				return nil, fmt.Errorf("intent %d: %w: %s", i, ErrNotPending, intent.Key)
			}
			approved := *prev
			approved.Status = model.BookingStatusConfirmed
			approved.Date = dateKey
			batch.Ops = append(batch.Ops, deleteOp, Op{Kind: OpInsert, Key: intent.Key, Booking: &approved})
		}
	}

	return batch, nil
}

func (p *Planner) newBooking(date string, key model.SlotKey, now time.Time) *model.Booking {
	return &model.Booking{
		ID:          p.NewID(),
		StructureID: key.StructureID,
		UnitID:      key.Unit(),
		Date:        date,
		StartTime:   key.StartTime,
		CreatedAt:   model.DateTimestamp(now),
	}
}

// Audit строит записи журнала для batch, по одной на намерение
func (p *Planner) Audit(batch *Batch, actor string) []model.AuditEntry {
	now := p.Now()
	entries := make([]model.AuditEntry, 0, len(batch.Intents))
	for _, intent := range batch.Intents {
		entries = append(entries, model.AuditEntry{
			ID:        p.NewID(),
			BatchID:   batch.ID,
			Date:      batch.Date,
			Action:    intent.Action,
			SlotKey:   intent.Key.String(),
			Actor:     actor,
			CreatedAt: now,
		})
	}
	return entries
}

// Inserts возвращает брони, которые batch вставит
func (b *Batch) Inserts() []*model.Booking {
	var inserted []*model.Booking
	for _, op := range b.Ops {
		if op.Kind == OpInsert {
			inserted = append(inserted, op.Booking)
		}
	}
	return inserted
}
