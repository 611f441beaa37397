package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/Freeeeeet/pousada_bot/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	*base.Repository
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{Repository: base.NewRepository(pool)}
}

const bookingColumns = `
	id, structure_id, unit_id, stay_id, guest_id, to_char(date, 'YYYY-MM-DD'),
	start_time, end_time, status, guest_name, cabin_name, created_at
`

// ListByDate получает все брони на дату
func (r *BookingRepository) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date = $1::date
		ORDER BY structure_id, start_time, created_at
	`

	rows, err := r.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("get bookings by date: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}

// ListPendingFrom получает pending брони начиная с даты
func (r *BookingRepository) ListPendingFrom(ctx context.Context, date string) ([]model.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date >= $1::date AND status = $2
		ORDER BY date, start_time
	`

	rows, err := r.Query(ctx, query, date, model.BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("get pending bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending bookings: %w", err)
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (model.Booking, error) {
	var booking model.Booking
	var createdAt time.Time
	err := row.Scan(
		&booking.ID,
		&booking.StructureID,
		&booking.UnitID,
		&booking.StayID,
		&booking.GuestID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.GuestName,
		&booking.CabinName,
		&createdAt,
	)
	if err != nil {
		return model.Booking{}, fmt.Errorf("scan booking: %w", err)
	}
	booking.CreatedAt = model.DateTimestamp(createdAt)
	return booking, nil
}

const (
	deleteBookingQuery = `
		DELETE FROM bookings
		WHERE date = $1::date
		  AND structure_id = $2
		  AND unit_id IS NOT DISTINCT FROM $3
		  AND start_time = $4
	`
	insertBookingQuery = `
		INSERT INTO bookings (
			id, structure_id, unit_id, stay_id, guest_id, date,
			start_time, end_time, status, guest_name, cabin_name, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, $9, $10, $11, $12)
	`
	insertAuditQuery = `
		INSERT INTO audit_log (id, batch_id, date, action, slot_key, actor, created_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7)
	`
)

// ApplyBatch применяет операции batch и журнал одной транзакцией: либо всё, либо ничего
func (r *BookingRepository) ApplyBatch(ctx context.Context, batch *availability.Batch, audit []model.AuditEntry) error {
	queued := &pgx.Batch{}

	for _, op := range batch.Ops {
		switch op.Kind {
		case availability.OpDelete:
			queued.Queue(deleteBookingQuery, batch.Date, op.Key.StructureID, op.Key.Unit(), op.Key.StartTime)
		case availability.OpInsert:
			b := op.Booking
			queued.Queue(insertBookingQuery,
				b.ID,
				b.StructureID,
				b.UnitID,
				b.StayID,
				b.GuestID,
				batch.Date,
				b.StartTime,
				b.EndTime,
				b.Status,
				b.GuestName,
				b.CabinName,
				createdAtOrNow(b.CreatedAt),
			)
		}
	}

	for _, entry := range audit {
		queued.Queue(insertAuditQuery,
			entry.ID,
			entry.BatchID,
			entry.Date,
			entry.Action,
			entry.SlotKey,
			entry.Actor,
			entry.CreatedAt,
		)
	}

	return r.InTx(ctx, func(tx pgx.Tx) error {
		results := tx.SendBatch(ctx, queued)
		for i := 0; i < queued.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("apply batch %s op %d: %w", batch.ID, i, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("close batch results: %w", err)
		}
		return nil
	})
}

func createdAtOrNow(ts model.Timestamp) time.Time {
	if ts.IsZero() {
		return time.Now()
	}
	return ts.Time()
}
