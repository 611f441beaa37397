package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/Freeeeeet/pousada_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	*base.Repository
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{Repository: base.NewRepository(pool)}
}

// ListByDate получает заказы завтрака на дату; позиции лежат в jsonb
func (r *OrderRepository) ListByDate(ctx context.Context, date string) ([]model.BreakfastOrder, error) {
	query := `
		SELECT o.id, o.stay_id, COALESCE(s.cabin_name, ''), to_char(o.date, 'YYYY-MM-DD'),
		       o.kind, o.items, o.created_at
		FROM breakfast_orders o
		LEFT JOIN stays s ON s.id = o.stay_id
		WHERE o.date = $1::date
		ORDER BY o.created_at
	`

	rows, err := r.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("get orders by date: %w", err)
	}
	defer rows.Close()

	var orders []model.BreakfastOrder
	for rows.Next() {
		var order model.BreakfastOrder
		var createdAt time.Time
		err := rows.Scan(
			&order.ID,
			&order.StayID,
			&order.CabinName,
			&order.Date,
			&order.Kind,
			&order.Items,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		order.CreatedAt = model.DateTimestamp(createdAt)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}

// Create сохраняет заказ
func (r *OrderRepository) Create(ctx context.Context, order *model.BreakfastOrder) error {
	query := `
		INSERT INTO breakfast_orders (id, stay_id, date, kind, items)
		VALUES ($1, $2, $3::date, $4, $5)
		RETURNING created_at
	`

	var createdAt time.Time
	err := r.QueryRow(ctx, query,
		order.ID,
		order.StayID,
		order.Date,
		order.Kind,
		order.Items,
	).Scan(&createdAt)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	order.CreatedAt = model.DateTimestamp(createdAt)
	return nil
}
