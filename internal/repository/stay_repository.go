package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/Freeeeeet/pousada_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StayRepository читает проживания - ленту активных гостей
type StayRepository struct {
	*base.Repository
}

func NewStayRepository(pool *pgxpool.Pool) *StayRepository {
	return &StayRepository{Repository: base.NewRepository(pool)}
}

// ListActive получает гостей, проживающих на дату (check_in <= date < check_out)
func (r *StayRepository) ListActive(ctx context.Context, date string) ([]model.Guest, error) {
	query := `
		SELECT id, guest_name, cabin_name
		FROM stays
		WHERE check_in <= $1::date AND check_out > $1::date
		ORDER BY cabin_name
	`

	rows, err := r.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("get active stays: %w", err)
	}
	defer rows.Close()

	var guests []model.Guest
	for rows.Next() {
		var guest model.Guest
		if err := rows.Scan(&guest.ID, &guest.GuestName, &guest.CabinName); err != nil {
			return nil, fmt.Errorf("scan stay: %w", err)
		}
		guests = append(guests, guest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stays: %w", err)
	}

	return guests, nil
}
