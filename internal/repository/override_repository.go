package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/Freeeeeet/pousada_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OverrideRepository struct {
	*base.Repository
}

func NewOverrideRepository(pool *pgxpool.Pool) *OverrideRepository {
	return &OverrideRepository{Repository: base.NewRepository(pool)}
}

// ListByDate получает исключения на дату: structureID -> статус
func (r *OverrideRepository) ListByDate(ctx context.Context, date string) (model.Overrides, error) {
	query := `
		SELECT structure_id, status
		FROM daily_overrides
		WHERE date = $1::date
	`

	rows, err := r.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("get overrides by date: %w", err)
	}
	defer rows.Close()

	overrides := make(model.Overrides)
	for rows.Next() {
		var structureID string
		var status model.StructureStatus
		if err := rows.Scan(&structureID, &status); err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		overrides[structureID] = status
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate overrides: %w", err)
	}

	return overrides, nil
}

// Set создаёт или заменяет исключение на дату
func (r *OverrideRepository) Set(ctx context.Context, override model.DailyOverride) error {
	query := `
		INSERT INTO daily_overrides (date, structure_id, status)
		VALUES ($1::date, $2, $3)
		ON CONFLICT (date, structure_id) DO UPDATE SET status = EXCLUDED.status
	`

	if _, err := r.ExecAffected(ctx, query, override.Date, override.StructureID, override.Status); err != nil {
		return fmt.Errorf("set override: %w", err)
	}
	return nil
}

// Delete удаляет исключение; возвращает false, если его не было
func (r *OverrideRepository) Delete(ctx context.Context, date, structureID string) (bool, error) {
	query := `DELETE FROM daily_overrides WHERE date = $1::date AND structure_id = $2`

	affected, err := r.ExecAffected(ctx, query, date, structureID)
	if err != nil {
		return false, fmt.Errorf("delete override: %w", err)
	}
	return affected > 0, nil
}
