package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/Freeeeeet/pousada_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StructureRepository struct {
	*base.Repository
}

func NewStructureRepository(pool *pgxpool.Pool) *StructureRepository {
	return &StructureRepository{Repository: base.NewRepository(pool)}
}

// List получает все структуры вместе с юнитами и интервалами
func (r *StructureRepository) List(ctx context.Context) ([]model.Structure, error) {
	query := `
		SELECT id, name, management_type, default_status, created_at
		FROM structures
		ORDER BY position, name
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get structures: %w", err)
	}
	defer rows.Close()

	var structures []model.Structure
	byID := make(map[string]int)
	for rows.Next() {
		var s model.Structure
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.ManagementType,
			&s.DefaultStatus,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan structure: %w", err)
		}
		byID[s.ID] = len(structures)
		structures = append(structures, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate structures: %w", err)
	}

	if err := r.loadUnits(ctx, structures, byID); err != nil {
		return nil, err
	}
	if err := r.loadTimeSlots(ctx, structures, byID); err != nil {
		return nil, err
	}

	return structures, nil
}

func (r *StructureRepository) loadUnits(ctx context.Context, structures []model.Structure, byID map[string]int) error {
	query := `
		SELECT structure_id, name
		FROM structure_units
		ORDER BY structure_id, position
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("get structure units: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var structureID, name string
		if err := rows.Scan(&structureID, &name); err != nil {
			return fmt.Errorf("scan structure unit: %w", err)
		}
		if i, ok := byID[structureID]; ok {
			structures[i].Units = append(structures[i].Units, name)
		}
	}
	return rows.Err()
}

func (r *StructureRepository) loadTimeSlots(ctx context.Context, structures []model.Structure, byID map[string]int) error {
	query := `
		SELECT structure_id, start_time, end_time
		FROM structure_time_slots
		ORDER BY structure_id, start_time
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("get structure time slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var structureID string
		var slot model.TimeSlot
		if err := rows.Scan(&structureID, &slot.StartTime, &slot.EndTime); err != nil {
			return fmt.Errorf("scan time slot: %w", err)
		}
		if i, ok := byID[structureID]; ok {
			structures[i].TimeSlots = append(structures[i].TimeSlots, slot)
		}
	}
	return rows.Err()
}
