package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/Freeeeeet/pousada_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuRepository struct {
	*base.Repository
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{Repository: base.NewRepository(pool)}
}

// List получает меню завтрака
func (r *MenuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	query := `SELECT id, name, category FROM menu_items ORDER BY category, name`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}

	return items, nil
}
