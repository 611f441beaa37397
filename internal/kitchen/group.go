// Package kitchen группирует позиции заказов завтрака для кухонных чеков.
package kitchen

import "github.com/Freeeeeet/pousada_bot/internal/model"

// DefaultCategory - категория позиций, которых нет в меню
const DefaultCategory = "Outros"

// ItemSummary - сводка по одной позиции
type ItemSummary struct {
	Count   int            `json:"count"`
	Flavors map[string]int `json:"flavors,omitempty"`
	Notes   []string       `json:"notes,omitempty"`
}

// GroupedItems - категория -> название позиции -> сводка. Порядок не определён,
// порядок категорий задаёт OrderCategories при отрисовке.
type GroupedItems map[string]map[string]*ItemSummary

// CategoryLookup возвращает категорию позиции меню по её ID
type CategoryLookup func(itemID string) string

// CatalogLookup строит CategoryLookup по меню
func CatalogLookup(menu []model.MenuItem) CategoryLookup {
	categories := make(map[string]string, len(menu))
	for _, item := range menu {
		categories[item.ID] = item.Category
	}
	return func(itemID string) string {
		return categories[itemID]
	}
}

// GroupItems группирует позиции за один проход. Входной список не меняется,
// каждый вызов возвращает новую структуру.
func GroupItems(items []model.OrderItem, lookup CategoryLookup) GroupedItems {
	grouped := make(GroupedItems)

	for _, item := range items {
		units := item.Units()
		if units == 0 {
			continue
		}
		category := categoryOf(item, lookup)

		byName, ok := grouped[category]
		if !ok {
			byName = make(map[string]*ItemSummary)
			grouped[category] = byName
		}

		summary, ok := byName[item.ItemName]
		if !ok {
			summary = &ItemSummary{}
			byName[item.ItemName] = summary
		}

		summary.Count += units

		if item.FlavorName != "" {
			if summary.Flavors == nil {
				summary.Flavors = make(map[string]int)
			}
			summary.Flavors[item.FlavorName] += units
		}

		if item.Notes != "" {
			summary.Notes = append(summary.Notes, item.Notes)
		}
	}

	return grouped
}

func categoryOf(item model.OrderItem, lookup CategoryLookup) string {
	if lookup == nil {
		return DefaultCategory
	}
	if category := lookup(item.ItemID); category != "" {
		return category
	}
	return DefaultCategory
}

// Total возвращает общее количество штук
func (g GroupedItems) Total() int {
	total := 0
	for _, byName := range g {
		for _, summary := range byName {
			total += summary.Count
		}
	}
	return total
}
