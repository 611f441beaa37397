package kitchen

import (
	"sort"

	"github.com/Freeeeeet/pousada_bot/internal/model"
)

// CategoryOrder - фиксированный порядок категорий на чеке
var CategoryOrder = []string{
	"Pratos Quentes",
	"Bebidas Quentes",
	"Bebidas Frias",
	"Sucos",
	"Pães",
	"Frios",
	"Frutas",
	"Doces",
	DefaultCategory,
}

// DiscoveryOrder возвращает категории в порядке первого появления в списке позиций
func DiscoveryOrder(items []model.OrderItem, lookup CategoryLookup) []string {
	seen := make(map[string]bool)
	var order []string
	for _, item := range items {
		category := categoryOf(item, lookup)
		if !seen[category] {
			seen[category] = true
			order = append(order, category)
		}
	}
	return order
}

// OrderCategories упорядочивает категории группировки: сначала известные в фиксированном
// порядке, затем неизвестные в порядке обнаружения, затем оставшиеся по алфавиту.
func OrderCategories(grouped GroupedItems, discovered []string) []string {
	ordered := make([]string, 0, len(grouped))
	placed := make(map[string]bool, len(grouped))

	add := func(category string) {
		if _, ok := grouped[category]; ok && !placed[category] {
			placed[category] = true
			ordered = append(ordered, category)
		}
	}

	known := make(map[string]bool, len(CategoryOrder))
	for _, category := range CategoryOrder {
		known[category] = true
	}

	for _, category := range CategoryOrder {
		if category != DefaultCategory {
			add(category)
		}
	}
	for _, category := range discovered {
		if !known[category] {
			add(category)
		}
	}

	var rest []string
	for category := range grouped {
		if !placed[category] && category != DefaultCategory {
			rest = append(rest, category)
		}
	}
	sort.Strings(rest)
	for _, category := range rest {
		add(category)
	}

	add(DefaultCategory)
	return ordered
}

// SortedItems возвращает названия позиций категории по алфавиту
func SortedItems(byName map[string]*ItemSummary) []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortedFlavors возвращает вкусы по алфавиту
func SortedFlavors(flavors map[string]int) []string {
	names := make([]string, 0, len(flavors))
	for name := range flavors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
