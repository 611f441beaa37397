package kitchen

import (
	"fmt"
	"strings"
)

// Ticket - готовый к печати кухонный чек на дату
type Ticket struct {
	Title      string
	Date       string
	Grouped    GroupedItems
	Categories []string
	Orders     int
}

// NewTicket собирает чек из группировки; порядок категорий вычисляется сразу
func NewTicket(title, date string, grouped GroupedItems, discovered []string, orders int) *Ticket {
	return &Ticket{
		Title:      title,
		Date:       date,
		Grouped:    grouped,
		Categories: OrderCategories(grouped, discovered),
		Orders:     orders,
	}
}

// Lines возвращает строки чека без заголовка
func (t *Ticket) Lines() []string {
	var lines []string
	for _, category := range t.Categories {
		lines = append(lines, strings.ToUpper(category))
		byName := t.Grouped[category]
		for _, name := range SortedItems(byName) {
			summary := byName[name]
			lines = append(lines, fmt.Sprintf("  %dx %s", summary.Count, name))
			for _, flavor := range SortedFlavors(summary.Flavors) {
				lines = append(lines, fmt.Sprintf("     - %dx %s", summary.Flavors[flavor], flavor))
			}
			for _, note := range summary.Notes {
				lines = append(lines, fmt.Sprintf("     * %s", note))
			}
		}
	}
	return lines
}

// Text форматирует чек для сообщения
func (t *Ticket) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n%s\n", t.Title, t.Date)
	fmt.Fprintf(&sb, "Pedidos: %d | Itens: %d\n\n", t.Orders, t.Grouped.Total())

	if len(t.Categories) == 0 {
		sb.WriteString("Nenhum pedido.\n")
		return sb.String()
	}

	for _, line := range t.Lines() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
