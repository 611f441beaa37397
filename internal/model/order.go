package model

import "github.com/google/uuid"

// OrderKind - индивидуальный заказ (по персонам) или общий (с количеством)
type OrderKind string

const (
	OrderKindIndividual OrderKind = "individual"
	OrderKindCollective OrderKind = "collective"
)

// OrderItem - позиция заказа завтрака. Kind проставляется из заказа при сборке чека.
type OrderItem struct {
	Kind       OrderKind `json:"kind,omitempty"`
	ItemID     string    `json:"itemId"`
	ItemName   string    `json:"itemName"`
	FlavorName string    `json:"flavorName,omitempty"`
	PersonID   *int      `json:"personId,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

// Units возвращает вклад позиции в счётчик. Общая позиция добавляет своё количество
// (не меньше нуля), индивидуальная - одну штуку на вхождение, Quantity игнорируется.
// Без Kind позиция с PersonID считается индивидуальной.
func (i OrderItem) Units() int {
	switch {
	case i.Kind == OrderKindCollective:
		return max(i.Quantity, 0)
	case i.Kind == OrderKindIndividual, i.PersonID != nil:
		return 1
	case i.Quantity > 0:
		return i.Quantity
	default:
		return 1
	}
}

// BreakfastOrder - заказ завтрака домика на дату
type BreakfastOrder struct {
	ID        uuid.UUID   `json:"id"`
	StayID    string      `json:"stayId"`
	CabinName string      `json:"cabinName"`
	Date      string      `json:"date"`
	Kind      OrderKind   `json:"kind"`
	Items     []OrderItem `json:"items"`
	CreatedAt Timestamp   `json:"createdAt"`
}

// MenuItem - позиция меню с категорией
type MenuItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
