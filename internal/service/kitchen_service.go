package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/kitchen"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TicketTitle - заголовок кухонного чека
const TicketTitle = "Café da manhã"

type KitchenService struct {
	orders OrderStore
	menu   MenuStore
	logger *zap.Logger
}

func NewKitchenService(orders OrderStore, menu MenuStore, logger *zap.Logger) *KitchenService {
	return &KitchenService{
		orders: orders,
		menu:   menu,
		logger: logger,
	}
}

// Ticket собирает кухонный чек на дату из всех заказов (индивидуальных и общих)
func (s *KitchenService) Ticket(ctx context.Context, date time.Time) (*kitchen.Ticket, error) {
	dateKey := model.DateKey(date)

	orders, err := s.orders.ListByDate(ctx, dateKey)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	menu, err := s.menu.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get menu: %w", err)
	}

	var items []model.OrderItem
	for _, order := range orders {
		for _, item := range order.Items {
			item.Kind = order.Kind
			items = append(items, item)
		}
	}

	lookup := kitchen.CatalogLookup(menu)
	grouped := kitchen.GroupItems(items, lookup)
	ticket := kitchen.NewTicket(TicketTitle, date.Format("02/01/2006"), grouped, kitchen.DiscoveryOrder(items, lookup), len(orders))

	s.logger.Debug("Kitchen ticket built",
		zap.String("date", dateKey),
		zap.Int("orders", len(orders)),
		zap.Int("items", grouped.Total()),
	)

	return ticket, nil
}

// PlaceOrder проверяет и сохраняет заказ завтрака домика
func (s *KitchenService) PlaceOrder(ctx context.Context, order *model.BreakfastOrder) error {
	if err := validateOrder(order); err != nil {
		return err
	}

	order.ID = uuid.New()
	if err := s.orders.Create(ctx, order); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("Breakfast order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("stay_id", order.StayID),
		zap.String("date", order.Date),
		zap.String("kind", string(order.Kind)),
		zap.Int("items", len(order.Items)),
	)
	return nil
}

func validateOrder(order *model.BreakfastOrder) error {
	if order.StayID == "" {
		return fmt.Errorf("%w: stay required", ErrInvalidOrder)
	}
	if _, err := model.ParseDate(order.Date, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if order.Kind != model.OrderKindIndividual && order.Kind != model.OrderKindCollective {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidOrder, order.Kind)
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidOrder)
	}
	for i, item := range order.Items {
		if item.ItemID == "" || item.ItemName == "" {
			return fmt.Errorf("%w: item %d without id or name", ErrInvalidOrder, i)
		}
		if item.Quantity < 0 {
			return fmt.Errorf("%w: item %d has negative quantity", ErrInvalidOrder, i)
		}
		if order.Kind == model.OrderKindCollective && item.Quantity == 0 {
			return fmt.Errorf("%w: collective item %d needs quantity", ErrInvalidOrder, i)
		}
		if order.Kind == model.OrderKindIndividual && item.Quantity != 0 {
			return fmt.Errorf("%w: individual item %d cannot carry quantity", ErrInvalidOrder, i)
		}
	}
	return nil
}
