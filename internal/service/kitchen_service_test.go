package service

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestKitchenTicket(t *testing.T) {
	one, two := 1, 2
	orders := &fakeOrders{orders: []model.BreakfastOrder{
		{
			StayID: "stay-1",
			Date:   "2026-03-15",
			Kind:   model.OrderKindIndividual,
			Items: []model.OrderItem{
				{ItemID: "ovos", ItemName: "Ovos mexidos", PersonID: &one},
				{ItemID: "ovos", ItemName: "Ovos mexidos", PersonID: &two, Notes: "sem sal"},
			},
		},
		{
			StayID: "stay-2",
			Date:   "2026-03-15",
			Kind:   model.OrderKindCollective,
			Items: []model.OrderItem{
				{ItemID: "suco", ItemName: "Suco natural", FlavorName: "Laranja", Quantity: 3},
			},
		},
		{StayID: "stay-3", Date: "2026-03-16", Items: []model.OrderItem{{ItemID: "suco", ItemName: "Suco natural"}}},
	}}
	menu := &fakeMenu{items: []model.MenuItem{
		{ID: "ovos", Name: "Ovos mexidos", Category: "Pratos Quentes"},
		{ID: "suco", Name: "Suco natural", Category: "Sucos"},
	}}

	svc := NewKitchenService(orders, menu, zap.NewNop())
	ticket, err := svc.Ticket(context.Background(), time.Date(2026, time.March, 15, 0, 0, 0, 0, brt))
	require.NoError(t, err)

	assert.Equal(t, 2, ticket.Orders)
	assert.Equal(t, []string{"Pratos Quentes", "Sucos"}, ticket.Categories)
	assert.Equal(t, 2, ticket.Grouped["Pratos Quentes"]["Ovos mexidos"].Count)
	assert.Equal(t, 3, ticket.Grouped["Sucos"]["Suco natural"].Count)
	assert.Equal(t, "15/03/2026", ticket.Date)
}

func TestKitchenTicket_CountsByOrderKind(t *testing.T) {
	one := 1
	orders := &fakeOrders{orders: []model.BreakfastOrder{
		{
			StayID: "stay-1",
			Date:   "2026-03-15",
			Kind:   model.OrderKindIndividual,
			Items:  []model.OrderItem{{ItemID: "ovos", ItemName: "Ovos mexidos", PersonID: &one, Quantity: 5}},
		},
		{
			StayID: "stay-2",
			Date:   "2026-03-15",
			Kind:   model.OrderKindCollective,
			Items: []model.OrderItem{
				{ItemID: "suco", ItemName: "Suco natural", Quantity: 0},
				{ItemID: "pao", ItemName: "Pão de queijo", Quantity: 6},
			},
		},
	}}
	menu := &fakeMenu{items: []model.MenuItem{
		{ID: "ovos", Name: "Ovos mexidos", Category: "Pratos Quentes"},
		{ID: "suco", Name: "Suco natural", Category: "Sucos"},
		{ID: "pao", Name: "Pão de queijo", Category: "Pães"},
	}}

	svc := NewKitchenService(orders, menu, zap.NewNop())
	ticket, err := svc.Ticket(context.Background(), time.Date(2026, time.March, 15, 0, 0, 0, 0, brt))
	require.NoError(t, err)

	assert.Equal(t, 1, ticket.Grouped["Pratos Quentes"]["Ovos mexidos"].Count)
	assert.Equal(t, 6, ticket.Grouped["Pães"]["Pão de queijo"].Count)
	assert.NotContains(t, ticket.Grouped, "Sucos")
	assert.Equal(t, []string{"Pratos Quentes", "Pães"}, ticket.Categories)

	// заказы в хранилище не меняются
	assert.Empty(t, orders.orders[0].Items[0].Kind)
}

func TestKitchenTicket_StoreError(t *testing.T) {
	svc := NewKitchenService(&fakeOrders{err: errStoreDown}, &fakeMenu{}, zap.NewNop())
	_, err := svc.Ticket(context.Background(), time.Now())
	assert.ErrorIs(t, err, errStoreDown)
}

func TestPlaceOrder(t *testing.T) {
	orders := &fakeOrders{}
	svc := NewKitchenService(orders, &fakeMenu{}, zap.NewNop())

	order := &model.BreakfastOrder{
		StayID: "stay-1",
		Date:   "2026-03-15",
		Kind:   model.OrderKindCollective,
		Items:  []model.OrderItem{{ItemID: "pao", ItemName: "Pão de queijo", Quantity: 6}},
	}
	require.NoError(t, svc.PlaceOrder(context.Background(), order))
	assert.NotEqual(t, uuid.Nil, order.ID)
	require.Len(t, orders.orders, 1)
	assert.Equal(t, order.ID, orders.orders[0].ID)
}

func TestPlaceOrder_Validation(t *testing.T) {
	valid := func() *model.BreakfastOrder {
		return &model.BreakfastOrder{
			StayID: "stay-1",
			Date:   "2026-03-15",
			Kind:   model.OrderKindIndividual,
			Items:  []model.OrderItem{{ItemID: "cafe", ItemName: "Café"}},
		}
	}

	cases := map[string]struct {
		mutate func(o *model.BreakfastOrder)
		want   error
	}{
		"no stay":             {func(o *model.BreakfastOrder) { o.StayID = "" }, ErrInvalidOrder},
		"bad date":            {func(o *model.BreakfastOrder) { o.Date = "15/03/2026" }, ErrInvalidDate},
		"unknown kind":        {func(o *model.BreakfastOrder) { o.Kind = "buffet" }, ErrInvalidOrder},
		"no items":            {func(o *model.BreakfastOrder) { o.Items = nil }, ErrInvalidOrder},
		"item without id":     {func(o *model.BreakfastOrder) { o.Items[0].ItemID = "" }, ErrInvalidOrder},
		"negative quantity":   {func(o *model.BreakfastOrder) { o.Items[0].Quantity = -1 }, ErrInvalidOrder},
		"collective no count": {func(o *model.BreakfastOrder) { o.Kind = model.OrderKindCollective }, ErrInvalidOrder},
		"individual quantity": {func(o *model.BreakfastOrder) { o.Items[0].Quantity = 5 }, ErrInvalidOrder},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			orders := &fakeOrders{}
			svc := NewKitchenService(orders, &fakeMenu{}, zap.NewNop())
			order := valid()
			tc.mutate(order)

			err := svc.PlaceOrder(context.Background(), order)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, orders.orders, "nothing stored")
		})
	}
}
