package kitchen

import (
	"testing"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

var menu = []model.MenuItem{
	{ID: "egg", Name: "Ovos", Category: "Pratos Quentes"},
	{ID: "juice", Name: "Suco", Category: "Sucos"},
	{ID: "tapioca", Name: "Tapioca", Category: "Regionais"},
	{ID: "cake", Name: "Bolo", Category: "Doces"},
}

func TestGroupItems_Empty(t *testing.T) {
	grouped := GroupItems(nil, CatalogLookup(menu))
	require.NotNil(t, grouped)
	assert.Empty(t, grouped)

	assert.Empty(t, GroupItems([]model.OrderItem{}, nil))
}

func TestGroupItems_CollectiveQuantityIsAdded(t *testing.T) {
	grouped := GroupItems([]model.OrderItem{
		{ItemID: "x", ItemName: "Juice", Quantity: 3},
	}, nil)

	assert.Equal(t, 3, grouped[DefaultCategory]["Juice"].Count)
}

func TestGroupItems_IndividualCountsOccurrences(t *testing.T) {
	grouped := GroupItems([]model.OrderItem{
		{ItemID: "x", ItemName: "Egg", PersonID: intPtr(1)},
		{ItemID: "x", ItemName: "Egg", PersonID: intPtr(2)},
	}, nil)

	assert.Equal(t, 2, grouped[DefaultCategory]["Egg"].Count)
}

func TestGroupItems_FlavorsAndNotes(t *testing.T) {
	items := []model.OrderItem{
		{ItemID: "juice", ItemName: "Suco", FlavorName: "Laranja", Quantity: 2},
		{ItemID: "juice", ItemName: "Suco", FlavorName: "Manga", PersonID: intPtr(1)},
		{ItemID: "juice", ItemName: "Suco", PersonID: intPtr(2)},
		{ItemID: "egg", ItemName: "Ovos", PersonID: intPtr(1), Notes: "sem sal"},
		{ItemID: "egg", ItemName: "Ovos", PersonID: intPtr(2)},
	}

	grouped := GroupItems(items, CatalogLookup(menu))

	juice := grouped["Sucos"]["Suco"]
	require.NotNil(t, juice)
	assert.Equal(t, 4, juice.Count)
	assert.Equal(t, map[string]int{"Laranja": 2, "Manga": 1}, juice.Flavors)
	assert.Empty(t, juice.Notes)

	eggs := grouped["Pratos Quentes"]["Ovos"]
	require.NotNil(t, eggs)
	assert.Equal(t, 2, eggs.Count)
	assert.Nil(t, eggs.Flavors)
	assert.Equal(t, []string{"sem sal"}, eggs.Notes)

	assert.Equal(t, 6, grouped.Total())
}

func TestGroupItems_IsPure(t *testing.T) {
	items := []model.OrderItem{
		{ItemID: "juice", ItemName: "Suco", FlavorName: "Laranja", Quantity: 2},
		{ItemID: "egg", ItemName: "Ovos", PersonID: intPtr(1), Notes: "bem passado"},
		{ItemID: "unknown", ItemName: "Cuscuz", PersonID: intPtr(1)},
	}
	snapshot := make([]model.OrderItem, len(items))
	copy(snapshot, items)

	lookup := CatalogLookup(menu)
	first := GroupItems(items, lookup)

	// посторонняя мутация между вызовами
	unrelated := GroupItems([]model.OrderItem{{ItemID: "egg", ItemName: "Ovos"}}, lookup)
	unrelated["Pratos Quentes"]["Ovos"].Count = 100

	second := GroupItems(items, lookup)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, items)
	assert.Equal(t, 1, second["Outros"]["Cuscuz"].Count)
}

func TestGroupItems_KindDecidesCounting(t *testing.T) {
	grouped := GroupItems([]model.OrderItem{
		{Kind: model.OrderKindIndividual, ItemID: "x", ItemName: "Egg", PersonID: intPtr(1), Quantity: 5},
		{Kind: model.OrderKindIndividual, ItemID: "x", ItemName: "Egg", PersonID: intPtr(2)},
		{Kind: model.OrderKindCollective, ItemID: "y", ItemName: "Juice", Quantity: 0},
		{Kind: model.OrderKindCollective, ItemID: "y", ItemName: "Juice", Quantity: -2},
		{Kind: model.OrderKindCollective, ItemID: "z", ItemName: "Bread", FlavorName: "Integral", Quantity: 4},
	}, nil)

	assert.Equal(t, 2, grouped[DefaultCategory]["Egg"].Count)
	assert.NotContains(t, grouped[DefaultCategory], "Juice")
	assert.Equal(t, 4, grouped[DefaultCategory]["Bread"].Count)
	assert.Equal(t, map[string]int{"Integral": 4}, grouped[DefaultCategory]["Bread"].Flavors)
	assert.Equal(t, 6, grouped.Total())
}

func TestGroupItems_CollectiveWithoutQuantityLeavesNoLine(t *testing.T) {
	grouped := GroupItems([]model.OrderItem{
		{Kind: model.OrderKindCollective, ItemID: "juice", ItemName: "Suco"},
	}, CatalogLookup(menu))

	assert.Empty(t, grouped)
}
