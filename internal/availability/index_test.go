package availability

import (
	"testing"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotKey_NullUnitPlaceholder(t *testing.T) {
	structureLevel := model.NewSlotKey("court", nil, "18:00")
	namedNull := model.NewSlotKey("court", strPtr("null"), "18:00")
	unitA := model.NewSlotKey("court", strPtr("A"), "18:00")

	assert.Equal(t, "court-null-18:00", structureLevel.String())
	assert.Equal(t, "court-A-18:00", unitA.String())

	// Строковая форма совпадает - известный риск для юнита с именем "null".
	assert.Equal(t, structureLevel.String(), namedNull.String())
	// Но сами ключи различаются, поэтому индекс их не смешивает.
	assert.NotEqual(t, structureLevel, namedNull)
}

func TestBookingIndex_NullUnitDoesNotCollide(t *testing.T) {
	bookings := []model.Booking{
		booking("court", nil, "18:00", model.BookingStatusBlocked),
		booking("court", strPtr("null"), "18:00", model.BookingStatusConfirmed),
	}

	index := NewBookingIndex("2026-03-14", bookings)
	require.Equal(t, 2, index.Len())
	assert.Empty(t, index.Duplicates())

	structureLevel, ok := index.Lookup(model.NewSlotKey("court", nil, "18:00"))
	require.True(t, ok)
	assert.Equal(t, model.BookingStatusBlocked, structureLevel.Status)

	namedNull, ok := index.Lookup(model.NewSlotKey("court", strPtr("null"), "18:00"))
	require.True(t, ok)
	assert.Equal(t, model.BookingStatusConfirmed, namedNull.Status)
}

func TestBookingIndex_LatestDuplicateWins(t *testing.T) {
	base := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	older := booking("sauna", nil, "18:00", model.BookingStatusPending)
	older.ID = uuid.New()
	older.CreatedAt = model.DateTimestamp(base)

	newer := booking("sauna", nil, "18:00", model.BookingStatusConfirmed)
	newer.ID = uuid.New()
	newer.CreatedAt = model.MillisTimestamp(base.Add(time.Minute).UnixMilli())

	for _, order := range [][]model.Booking{{older, newer}, {newer, older}} {
		index := NewBookingIndex("2026-03-14", order)

		got, ok := index.Lookup(model.NewSlotKey("sauna", nil, "18:00"))
		require.True(t, ok)
		assert.Equal(t, newer.ID, got.ID)
		require.Len(t, index.Duplicates(), 1)
		assert.Equal(t, older.ID, index.Duplicates()[0].ID)
	}
}

func TestBookingIndex_NilIsEmpty(t *testing.T) {
	var index *BookingIndex
	_, ok := index.Lookup(model.NewSlotKey("sauna", nil, "09:00"))
	assert.False(t, ok)
}

func TestSlotKey_JSON(t *testing.T) {
	key := model.NewSlotKey("court", nil, "18:00")
	data, err := key.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"structureId":"court","unitId":null,"startTime":"18:00"}`, string(data))

	var decoded model.SlotKey
	require.NoError(t, decoded.UnmarshalJSON([]byte(`{"structureId":"court","unitId":"null","startTime":"18:00"}`)))
	assert.True(t, decoded.HasUnit)
	assert.Equal(t, "null", decoded.UnitID)
}
