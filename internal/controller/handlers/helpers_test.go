package handlers

import (
	"strings"
	"testing"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCommandArg(t *testing.T) {
	assert.Equal(t, "", commandArg("/board"))
	assert.Equal(t, "14.03.2026", commandArg("/board 14.03.2026"))
	assert.Equal(t, "amanha", commandArg("  /kitchen   amanha  "))
}

func TestParseGuest(t *testing.T) {
	payload, ok := parseGuest("  Ana Souza / Chalé 3 ")
	assert.True(t, ok)
	assert.Equal(t, model.BookingPayload{
		GuestName: "Ana Souza",
		CabinName: "Chalé 3",
		Status:    model.BookingStatusConfirmed,
	}, payload)

	payload, ok = parseGuest("Bruno")
	assert.True(t, ok)
	assert.Equal(t, "Bruno", payload.GuestName)
	assert.Empty(t, payload.CabinName)

	_, ok = parseGuest(" / Chalé 1")
	assert.False(t, ok)

	_, ok = parseGuest(strings.Repeat("x", maxGuestNameLength+1))
	assert.False(t, ok)
}
