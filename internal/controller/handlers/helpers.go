package handlers

import (
	"strings"

	"github.com/Freeeeeet/pousada_bot/internal/model"
)

// commandArg возвращает текст после команды: "/board 14.03.2026" -> "14.03.2026"
func commandArg(text string) string {
	_, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(arg)
}

// parseGuest разбирает "Nome / Chalé"; chalé необязателен
func parseGuest(text string) (model.BookingPayload, bool) {
	name, cabin, _ := strings.Cut(text, "/")
	name = strings.TrimSpace(name)
	cabin = strings.TrimSpace(cabin)
	if name == "" || len([]rune(name)) > maxGuestNameLength {
		return model.BookingPayload{}, false
	}

	return model.BookingPayload{
		GuestName: name,
		CabinName: cabin,
		Status:    model.BookingStatusConfirmed,
	}, true
}

const maxGuestNameLength = 80
