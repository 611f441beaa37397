package model

// Guest - активное проживание (гость в домике), используется для подписи брони
type Guest struct {
	ID        string `json:"id"`
	GuestName string `json:"guestName"`
	CabinName string `json:"cabinName"`
}

// UnknownGuest показывается, если гость брони не найден в списке активных
const UnknownGuest = "Unknown"
