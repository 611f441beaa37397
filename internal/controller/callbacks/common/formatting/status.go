package formatting

import "github.com/Freeeeeet/pousada_bot/internal/model"

// SlotStatusDisplay представляет отображение статуса слота
type SlotStatusDisplay struct {
	Emoji string
	Text  string
}

var slotStatusDisplays = map[model.SlotStatus]SlotStatusDisplay{
	model.SlotStatusAvailable: {"🟢", "Disponível"},
	model.SlotStatusReserved:  {"🔴", "Reservado"},
	model.SlotStatusPending:   {"🟡", "Pendente"},
	model.SlotStatusBlocked:   {"⛔", "Bloqueado"},
	model.SlotStatusClosed:    {"⚫", "Fechado"},
	model.SlotStatusPast:      {"⌛", "Passou"},
}

// GetSlotStatusDisplay возвращает emoji и текст для статуса слота
func GetSlotStatusDisplay(status model.SlotStatus) SlotStatusDisplay {
	if display, ok := slotStatusDisplays[status]; ok {
		return display
	}
	return SlotStatusDisplay{"❓", "Desconhecido"}
}

// GetStructureStatusDisplay возвращает отображение статуса структуры на день
func GetStructureStatusDisplay(status model.StructureStatus) SlotStatusDisplay {
	if status == model.StructureOpen {
		return SlotStatusDisplay{"🟢", "Aberta"}
	}
	return SlotStatusDisplay{"⚫", "Fechada"}
}
