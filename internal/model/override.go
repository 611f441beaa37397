package model

// DailyOverride - исключение администратора из DefaultStatus на один день
type DailyOverride struct {
	Date        string          `json:"date"`
	StructureID string          `json:"structureId"`
	Status      StructureStatus `json:"status"`
}

// Overrides - structureID -> статус на конкретную дату
type Overrides map[string]StructureStatus
