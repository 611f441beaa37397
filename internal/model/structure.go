package model

import "time"

// ManagementType определяет, бронируется ли структура целиком или по юнитам
type ManagementType string

const (
	ManagementByStructure ManagementType = "by_structure"
	ManagementByUnit      ManagementType = "by_unit"
)

// StructureStatus - открыта или закрыта структура (по умолчанию или на конкретный день)
type StructureStatus string

const (
	StructureOpen   StructureStatus = "open"
	StructureClosed StructureStatus = "closed"
)

// IsValid проверяет что статус один из известных
func (s StructureStatus) IsValid() bool {
	return s == StructureOpen || s == StructureClosed
}

// TimeSlot - интервал бронирования в формате HH:MM
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Structure - бронируемый ресурс (сауна, зал, площадка, оборудование)
type Structure struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ManagementType ManagementType  `json:"managementType"`
	Units          []string        `json:"units"`
	TimeSlots      []TimeSlot      `json:"timeSlots"`
	DefaultStatus  StructureStatus `json:"defaultStatus"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// BoardUnits возвращает список юнитов для построения слотов.
// Для by_structure это один элемент nil (бронь на всю структуру).
func (s *Structure) BoardUnits() []*string {
	if s.ManagementType != ManagementByUnit {
		return []*string{nil}
	}

	units := make([]*string, 0, len(s.Units))
	for i := range s.Units {
		unit := s.Units[i]
		units = append(units, &unit)
	}
	return units
}
