package model

import (
	"encoding/json"
	"fmt"
)

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "disponivel" // Свободен
	SlotStatusReserved  SlotStatus = "reservado"  // Забронирован и подтверждён
	SlotStatusPending   SlotStatus = "pendente"   // Ожидает одобрения
	SlotStatusBlocked   SlotStatus = "bloqueado"  // Заблокирован администратором
	SlotStatusClosed    SlotStatus = "fechado"    // Закрыт по расписанию
	SlotStatusPast      SlotStatus = "passou"     // Время уже прошло
)

// AllSlotStatuses - порядок статусов для легенд и сводок
var AllSlotStatuses = []SlotStatus{
	SlotStatusAvailable,
	SlotStatusReserved,
	SlotStatusPending,
	SlotStatusBlocked,
	SlotStatusClosed,
	SlotStatusPast,
}

// nullUnit - строковое представление брони на всю структуру
const nullUnit = "null"

// SlotKey - составной ключ (structureID, unitID, startTime).
// Сравнимый тип: бронь на структуру (HasUnit=false) и юнит с именем "null" - разные ключи,
// совпадает только строковое представление.
type SlotKey struct {
	StructureID string
	UnitID      string
	HasUnit     bool
	StartTime   string
}

// NewSlotKey создаёт ключ; unit == nil означает бронь на всю структуру
func NewSlotKey(structureID string, unit *string, startTime string) SlotKey {
	key := SlotKey{StructureID: structureID, StartTime: startTime}
	if unit != nil {
		key.UnitID = *unit
		key.HasUnit = true
	}
	return key
}

// Unit возвращает юнит или nil
func (k SlotKey) Unit() *string {
	if !k.HasUnit {
		return nil
	}
	unit := k.UnitID
	return &unit
}

// String возвращает "${structureId}-${unitId ?? 'null'}-${startTime}"
func (k SlotKey) String() string {
	unit := nullUnit
	if k.HasUnit {
		unit = k.UnitID
	}
	return fmt.Sprintf("%s-%s-%s", k.StructureID, unit, k.StartTime)
}

// IsZero проверяет что ключ не заполнен
func (k SlotKey) IsZero() bool {
	return k.StructureID == "" || k.StartTime == ""
}

type slotKeyJSON struct {
	StructureID string  `json:"structureId"`
	UnitID      *string `json:"unitId"`
	StartTime   string  `json:"startTime"`
}

func (k SlotKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(slotKeyJSON{
		StructureID: k.StructureID,
		UnitID:      k.Unit(),
		StartTime:   k.StartTime,
	})
}

func (k *SlotKey) UnmarshalJSON(data []byte) error {
	var raw slotKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*k = NewSlotKey(raw.StructureID, raw.UnitID, raw.StartTime)
	return nil
}

// Slot - вычисляемое состояние слота, нигде не хранится
type Slot struct {
	Key           SlotKey    `json:"key"`
	StructureName string     `json:"structureName"`
	TimeSlot      TimeSlot   `json:"timeSlot"`
	Date          string     `json:"date"`
	Status        SlotStatus `json:"status"`
	Booking       *Booking   `json:"booking,omitempty"`
	GuestName     string     `json:"guestName,omitempty"`
	CabinName     string     `json:"cabinName,omitempty"`
}
