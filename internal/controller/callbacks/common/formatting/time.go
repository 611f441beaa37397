package formatting

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/model"
)

// FormatDate форматирует только дату
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatShortDate - день и месяц для кнопок
func FormatShortDate(t time.Time) string {
	return t.Format("02/01")
}

// FormatDateWithWeekday форматирует дату с днём недели: "sábado, 14/03/2026"
func FormatDateWithWeekday(t time.Time) string {
	return fmt.Sprintf("%s, %s", GetWeekdayName(t.Weekday()), FormatDate(t))
}

// FormatTimeSlot форматирует интервал "HH:MM–HH:MM"
func FormatTimeSlot(slot model.TimeSlot) string {
	if slot.EndTime == "" {
		return slot.StartTime
	}
	return slot.StartTime + "–" + slot.EndTime
}

// GetWeekdayName возвращает название дня недели на португальском
func GetWeekdayName(weekday time.Weekday) string {
	names := []string{
		"domingo",
		"segunda-feira",
		"terça-feira",
		"quarta-feira",
		"quinta-feira",
		"sexta-feira",
		"sábado",
	}
	if weekday >= 0 && int(weekday) < len(names) {
		return names[weekday]
	}
	return "?"
}

// GetMonthName возвращает название месяца на португальском
func GetMonthName(month time.Month) string {
	names := map[time.Month]string{
		time.January:   "Janeiro",
		time.February:  "Fevereiro",
		time.March:     "Março",
		time.April:     "Abril",
		time.May:       "Maio",
		time.June:      "Junho",
		time.July:      "Julho",
		time.August:    "Agosto",
		time.September: "Setembro",
		time.October:   "Outubro",
		time.November:  "Novembro",
		time.December:  "Dezembro",
	}
	return names[month]
}
