package model

import (
	"fmt"
	"time"
)

// DateLayout - формат дат в записях (bookings.date, daily_overrides.date)
const DateLayout = "2006-01-02"

// DayStart нормализует время к началу дня в его локации
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateKey форматирует календарную дату для хранения
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate разбирает YYYY-MM-DD в начале дня в указанной локации
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
