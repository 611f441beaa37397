package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/model"
)

// Calendar - часовой пояс пансиона и источник текущего времени
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar создаёт календарь; nil локация означает UTC
func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{loc: loc, now: time.Now}
}

// WithClock подменяет источник времени (тесты, утилиты)
func (c *Calendar) WithClock(now func() time.Time) *Calendar {
	return &Calendar{loc: c.loc, now: now}
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Now возвращает текущее время в локации пансиона
func (c *Calendar) Now() time.Time {
	return c.now().In(c.loc)
}

// Today возвращает начало текущего дня
func (c *Calendar) Today() time.Time {
	return model.DayStart(c.Now())
}

var dayLayouts = []string{"02.01.2006", "02/01/2006", model.DateLayout}

// ParseDay разбирает дату из ввода: пусто/"hoje" - сегодня, "amanha" - завтра,
// DD.MM.YYYY, DD/MM/YYYY или YYYY-MM-DD
func (c *Calendar) ParseDay(input string) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	switch input {
	case "", "hoje":
		return c.Today(), nil
	case "amanha", "amanhã":
		return c.Today().AddDate(0, 0, 1), nil
	}

	for _, layout := range dayLayouts {
		if t, err := time.ParseInLocation(layout, input, c.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
}
