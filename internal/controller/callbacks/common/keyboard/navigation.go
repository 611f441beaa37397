package keyboard

import (
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// BackButton создаёт кнопку "Voltar"
func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Voltar", callbackData)
}

// BackToBoardButton возвращает к доске даты
func BackToBoardButton(date string) models.InlineKeyboardButton {
	return BackButton("day:" + date)
}

// DayNavigationRow - предыдущий день, сегодня, следующий день
func DayNavigationRow(date, today time.Time) []models.InlineKeyboardButton {
	prev := date.AddDate(0, 0, -1)
	next := date.AddDate(0, 0, 1)

	row := []models.InlineKeyboardButton{
		Button("◀️ "+prev.Format("02/01"), "day:"+model.DateKey(prev)),
	}
	if model.DateKey(date) != model.DateKey(today) {
		row = append(row, Button("📍 Hoje", "day:"+model.DateKey(today)))
	}
	row = append(row, Button(next.Format("02/01")+" ▶️", "day:"+model.DateKey(next)))
	return row
}

// AddBackToBoardButton добавляет кнопку возврата к доске
func (b *Builder) AddBackToBoardButton(date string) *Builder {
	return b.Row(BackToBoardButton(date))
}

// Chunk раскладывает кнопки по рядам заданной ширины
func Chunk(buttons []models.InlineKeyboardButton, width int) [][]models.InlineKeyboardButton {
	if width <= 0 {
		width = 1
	}
	var rows [][]models.InlineKeyboardButton
	for len(buttons) > 0 {
		n := width
		if len(buttons) < n {
			n = len(buttons)
		}
		rows = append(rows, buttons[:n])
		buttons = buttons[n:]
	}
	return rows
}
