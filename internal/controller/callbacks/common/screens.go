package common

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// Префиксы callback data экранов доски
const (
	ActionDay          = "day"  // day:2026-03-14
	ActionToggle       = "sel"  // sel:2026-03-14:12:1a2b3c4d (индекс слота на доске и отпечаток ключа)
	ActionBlock        = "blk"  // blk:2026-03-14
	ActionRelease      = "rel"  // rel:2026-03-14
	ActionClear        = "clr"  // clr:2026-03-14
	ActionReserve      = "res"  // res:2026-03-14 (бронь отмеченных слотов на гостя)
	ActionPending      = "pnd"  // pnd:2026-03-14
	ActionApprove      = "apv"  // apv:2026-03-14:12:1a2b3c4d
	ActionDecline      = "dcl"  // dcl:2026-03-14:12:1a2b3c4d
	ActionOverrides    = "ovr"  // ovr:2026-03-14
	ActionOpen         = "ovo"  // ovo:2026-03-14:1:1a2b3c4d (индекс и отпечаток структуры)
	ActionClose        = "ovc"  // ovc:2026-03-14:1:1a2b3c4d
	ActionResetDefault = "ovx"  // ovx:2026-03-14:1:1a2b3c4d
	ActionImage        = "img"  // img:2026-03-14
	ActionKitchen      = "kit"  // kit:2026-03-14
	ActionKitchenPDF   = "kpdf" // kpdf:2026-03-14
)

// maxSlotButtons - ограничение Telegram на размер клавиатуры с запасом под служебные ряды
const maxSlotButtons = 84

// BuildBoardScreen формирует экран доски на дату с отметками выделения
func BuildBoardScreen(board *availability.Board, date, today time.Time, selected map[model.SlotKey]bool) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 <b>Quadro de %s</b>\n", formatting.FormatDateWithWeekday(date))

	lastStructure := ""
	for _, slot := range board.Slots {
		if slot.StructureName != lastStructure {
			fmt.Fprintf(&sb, "\n<b>%s</b>\n", html.EscapeString(slot.StructureName))
			lastStructure = slot.StructureName
		}
		sb.WriteString(slotLine(slot, selected[slot.Key]))
		sb.WriteString("\n")
	}

	if len(board.Slots) == 0 {
		sb.WriteString("\nNenhuma estrutura cadastrada.\n")
	}

	sb.WriteString("\n")
	sb.WriteString(SummaryLine(board))

	dateKey := board.Date
	kb := keyboard.NewBuilder()

	var buttons []models.InlineKeyboardButton
	for i, slot := range board.Slots {
		if i >= maxSlotButtons {
			break
		}
		if slot.Status == model.SlotStatusPast {
			continue
		}
		buttons = append(buttons, keyboard.Button(slotButtonText(slot, selected[slot.Key]), ItemCallbackData(ActionToggle, dateKey, i, slot.Key.String())))
	}
	kb.AddRows(keyboard.Chunk(buttons, 3))

	if n := len(selected); n > 0 {
		kb.Row(
			keyboard.Button(fmt.Sprintf("⛔ Bloquear (%d)", n), CallbackData(ActionBlock, dateKey)),
			keyboard.Button(fmt.Sprintf("🔓 Liberar (%d)", n), CallbackData(ActionRelease, dateKey)),
		)
		kb.Row(
			keyboard.Button(fmt.Sprintf("📝 Reservar (%d)", n), CallbackData(ActionReserve, dateKey)),
			keyboard.Button("✖️ Limpar", CallbackData(ActionClear, dateKey)),
		)
	}

	kb.Row(
		keyboard.Button(fmt.Sprintf("🟡 Pendentes (%d)", len(board.Pending())), CallbackData(ActionPending, dateKey)),
		keyboard.Button("🏠 Abrir/Fechar", CallbackData(ActionOverrides, dateKey)),
	)
	kb.Row(
		keyboard.Button("🖼 Imagem", CallbackData(ActionImage, dateKey)),
		keyboard.Button("🍳 Cozinha", CallbackData(ActionKitchen, dateKey)),
	)
	kb.AddRow(keyboard.DayNavigationRow(date, today))

	return sb.String(), kb.Build()
}

func slotLine(slot model.Slot, selected bool) string {
	display := formatting.GetSlotStatusDisplay(slot.Status)

	var sb strings.Builder
	if selected {
		sb.WriteString("☑️ ")
	}
	fmt.Fprintf(&sb, "%s %s", display.Emoji, formatting.FormatTimeSlot(slot.TimeSlot))
	if unit := slot.Key.Unit(); unit != nil {
		fmt.Fprintf(&sb, " · %s", html.EscapeString(*unit))
	}
	fmt.Fprintf(&sb, " — %s", display.Text)
	if slot.Booking != nil && slot.GuestName != "" {
		fmt.Fprintf(&sb, " · %s", html.EscapeString(guestText(slot)))
	}
	return sb.String()
}

func guestText(slot model.Slot) string {
	if slot.CabinName == "" {
		return slot.GuestName
	}
	return fmt.Sprintf("%s (%s)", slot.GuestName, slot.CabinName)
}

func slotButtonText(slot model.Slot, selected bool) string {
	mark := formatting.GetSlotStatusDisplay(slot.Status).Emoji
	if selected {
		mark = "☑️"
	}
	label := slot.StructureName
	if unit := slot.Key.Unit(); unit != nil {
		label = *unit
	}
	return fmt.Sprintf("%s %s %s", mark, slot.Key.StartTime, label)
}

// SummaryLine - строка со счётчиками статусов
func SummaryLine(board *availability.Board) string {
	summary := board.Summary()
	var parts []string
	for _, status := range model.AllSlotStatuses {
		if n := summary[status]; n > 0 {
			display := formatting.GetSlotStatusDisplay(status)
			parts = append(parts, fmt.Sprintf("%s %d", display.Emoji, n))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ")
}

// BuildPendingScreen формирует экран pending слотов даты с кнопками одобрения
func BuildPendingScreen(board *availability.Board, date time.Time) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🟡 <b>Pendentes — %s</b>\n\n", formatting.FormatDateWithWeekday(date))

	kb := keyboard.NewBuilder()
	count := 0
	for i, slot := range board.Slots {
		if slot.Status != model.SlotStatusPending {
			continue
		}
		count++
		fmt.Fprintf(&sb, "%d. <b>%s</b> %s\n", count, html.EscapeString(slot.StructureName), slotLine(slot, false))

		label := fmt.Sprintf("%s %s", slot.Key.StartTime, slot.StructureName)
		kb.Row(
			keyboard.Button("✅ "+label, ItemCallbackData(ActionApprove, board.Date, i, slot.Key.String())),
			keyboard.Button("❌ Recusar", ItemCallbackData(ActionDecline, board.Date, i, slot.Key.String())),
		)
	}

	if count == 0 {
		sb.WriteString("Nenhuma reserva aguardando aprovação.")
	}

	kb.AddBackToBoardButton(board.Date)
	return sb.String(), kb.Build()
}

// BuildOverridesScreen формирует экран открытия/закрытия структур на день
func BuildOverridesScreen(structures []model.Structure, overrides model.Overrides, date time.Time) (string, *models.InlineKeyboardMarkup) {
	dateKey := model.DateKey(date)

	var sb strings.Builder
	fmt.Fprintf(&sb, "🏠 <b>Estruturas — %s</b>\n\n", formatting.FormatDateWithWeekday(date))

	kb := keyboard.NewBuilder()
	for i, structure := range structures {
		effective := structure.DefaultStatus
		override, hasOverride := overrides[structure.ID]
		if hasOverride {
			effective = override
		}
		display := formatting.GetStructureStatusDisplay(effective)

		suffix := " (padrão)"
		if hasOverride {
			suffix = " (exceção do dia)"
		}
		fmt.Fprintf(&sb, "%s <b>%s</b> — %s%s\n", display.Emoji, html.EscapeString(structure.Name), display.Text, suffix)

		row := []models.InlineKeyboardButton{}
		if effective != model.StructureOpen {
			row = append(row, keyboard.Button("🟢 Abrir "+structure.Name, ItemCallbackData(ActionOpen, dateKey, i, structure.ID)))
		} else {
			row = append(row, keyboard.Button("⚫ Fechar "+structure.Name, ItemCallbackData(ActionClose, dateKey, i, structure.ID)))
		}
		if hasOverride {
			row = append(row, keyboard.Button("↩️ Padrão", ItemCallbackData(ActionResetDefault, dateKey, i, structure.ID)))
		}
		kb.AddRow(row)
	}

	if len(structures) == 0 {
		sb.WriteString("Nenhuma estrutura cadastrada.")
	}

	kb.AddBackToBoardButton(dateKey)
	return sb.String(), kb.Build()
}

// BuildUpcomingPendingScreen - список pending броней по датам для /pending
func BuildUpcomingPendingScreen(bookings []model.Booking, names map[string]string, loc *time.Location) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("🟡 <b>Reservas pendentes</b>\n")

	kb := keyboard.NewBuilder()
	var dateButtons []models.InlineKeyboardButton
	lastDate := ""
	for _, booking := range bookings {
		if booking.Date != lastDate {
			lastDate = booking.Date
			label := booking.Date
			if date, err := model.ParseDate(booking.Date, loc); err == nil {
				label = formatting.FormatDateWithWeekday(date)
				dateButtons = append(dateButtons, keyboard.Button("📋 "+formatting.FormatShortDate(date), "day:"+booking.Date))
			}
			fmt.Fprintf(&sb, "\n<b>%s</b>\n", label)
		}

		name := names[booking.StructureID]
		if name == "" {
			name = booking.StructureID
		}
		fmt.Fprintf(&sb, "• %s %s", booking.StartTime, html.EscapeString(name))
		if booking.UnitID != nil {
			fmt.Fprintf(&sb, " · %s", html.EscapeString(*booking.UnitID))
		}
		if booking.GuestName != "" {
			fmt.Fprintf(&sb, " — %s", html.EscapeString(booking.GuestName))
		}
		sb.WriteString("\n")
	}

	if len(bookings) == 0 {
		sb.WriteString("\nNenhuma reserva aguardando aprovação.")
	}

	kb.AddRows(keyboard.Chunk(dateButtons, 4))
	return sb.String(), kb.Build()
}
