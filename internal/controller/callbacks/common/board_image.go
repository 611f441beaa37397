package common

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/Freeeeeet/pousada_bot/internal/availability"
	"github.com/Freeeeeet/pousada_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/pousada_bot/internal/model"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontStyle определяет стиль шрифта
type FontStyle string

const (
	FontStyleDefault FontStyle = ""
	FontStyleBold    FontStyle = "bold"
)

// Константы размеров и отступов
const (
	minImageWidth    = 900
	imageHeight      = 900
	headerHeight     = 110
	leftLabelsWidth  = 80
	legendHeight     = 60
	columnWidth      = 150
	columnPaddingX   = 8
	minSlotHeight    = 8.0
	slotBorderRadius = 6.0
	shadowOffset     = 3.0
	hourPaddingTop   = 1
	hourPaddingBot   = 1
	defaultMinHour   = 7
	defaultMaxHour   = 22
)

// Константы шрифтов
const (
	titleFontSize      = 26.0
	columnFontSize     = 17.0
	hourLabelFontSize  = 16.0
	slotTimeFontSize   = 15.0
	legendItemFontSize = 13.0
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	hourLabelColor   = color.RGBA{110, 115, 120, 200}
	hourLineColor    = color.NRGBA{150, 150, 150, 255}
	evenColumnColor  = color.NRGBA{240, 240, 240, 255}
	oddColumnColor   = color.NRGBA{225, 225, 225, 255}
	currentTimeColor = color.NRGBA{255, 80, 80, 200}
	slotTextColor    = color.RGBA{20, 24, 28, 230}
	slotShadowColor  = color.RGBA{0, 0, 0, 20}
	legendItemColor  = color.RGBA{70, 74, 78, 220}

	slotColors = map[model.SlotStatus]color.RGBA{
		model.SlotStatusAvailable: {133, 193, 85, 220},
		model.SlotStatusReserved:  {255, 182, 193, 255},
		model.SlotStatusPending:   {255, 214, 102, 240},
		model.SlotStatusBlocked:   {120, 120, 130, 230},
		model.SlotStatusClosed:    {60, 60, 60, 200},
		model.SlotStatusPast:      {200, 200, 200, 180},
	}
	slotDefaultColor = color.RGBA{220, 220, 220, 200}
)

// hourRange содержит диапазон часов для отображения
type hourRange struct {
	start int
	end   int
	total int
}

// boardColumn - одна колонка картинки: структура целиком или её юнит
type boardColumn struct {
	title    string
	subtitle string
	slots    []model.Slot
}

var (
	fontsMu     sync.Mutex
	cachedFonts = make(map[FontStyle]*opentype.Font)
)

// loadFont загружает шрифт указанного стиля или использует basicfont как fallback
func loadFont(dc *gg.Context, size float64, style FontStyle) {
	fontData := goregular.TTF
	if style == FontStyleBold {
		fontData = gobold.TTF
	}

	fontsMu.Lock()
	parsed, ok := cachedFonts[style]
	if !ok {
		var err error
		parsed, err = opentype.Parse(fontData)
		if err != nil {
			fontsMu.Unlock()
			dc.SetFontFace(basicfont.Face7x13)
			return
		}
		cachedFonts[style] = parsed
	}
	fontsMu.Unlock()

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}
	dc.SetFontFace(face)
}

// GenerateBoardImage рисует доску дня: колонка на каждую структуру/юнит, время сверху вниз
func GenerateBoardImage(board *availability.Board, date, now time.Time) ([]byte, error) {
	columns := groupSlotsByColumn(board.Slots)
	hours := calculateHourRange(board.Slots)

	width := leftLabelsWidth + len(columns)*columnWidth + 20
	if width < minImageWidth {
		width = minImageWidth
	}

	dc := createCanvas(width)
	gridHeight := imageHeight - headerHeight - legendHeight
	cellHeight := float64(gridHeight) / float64(hours.total)

	drawHeader(dc, date)
	drawHourLabels(dc, hours, cellHeight)
	for i, column := range columns {
		x := float64(leftLabelsWidth + i*columnWidth)
		drawColumn(dc, column, i, x, gridHeight, hours, cellHeight)
	}
	if model.DateKey(now) == model.DateKey(date) {
		drawCurrentTimeLine(dc, now, hours, cellHeight, len(columns))
	}
	drawLegend(dc)

	return encodeImage(dc)
}

// groupSlotsByColumn сохраняет порядок доски: структуры и юниты в порядке появления
func groupSlotsByColumn(slots []model.Slot) []boardColumn {
	var columns []boardColumn
	index := make(map[string]int)

	for _, slot := range slots {
		id := slot.Key.StructureID + "\x00"
		subtitle := ""
		if unit := slot.Key.Unit(); unit != nil {
			id += *unit
			subtitle = *unit
		}

		i, ok := index[id]
		if !ok {
			i = len(columns)
			index[id] = i
			columns = append(columns, boardColumn{title: slot.StructureName, subtitle: subtitle})
		}
		columns[i].slots = append(columns[i].slots, slot)
	}
	return columns
}

// calculateHourRange определяет диапазон часов для отображения
func calculateHourRange(slots []model.Slot) hourRange {
	minHour := 24
	maxHour := 0

	for _, slot := range slots {
		startH, _, ok := availability.ParseClock(slot.TimeSlot.StartTime)
		if !ok {
			continue
		}
		endH, endM, ok := availability.ParseClock(slot.TimeSlot.EndTime)
		if !ok {
			endH, endM = startH+1, 0
		}
		if endM > 0 {
			endH++
		}
		if startH < minHour {
			minHour = startH
		}
		if endH > maxHour {
			maxHour = endH
		}
	}

	if minHour == 24 {
		minHour = defaultMinHour
		maxHour = defaultMaxHour
	}

	startHour := minHour - hourPaddingTop
	endHour := maxHour + hourPaddingBot
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 24 {
		endHour = 24
	}

	return hourRange{
		start: startHour,
		end:   endHour,
		total: endHour - startHour,
	}
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas(width int) *gg.Context {
	dc := gg.NewContext(width, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

// drawHeader рисует заголовок с датой
func drawHeader(dc *gg.Context, date time.Time) {
	title := fmt.Sprintf("%d de %s de %d · %s",
		date.Day(), formatting.GetMonthName(date.Month()), date.Year(), formatting.GetWeekdayName(date.Weekday()))

	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(leftLabelsWidth), float64(headerHeight)/4, 0, 0.5)
}

// drawHourLabels рисует колонку с часами слева
func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	loadFont(dc, hourLabelFontSize, FontStyleDefault)
	dc.SetColor(hourLabelColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		y := float64(headerHeight) + float64(hIdx)*cellHeight
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", hours.start+hIdx), float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawColumn рисует фон, заголовок, линии часов и слоты одной колонки
func drawColumn(dc *gg.Context, column boardColumn, index int, x float64, gridHeight int, hours hourRange, cellHeight float64) {
	y := float64(headerHeight)

	if index%2 == 0 {
		dc.SetColor(evenColumnColor)
	} else {
		dc.SetColor(oddColumnColor)
	}
	dc.DrawRectangle(x, y, columnWidth, float64(gridHeight))
	dc.Fill()

	loadFont(dc, columnFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(truncate(column.title, 16), x+columnWidth/2, y-30, 0.5, 0.5)
	if column.subtitle != "" {
		loadFont(dc, columnFontSize-2, FontStyleDefault)
		dc.DrawStringAnchored(truncate(column.subtitle, 18), x+columnWidth/2, y-10, 0.5, 0.5)
	}

	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)
	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		hy := y + float64(hIdx)*cellHeight
		dc.DrawLine(x, hy, x+columnWidth, hy)
		dc.Stroke()
	}

	for _, slot := range column.slots {
		drawSlot(dc, slot, x, y, hours, cellHeight)
	}
}

// drawSlot рисует один слот
func drawSlot(dc *gg.Context, slot model.Slot, x, y float64, hours hourRange, cellHeight float64) {
	startH, startM, ok := availability.ParseClock(slot.TimeSlot.StartTime)
	if !ok {
		return
	}
	endH, endM, ok := availability.ParseClock(slot.TimeSlot.EndTime)
	if !ok {
		endH, endM = startH+1, startM
	}

	slotStart := float64(startH) + float64(startM)/60.0
	slotEnd := float64(endH) + float64(endM)/60.0

	slotY := y + (slotStart-float64(hours.start))*cellHeight
	slotHeight := (slotEnd - slotStart) * cellHeight
	if slotHeight < minSlotHeight {
		slotHeight = minSlotHeight
	}

	fillColor, ok := slotColors[slot.Status]
	if !ok {
		fillColor = slotDefaultColor
	}
	slotWidth := float64(columnWidth - columnPaddingX*2)

	// Тень
	dc.SetColor(slotShadowColor)
	dc.DrawRoundedRectangle(x+columnPaddingX+shadowOffset, slotY+2+shadowOffset, slotWidth, slotHeight-4, slotBorderRadius)
	dc.Fill()

	dc.SetColor(fillColor)
	dc.DrawRoundedRectangle(x+columnPaddingX, slotY+2, slotWidth, slotHeight-4, slotBorderRadius)
	dc.Fill()

	dc.SetColor(darkenColor(fillColor, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x+columnPaddingX, slotY+2, slotWidth, slotHeight-4, slotBorderRadius)
	dc.Stroke()

	textColor := slotTextColor
	if slot.Status == model.SlotStatusBlocked || slot.Status == model.SlotStatusClosed {
		textColor = color.RGBA{245, 245, 245, 255}
	}

	loadFont(dc, slotTimeFontSize, FontStyleBold)
	dc.SetColor(textColor)
	txtX := x + columnPaddingX + 8
	txtY := slotY + 18
	dc.DrawStringAnchored(formatting.FormatTimeSlot(slot.TimeSlot), txtX, txtY, 0, 0)

	if slot.GuestName != "" && slotHeight > 40 {
		loadFont(dc, slotTimeFontSize-2, FontStyleDefault)
		dc.DrawStringAnchored(truncate(slot.GuestName, 17), txtX, txtY+17, 0, 0)
	}
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// drawCurrentTimeLine рисует красную линию текущего времени
func drawCurrentTimeLine(dc *gg.Context, now time.Time, hours hourRange, cellHeight float64, columns int) {
	currentHour := float64(now.Hour()) + float64(now.Minute())/60.0
	if currentHour < float64(hours.start) || currentHour > float64(hours.end) {
		return
	}

	currentTimeY := float64(headerHeight) + (currentHour-float64(hours.start))*cellHeight
	dc.SetColor(currentTimeColor)
	dc.SetLineWidth(2.0)
	dc.DrawLine(float64(leftLabelsWidth), currentTimeY, float64(leftLabelsWidth+columns*columnWidth), currentTimeY)
	dc.Stroke()
}

// drawLegend рисует легенду под сеткой
func drawLegend(dc *gg.Context) {
	boxW := 20.0
	boxH := 14.0
	liX := float64(leftLabelsWidth)
	liY := float64(imageHeight) - legendHeight/2 - boxH/2

	loadFont(dc, legendItemFontSize, FontStyleDefault)
	for _, status := range model.AllSlotStatuses {
		dc.SetColor(slotColors[status])
		dc.DrawRoundedRectangle(liX, liY, boxW, boxH, 3)
		dc.Fill()

		label := formatting.GetSlotStatusDisplay(status).Text
		dc.SetColor(legendItemColor)
		dc.DrawStringAnchored(label, liX+boxW+6, liY+boxH/2, 0, 0.35)
		w, _ := dc.MeasureString(label)
		liX += boxW + 6 + w + 18
	}
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
