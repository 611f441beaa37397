package kitchen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// Размеры чековой ленты 80 мм
const (
	receiptWidth   = 80.0
	receiptMargin  = 4.0
	receiptLineH   = 5.0
	receiptMinPage = 120.0
)

// PDF рисует чек на ленте 80 мм. Длинные позиции и заметки переносятся,
// высота страницы считается по числу строк после переноса.
func (t *Ticket) PDF() ([]byte, error) {
	lines := t.Lines()

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: receiptWidth, Ht: receiptMinPage},
	})
	pdf.SetMargins(receiptMargin, receiptMargin, receiptMargin)
	pdf.SetAutoPageBreak(false, receiptMargin)

	// Встроенные шрифты в cp1252, иначе акценты португальского ломаются
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	contentWidth := receiptWidth - receiptMargin*2

	rows := wrappedRows(pdf, tr, lines, contentWidth)
	height := receiptMargin*2 + receiptLineH*float64(rows+5)
	if height < receiptMinPage {
		height = receiptMinPage
	}
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: receiptWidth, Ht: height})

	pdf.SetFont("Courier", "B", 12)
	pdf.CellFormat(contentWidth, receiptLineH+1, tr(t.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Courier", "", 10)
	pdf.CellFormat(contentWidth, receiptLineH, tr(t.Date), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentWidth, receiptLineH,
		tr(fmt.Sprintf("Pedidos: %d  Itens: %d", t.Orders, t.Grouped.Total())), "B", 1, "C", false, 0, "")
	pdf.Ln(2)

	if len(lines) == 0 {
		pdf.CellFormat(contentWidth, receiptLineH, tr("Nenhum pedido."), "", 1, "L", false, 0, "")
	}

	for _, line := range lines {
		setLineFont(pdf, line)
		pdf.MultiCell(contentWidth, receiptLineH, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// setLineFont - заголовки категорий жирным, позиции и заметки (с отступом) обычным
func setLineFont(pdf *gofpdf.Fpdf, line string) {
	if !strings.HasPrefix(line, " ") {
		pdf.SetFont("Courier", "B", 10)
	} else {
		pdf.SetFont("Courier", "", 9)
	}
}

// wrappedRows считает строки чека после переноса по ширине ленты
func wrappedRows(pdf *gofpdf.Fpdf, tr func(string) string, lines []string, width float64) int {
	rows := 0
	for _, line := range lines {
		setLineFont(pdf, line)
		rows += max(len(pdf.SplitLines([]byte(tr(line)), width)), 1)
	}
	return rows
}
