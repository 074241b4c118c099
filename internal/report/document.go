package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"unicode/utf8"

	"renovation-tracker/internal/data/entity"

	"github.com/go-pdf/fpdf"
)

const documentTitle = "Renovation & Painting Customer List"

//go:embed fonts/DejaVuSansCondensed.ttf
var regularFont []byte

//go:embed fonts/DejaVuSansCondensed-Bold.ttf
var boldFont []byte

const fontFamily = "DejaVu"

// column widths in mm on a landscape A4 page, in Columns order
var columnWidths = []float64{40, 30, 60, 35, 25, 25, 62}

const (
	headerHeight = 9.0
	lineHeight   = 5.0
	bottomMargin = 15.0
	// fpdf's default horizontal cell margin, on both sides
	cellMargin = 1.0
)

// Document renders a titled table: grey header with light bold text, body
// rows on alternating beige shades, black grid. Cells wrap instead of being
// cut, and a row taller than the rest of the page continues on the next one.
func Document(customers []*entity.Customer) ([]byte, error) {
	return renderDocument(customers, true)
}

func newDocument(compress bool) *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.AddUTF8FontFromBytes(fontFamily, "", regularFont)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", boldFont)
	pdf.SetTitle(documentTitle, true)
	pdf.SetCreator("renovation-tracker", true)
	pdf.SetAutoPageBreak(false, bottomMargin)
	return pdf
}

func renderDocument(customers []*entity.Customer, compress bool) ([]byte, error) {
	pdf := newDocument(compress)
	_, pageHeight := pdf.GetPageSize()
	limit := pageHeight - bottomMargin

	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 12, documentTitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	tableHeader(pdf)

	for n, c := range customers {
		pdf.SetFont(fontFamily, "", 9)

		cells := make([][]string, len(Columns))
		lines := 1
		for i, value := range row(c) {
			cells[i] = wrap(pdf, value, columnWidths[i]-2*cellMargin)
			lines = max(lines, len(cells[i]))
		}

		for start := 0; start < lines; {
			free := int((limit - pdf.GetY()) / lineHeight)
			if free < 1 {
				pdf.AddPage()
				tableHeader(pdf)
				pdf.SetFont(fontFamily, "", 9)
				continue
			}
			count := min(free, lines-start)
			rowFill(pdf, n)
			drawRowPart(pdf, cells, start, count)
			start += count
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func tableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	for i, col := range Columns {
		pdf.CellFormat(columnWidths[i], headerHeight, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

func rowFill(pdf *fpdf.Fpdf, n int) {
	if n%2 == 0 {
		pdf.SetFillColor(245, 245, 220)
	} else {
		pdf.SetFillColor(232, 232, 200)
	}
}

// drawRowPart draws lines [start, start+count) of every cell as one band.
func drawRowPart(pdf *fpdf.Fpdf, cells [][]string, start, count int) {
	left, _, _, _ := pdf.GetMargins()
	x, y := left, pdf.GetY()
	h := float64(count) * lineHeight

	for i, lines := range cells {
		w := columnWidths[i]
		pdf.Rect(x, y, w, h, "FD")
		for k := 0; k < count && start+k < len(lines); k++ {
			pdf.SetXY(x, y+float64(k)*lineHeight)
			pdf.CellFormat(w, lineHeight, lines[start+k], "", 0, "C", false, 0, "")
		}
		x += w
	}
	pdf.SetXY(left, y+h)
}

// wrap breaks value into lines no wider than width. Explicit newlines are
// kept and words longer than the column are split between runes.
func wrap(pdf *fpdf.Fpdf, value string, width float64) []string {
	value = printable(value)

	var lines []string
	for _, para := range strings.Split(value, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if pdf.GetStringWidth(candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			for pdf.GetStringWidth(word) > width {
				cut := fitPrefix(pdf, word, width)
				lines = append(lines, word[:cut])
				word = word[cut:]
			}
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}

// fitPrefix returns the byte length of the longest rune prefix of s that
// fits width, at least one rune.
func fitPrefix(pdf *fpdf.Fpdf, s string, width float64) int {
	cut := 0
	for i, r := range s {
		next := i + utf8.RuneLen(r)
		if pdf.GetStringWidth(s[:next]) > width {
			break
		}
		cut = next
	}
	if cut == 0 {
		_, cut = utf8.DecodeRuneInString(s)
	}
	return cut
}

// printable drops carriage returns and replaces runes outside the Basic
// Multilingual Plane, which the embedded font cannot map.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\r':
			return -1
		case r > 0xFFFF:
			return utf8.RuneError
		}
		return r
	}, s)
}
