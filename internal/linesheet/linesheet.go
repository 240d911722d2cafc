// Package linesheet renders the printable PDF catalog of the shop.
package linesheet

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Entry is one row of the line sheet; prices are already formatted.
type Entry struct {
	Name       string
	URL        string
	Price      string
	SalePrice  string
	ColorLabel string
	Badge      string
}

type column struct {
	title string
	width float64
	align string
}

// Letter portrait is 215.9mm wide; 15mm margins leave ~186mm.
var columns = []column{
	{"Shoe", 70, "L"},
	{"Colors", 28, "L"},
	{"Price", 28, "R"},
	{"Sale", 28, "R"},
	{"", 32, "C"},
}

const rowHeight = 8.0

// Write renders entries as a table and writes the PDF to w.
func Write(w io.Writer, title string, generatedAt time.Time, entries []Entry) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 107, 107)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", generatedAt.Format("Jan 2, 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	header(pdf)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for i, e := range entries {
		if pdf.GetY()+rowHeight > 279.4-15 {
			pdf.AddPage()
			header(pdf)
		}
		fill := i%2 == 1
		pdf.SetFillColor(242, 242, 242)
		pdf.SetTextColor(26, 26, 26)
		pdf.SetFont("Helvetica", "", 10)

		pdf.CellFormat(columns[0].width, rowHeight, tr(e.Name), "", 0, columns[0].align, fill, 0, e.URL)
		pdf.CellFormat(columns[1].width, rowHeight, e.ColorLabel, "", 0, columns[1].align, fill, 0, "")
		if e.SalePrice != "" {
			pdf.SetTextColor(107, 107, 107)
		}
		pdf.CellFormat(columns[2].width, rowHeight, e.Price, "", 0, columns[2].align, fill, 0, "")
		pdf.SetTextColor(197, 41, 93)
		pdf.CellFormat(columns[3].width, rowHeight, e.SalePrice, "", 0, columns[3].align, fill, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(columns[4].width, rowHeight, e.Badge, "", 1, columns[4].align, fill, 0, "")
	}

	if len(entries) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(107, 107, 107)
		pdf.CellFormat(0, rowHeight, "No shoes in the catalog yet.", "", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write line sheet: %w", err)
	}
	return nil
}

func header(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(26, 26, 26)
	for i, c := range columns {
		ln := 0
		if i == len(columns)-1 {
			ln = 1
		}
		pdf.CellFormat(c.width, rowHeight, c.title, "", ln, c.align, true, 0, "")
	}
}
