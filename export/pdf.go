package export

import (
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

const (
	pdfMargin    = 10.0
	pdfRowHeight = 8.0
)

// WritePDF renders records as a titled table on A4 landscape pages. The
// header row is repeated on every page.
func WritePDF(w io.Writer, title string, records []map[string]any, cols []Column, now time.Time) error {
	if len(records) == 0 || len(cols) == 0 {
		return ErrNoData
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pageW, pageH := pdf.GetPageSize()
	colW := (pageW - 2*pdfMargin) / float64(len(cols))

	header := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(115, 175, 111)
		pdf.SetTextColor(255, 255, 255)
		for _, c := range cols {
			pdf.CellFormat(colW, pdfRowHeight, c.Label, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(102, 102, 102)
	pdf.Cell(0, 8, now.Format("2006-01-02"))
	pdf.Ln(10)
	header()

	for i, rec := range records {
		if pdf.GetY()+pdfRowHeight > pageH-pdfMargin {
			pdf.AddPage()
			header()
		}
		if i%2 == 0 {
			pdf.SetFillColor(249, 249, 249)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for _, v := range row(rec, cols) {
			pdf.CellFormat(colW, pdfRowHeight, v, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
