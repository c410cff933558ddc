package render

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/goheuristics/internal/heuristics"
)

// Page layout in points, measured from the top edge of an A4 page.
const (
	pdfTopMargin    = 40.0
	pdfBottomMargin = 60.0
	pdfHeadingX     = 40.0
	pdfBulletX      = 60.0
	pdfTitleGap     = 30.0
	pdfHeadingGap   = 15.0
	pdfBulletGap    = 12.0
	pdfSectionGap   = 10.0
)

// WritePDF renders r to a single A4 PDF at outPath, starting a new page
// whenever the cursor reaches the bottom margin.
func WritePDF(r heuristics.Report, outPath string) error {
	pdf := newReportPDF(r)
	return pdf.OutputFileAndClose(outPath)
}

func newReportPDF(r heuristics.Report) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(Title, true)
	pdf.SetAutoPageBreak(false, 0)
	// Core fonts are cp1252; findings may contain characters like an em dash.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()

	pdf.AddPage()
	y := pdfTopMargin
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(pdfHeadingX, y, tr(Title))
	y += pdfTitleGap

	pdf.SetFont("Helvetica", "", 10)
	// ensureRoom starts a new page once the cursor is inside the bottom margin.
	ensureRoom := func() {
		if y > pageHeight-pdfBottomMargin {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", 10)
			y = pdfTopMargin
		}
	}
	for _, s := range r.Sections {
		ensureRoom()
		pdf.Text(pdfHeadingX, y, tr(s.Heuristic.Label()))
		y += pdfHeadingGap
		for _, f := range s.Findings {
			ensureRoom()
			pdf.Text(pdfBulletX, y, tr("- "+f))
			y += pdfBulletGap
		}
		y += pdfSectionGap
	}
	return pdf
}
