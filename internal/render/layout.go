package render

import (
	"os"

	"github.com/go-pdf/fpdf"
)

// A4 portrait with fixed 15mm margins; content width 180mm.
const (
	marginMM  = 15
	contentW  = 210 - 2*marginMM
	lineH     = 6
	tableRowH = 7
)

// pdfDoc wraps one in-progress fpdf document with the shared section helpers.
type pdfDoc struct {
	pdf *fpdf.Fpdf
	cfg Config
}

func newPDF(cfg Config) *pdfDoc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)
	pdf.AddPage()
	return &pdfDoc{pdf: pdf, cfg: cfg}
}

// titleBlock draws the optional logo, the company name, and the document title.
// A configured-but-missing logo file is skipped silently: absence of an
// adornment is a normal code path, never a render failure.
func (d *pdfDoc) titleBlock(title string) {
	if d.cfg.ShowLogo && d.cfg.LogoPath != "" {
		if _, err := os.Stat(d.cfg.LogoPath); err == nil {
			d.pdf.ImageOptions(d.cfg.LogoPath, marginMM, 10, 24, 0, false,
				fpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}

	d.pdf.SetFont("Helvetica", "B", 18)
	d.pdf.CellFormat(contentW, 10, d.cfg.CompanyName, "", 1, "C", false, 0, "")
	if d.cfg.CompanyAddress != "" {
		d.pdf.SetFont("Helvetica", "", 9)
		d.pdf.CellFormat(contentW, 5, d.cfg.CompanyAddress, "", 1, "C", false, 0, "")
	}
	d.pdf.Ln(2)
	d.pdf.SetFont("Helvetica", "B", 13)
	d.pdf.CellFormat(contentW, 8, title, "", 1, "C", false, 0, "")
	d.separator()
}

// partyBlock prints the counterparty identity under a small caption.
func (d *pdfDoc) partyBlock(name, address string) {
	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.CellFormat(contentW, 5, "Bill To", "", 1, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.CellFormat(contentW, lineH, name, "", 1, "L", false, 0, "")
	if address != "" {
		d.pdf.SetFont("Helvetica", "", 9)
		d.pdf.CellFormat(contentW, 5, address, "", 1, "L", false, 0, "")
	}
	d.pdf.Ln(2)
}

// metaBlock prints label/value pairs in two columns, two pairs per row.
func (d *pdfDoc) metaBlock(pairs [][2]string) {
	half := float64(contentW) / 2
	labelW := 38.0
	for i := 0; i < len(pairs); i += 2 {
		d.pdf.SetFont("Helvetica", "B", 9)
		d.pdf.CellFormat(labelW, lineH, pairs[i][0], "", 0, "L", false, 0, "")
		d.pdf.SetFont("Helvetica", "", 9)
		d.pdf.CellFormat(half-labelW, lineH, pairs[i][1], "", 0, "L", false, 0, "")
		if i+1 < len(pairs) {
			d.pdf.SetFont("Helvetica", "B", 9)
			d.pdf.CellFormat(labelW, lineH, pairs[i+1][0], "", 0, "L", false, 0, "")
			d.pdf.SetFont("Helvetica", "", 9)
			d.pdf.CellFormat(half-labelW, lineH, pairs[i+1][1], "", 1, "L", false, 0, "")
		} else {
			d.pdf.Ln(lineH)
		}
	}
	d.pdf.Ln(2)
}

func (d *pdfDoc) separator() {
	y := d.pdf.GetY() + 1
	d.pdf.Line(marginMM, y, 210-marginMM, y)
	d.pdf.Ln(3)
}

// tableHeader draws one bottom-bordered header row. widths must sum to contentW.
func (d *pdfDoc) tableHeader(cols []string, widths []float64, aligns []string) {
	d.pdf.SetFont("Helvetica", "B", 9)
	for i, c := range cols {
		br := 0
		if i == len(cols)-1 {
			br = 1
		}
		d.pdf.CellFormat(widths[i], tableRowH, c, "B", br, aligns[i], false, 0, "")
	}
}

func (d *pdfDoc) tableRow(cells []string, widths []float64, aligns []string) {
	d.pdf.SetFont("Helvetica", "", 9)
	for i, c := range cells {
		br := 0
		if i == len(cells)-1 {
			br = 1
		}
		d.pdf.CellFormat(widths[i], tableRowH, c, "", br, aligns[i], false, 0, "")
	}
}

// summaryRow prints one right-aligned key/value line of the summary block.
func (d *pdfDoc) summaryRow(label, value string, bold bool) {
	style := ""
	size := 9.5
	if bold {
		style = "B"
		size = 10.5
	}
	d.pdf.SetFont("Helvetica", style, size)
	d.pdf.CellFormat(contentW-50, lineH, label, "", 0, "R", false, 0, "")
	d.pdf.CellFormat(50, lineH, value, "", 1, "R", false, 0, "")
}

// sectionHeading prints a bold left-aligned heading (balance-sheet sections).
func (d *pdfDoc) sectionHeading(text string) {
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.CellFormat(contentW, 7, text, "", 1, "L", false, 0, "")
}

// keyValueRow prints one left-label / right-amount row across the full width.
func (d *pdfDoc) keyValueRow(label, value string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont("Helvetica", style, 10)
	d.pdf.CellFormat(contentW-50, lineH, label, "", 0, "L", false, 0, "")
	d.pdf.CellFormat(50, lineH, value, "", 1, "R", false, 0, "")
}

// signatureBlock draws the two blank signature fields side by side.
func (d *pdfDoc) signatureBlock() {
	d.pdf.Ln(14)
	half := float64(contentW) / 2
	y := d.pdf.GetY()
	d.pdf.Line(marginMM+5, y, marginMM+half-15, y)
	d.pdf.Line(marginMM+half+10, y, 210-marginMM-5, y)
	d.pdf.SetFont("Helvetica", "", 8)
	d.pdf.CellFormat(half, 5, "Authorized Signature", "", 0, "C", false, 0, "")
	d.pdf.CellFormat(half, 5, "Received By", "", 1, "C", false, 0, "")
}

func (d *pdfDoc) closingRemark(text string) {
	d.pdf.Ln(6)
	d.pdf.SetFont("Helvetica", "I", 9)
	d.pdf.CellFormat(contentW, 5, text, "", 1, "C", false, 0, "")
}
