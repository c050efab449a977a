// Package render turns a financial record plus its derived totals into a
// fixed-layout A4 PDF. Layout is single-pass and stateless per document: every
// call builds a fresh fpdf instance from the Config value, so repeated or
// concurrent rendering never shares font or style state.
package render

import (
	"fmt"

	"github.com/umersanii/CableManagement-sub001/internal/ledger"
	"github.com/umersanii/CableManagement-sub001/internal/model"
)

// Document is a fully rendered, not-yet-written PDF.
type Document struct {
	Kind   model.DocumentKind
	Number string
	doc    *pdfDoc
}

// WriteFile writes the PDF to path and releases the underlying document.
// A Document can be written once.
func (d *Document) WriteFile(path string) error {
	if err := d.doc.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	return nil
}

// Render produces the paginated document for any record variant. The section
// order is fixed: title, party block, meta block, line-item table (or balance
// sections), summary, signature block, closing remark.
func Render(rec model.FinancialRecord, totals *ledger.DerivedTotals, cfg Config) (*Document, error) {
	var d *pdfDoc
	switch r := rec.(type) {
	case model.Invoice:
		d = renderInvoice(&r, totals, cfg)
	case *model.Invoice:
		d = renderInvoice(r, totals, cfg)
	case model.ReturnInvoice:
		d = renderReturn(&r, totals, cfg)
	case *model.ReturnInvoice:
		d = renderReturn(r, totals, cfg)
	case model.BalanceSnapshot:
		d = renderBalanceSheet(&r, totals, cfg)
	case *model.BalanceSnapshot:
		d = renderBalanceSheet(r, totals, cfg)
	default:
		return nil, fmt.Errorf("render: unknown document kind %q", rec.Kind())
	}

	if err := d.pdf.Error(); err != nil {
		return nil, fmt.Errorf("render %s %s: %w", rec.Kind(), rec.Number(), err)
	}
	return &Document{Kind: rec.Kind(), Number: rec.Number(), doc: d}, nil
}
