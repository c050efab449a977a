package render

import (
	"strconv"

	"github.com/umersanii/CableManagement-sub001/internal/ledger"
	"github.com/umersanii/CableManagement-sub001/internal/model"
)

var (
	invoiceCols   = []string{"#", "Description", "Qty", "Unit Price", "Discount", "Net"}
	invoiceWidths = []float64{10, 70, 18, 28, 26, 28}
	invoiceAligns = []string{"C", "L", "C", "R", "R", "R"}
)

func renderInvoice(inv *model.Invoice, t *ledger.DerivedTotals, cfg Config) *pdfDoc {
	d := newPDF(cfg)
	sym := cfg.CurrencySymbol

	d.titleBlock("Sales Invoice")
	d.partyBlock(inv.PartyName, inv.PartyAddress)
	d.metaBlock([][2]string{
		{"Invoice No:", inv.DocumentNumber},
		{"Date:", inv.Date.Format("02/01/2006")},
	})

	// Line-item table. An empty invoice still gets its header row; the summary
	// below then carries zeros rather than blanks.
	d.tableHeader(invoiceCols, invoiceWidths, invoiceAligns)
	for i, item := range inv.Items {
		lt := t.Lines[i]
		d.tableRow([]string{
			strconv.Itoa(i + 1),
			item.Name,
			strconv.Itoa(item.Quantity),
			formatMoney(sym, item.UnitPrice),
			formatMoney(sym, lt.Discount),
			formatMoney(sym, lt.Net),
		}, invoiceWidths, invoiceAligns)
	}
	d.separator()

	d.summaryRow("Subtotal:", formatMoney(sym, t.Subtotal), false)
	d.summaryRow("Total Discount:", formatMoney(sym, t.TotalDiscount), false)
	d.summaryRow("Net Amount:", formatMoney(sym, t.NetAmount), false)
	d.summaryRow("Previous Balance:", formatMoney(sym, inv.PreviousBalance), false)
	d.summaryRow("Total Balance:", formatMoney(sym, t.TotalBalance), false)
	d.summaryRow("Paid Amount:", formatMoney(sym, inv.PaidAmount), false)
	d.summaryRow("Net Balance:", formatMoney(sym, t.NetBalance), true)

	d.signatureBlock()
	d.closingRemark("Thank you for your business.")
	return d
}
