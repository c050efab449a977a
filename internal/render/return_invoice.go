package render

import (
	"strconv"

	"github.com/umersanii/CableManagement-sub001/internal/ledger"
	"github.com/umersanii/CableManagement-sub001/internal/model"
)

var (
	returnCols   = []string{"#", "Description", "Return Qty", "Unit Price", "Return Amount"}
	returnWidths = []float64{10, 78, 24, 32, 36}
	returnAligns = []string{"C", "L", "C", "R", "R"}
)

func renderReturn(ret *model.ReturnInvoice, t *ledger.DerivedTotals, cfg Config) *pdfDoc {
	d := newPDF(cfg)
	sym := cfg.CurrencySymbol

	d.titleBlock("Return Invoice")
	d.partyBlock(ret.PartyName, "")
	d.metaBlock([][2]string{
		{"Return No:", ret.DocumentNumber},
		{"Date:", ret.Date.Format("02/01/2006")},
		{"Against Invoice:", ret.OriginalDocumentNumber},
	})

	d.tableHeader(returnCols, returnWidths, returnAligns)
	for i, item := range ret.Items {
		lt := t.Lines[i]
		d.tableRow([]string{
			strconv.Itoa(i + 1),
			item.Name,
			strconv.Itoa(item.Quantity),
			formatMoney(sym, item.UnitPrice),
			formatMoney(sym, lt.Net),
		}, returnWidths, returnAligns)
	}
	d.separator()

	d.summaryRow("Return Amount:", formatMoney(sym, t.NetAmount), false)
	d.summaryRow("Previous Balance:", formatMoney(sym, ret.PreviousBalance), false)
	d.summaryRow("Total Balance:", formatMoney(sym, t.TotalBalance), true)

	d.signatureBlock()
	d.closingRemark("Goods received back in good order.")
	return d
}
