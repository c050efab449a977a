package render

import (
	"github.com/umersanii/CableManagement-sub001/internal/ledger"
	"github.com/umersanii/CableManagement-sub001/internal/model"
)

// renderBalanceSheet has no line-item table: it prints section headers with
// key/value rows, then the net-worth summary.
func renderBalanceSheet(s *model.BalanceSnapshot, t *ledger.DerivedTotals, cfg Config) *pdfDoc {
	d := newPDF(cfg)
	sym := cfg.CurrencySymbol

	d.titleBlock("Balance Sheet")
	d.metaBlock([][2]string{
		{"As Of:", s.AsOfDate.Format("02/01/2006")},
	})

	d.sectionHeading("Assets")
	d.keyValueRow("Bank Balance", formatMoney(sym, s.BankBalance), false)
	d.keyValueRow("Customers Owe Us", formatMoney(sym, s.CustomersOweUs), false)
	d.keyValueRow("Suppliers Owe Us", formatMoney(sym, s.SuppliersOweUs), false)
	d.keyValueRow("Total Receivables", formatMoney(sym, t.TotalReceivables), true)
	d.keyValueRow("Total Assets", formatMoney(sym, t.TotalAssets), true)
	d.separator()

	d.sectionHeading("Liabilities")
	d.keyValueRow("We Owe Customers", formatMoney(sym, s.WeOweCustomers), false)
	d.keyValueRow("We Owe Suppliers", formatMoney(sym, s.WeOweSuppliers), false)
	d.keyValueRow("Total Payables", formatMoney(sym, t.TotalPayables), true)
	d.separator()

	d.pdf.Ln(2)
	d.keyValueRow("Net Worth", formatMoney(sym, t.NetWorth), true)

	d.signatureBlock()
	d.closingRemark("Prepared from ledger balances as of the stated date.")
	return d
}
