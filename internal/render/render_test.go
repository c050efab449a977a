package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umersanii/CableManagement-sub001/internal/ledger"
	"github.com/umersanii/CableManagement-sub001/internal/model"
)

func testConfig() Config {
	return Config{
		CompanyName:    "Cable Trading Co.",
		CompanyAddress: "12 Market Road",
		CurrencySymbol: "Rs.",
	}
}

func mustDerive(t *testing.T, rec model.FinancialRecord) *ledger.DerivedTotals {
	t.Helper()
	totals, err := ledger.Derive(rec)
	require.NoError(t, err)
	return totals
}

// writePDF renders rec and writes it under t.TempDir, asserting the output is
// a plausible PDF (non-empty, %PDF magic).
func writePDF(t *testing.T, rec model.FinancialRecord) string {
	t.Helper()
	doc, err := Render(rec, mustDerive(t, rec), testConfig())
	require.NoError(t, err)
	assert.Equal(t, rec.Kind(), doc.Kind)
	assert.Equal(t, rec.Number(), doc.Number)

	path := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, doc.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 500, "PDF suspiciously small")
	assert.Equal(t, "%PDF", string(data[:4]))
	return path
}

func TestRenderInvoice(t *testing.T) {
	writePDF(t, model.Invoice{
		DocumentNumber:  "INV-2001",
		PartyName:       "Rahim Traders",
		PartyAddress:    "7 Copper Lane",
		Date:            time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		PreviousBalance: decimal.RequireFromString("150"),
		PaidAmount:      decimal.RequireFromString("1000"),
		Items: []model.LineItem{
			{Position: 1, Name: "Coaxial RG6 (m)", Quantity: 200, UnitPrice: decimal.RequireFromString("12.50"), DiscountPercent: decimal.RequireFromString("5")},
			{Position: 2, Name: "Wall clips (pack)", Quantity: 10, UnitPrice: decimal.RequireFromString("2.20")},
		},
	})
}

func TestRenderInvoiceEmptyItems(t *testing.T) {
	// Header-only document with zeroed summary; must not error.
	writePDF(t, model.Invoice{
		DocumentNumber: "INV-2002",
		PartyName:      "Walk-in",
		Date:           time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
	})
}

func TestRenderInvoiceManyItemsPaginates(t *testing.T) {
	inv := model.Invoice{
		DocumentNumber: "INV-2003",
		PartyName:      "Bulk Buyer",
		Date:           time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC),
	}
	for i := 1; i <= 120; i++ {
		inv.Items = append(inv.Items, model.LineItem{
			Position:  i,
			Name:      "Spool",
			Quantity:  i,
			UnitPrice: decimal.RequireFromString("9.99"),
		})
	}
	writePDF(t, inv)
}

func TestRenderReturnInvoice(t *testing.T) {
	writePDF(t, model.ReturnInvoice{
		DocumentNumber:         "RET-301",
		OriginalDocumentNumber: "INV-2001",
		PartyName:              "Rahim Traders",
		Date:                   time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		PreviousBalance:        decimal.RequireFromString("2500"),
		Items: []model.LineItem{
			{Position: 1, Name: "Coaxial RG6 (m)", Quantity: 15, UnitPrice: decimal.RequireFromString("12.50")},
		},
	})
}

func TestRenderBalanceSheet(t *testing.T) {
	writePDF(t, model.BalanceSnapshot{
		AsOfDate:       time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		BankBalance:    decimal.RequireFromString("15000"),
		CustomersOweUs: decimal.RequireFromString("8200.50"),
		WeOweCustomers: decimal.RequireFromString("300"),
		SuppliersOweUs: decimal.RequireFromString("1200"),
		WeOweSuppliers: decimal.RequireFromString("4500.25"),
	})
}

func TestRenderMissingLogoIsTolerated(t *testing.T) {
	cfg := testConfig()
	cfg.ShowLogo = true
	cfg.LogoPath = filepath.Join(t.TempDir(), "does-not-exist.png")

	rec := model.Invoice{DocumentNumber: "INV-2004", PartyName: "X", Date: time.Now()}
	doc, err := Render(rec, mustDerive(t, rec), cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nologo.pdf")
	require.NoError(t, doc.WriteFile(path))
}
