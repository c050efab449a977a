package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umersanii/CableManagement-sub001/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleInvoice() model.Invoice {
	return model.Invoice{
		DocumentNumber:  "INV-1001",
		PartyName:       "Khan Cables",
		Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		PreviousBalance: dec("250.00"),
		PaidAmount:      dec("500.00"),
		Items: []model.LineItem{
			{Position: 1, Name: "Coaxial RG6 (m)", Quantity: 100, UnitPrice: dec("12.50"), DiscountPercent: dec("10")},
			{Position: 2, Name: "F-connector", Quantity: 40, UnitPrice: dec("3.75"), DiscountPercent: dec("0")},
		},
	}
}

func TestDeriveInvoiceTotals(t *testing.T) {
	totals, err := Derive(sampleInvoice())
	require.NoError(t, err)

	// Line 1: 12.50 × 100 = 1250, discount 125, net 1125
	require.Len(t, totals.Lines, 2)
	assert.True(t, totals.Lines[0].Amount.Equal(dec("1250")), "amount %s", totals.Lines[0].Amount)
	assert.True(t, totals.Lines[0].Discount.Equal(dec("125")))
	assert.True(t, totals.Lines[0].Net.Equal(dec("1125")))

	// Line 2: 3.75 × 40 = 150, no discount
	assert.True(t, totals.Lines[1].Amount.Equal(dec("150")))
	assert.True(t, totals.Lines[1].Discount.IsZero())

	assert.True(t, totals.Subtotal.Equal(dec("1400")))
	assert.True(t, totals.TotalDiscount.Equal(dec("125")))
	assert.True(t, totals.NetAmount.Equal(dec("1275")))
	// 250 previous + 1275 net = 1525; minus 500 paid = 1025
	assert.True(t, totals.TotalBalance.Equal(dec("1525")))
	assert.True(t, totals.NetBalance.Equal(dec("1025")))
}

func TestDeriveIsDeterministic(t *testing.T) {
	inv := sampleInvoice()

	first, err := Derive(inv)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		again, err := Derive(inv)
		require.NoError(t, err)
		assert.True(t, first.NetBalance.Equal(again.NetBalance))
		assert.True(t, first.Subtotal.Equal(again.Subtotal))
		assert.True(t, first.TotalDiscount.Equal(again.TotalDiscount))
	}
}

func TestDeriveZeroDiscountIdentity(t *testing.T) {
	inv := model.Invoice{
		DocumentNumber: "INV-1002",
		Items: []model.LineItem{
			{Position: 1, Name: "Cat6 box", Quantity: 3, UnitPrice: dec("89.99")},
			{Position: 2, Name: "Crimping tool", Quantity: 1, UnitPrice: dec("45.10")},
		},
	}
	totals, err := Derive(inv)
	require.NoError(t, err)

	// With every discount at 0%, net equals gross exactly.
	assert.True(t, totals.TotalDiscount.IsZero())
	assert.True(t, totals.NetAmount.Equal(totals.Subtotal))
	for _, line := range totals.Lines {
		assert.True(t, line.Net.Equal(line.Amount))
	}
}

func TestDeriveFullDiscount(t *testing.T) {
	inv := model.Invoice{
		DocumentNumber: "INV-1003",
		Items: []model.LineItem{
			{Position: 1, Name: "Promo drum", Quantity: 2, UnitPrice: dec("500"), DiscountPercent: dec("100")},
		},
	}
	totals, err := Derive(inv)
	require.NoError(t, err)
	assert.True(t, totals.NetAmount.IsZero())
	assert.True(t, totals.Subtotal.Equal(dec("1000")))
}

func TestDeriveEmptyItemsYieldsZeroTotals(t *testing.T) {
	totals, err := Derive(model.Invoice{DocumentNumber: "INV-0"})
	require.NoError(t, err)
	assert.Empty(t, totals.Lines)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.NetAmount.IsZero())
}

func TestDeriveReturnReducesBalance(t *testing.T) {
	ret := model.ReturnInvoice{
		DocumentNumber:         "RET-77",
		OriginalDocumentNumber: "INV-1001",
		PreviousBalance:        dec("1000"),
		Items: []model.LineItem{
			{Position: 1, Name: "Coaxial RG6 (m)", Quantity: 8, UnitPrice: dec("12.50")},
		},
	}
	totals, err := Derive(ret)
	require.NoError(t, err)

	// 8 × 12.50 = 100 returned; 1000 − 100 = 900 owed afterwards.
	assert.True(t, totals.NetAmount.Equal(dec("100")))
	assert.True(t, totals.TotalBalance.Equal(dec("900")))
	assert.True(t, totals.NetBalance.Equal(dec("900")))
}

func TestDeriveSnapshotIdentity(t *testing.T) {
	snap := model.BalanceSnapshot{
		AsOfDate:       time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		BankBalance:    dec("15000.00"),
		CustomersOweUs: dec("8200.50"),
		WeOweCustomers: dec("300.00"),
		SuppliersOweUs: dec("1200.00"),
		WeOweSuppliers: dec("4500.25"),
	}
	totals, err := Derive(snap)
	require.NoError(t, err)

	assert.True(t, totals.TotalReceivables.Equal(dec("9400.50")))
	assert.True(t, totals.TotalPayables.Equal(dec("4800.25")))
	assert.True(t, totals.TotalAssets.Equal(dec("24400.50")))
	// netWorth = assets − payables, always.
	assert.True(t, totals.NetWorth.Equal(totals.TotalAssets.Sub(totals.TotalPayables)))
	assert.True(t, totals.NetWorth.Equal(dec("19600.25")))
}

func TestDeriveSnapshotAllZero(t *testing.T) {
	totals, err := Derive(model.BalanceSnapshot{AsOfDate: time.Now()})
	require.NoError(t, err)
	assert.True(t, totals.TotalAssets.IsZero())
	assert.True(t, totals.NetWorth.IsZero())
}

func TestDeriveRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		item model.LineItem
	}{
		{"negative quantity", model.LineItem{Quantity: -1, UnitPrice: dec("10")}},
		{"negative unit price", model.LineItem{Quantity: 1, UnitPrice: dec("-0.01")}},
		{"discount below zero", model.LineItem{Quantity: 1, UnitPrice: dec("10"), DiscountPercent: dec("-5")}},
		{"discount above hundred", model.LineItem{Quantity: 1, UnitPrice: dec("10"), DiscountPercent: dec("100.01")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Derive(model.Invoice{Items: []model.LineItem{tc.item}})
			require.Error(t, err)
			var invalid *InvalidRecordError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestDeriveRejectsNegativeSnapshotField(t *testing.T) {
	_, err := Derive(model.BalanceSnapshot{BankBalance: dec("-1")})
	var invalid *InvalidRecordError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "bank_balance", invalid.Field)
}

func TestDeriveUnknownRecordKind(t *testing.T) {
	_, err := Derive(nil)
	require.Error(t, err)
}
