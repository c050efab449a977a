// Package ledger derives the monetary fields of a financial document from its
// raw inputs. Everything here is pure: no I/O, no clock, no shared state.
// All arithmetic is exact decimal; rounding happens only at display time in
// the render package, never mid-calculation.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/umersanii/CableManagement-sub001/internal/model"
)

var hundred = decimal.NewFromInt(100)

// InvalidRecordError reports malformed numeric input. The caller owns the fix:
// validation failures are rejected before any rendering is attempted.
type InvalidRecordError struct {
	Field  string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record: %s %s", e.Field, e.Reason)
}

// LineTotals are the derived amounts for one line item.
type LineTotals struct {
	Amount   decimal.Decimal // unitPrice × quantity
	Discount decimal.Decimal // amount × discountPercent / 100
	Net      decimal.Decimal // amount − discount
}

// DerivedTotals are computed, never persisted — always recomputed from the record.
// Invoice/ReturnInvoice populate Lines through NetBalance; BalanceSnapshot
// populates TotalReceivables through NetWorth.
type DerivedTotals struct {
	Lines         []LineTotals
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	NetAmount     decimal.Decimal
	TotalBalance  decimal.Decimal
	NetBalance    decimal.Decimal

	TotalReceivables decimal.Decimal
	TotalPayables    decimal.Decimal
	TotalAssets      decimal.Decimal
	NetWorth         decimal.Decimal
}

// Derive computes DerivedTotals for any record variant.
// It is deterministic: identical input yields identical output, bit for bit
// on the decimal representation.
func Derive(rec model.FinancialRecord) (*DerivedTotals, error) {
	switch r := rec.(type) {
	case model.Invoice:
		return deriveInvoice(&r)
	case *model.Invoice:
		return deriveInvoice(r)
	case model.ReturnInvoice:
		return deriveReturn(&r)
	case *model.ReturnInvoice:
		return deriveReturn(r)
	case model.BalanceSnapshot:
		return deriveSnapshot(&r)
	case *model.BalanceSnapshot:
		return deriveSnapshot(r)
	default:
		return nil, &InvalidRecordError{Field: "record", Reason: "has unknown document kind"}
	}
}

func deriveInvoice(inv *model.Invoice) (*DerivedTotals, error) {
	t, err := deriveLines(inv.Items)
	if err != nil {
		return nil, err
	}
	t.TotalBalance = inv.PreviousBalance.Add(t.NetAmount)
	t.NetBalance = t.TotalBalance.Sub(inv.PaidAmount)
	return t, nil
}

func deriveReturn(ret *model.ReturnInvoice) (*DerivedTotals, error) {
	t, err := deriveLines(ret.Items)
	if err != nil {
		return nil, err
	}
	// Returns reduce what the party owes.
	t.TotalBalance = ret.PreviousBalance.Sub(t.NetAmount)
	t.NetBalance = t.TotalBalance
	return t, nil
}

// deriveLines validates each item and accumulates per-line and document totals.
// An empty item slice is legal here and yields zero totals; requiring at least
// one line is a document-creation rule, enforced at the API boundary.
func deriveLines(items []model.LineItem) (*DerivedTotals, error) {
	t := &DerivedTotals{
		Lines:         make([]LineTotals, 0, len(items)),
		Subtotal:      decimal.Zero,
		TotalDiscount: decimal.Zero,
	}
	for i, item := range items {
		if item.Quantity < 0 {
			return nil, &InvalidRecordError{Field: fmt.Sprintf("items[%d].quantity", i), Reason: "must not be negative"}
		}
		if item.UnitPrice.IsNegative() {
			return nil, &InvalidRecordError{Field: fmt.Sprintf("items[%d].unit_price", i), Reason: "must not be negative"}
		}
		if item.DiscountPercent.IsNegative() || item.DiscountPercent.GreaterThan(hundred) {
			return nil, &InvalidRecordError{Field: fmt.Sprintf("items[%d].discount_percent", i), Reason: "must be between 0 and 100"}
		}

		amount := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		discount := amount.Mul(item.DiscountPercent).Div(hundred)
		t.Lines = append(t.Lines, LineTotals{
			Amount:   amount,
			Discount: discount,
			Net:      amount.Sub(discount),
		})
		t.Subtotal = t.Subtotal.Add(amount)
		t.TotalDiscount = t.TotalDiscount.Add(discount)
	}
	t.NetAmount = t.Subtotal.Sub(t.TotalDiscount)
	return t, nil
}

func deriveSnapshot(s *model.BalanceSnapshot) (*DerivedTotals, error) {
	for _, v := range []struct {
		field string
		val   decimal.Decimal
	}{
		{"bank_balance", s.BankBalance},
		{"customers_owe_us", s.CustomersOweUs},
		{"we_owe_customers", s.WeOweCustomers},
		{"suppliers_owe_us", s.SuppliersOweUs},
		{"we_owe_suppliers", s.WeOweSuppliers},
	} {
		if v.val.IsNegative() {
			return nil, &InvalidRecordError{Field: v.field, Reason: "must not be negative"}
		}
	}

	t := &DerivedTotals{}
	t.TotalReceivables = s.CustomersOweUs.Add(s.SuppliersOweUs)
	t.TotalPayables = s.WeOweCustomers.Add(s.WeOweSuppliers)
	t.TotalAssets = s.BankBalance.Add(t.TotalReceivables)
	t.NetWorth = t.TotalAssets.Sub(t.TotalPayables)
	return t, nil
}
