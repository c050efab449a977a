package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umersanii/CableManagement-sub001/internal/dto"
	"github.com/umersanii/CableManagement-sub001/internal/ledger"
	"github.com/umersanii/CableManagement-sub001/internal/model"
	"github.com/umersanii/CableManagement-sub001/internal/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubInvoiceRepo struct {
	byID  map[uuid.UUID]*model.Invoice
	order []uuid.UUID
}

var _ repository.InvoiceRepository = (*stubInvoiceRepo)(nil)

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{byID: make(map[uuid.UUID]*model.Invoice)}
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *model.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	inv.CreatedAt = time.Now()
	cloned := *inv
	r.byID[inv.ID] = &cloned
	r.order = append(r.order, inv.ID)
	return nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	inv, ok := r.byID[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return inv, nil
}

func (r *stubInvoiceRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Invoice, error) {
	out := make([]model.Invoice, 0, len(ids))
	for _, id := range ids {
		if inv, ok := r.byID[id]; ok {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *stubInvoiceRepo) List(_ context.Context, page, limit int) ([]model.Invoice, int64, error) {
	out := make([]model.Invoice, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out, int64(len(out)), nil
}

type stubReturnRepo struct {
	byID map[uuid.UUID]*model.ReturnInvoice
}

var _ repository.ReturnRepository = (*stubReturnRepo)(nil)

func newStubReturnRepo() *stubReturnRepo {
	return &stubReturnRepo{byID: make(map[uuid.UUID]*model.ReturnInvoice)}
}

func (r *stubReturnRepo) Create(_ context.Context, ret *model.ReturnInvoice) error {
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	cloned := *ret
	r.byID[ret.ID] = &cloned
	return nil
}

func (r *stubReturnRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ReturnInvoice, error) {
	ret, ok := r.byID[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return ret, nil
}

func (r *stubReturnRepo) List(_ context.Context, page, limit int) ([]model.ReturnInvoice, int64, error) {
	out := make([]model.ReturnInvoice, 0, len(r.byID))
	for _, ret := range r.byID {
		out = append(out, *ret)
	}
	return out, int64(len(out)), nil
}

type stubSnapshotRepo struct {
	byID map[uuid.UUID]*model.BalanceSnapshot
}

var _ repository.SnapshotRepository = (*stubSnapshotRepo)(nil)

func newStubSnapshotRepo() *stubSnapshotRepo {
	return &stubSnapshotRepo{byID: make(map[uuid.UUID]*model.BalanceSnapshot)}
}

func (r *stubSnapshotRepo) Create(_ context.Context, s *model.BalanceSnapshot) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cloned := *s
	r.byID[s.ID] = &cloned
	return nil
}

func (r *stubSnapshotRepo) FindByID(_ context.Context, id uuid.UUID) (*model.BalanceSnapshot, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (r *stubSnapshotRepo) Latest(_ context.Context) (*model.BalanceSnapshot, error) {
	var latest *model.BalanceSnapshot
	for _, s := range r.byID {
		if latest == nil || s.AsOfDate.After(latest.AsOfDate) {
			latest = s
		}
	}
	if latest == nil {
		return nil, errors.New("record not found")
	}
	return latest, nil
}

func (r *stubSnapshotRepo) List(_ context.Context, page, limit int) ([]model.BalanceSnapshot, int64, error) {
	out := make([]model.BalanceSnapshot, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func newTestDocumentService() (DocumentService, *stubInvoiceRepo, *stubReturnRepo, *stubSnapshotRepo) {
	invoices := newStubInvoiceRepo()
	returns := newStubReturnRepo()
	snapshots := newStubSnapshotRepo()
	return NewDocumentService(invoices, returns, snapshots), invoices, returns, snapshots
}

func TestCreateInvoiceDerivesTotals(t *testing.T) {
	svc, invoices, _, _ := newTestDocumentService()

	resp, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		DocumentNumber:  "INV-1001",
		PartyName:       "Khan Cables",
		Date:            "2026-03-14",
		PreviousBalance: dec("250"),
		PaidAmount:      dec("500"),
		Items: []dto.LineItemRequest{
			{Name: "Coaxial RG6 (m)", Quantity: 100, UnitPrice: dec("12.50"), DiscountPercent: dec("10")},
			{Name: "F-connector", Quantity: 40, UnitPrice: dec("3.75")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-1001", resp.DocumentNumber)
	assert.True(t, resp.Subtotal.Equal(dec("1400")))
	assert.True(t, resp.TotalDiscount.Equal(dec("125")))
	assert.True(t, resp.NetAmount.Equal(dec("1275")))
	assert.True(t, resp.TotalBalance.Equal(dec("1525")))
	assert.True(t, resp.NetBalance.Equal(dec("1025")))

	// Line items carry 1-based positions in request order.
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 1, resp.Items[0].Position)
	assert.Equal(t, 2, resp.Items[1].Position)
	assert.True(t, resp.Items[0].Net.Equal(dec("1125")))

	assert.Len(t, invoices.byID, 1)
}

func TestCreateInvoiceRejectsBadNumbersBeforePersisting(t *testing.T) {
	svc, invoices, _, _ := newTestDocumentService()

	_, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		DocumentNumber: "INV-BAD",
		PartyName:      "X",
		Date:           "2026-03-14",
		Items: []dto.LineItemRequest{
			{Name: "Cable", Quantity: 1, UnitPrice: dec("10"), DiscountPercent: dec("120")},
		},
	})
	require.Error(t, err)
	var invalid *ledger.InvalidRecordError
	assert.ErrorAs(t, err, &invalid)
	assert.Empty(t, invoices.byID, "invalid invoice must not be persisted")
}

func TestCreateInvoiceRejectsBadDate(t *testing.T) {
	svc, _, _, _ := newTestDocumentService()
	_, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		DocumentNumber: "INV-1",
		PartyName:      "X",
		Date:           "14/03/2026",
		Items:          []dto.LineItemRequest{{Name: "Cable", Quantity: 1, UnitPrice: dec("1")}},
	})
	require.Error(t, err)
}

func TestGetInvoiceRecomputesTotals(t *testing.T) {
	svc, _, _, _ := newTestDocumentService()

	created, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		DocumentNumber: "INV-2",
		PartyName:      "X",
		Date:           "2026-03-14",
		Items:          []dto.LineItemRequest{{Name: "Cable", Quantity: 2, UnitPrice: dec("7.25")}},
	})
	require.NoError(t, err)

	got, err := svc.GetInvoice(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.True(t, got.NetAmount.Equal(dec("14.5")))
	assert.True(t, got.NetAmount.Equal(created.NetAmount))
}

func TestGetInvoiceNotFound(t *testing.T) {
	svc, _, _, _ := newTestDocumentService()
	_, err := svc.GetInvoice(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestListInvoices(t *testing.T) {
	svc, _, _, _ := newTestDocumentService()
	for _, n := range []string{"INV-1", "INV-2", "INV-3"} {
		_, err := svc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
			DocumentNumber: n,
			PartyName:      "X",
			Date:           "2026-03-14",
			Items:          []dto.LineItemRequest{{Name: "Cable", Quantity: 1, UnitPrice: dec("5")}},
		})
		require.NoError(t, err)
	}

	resp, err := svc.ListInvoices(context.Background(), 0, 0) // normalized to 1/50
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 50, resp.Limit)
}

func TestCreateReturnReducesBalance(t *testing.T) {
	svc, _, returns, _ := newTestDocumentService()

	resp, err := svc.CreateReturn(context.Background(), dto.CreateReturnRequest{
		DocumentNumber:         "RET-77",
		OriginalDocumentNumber: "INV-1001",
		PartyName:              "Khan Cables",
		Date:                   "2026-04-10",
		PreviousBalance:        dec("1000"),
		Items: []dto.LineItemRequest{
			{Name: "Coaxial RG6 (m)", Quantity: 8, UnitPrice: dec("12.50")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-1001", resp.OriginalDocumentNumber)
	assert.True(t, resp.ReturnAmount.Equal(dec("100")))
	assert.True(t, resp.TotalBalance.Equal(dec("900")))
	assert.Len(t, returns.byID, 1)
}

func TestCreateSnapshotDerivesPosition(t *testing.T) {
	svc, _, _, snapshots := newTestDocumentService()

	resp, err := svc.CreateSnapshot(context.Background(), dto.CreateSnapshotRequest{
		AsOfDate:       "2026-06-30",
		BankBalance:    dec("15000"),
		CustomersOweUs: dec("8200.50"),
		WeOweCustomers: dec("300"),
		SuppliersOweUs: dec("1200"),
		WeOweSuppliers: dec("4500.25"),
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalReceivables.Equal(dec("9400.50")))
	assert.True(t, resp.TotalPayables.Equal(dec("4800.25")))
	assert.True(t, resp.TotalAssets.Equal(dec("24400.50")))
	assert.True(t, resp.NetWorth.Equal(dec("19600.25")))
	assert.Len(t, snapshots.byID, 1)
}
