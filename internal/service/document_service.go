package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/umersanii/CableManagement-sub001/internal/dto"
	"github.com/umersanii/CableManagement-sub001/internal/ledger"
	"github.com/umersanii/CableManagement-sub001/internal/model"
	"github.com/umersanii/CableManagement-sub001/internal/repository"
)

const dateLayout = "2006-01-02"

// DocumentService creates and reads financial records. Derived totals are
// never stored: every response recomputes them from the record via the ledger.
type DocumentService interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, page, limit int) (*dto.ListResponse[dto.InvoiceResponse], error)

	CreateReturn(ctx context.Context, req dto.CreateReturnRequest) (*dto.ReturnResponse, error)
	GetReturn(ctx context.Context, id uuid.UUID) (*dto.ReturnResponse, error)
	ListReturns(ctx context.Context, page, limit int) (*dto.ListResponse[dto.ReturnResponse], error)

	CreateSnapshot(ctx context.Context, req dto.CreateSnapshotRequest) (*dto.SnapshotResponse, error)
	GetSnapshot(ctx context.Context, id uuid.UUID) (*dto.SnapshotResponse, error)
	ListSnapshots(ctx context.Context, page, limit int) (*dto.ListResponse[dto.SnapshotResponse], error)
}

type documentService struct {
	invoices  repository.InvoiceRepository
	returns   repository.ReturnRepository
	snapshots repository.SnapshotRepository
}

func NewDocumentService(
	invoices repository.InvoiceRepository,
	returns repository.ReturnRepository,
	snapshots repository.SnapshotRepository,
) DocumentService {
	return &documentService{invoices: invoices, returns: returns, snapshots: snapshots}
}

// ── Invoices ─────────────────────────────────────────────────────────────────

func (s *documentService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	inv := model.Invoice{
		DocumentNumber:  req.DocumentNumber,
		PartyName:       req.PartyName,
		PartyAddress:    req.PartyAddress,
		Date:            date,
		PreviousBalance: req.PreviousBalance,
		PaidAmount:      req.PaidAmount,
		Items:           toLineItems(req.Items, string(model.KindInvoice)),
	}

	// Reject malformed numbers before any persistence or rendering.
	totals, err := ledger.Derive(inv)
	if err != nil {
		return nil, err
	}

	if err := s.invoices.Create(ctx, &inv); err != nil {
		return nil, fmt.Errorf("create invoice %s: %w", req.DocumentNumber, err)
	}
	return invoiceToResponse(&inv, totals), nil
}

func (s *documentService) GetInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("invoice %s not found", id)
	}
	totals, err := ledger.Derive(*inv)
	if err != nil {
		return nil, err
	}
	return invoiceToResponse(inv, totals), nil
}

func (s *documentService) ListInvoices(ctx context.Context, page, limit int) (*dto.ListResponse[dto.InvoiceResponse], error) {
	page, limit = normalizePage(page, limit)
	invoices, total, err := s.invoices.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		totals, err := ledger.Derive(invoices[i])
		if err != nil {
			return nil, err
		}
		data = append(data, *invoiceToResponse(&invoices[i], totals))
	}
	return &dto.ListResponse[dto.InvoiceResponse]{Data: data, Total: total, Page: page, Limit: limit}, nil
}

// ── Return invoices ──────────────────────────────────────────────────────────

func (s *documentService) CreateReturn(ctx context.Context, req dto.CreateReturnRequest) (*dto.ReturnResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	ret := model.ReturnInvoice{
		DocumentNumber:         req.DocumentNumber,
		OriginalDocumentNumber: req.OriginalDocumentNumber,
		PartyName:              req.PartyName,
		Date:                   date,
		PreviousBalance:        req.PreviousBalance,
		Items:                  toLineItems(req.Items, string(model.KindReturn)),
	}

	totals, err := ledger.Derive(ret)
	if err != nil {
		return nil, err
	}

	if err := s.returns.Create(ctx, &ret); err != nil {
		return nil, fmt.Errorf("create return invoice %s: %w", req.DocumentNumber, err)
	}
	return returnToResponse(&ret, totals), nil
}

func (s *documentService) GetReturn(ctx context.Context, id uuid.UUID) (*dto.ReturnResponse, error) {
	ret, err := s.returns.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("return invoice %s not found", id)
	}
	totals, err := ledger.Derive(*ret)
	if err != nil {
		return nil, err
	}
	return returnToResponse(ret, totals), nil
}

func (s *documentService) ListReturns(ctx context.Context, page, limit int) (*dto.ListResponse[dto.ReturnResponse], error) {
	page, limit = normalizePage(page, limit)
	returns, total, err := s.returns.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ReturnResponse, 0, len(returns))
	for i := range returns {
		totals, err := ledger.Derive(returns[i])
		if err != nil {
			return nil, err
		}
		data = append(data, *returnToResponse(&returns[i], totals))
	}
	return &dto.ListResponse[dto.ReturnResponse]{Data: data, Total: total, Page: page, Limit: limit}, nil
}

// ── Balance snapshots ────────────────────────────────────────────────────────

func (s *documentService) CreateSnapshot(ctx context.Context, req dto.CreateSnapshotRequest) (*dto.SnapshotResponse, error) {
	asOf, err := time.Parse(dateLayout, req.AsOfDate)
	if err != nil {
		return nil, fmt.Errorf("invalid as_of_date: %w", err)
	}

	snap := model.BalanceSnapshot{
		AsOfDate:       asOf,
		BankBalance:    req.BankBalance,
		CustomersOweUs: req.CustomersOweUs,
		WeOweCustomers: req.WeOweCustomers,
		SuppliersOweUs: req.SuppliersOweUs,
		WeOweSuppliers: req.WeOweSuppliers,
	}

	totals, err := ledger.Derive(snap)
	if err != nil {
		return nil, err
	}

	if err := s.snapshots.Create(ctx, &snap); err != nil {
		return nil, fmt.Errorf("create balance snapshot: %w", err)
	}
	return snapshotToResponse(&snap, totals), nil
}

func (s *documentService) GetSnapshot(ctx context.Context, id uuid.UUID) (*dto.SnapshotResponse, error) {
	snap, err := s.snapshots.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("balance snapshot %s not found", id)
	}
	totals, err := ledger.Derive(*snap)
	if err != nil {
		return nil, err
	}
	return snapshotToResponse(snap, totals), nil
}

func (s *documentService) ListSnapshots(ctx context.Context, page, limit int) (*dto.ListResponse[dto.SnapshotResponse], error) {
	page, limit = normalizePage(page, limit)
	snapshots, total, err := s.snapshots.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SnapshotResponse, 0, len(snapshots))
	for i := range snapshots {
		totals, err := ledger.Derive(snapshots[i])
		if err != nil {
			return nil, err
		}
		data = append(data, *snapshotToResponse(&snapshots[i], totals))
	}
	return &dto.ListResponse[dto.SnapshotResponse]{Data: data, Total: total, Page: page, Limit: limit}, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	return page, limit
}

func toLineItems(reqs []dto.LineItemRequest, documentType string) []model.LineItem {
	items := make([]model.LineItem, 0, len(reqs))
	for i, r := range reqs {
		items = append(items, model.LineItem{
			DocumentType:    documentType,
			Position:        i + 1,
			Name:            r.Name,
			Quantity:        r.Quantity,
			UnitPrice:       r.UnitPrice,
			DiscountPercent: r.DiscountPercent,
		})
	}
	return items
}

func toItemResponses(items []model.LineItem, totals *ledger.DerivedTotals) []dto.LineItemResponse {
	out := make([]dto.LineItemResponse, 0, len(items))
	for i, item := range items {
		lt := totals.Lines[i]
		out = append(out, dto.LineItemResponse{
			Position:        item.Position,
			Name:            item.Name,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
			Amount:          lt.Amount,
			Discount:        lt.Discount,
			Net:             lt.Net,
		})
	}
	return out
}

func invoiceToResponse(inv *model.Invoice, totals *ledger.DerivedTotals) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:              inv.ID.String(),
		DocumentNumber:  inv.DocumentNumber,
		PartyName:       inv.PartyName,
		PartyAddress:    inv.PartyAddress,
		Date:            inv.Date.Format(dateLayout),
		Items:           toItemResponses(inv.Items, totals),
		PreviousBalance: inv.PreviousBalance,
		PaidAmount:      inv.PaidAmount,
		Subtotal:        totals.Subtotal,
		TotalDiscount:   totals.TotalDiscount,
		NetAmount:       totals.NetAmount,
		TotalBalance:    totals.TotalBalance,
		NetBalance:      totals.NetBalance,
		CreatedAt:       inv.CreatedAt.Format(time.RFC3339),
	}
}

func returnToResponse(ret *model.ReturnInvoice, totals *ledger.DerivedTotals) *dto.ReturnResponse {
	return &dto.ReturnResponse{
		ID:                     ret.ID.String(),
		DocumentNumber:         ret.DocumentNumber,
		OriginalDocumentNumber: ret.OriginalDocumentNumber,
		PartyName:              ret.PartyName,
		Date:                   ret.Date.Format(dateLayout),
		Items:                  toItemResponses(ret.Items, totals),
		PreviousBalance:        ret.PreviousBalance,
		ReturnAmount:           totals.NetAmount,
		TotalBalance:           totals.TotalBalance,
		CreatedAt:              ret.CreatedAt.Format(time.RFC3339),
	}
}

func snapshotToResponse(snap *model.BalanceSnapshot, totals *ledger.DerivedTotals) *dto.SnapshotResponse {
	return &dto.SnapshotResponse{
		ID:               snap.ID.String(),
		AsOfDate:         snap.AsOfDate.Format(dateLayout),
		BankBalance:      snap.BankBalance,
		CustomersOweUs:   snap.CustomersOweUs,
		WeOweCustomers:   snap.WeOweCustomers,
		SuppliersOweUs:   snap.SuppliersOweUs,
		WeOweSuppliers:   snap.WeOweSuppliers,
		TotalReceivables: totals.TotalReceivables,
		TotalPayables:    totals.TotalPayables,
		TotalAssets:      totals.TotalAssets,
		NetWorth:         totals.NetWorth,
		CreatedAt:        snap.CreatedAt.Format(time.RFC3339),
	}
}
