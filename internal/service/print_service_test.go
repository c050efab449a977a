package service

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umersanii/CableManagement-sub001/internal/dto"
	"github.com/umersanii/CableManagement-sub001/internal/model"
	"github.com/umersanii/CableManagement-sub001/internal/printing"
	"github.com/umersanii/CableManagement-sub001/internal/render"
)

// ── Sink stub ────────────────────────────────────────────────────────────────

type fakeSink struct {
	printers   []string
	sendErrFor string
	sendCalls  []string
	sentTo     []string
	previewed  []string
}

var _ printing.Sink = (*fakeSink)(nil)

func (s *fakeSink) RenderToFile(_ *render.Document, path string) error {
	return os.WriteFile(path, []byte("%PDF-stub"), 0o644)
}

func (s *fakeSink) ListPrinters(context.Context) ([]string, error) {
	return s.printers, nil
}

func (s *fakeSink) SendToPrinter(_ context.Context, path, printerID string) error {
	s.sendCalls = append(s.sendCalls, path)
	s.sentTo = append(s.sentTo, printerID)
	if s.sendErrFor != "" && strings.Contains(path, s.sendErrFor) {
		return os.ErrPermission
	}
	return nil
}

func (s *fakeSink) OpenForPreview(_ context.Context, path string) error {
	s.previewed = append(s.previewed, path)
	return nil
}

func newTestPrintService(t *testing.T, sink printing.Sink) (PrintService, *stubInvoiceRepo, *stubReturnRepo, *stubSnapshotRepo) {
	t.Helper()
	invoices := newStubInvoiceRepo()
	returns := newStubReturnRepo()
	snapshots := newStubSnapshotRepo()

	orchestrator := printing.New(sink, printing.Config{
		OutputDir:  t.TempDir(),
		Render:     render.Config{CompanyName: "Cable Trading Co.", CurrencySymbol: "Rs."},
		BatchDelay: time.Millisecond,
	})
	reclaimer := printing.NewReclaimer(t.TempDir(), printing.DefaultRetention)

	svc := NewPrintService(orchestrator, reclaimer, nil, invoices, returns, snapshots)
	return svc, invoices, returns, snapshots
}

func seedInvoice(t *testing.T, invoices *stubInvoiceRepo, number string) uuid.UUID {
	t.Helper()
	inv := model.Invoice{
		DocumentNumber: number,
		PartyName:      "Khan Cables",
		Date:           time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Items: []model.LineItem{
			{Position: 1, Name: "Cable", Quantity: 1, UnitPrice: dec("10")},
		},
	}
	require.NoError(t, invoices.Create(context.Background(), &inv))
	return inv.ID
}

func TestPrintServicePrint(t *testing.T) {
	sink := &fakeSink{printers: []string{"office"}}
	svc, invoices, _, _ := newTestPrintService(t, sink)
	id := seedInvoice(t, invoices, "INV-9001")

	resp, err := svc.Print(context.Background(), model.KindInvoice, id, "")
	require.NoError(t, err)

	assert.Equal(t, string(model.JobSent), resp.State)
	assert.Equal(t, "INV-9001", resp.DocumentNumber)
	assert.NotEmpty(t, resp.OutputPath)
	assert.Equal(t, []string{"office"}, sink.sentTo)
}

func TestPrintServicePrintUnknownDocument(t *testing.T) {
	sink := &fakeSink{printers: []string{"office"}}
	svc, _, _, _ := newTestPrintService(t, sink)

	_, err := svc.Print(context.Background(), model.KindInvoice, uuid.New(), "")
	require.Error(t, err)
	assert.Empty(t, sink.sendCalls)
}

func TestPrintServicePrintNoPrinter(t *testing.T) {
	sink := &fakeSink{}
	svc, invoices, _, _ := newTestPrintService(t, sink)
	id := seedInvoice(t, invoices, "INV-9002")

	resp, err := svc.Print(context.Background(), model.KindInvoice, id, "")
	require.ErrorIs(t, err, printing.ErrNoPrinterAvailable)
	assert.Equal(t, string(model.JobFailed), resp.State)
	assert.NotEmpty(t, resp.Cause)
}

func TestPrintServicePreview(t *testing.T) {
	sink := &fakeSink{}
	svc, invoices, _, _ := newTestPrintService(t, sink)
	id := seedInvoice(t, invoices, "INV-9003")

	resp, err := svc.Preview(context.Background(), model.KindInvoice, id)
	require.NoError(t, err)
	assert.Equal(t, string(model.JobPreviewed), resp.State)
	assert.Len(t, sink.previewed, 1)
}

func TestPrintServiceBatch(t *testing.T) {
	sink := &fakeSink{printers: []string{"office"}, sendErrFor: "INV-9102"}
	svc, invoices, _, _ := newTestPrintService(t, sink)

	refs := make([]dto.DocumentRef, 0, 3)
	for _, n := range []string{"INV-9101", "INV-9102", "INV-9103"} {
		id := seedInvoice(t, invoices, n)
		refs = append(refs, dto.DocumentRef{Kind: string(model.KindInvoice), ID: id.String()})
	}

	resp, err := svc.PrintBatch(context.Background(), dto.BatchPrintRequest{Documents: refs})
	require.NoError(t, err)

	assert.False(t, resp.Declined)
	assert.Equal(t, "office", resp.Printer)
	assert.Equal(t, 2, resp.SuccessCount)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, "INV-9102", resp.Failures[0].DocumentNumber)
	assert.Len(t, sink.sendCalls, 3, "every record is attempted")
}

func TestPrintServiceBatchUnknownDocumentAborts(t *testing.T) {
	sink := &fakeSink{printers: []string{"office"}}
	svc, _, _, _ := newTestPrintService(t, sink)

	_, err := svc.PrintBatch(context.Background(), dto.BatchPrintRequest{
		Documents: []dto.DocumentRef{{Kind: string(model.KindInvoice), ID: uuid.NewString()}},
	})
	require.Error(t, err)
	assert.Empty(t, sink.sendCalls)
}

func TestPrintServiceListPrinters(t *testing.T) {
	sink := &fakeSink{printers: []string{"office", "warehouse"}}
	svc, _, _, _ := newTestPrintService(t, sink)

	printers, err := svc.ListPrinters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"office", "warehouse"}, printers)
}

func TestPrintServiceReclaim(t *testing.T) {
	sink := &fakeSink{}
	svc, _, _, _ := newTestPrintService(t, sink)

	report := svc.Reclaim()
	assert.Zero(t, report.Scanned)
	assert.Zero(t, report.Failed)
}
