package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/umersanii/CableManagement-sub001/internal/dto"
	"github.com/umersanii/CableManagement-sub001/internal/model"
	"github.com/umersanii/CableManagement-sub001/internal/printing"
	"github.com/umersanii/CableManagement-sub001/internal/repository"
	"github.com/umersanii/CableManagement-sub001/internal/worker"
)

// PrintService adapts the print orchestrator to the HTTP front end. This
// front end is non-interactive, so the orchestrator's confirmation protocol
// is answered by a StaticGate built from each request; interactive front ends
// would pass their own Gate instead.
type PrintService interface {
	ListPrinters(ctx context.Context) ([]string, error)
	Preview(ctx context.Context, kind model.DocumentKind, id uuid.UUID) (*dto.PrintJobResponse, error)
	Print(ctx context.Context, kind model.DocumentKind, id uuid.UUID, printerID string) (*dto.PrintJobResponse, error)
	PrintBatch(ctx context.Context, req dto.BatchPrintRequest) (*dto.BatchResultResponse, error)
	Email(ctx context.Context, kind model.DocumentKind, id uuid.UUID, req dto.EmailDocumentRequest) error
	Reclaim() printing.ReclaimReport
}

type printService struct {
	orchestrator *printing.Orchestrator
	reclaimer    *printing.Reclaimer
	dispatcher   *worker.Dispatcher
	invoices     repository.InvoiceRepository
	returns      repository.ReturnRepository
	snapshots    repository.SnapshotRepository
}

func NewPrintService(
	orchestrator *printing.Orchestrator,
	reclaimer *printing.Reclaimer,
	dispatcher *worker.Dispatcher,
	invoices repository.InvoiceRepository,
	returns repository.ReturnRepository,
	snapshots repository.SnapshotRepository,
) PrintService {
	return &printService{
		orchestrator: orchestrator,
		reclaimer:    reclaimer,
		dispatcher:   dispatcher,
		invoices:     invoices,
		returns:      returns,
		snapshots:    snapshots,
	}
}

func (s *printService) ListPrinters(ctx context.Context) ([]string, error) {
	return s.orchestrator.Printers(ctx)
}

func (s *printService) Preview(ctx context.Context, kind model.DocumentKind, id uuid.UUID) (*dto.PrintJobResponse, error) {
	rec, err := s.fetchRecord(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	job, err := s.orchestrator.Preview(ctx, rec)
	if err != nil {
		return jobToResponse(job), err
	}
	return jobToResponse(job), nil
}

func (s *printService) Print(ctx context.Context, kind model.DocumentKind, id uuid.UUID, printerID string) (*dto.PrintJobResponse, error) {
	rec, err := s.fetchRecord(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	gate := printing.StaticGate{Approve: true, Selection: printerID}
	job, err := s.orchestrator.Print(ctx, rec, gate)
	return jobToResponse(job), err
}

func (s *printService) PrintBatch(ctx context.Context, req dto.BatchPrintRequest) (*dto.BatchResultResponse, error) {
	recs := make([]model.FinancialRecord, 0, len(req.Documents))
	for _, ref := range req.Documents {
		id, err := uuid.Parse(ref.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid document id %q: %w", ref.ID, err)
		}
		rec, err := s.fetchRecord(ctx, model.DocumentKind(ref.Kind), id)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	gate := printing.StaticGate{Approve: true, Selection: req.PrinterID}
	result, err := s.orchestrator.PrintBatch(ctx, recs, gate)
	if err != nil {
		return nil, err
	}

	resp := &dto.BatchResultResponse{
		Declined:     result.Declined,
		Printer:      result.Printer,
		SuccessCount: result.SuccessCount,
		Failures:     make([]dto.BatchFailureResponse, 0, len(result.Failures)),
	}
	for _, f := range result.Failures {
		resp.Failures = append(resp.Failures, dto.BatchFailureResponse{
			DocumentNumber: f.DocumentNumber,
			Cause:          f.Cause.Error(),
		})
	}
	return resp, nil
}

// Email renders the document and enqueues an async email job; SMTP delivery
// happens in the worker pool.
func (s *printService) Email(ctx context.Context, kind model.DocumentKind, id uuid.UUID, req dto.EmailDocumentRequest) error {
	rec, err := s.fetchRecord(ctx, kind, id)
	if err != nil {
		return err
	}
	path, err := s.orchestrator.RenderArtifact(rec)
	if err != nil {
		return err
	}

	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("%s %s", kind, rec.Number())
	}
	body := req.Message
	if body == "" {
		body = "Please find the attached document."
	}
	return s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail: req.To,
		Subject: subject,
		Body:    body,
		PDFPath: path,
	})
}

func (s *printService) Reclaim() printing.ReclaimReport {
	return s.reclaimer.Run()
}

// fetchRecord loads a fully-populated record of the requested kind.
func (s *printService) fetchRecord(ctx context.Context, kind model.DocumentKind, id uuid.UUID) (model.FinancialRecord, error) {
	switch kind {
	case model.KindInvoice:
		inv, err := s.invoices.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("invoice %s not found", id)
		}
		return *inv, nil
	case model.KindReturn:
		ret, err := s.returns.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("return invoice %s not found", id)
		}
		return *ret, nil
	case model.KindBalanceSheet:
		snap, err := s.snapshots.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("balance snapshot %s not found", id)
		}
		return *snap, nil
	default:
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}
}

func jobToResponse(job *model.PrintJob) *dto.PrintJobResponse {
	if job == nil {
		return nil
	}
	resp := &dto.PrintJobResponse{
		JobID:          job.ID.String(),
		Kind:           string(job.Kind),
		DocumentNumber: job.DocumentNumber,
		State:          string(job.State),
		OutputPath:     job.OutputPath,
	}
	if job.Cause != nil {
		resp.Cause = job.Cause.Error()
	}
	return resp
}
