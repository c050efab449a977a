package printing

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/umersanii/CableManagement-sub001/internal/ledger"
	"github.com/umersanii/CableManagement-sub001/internal/model"
	"github.com/umersanii/CableManagement-sub001/internal/render"
)

// Config tunes the orchestrator. BatchDelay is the fixed pacing inserted
// between batch items so a shared physical printer is never flooded.
type Config struct {
	OutputDir  string
	Render     render.Config
	BatchDelay time.Duration
}

// Orchestrator drives the print-job state machine. One logical workflow per
// request; rendering and sending are sequential steps with no internal
// parallelism, and nothing is retried automatically — repeated identical
// failures would not self-resolve, so retries are a caller decision.
type Orchestrator struct {
	sink Sink
	cfg  Config
	now  func() time.Time
}

func New(sink Sink, cfg Config) *Orchestrator {
	if cfg.BatchDelay <= 0 {
		cfg.BatchDelay = 500 * time.Millisecond
	}
	return &Orchestrator{sink: sink, cfg: cfg, now: time.Now}
}

func (o *Orchestrator) newJob(rec model.FinancialRecord) *model.PrintJob {
	return &model.PrintJob{
		ID:             uuid.New(),
		Kind:           rec.Kind(),
		DocumentNumber: rec.Number(),
		State:          model.JobRequested,
		CreatedAt:      o.now(),
	}
}

func (o *Orchestrator) fail(job *model.PrintJob, err error) (*model.PrintJob, error) {
	job.State = model.JobFailed
	job.Cause = err
	log.Error().
		Str("job_id", job.ID.String()).
		Str("kind", string(job.Kind)).
		Str("document", job.DocumentNumber).
		Err(err).
		Msg("print job failed")
	return job, err
}

// RenderArtifact runs validation, derivation, rendering, and the sink write.
// Validation errors surface before any render work so no partial output exists.
func (o *Orchestrator) RenderArtifact(rec model.FinancialRecord) (string, error) {
	totals, err := ledger.Derive(rec)
	if err != nil {
		return "", err
	}
	doc, err := render.Render(rec, totals, o.cfg.Render)
	if err != nil {
		return "", &RenderError{DocumentNumber: rec.Number(), Err: err}
	}
	if err := os.MkdirAll(o.cfg.OutputDir, 0o755); err != nil {
		return "", &RenderError{DocumentNumber: rec.Number(), Err: err}
	}
	path := artifactPath(o.cfg.OutputDir, rec.Kind(), rec.Number(), o.now())
	if err := o.sink.RenderToFile(doc, path); err != nil {
		return "", &RenderError{DocumentNumber: rec.Number(), Err: err}
	}
	return path, nil
}

// Printers exposes the sink's discoverable printer list to callers that need
// it before committing to a print (e.g. a front end populating a chooser).
func (o *Orchestrator) Printers(ctx context.Context) ([]string, error) {
	return o.sink.ListPrinters(ctx)
}

// Preview renders the record and hands the artifact to the default viewer.
// No confirmation gate: previewing commits nothing.
func (o *Orchestrator) Preview(ctx context.Context, rec model.FinancialRecord) (*model.PrintJob, error) {
	job := o.newJob(rec)

	job.State = model.JobRendering
	path, err := o.RenderArtifact(rec)
	if err != nil {
		return o.fail(job, err)
	}
	job.OutputPath = path

	if err := o.sink.OpenForPreview(ctx, path); err != nil {
		return o.fail(job, fmt.Errorf("open preview: %w", err))
	}
	job.State = model.JobPreviewed
	log.Info().Str("document", job.DocumentNumber).Str("path", path).Msg("document previewed")
	return job, nil
}

// Print runs the full single-document workflow:
// printer discovery (fail fast when empty, before any render work), render,
// confirmation gate, printer selection gate, send. A declined gate ends the
// job cleanly with state declined and a nil error.
func (o *Orchestrator) Print(ctx context.Context, rec model.FinancialRecord, gate Gate) (*model.PrintJob, error) {
	job := o.newJob(rec)

	printers, err := o.sink.ListPrinters(ctx)
	if err != nil {
		return o.fail(job, fmt.Errorf("list printers: %w", err))
	}
	if len(printers) == 0 {
		return o.fail(job, ErrNoPrinterAvailable)
	}

	job.State = model.JobRendering
	path, err := o.RenderArtifact(rec)
	if err != nil {
		return o.fail(job, err)
	}
	job.OutputPath = path

	job.State = model.JobConfirmationPending
	if !gate.Confirm(fmt.Sprintf("Print %s %s?", rec.Kind(), rec.Number())) {
		job.State = model.JobDeclined
		log.Info().Str("document", job.DocumentNumber).Msg("print declined")
		return job, nil
	}
	job.State = model.JobConfirmed

	printer, ok := gate.Choose("Select printer", printers)
	if !ok {
		job.State = model.JobDeclined
		log.Info().Str("document", job.DocumentNumber).Msg("printer selection declined")
		return job, nil
	}

	job.State = model.JobSending
	if err := o.sink.SendToPrinter(ctx, path, printer); err != nil {
		return o.fail(job, &SendError{DocumentNumber: rec.Number(), Printer: printer, Err: err})
	}

	job.State = model.JobSent
	log.Info().
		Str("document", job.DocumentNumber).
		Str("printer", printer).
		Str("path", path).
		Msg("document sent to printer")
	return job, nil
}

// BatchFailure identifies one record that could not be delivered.
type BatchFailure struct {
	DocumentNumber string
	Cause          error
}

// BatchResult aggregates a batch run. Partial failure is expected and fully
// reported: SuccessCount plus one BatchFailure per record that did not reach
// the printer.
type BatchResult struct {
	Declined     bool
	Printer      string
	SuccessCount int
	Failures     []BatchFailure
}

// PrintBatch prints records strictly one at a time after a single up-front
// confirmation and printer selection. A failure on record k never aborts
// records k+1..N; every record is attempted and every outcome reported.
func (o *Orchestrator) PrintBatch(ctx context.Context, recs []model.FinancialRecord, gate Gate) (*BatchResult, error) {
	printers, err := o.sink.ListPrinters(ctx)
	if err != nil {
		return nil, fmt.Errorf("list printers: %w", err)
	}
	if len(printers) == 0 {
		return nil, ErrNoPrinterAvailable
	}

	if !gate.Confirm(fmt.Sprintf("Print %d documents?", len(recs))) {
		return &BatchResult{Declined: true}, nil
	}
	printer, ok := gate.Choose("Select printer", printers)
	if !ok {
		return &BatchResult{Declined: true}, nil
	}

	result := &BatchResult{Printer: printer}
	for i, rec := range recs {
		if i > 0 {
			o.pace(ctx)
		}

		path, err := o.RenderArtifact(rec)
		if err != nil {
			result.Failures = append(result.Failures, BatchFailure{DocumentNumber: rec.Number(), Cause: err})
			log.Warn().Str("document", rec.Number()).Err(err).Msg("batch item render failed")
			continue
		}
		if err := o.sink.SendToPrinter(ctx, path, printer); err != nil {
			cause := &SendError{DocumentNumber: rec.Number(), Printer: printer, Err: err}
			result.Failures = append(result.Failures, BatchFailure{DocumentNumber: rec.Number(), Cause: cause})
			log.Warn().Str("document", rec.Number()).Err(err).Msg("batch item send failed")
			continue
		}
		result.SuccessCount++
	}

	log.Info().
		Int("total", len(recs)).
		Int("succeeded", result.SuccessCount).
		Int("failed", len(result.Failures)).
		Str("printer", printer).
		Msg("batch print finished")
	return result, nil
}

// pace inserts the fixed inter-item delay. A cancelled context only shortens
// the wait; cancellation of the batch itself happens at gate boundaries.
func (o *Orchestrator) pace(ctx context.Context) {
	t := time.NewTimer(o.cfg.BatchDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
