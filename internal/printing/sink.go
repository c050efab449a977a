// Package printing sequences preview, print, and batch-print workflows over
// rendered documents. It owns the print-job state machine, the confirmation
// protocol with the front end, per-item failure isolation in batch mode, and
// reclamation of stale output artifacts.
package printing

import (
	"context"
	"errors"
	"fmt"

	"github.com/umersanii/CableManagement-sub001/internal/render"
)

// Sink is the concrete document-producing and printing backend (a PDF writer
// plus the OS print service). Implementations live in internal/infra.
type Sink interface {
	// RenderToFile materializes a rendered document at path.
	RenderToFile(doc *render.Document, path string) error
	// ListPrinters returns the discoverable printer identifiers, possibly empty.
	ListPrinters(ctx context.Context) ([]string, error)
	// SendToPrinter submits the file at path to the named printer.
	SendToPrinter(ctx context.Context, path, printerID string) error
	// OpenForPreview hands the file to the default viewer.
	OpenForPreview(ctx context.Context, path string) error
}

// Gate is the synchronous yes/no and selection protocol with the UI
// collaborator. The workflow blocks until the gate answers; a negative answer
// ends the job cleanly, it is not an error.
type Gate interface {
	Confirm(prompt string) bool
	Choose(prompt string, options []string) (string, bool)
}

// StaticGate answers the confirmation protocol without a user — the gate for
// non-interactive front ends (HTTP, batch scripts). Selection must be one of
// the offered options or the choice is treated as declined.
type StaticGate struct {
	Approve   bool
	Selection string
}

func (g StaticGate) Confirm(string) bool { return g.Approve }

func (g StaticGate) Choose(_ string, options []string) (string, bool) {
	if !g.Approve {
		return "", false
	}
	if g.Selection == "" && len(options) > 0 {
		return options[0], true
	}
	for _, o := range options {
		if o == g.Selection {
			return o, true
		}
	}
	return "", false
}

// ErrNoPrinterAvailable is returned before any render work when the sink
// reports an empty printer list.
var ErrNoPrinterAvailable = errors.New("no printer available")

// RenderError wraps a rendering-backend failure with the document identity.
// Render failures are terminal for the job: they are not recoverable without
// new input, and the orchestrator never retries.
type RenderError struct {
	DocumentNumber string
	Err            error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render document %s: %v", e.DocumentNumber, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// SendError wraps an Output Sink failure with the document identity and the
// target printer, so the caller can retry manually.
type SendError struct {
	DocumentNumber string
	Printer        string
	Err            error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send document %s to printer %s: %v", e.DocumentNumber, e.Printer, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }
