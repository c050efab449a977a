package infra

// cups.go — Output Sink backed by the OS print service.
// Printer discovery and submission go through the CUPS command-line interface
// (lpstat/lp); preview hands the artifact to the desktop's default viewer.

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/umersanii/CableManagement-sub001/internal/render"
)

// CUPSSink implements printing.Sink on top of CUPS and xdg-open.
type CUPSSink struct{}

func NewCUPSSink() *CUPSSink { return &CUPSSink{} }

// RenderToFile writes the rendered document to path.
func (s *CUPSSink) RenderToFile(doc *render.Document, path string) error {
	return doc.WriteFile(path)
}

// ListPrinters returns the names of all CUPS destinations. An empty list is a
// valid result, not an error.
func (s *CUPSSink) ListPrinters(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, "lpstat", "-e").Output()
	if err != nil {
		// lpstat exits non-zero when no destinations exist; treat that as empty.
		if _, ok := err.(*exec.ExitError); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("lpstat: %w", err)
	}

	var printers []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			printers = append(printers, line)
		}
	}
	return printers, nil
}

// SendToPrinter submits the file to the named CUPS destination.
func (s *CUPSSink) SendToPrinter(ctx context.Context, path, printerID string) error {
	out, err := exec.CommandContext(ctx, "lp", "-d", printerID, path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("lp -d %s: %s: %w", printerID, strings.TrimSpace(string(out)), err)
	}
	return nil
}

// OpenForPreview opens the artifact with the default PDF viewer.
func (s *CUPSSink) OpenForPreview(ctx context.Context, path string) error {
	if err := exec.CommandContext(ctx, "xdg-open", path).Start(); err != nil {
		return fmt.Errorf("xdg-open %s: %w", path, err)
	}
	return nil
}
