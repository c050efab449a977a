package dto

// ─── Print / preview ─────────────────────────────────────────────────────────

type PrintRequest struct {
	// PrinterID is optional: empty selects the first discoverable printer.
	PrinterID string `json:"printer_id"`
}

// DocumentRef names one record for batch printing.
// Kind: "Invoice" | "Return" | "BalanceSheet".
type DocumentRef struct {
	Kind string `json:"kind" validate:"required,oneof=Invoice Return BalanceSheet"`
	ID   string `json:"id"   validate:"required,uuid"`
}

type BatchPrintRequest struct {
	Documents []DocumentRef `json:"documents"  validate:"required,min=1,dive"`
	PrinterID string        `json:"printer_id"`
}

type PrintJobResponse struct {
	JobID          string `json:"job_id"`
	Kind           string `json:"kind"`
	DocumentNumber string `json:"document_number"`
	State          string `json:"state"`
	OutputPath     string `json:"output_path,omitempty"`
	Cause          string `json:"cause,omitempty"`
}

type BatchFailureResponse struct {
	DocumentNumber string `json:"document_number"`
	Cause          string `json:"cause"`
}

type BatchResultResponse struct {
	Declined     bool                   `json:"declined"`
	Printer      string                 `json:"printer,omitempty"`
	SuccessCount int                    `json:"success_count"`
	Failures     []BatchFailureResponse `json:"failures"`
}

type PrinterListResponse struct {
	Printers []string `json:"printers"`
}

// ─── Email ───────────────────────────────────────────────────────────────────

type EmailDocumentRequest struct {
	To      string `json:"to"      validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
