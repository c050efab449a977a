package model

import (
	"time"

	"github.com/google/uuid"
)

// JobState tracks one print/preview lifecycle.
// Terminal states: JobSent, JobFailed, JobDeclined.
type JobState string

const (
	JobRequested           JobState = "requested"
	JobRendering           JobState = "rendering"
	JobPreviewed           JobState = "previewed"
	JobConfirmationPending JobState = "confirmation_pending"
	JobConfirmed           JobState = "confirmed"
	JobDeclined            JobState = "declined"
	JobSending             JobState = "sending"
	JobSent                JobState = "sent"
	JobFailed              JobState = "failed"
)

// Terminal reports whether the state admits no further transitions.
func (s JobState) Terminal() bool {
	return s == JobSent || s == JobFailed || s == JobDeclined
}

// PrintJob is one lifecycle instance of turning a record into delivered output.
// Cause holds the underlying failure when State == JobFailed.
type PrintJob struct {
	ID             uuid.UUID
	Kind           DocumentKind
	DocumentNumber string
	OutputPath     string
	State          JobState
	Cause          error
	CreatedAt      time.Time
}
