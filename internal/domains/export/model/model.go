package model

import (
	"time"

	"github.com/google/uuid"

	cardmodel "reviewcard-backend/internal/domains/card/model"
)

// Kind of export operation.
type Kind string

const (
	KindSnapshot Kind = "snapshot" // native-resolution PNG of the card
	KindDocument Kind = "document" // single-page PDF sized to the capture
)

// Status of an export job. Idle is implicit: a session with no pending job
// may trigger either operation; a failed job simply returns to that state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Capture and document constants.
const (
	// SnapshotScale captures at native canvas resolution.
	SnapshotScale = 1.0
	// DocumentScale upsamples the capture for print-density documents.
	DocumentScale = 2.0

	// DocumentPageWidth is the standard page width in points (A4, 210mm).
	// Page height is derived from the capture so aspect is preserved exactly.
	DocumentPageWidth = 595.28

	// FallbackBaseName names exports when the card has no title.
	FallbackBaseName = "review"
)

// Fixed user-facing failure messages, one per operation kind.
const (
	MsgSnapshotFailed = "Could not capture the card image. Please try again."
	MsgDocumentFailed = "Could not assemble the card document. Please try again."
)

// PageHeight computes the document page height that preserves the captured
// image's aspect ratio at the given page width.
func PageHeight(capturedWidth, capturedHeight, pageWidth float64) float64 {
	return capturedHeight * pageWidth / capturedWidth
}

// Job tracks one export from trigger to artifact.
type Job struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Kind      Kind      `json:"kind"`
	Status    Status    `json:"status"`

	Filename    string `json:"filename"`
	ObjectKey   string `json:"object_key,omitempty"`
	ContentType string `json:"content_type"`

	// Error holds the fixed per-kind failure message when Status is failed.
	Error string `json:"error,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// FailureMessage is the fixed message for this job's operation kind.
func (j *Job) FailureMessage() string {
	if j.Kind == KindDocument {
		return MsgDocumentFailed
	}
	return MsgSnapshotFailed
}

// ========================================
// TASK PAYLOADS
// ========================================

// ExportTaskPayload carries the record snapshot taken at enqueue time, so a
// capture enqueued after a mutation always observes that mutation.
type ExportTaskPayload struct {
	JobID uuid.UUID             `json:"job_id"`
	Card  *cardmodel.ReviewCard `json:"card"`
}

// CleanupPayload drives the scheduled artifact reaper.
type CleanupPayload struct {
	OlderThanDays int `json:"older_than_days"`
}

// ========================================
// RESPONSE DTOs
// ========================================

type JobResponse struct {
	ID          uuid.UUID  `json:"id"`
	Kind        Kind       `json:"kind"`
	Status      Status     `json:"status"`
	Filename    string     `json:"filename"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func ToResponse(job *Job) JobResponse {
	return JobResponse{
		ID:          job.ID,
		Kind:        job.Kind,
		Status:      job.Status,
		Filename:    job.Filename,
		Error:       job.Error,
		CreatedAt:   job.CreatedAt,
		CompletedAt: job.CompletedAt,
	}
}
