package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	cardmodel "reviewcard-backend/internal/domains/card/model"
	"reviewcard-backend/internal/domains/export/model"
)

// ArtifactStorage is the object store for export artifacts.
// *storage.MinIOStorage satisfies it.
type ArtifactStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	DeleteOlderThan(ctx context.Context, prefix string, cutoff time.Time) (int, error)
}

// Enqueuer pushes export tasks to the worker. *queue.Client satisfies it.
type Enqueuer interface {
	EnqueueExport(ctx context.Context, taskType string, payload interface{}) error
}

type ExportService interface {
	// EnqueueSnapshot/EnqueueDocument record a pending job and hand the
	// capture to the worker together with a snapshot of the record.
	EnqueueSnapshot(ctx context.Context, card *cardmodel.ReviewCard) (*model.Job, error)
	EnqueueDocument(ctx context.Context, card *cardmodel.ReviewCard) (*model.Job, error)

	// GetJob enforces session ownership of the job.
	GetJob(ctx context.Context, sessionID, jobID uuid.UUID) (*model.Job, error)

	// DownloadArtifact returns the stored bytes of a completed job.
	DownloadArtifact(ctx context.Context, sessionID, jobID uuid.UUID) ([]byte, *model.Job, error)

	// Preview renders the card synchronously at native resolution.
	Preview(ctx context.Context, card *cardmodel.ReviewCard) ([]byte, error)

	// Worker-side processing. Failures mark the job with the fixed per-kind
	// message and store nothing.
	ProcessSnapshot(ctx context.Context, payload model.ExportTaskPayload) error
	ProcessDocument(ctx context.Context, payload model.ExportTaskPayload) error

	// CleanupArtifacts reaps artifacts older than the retention window.
	CleanupArtifacts(ctx context.Context, olderThanDays int) error
}
