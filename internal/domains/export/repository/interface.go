package repository

import (
	"context"

	"github.com/google/uuid"

	"reviewcard-backend/internal/domains/export/model"
)

// JobRepository tracks export job status for the lifetime of a session.
// Like the card record, jobs are TTL-scoped — no durable persistence.
type JobRepository interface {
	Save(ctx context.Context, job *model.Job) error

	// Get returns model.ErrJobNotFound when the job is unknown or expired.
	Get(ctx context.Context, jobID uuid.UUID) (*model.Job, error)
}
