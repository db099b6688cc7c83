package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"reviewcard-backend/internal/domains/export/model"
	"reviewcard-backend/pkg/cache"
)

type redisJobRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewRedisJobRepository(c cache.Cache, ttl time.Duration) JobRepository {
	return &redisJobRepository{cache: c, ttl: ttl}
}

func jobKey(jobID uuid.UUID) string {
	return fmt.Sprintf("export:job:%s", jobID)
}

func (r *redisJobRepository) Save(ctx context.Context, job *model.Job) error {
	if err := r.cache.Set(ctx, jobKey(job.ID), job, r.ttl); err != nil {
		return fmt.Errorf("save export job: %w", err)
	}
	return nil
}

func (r *redisJobRepository) Get(ctx context.Context, jobID uuid.UUID) (*model.Job, error) {
	var job model.Job
	found, err := r.cache.Get(ctx, jobKey(jobID), &job)
	if err != nil {
		return nil, fmt.Errorf("get export job: %w", err)
	}
	if !found {
		return nil, model.ErrJobNotFound
	}
	return &job, nil
}
