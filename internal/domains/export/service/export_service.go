package service

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"image/png"
	"time"

	"github.com/google/uuid"

	cardmodel "reviewcard-backend/internal/domains/card/model"
	"reviewcard-backend/internal/domains/export/model"
	"reviewcard-backend/internal/domains/export/repository"
	"reviewcard-backend/internal/domains/render"
	"reviewcard-backend/internal/shared"
	"reviewcard-backend/internal/shared/utils"
	"reviewcard-backend/pkg/logger"
)

const artifactPrefix = "exports/"

type exportService struct {
	jobs     repository.JobRepository
	storage  ArtifactStorage
	enqueuer Enqueuer
}

func NewExportService(
	jobs repository.JobRepository,
	storage ArtifactStorage,
	enqueuer Enqueuer,
) ExportService {
	return &exportService{
		jobs:     jobs,
		storage:  storage,
		enqueuer: enqueuer,
	}
}

// ========================================
// TRIGGER SIDE (API)
// ========================================

func (s *exportService) EnqueueSnapshot(ctx context.Context, card *cardmodel.ReviewCard) (*model.Job, error) {
	filename := utils.ExportBaseName(card.Title, model.FallbackBaseName) + ".png"
	return s.enqueue(ctx, card, model.KindSnapshot, filename, "image/png", shared.TypeExportSnapshot)
}

func (s *exportService) EnqueueDocument(ctx context.Context, card *cardmodel.ReviewCard) (*model.Job, error) {
	filename := utils.ExportBaseName(card.Title, model.FallbackBaseName) + "-card.pdf"
	return s.enqueue(ctx, card, model.KindDocument, filename, "application/pdf", shared.TypeExportDocument)
}

func (s *exportService) enqueue(
	ctx context.Context,
	card *cardmodel.ReviewCard,
	kind model.Kind,
	filename, contentType, taskType string,
) (*model.Job, error) {
	job := &model.Job{
		ID:          uuid.New(),
		SessionID:   card.SessionID,
		Kind:        kind,
		Status:      model.StatusPending,
		Filename:    filename,
		ContentType: contentType,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("record export job: %w", err)
	}

	// The payload carries the record as it is right now: later edits never
	// bleed into an already-triggered capture.
	payload := model.ExportTaskPayload{JobID: job.ID, Card: card}
	if err := s.enqueuer.EnqueueExport(ctx, taskType, payload); err != nil {
		return nil, fmt.Errorf("enqueue export: %w", err)
	}

	logger.Info("Export queued", map[string]interface{}{
		"job_id":     job.ID.String(),
		"session_id": card.SessionID.String(),
		"kind":       string(kind),
		"filename":   filename,
	})

	return job, nil
}

func (s *exportService) GetJob(ctx context.Context, sessionID, jobID uuid.UUID) (*model.Job, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.SessionID != sessionID {
		// Foreign sessions see jobs they don't own as absent
		return nil, model.ErrJobNotFound
	}
	return job, nil
}

func (s *exportService) DownloadArtifact(ctx context.Context, sessionID, jobID uuid.UUID) ([]byte, *model.Job, error) {
	job, err := s.GetJob(ctx, sessionID, jobID)
	if err != nil {
		return nil, nil, err
	}
	if job.Status != model.StatusCompleted {
		return nil, nil, model.NewNotReadyError(job.Status)
	}

	data, err := s.storage.Download(ctx, job.ObjectKey)
	if err != nil {
		return nil, nil, fmt.Errorf("download artifact: %w", err)
	}
	return data, job, nil
}

func (s *exportService) Preview(ctx context.Context, card *cardmodel.ReviewCard) ([]byte, error) {
	data, _, _, err := capture(card, model.SnapshotScale, false)
	return data, err
}

// ========================================
// PROCESSING SIDE (WORKER)
// ========================================

func (s *exportService) ProcessSnapshot(ctx context.Context, payload model.ExportTaskPayload) error {
	job, err := s.jobs.Get(ctx, payload.JobID)
	if err != nil {
		return err
	}

	// Snapshot: native resolution, the card's own paper supplies the
	// background, ambient stays transparent.
	data, _, _, err := capture(payload.Card, model.SnapshotScale, false)
	if err != nil {
		return s.fail(ctx, job, fmt.Errorf("%w: %v", model.ErrCaptureFailed, err))
	}

	return s.store(ctx, job, data)
}

func (s *exportService) ProcessDocument(ctx context.Context, payload model.ExportTaskPayload) error {
	job, err := s.jobs.Get(ctx, payload.JobID)
	if err != nil {
		return err
	}

	// Document capture runs at 2x over an explicit opaque white background:
	// the capture must never depend on the page's ambient transparent or
	// theme-inherited background.
	data, w, h, err := capture(payload.Card, model.DocumentScale, true)
	if err != nil {
		return s.fail(ctx, job, fmt.Errorf("%w: %v", model.ErrCaptureFailed, err))
	}

	pdfData, err := assembleDocument(data, w, h)
	if err != nil {
		return s.fail(ctx, job, fmt.Errorf("%w: %v", model.ErrAssemblyFailed, err))
	}

	return s.store(ctx, job, pdfData)
}

// store uploads the artifact then marks the job completed. Upload failure
// marks the job failed; nothing partial is ever left behind.
func (s *exportService) store(ctx context.Context, job *model.Job, data []byte) error {
	key := fmt.Sprintf("%s%s/%s/%s", artifactPrefix, job.SessionID, job.ID, job.Filename)
	if err := s.storage.Upload(ctx, key, data, job.ContentType); err != nil {
		return s.fail(ctx, job, err)
	}

	now := time.Now().UTC()
	job.Status = model.StatusCompleted
	job.ObjectKey = key
	job.CompletedAt = &now
	if err := s.jobs.Save(ctx, job); err != nil {
		return fmt.Errorf("mark job completed: %w", err)
	}

	logger.Info("Export completed", map[string]interface{}{
		"job_id":   job.ID.String(),
		"kind":     string(job.Kind),
		"filename": job.Filename,
		"bytes":    len(data),
	})
	return nil
}

func (s *exportService) fail(ctx context.Context, job *model.Job, cause error) error {
	job.Status = model.StatusFailed
	job.Error = job.FailureMessage()
	job.ObjectKey = ""
	job.CompletedAt = nil
	if saveErr := s.jobs.Save(ctx, job); saveErr != nil {
		logger.Error("Could not mark export job failed", saveErr)
	}

	logger.Error(fmt.Sprintf("Export %s failed", job.Kind), cause)
	return cause
}

func (s *exportService) CleanupArtifacts(ctx context.Context, olderThanDays int) error {
	if olderThanDays < 1 {
		olderThanDays = 1
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)

	deleted, err := s.storage.DeleteOlderThan(ctx, artifactPrefix, cutoff)
	if err != nil {
		return fmt.Errorf("cleanup artifacts: %w", err)
	}

	logger.Info("Export artifacts cleaned up", map[string]interface{}{
		"deleted":         deleted,
		"older_than_days": olderThanDays,
	})
	return nil
}

// ========================================
// CAPTURE
// ========================================

// capture renders the record's visual tree and snapshots it into PNG bytes.
// The unsupported-blend filter is always installed so theme textures degrade
// instead of aborting the capture.
func capture(card *cardmodel.ReviewCard, scale float64, opaque bool) ([]byte, int, int, error) {
	tree := render.Compose(card)

	ras := render.Rasterizer{
		Scale:  scale,
		Filter: render.NormalizeUnsupported,
	}
	if opaque {
		ras.Background = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}

	img, err := ras.Render(tree)
	if err != nil {
		return nil, 0, 0, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, 0, 0, fmt.Errorf("encode png: %w", err)
	}

	bounds := img.Bounds()
	return buf.Bytes(), bounds.Dx(), bounds.Dy(), nil
}
