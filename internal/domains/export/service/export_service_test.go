package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardmodel "reviewcard-backend/internal/domains/card/model"
	"reviewcard-backend/internal/domains/export/model"
	"reviewcard-backend/internal/shared"
)

// ========================================
// IN-MEMORY FAKES
// ========================================

type fakeJobRepo struct {
	jobs map[uuid.UUID]*model.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*model.Job)}
}

func (r *fakeJobRepo) Save(ctx context.Context, job *model.Job) error {
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) Get(ctx context.Context, jobID uuid.UUID) (*model.Job, error) {
	job, ok := r.jobs[jobID]
	if !ok {
		return nil, model.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

type fakeStorage struct {
	objects   map[string][]byte
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.objects[key] = data
	return nil
}

func (s *fakeStorage) Download(ctx context.Context, key string) ([]byte, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, model.ErrJobNotFound
	}
	return data, nil
}

func (s *fakeStorage) DeleteOlderThan(ctx context.Context, prefix string, cutoff time.Time) (int, error) {
	return 0, nil
}

type fakeEnqueuer struct {
	tasks []string
}

func (e *fakeEnqueuer) EnqueueExport(ctx context.Context, taskType string, payload interface{}) error {
	e.tasks = append(e.tasks, taskType)
	return nil
}

func newTestService() (ExportService, *fakeJobRepo, *fakeStorage, *fakeEnqueuer) {
	repo := newFakeJobRepo()
	storage := newFakeStorage()
	enqueuer := &fakeEnqueuer{}
	return NewExportService(repo, storage, enqueuer), repo, storage, enqueuer
}

func newTestCard(title string) *cardmodel.ReviewCard {
	card := cardmodel.NewReviewCard(uuid.New(), time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))
	card.Title = title
	return card
}

// ========================================
// TRIGGER SIDE
// ========================================

func TestEnqueueSnapshotFilename(t *testing.T) {
	svc, _, _, enqueuer := newTestService()

	job, err := svc.EnqueueSnapshot(context.Background(), newTestCard("Dune"))
	require.NoError(t, err)

	assert.Equal(t, "Dune.png", job.Filename)
	assert.Equal(t, model.KindSnapshot, job.Kind)
	assert.Equal(t, model.StatusPending, job.Status)
	assert.Equal(t, []string{shared.TypeExportSnapshot}, enqueuer.tasks)
}

func TestEnqueueDocumentFilename(t *testing.T) {
	svc, _, _, enqueuer := newTestService()

	job, err := svc.EnqueueDocument(context.Background(), newTestCard("Dune"))
	require.NoError(t, err)

	assert.Equal(t, "Dune-card.pdf", job.Filename)
	assert.Equal(t, model.KindDocument, job.Kind)
	assert.Equal(t, []string{shared.TypeExportDocument}, enqueuer.tasks)
}

func TestEnqueueFallbackFilename(t *testing.T) {
	svc, _, _, _ := newTestService()

	snap, err := svc.EnqueueSnapshot(context.Background(), newTestCard(""))
	require.NoError(t, err)
	assert.Equal(t, "review.png", snap.Filename)

	doc, err := svc.EnqueueDocument(context.Background(), newTestCard(""))
	require.NoError(t, err)
	assert.Equal(t, "review-card.pdf", doc.Filename)
}

func TestGetJobEnforcesOwnership(t *testing.T) {
	svc, _, _, _ := newTestService()
	card := newTestCard("Dune")

	job, err := svc.EnqueueSnapshot(context.Background(), card)
	require.NoError(t, err)

	// Owner sees it
	got, err := svc.GetJob(context.Background(), card.SessionID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)

	// Foreign session sees not-found, not forbidden
	_, err = svc.GetJob(context.Background(), uuid.New(), job.ID)
	assert.ErrorIs(t, err, model.ErrJobNotFound)
}

func TestDownloadPendingJobNotReady(t *testing.T) {
	svc, _, _, _ := newTestService()
	card := newTestCard("Dune")

	job, err := svc.EnqueueSnapshot(context.Background(), card)
	require.NoError(t, err)

	_, _, err = svc.DownloadArtifact(context.Background(), card.SessionID, job.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotReady)
}

// ========================================
// PROCESSING SIDE
// ========================================

func TestProcessSnapshotStoresArtifact(t *testing.T) {
	svc, repo, storage, _ := newTestService()
	card := newTestCard("Dune")

	job, err := svc.EnqueueSnapshot(context.Background(), card)
	require.NoError(t, err)

	err = svc.ProcessSnapshot(context.Background(), model.ExportTaskPayload{JobID: job.ID, Card: card})
	require.NoError(t, err)

	done, err := repo.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, done.Status)
	assert.NotEmpty(t, done.ObjectKey)
	require.NotNil(t, done.CompletedAt)

	data := storage.objects[done.ObjectKey]
	require.NotEmpty(t, data)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestProcessDocumentStoresPDF(t *testing.T) {
	svc, repo, storage, _ := newTestService()
	card := newTestCard("Dune")

	job, err := svc.EnqueueDocument(context.Background(), card)
	require.NoError(t, err)

	err = svc.ProcessDocument(context.Background(), model.ExportTaskPayload{JobID: job.ID, Card: card})
	require.NoError(t, err)

	done, err := repo.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, done.Status)

	data := storage.objects[done.ObjectKey]
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestProcessFailureLeavesNoArtifact(t *testing.T) {
	svc, repo, storage, _ := newTestService()
	card := newTestCard("Dune")

	job, err := svc.EnqueueSnapshot(context.Background(), card)
	require.NoError(t, err)

	storage.uploadErr = assert.AnError

	err = svc.ProcessSnapshot(context.Background(), model.ExportTaskPayload{JobID: job.ID, Card: card})
	require.Error(t, err)

	failed, err := repo.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFailed, failed.Status)
	assert.Equal(t, model.MsgSnapshotFailed, failed.Error)
	assert.Empty(t, failed.ObjectKey)
	assert.Empty(t, storage.objects)
}

func TestDocumentFailureUsesDocumentMessage(t *testing.T) {
	svc, repo, storage, _ := newTestService()
	card := newTestCard("Dune")

	job, err := svc.EnqueueDocument(context.Background(), card)
	require.NoError(t, err)

	storage.uploadErr = assert.AnError

	err = svc.ProcessDocument(context.Background(), model.ExportTaskPayload{JobID: job.ID, Card: card})
	require.Error(t, err)

	failed, err := repo.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.MsgDocumentFailed, failed.Error)
}

func TestDownloadCompletedArtifact(t *testing.T) {
	svc, _, _, _ := newTestService()
	card := newTestCard("Dune")

	job, err := svc.EnqueueSnapshot(context.Background(), card)
	require.NoError(t, err)
	require.NoError(t, svc.ProcessSnapshot(context.Background(), model.ExportTaskPayload{JobID: job.ID, Card: card}))

	data, got, err := svc.DownloadArtifact(context.Background(), card.SessionID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune.png", got.Filename)
	assert.NotEmpty(t, data)
}

func TestPreviewRendersPNG(t *testing.T) {
	svc, _, _, _ := newTestService()

	data, err := svc.Preview(context.Background(), newTestCard("Dune"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}
