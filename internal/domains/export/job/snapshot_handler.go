package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"reviewcard-backend/internal/domains/export/model"
	"reviewcard-backend/internal/domains/export/service"
)

// SnapshotHandler chạy capture PNG cho một export job
type SnapshotHandler struct {
	exportService service.ExportService
}

func NewSnapshotHandler(exportService service.ExportService) *SnapshotHandler {
	return &SnapshotHandler{exportService: exportService}
}

func (h *SnapshotHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.ExportTaskPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ExportSnapshot payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("job_id", payload.JobID.String()).
		Msg("Capturing card snapshot")

	if err := h.exportService.ProcessSnapshot(ctx, payload); err != nil {
		log.Error().
			Err(err).
			Str("job_id", payload.JobID.String()).
			Msg("Snapshot export failed")
		return fmt.Errorf("process snapshot: %w", err)
	}

	log.Info().
		Str("job_id", payload.JobID.String()).
		Msg("Snapshot export completed")

	return nil
}
