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

// DocumentHandler chạy capture 2x + ghép PDF cho một export job
type DocumentHandler struct {
	exportService service.ExportService
}

func NewDocumentHandler(exportService service.ExportService) *DocumentHandler {
	return &DocumentHandler{exportService: exportService}
}

func (h *DocumentHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.ExportTaskPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ExportDocument payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("job_id", payload.JobID.String()).
		Msg("Assembling card document")

	if err := h.exportService.ProcessDocument(ctx, payload); err != nil {
		log.Error().
			Err(err).
			Str("job_id", payload.JobID.String()).
			Msg("Document export failed")
		return fmt.Errorf("process document: %w", err)
	}

	log.Info().
		Str("job_id", payload.JobID.String()).
		Msg("Document export completed")

	return nil
}
