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

// CleanupHandler dọn artifact cũ trong object storage theo lịch
type CleanupHandler struct {
	exportService service.ExportService
}

func NewCleanupHandler(exportService service.ExportService) *CleanupHandler {
	return &CleanupHandler{exportService: exportService}
}

func (h *CleanupHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.CleanupPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal CleanupExports payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Int("older_than_days", payload.OlderThanDays).
		Msg("Running export artifact cleanup")

	if err := h.exportService.CleanupArtifacts(ctx, payload.OlderThanDays); err != nil {
		log.Error().Err(err).Msg("Export artifact cleanup failed")
		return fmt.Errorf("cleanup artifacts: %w", err)
	}

	return nil
}
