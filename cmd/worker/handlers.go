package main

import (
	"github.com/hibiken/asynq"

	exportJob "reviewcard-backend/internal/domains/export/job"
	"reviewcard-backend/internal/shared"
	"reviewcard-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Export handlers
	snapshot *exportJob.SnapshotHandler
	document *exportJob.DocumentHandler

	// Maintenance handlers
	cleanup *exportJob.CleanupHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		snapshot: exportJob.NewSnapshotHandler(c.ExportService),
		document: exportJob.NewDocumentHandler(c.ExportService),
		cleanup:  exportJob.NewCleanupHandler(c.ExportService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Export tasks
	mux.HandleFunc(shared.TypeExportSnapshot, h.snapshot.ProcessTask)
	mux.HandleFunc(shared.TypeExportDocument, h.document.ProcessTask)

	// Maintenance tasks
	mux.HandleFunc(shared.TypeCleanupExports, h.cleanup.ProcessTask)
}
