package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cardmodel "reviewcard-backend/internal/domains/card/model"
	cardservice "reviewcard-backend/internal/domains/card/service"
	"reviewcard-backend/internal/domains/export/model"
	"reviewcard-backend/internal/domains/export/service"
	"reviewcard-backend/internal/shared/middleware"
	"reviewcard-backend/internal/shared/response"
	"reviewcard-backend/internal/shared/utils"
)

type ExportHandler struct {
	exportService service.ExportService
	cardService   cardservice.CardService
}

func NewExportHandler(exportService service.ExportService, cardService cardservice.CardService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		cardService:   cardService,
	}
}

type enqueueFunc func(ctx context.Context, card *cardmodel.ReviewCard) (*model.Job, error)

// CreateSnapshot - POST /exports/snapshot
func (h *ExportHandler) CreateSnapshot(c *gin.Context) {
	h.create(c, h.exportService.EnqueueSnapshot)
}

// CreateDocument - POST /exports/document
func (h *ExportHandler) CreateDocument(c *gin.Context) {
	h.create(c, h.exportService.EnqueueDocument)
}

func (h *ExportHandler) create(c *gin.Context, enqueue enqueueFunc) {
	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Missing session")
		return
	}

	card, err := h.cardService.GetCard(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	job, err := enqueue(c.Request.Context(), card)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, model.ToResponse(job))
}

// GetJob - GET /exports/:id
func (h *ExportHandler) GetJob(c *gin.Context) {
	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Missing session")
		return
	}

	jobID := utils.ParseStringToUUID(c.Param("id"))
	if jobID == uuid.Nil {
		response.BadRequest(c, "Invalid export job id")
		return
	}

	job, err := h.exportService.GetJob(c.Request.Context(), sessionID, jobID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ToResponse(job))
}

// Download - GET /exports/:id/download
func (h *ExportHandler) Download(c *gin.Context) {
	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Missing session")
		return
	}

	jobID := utils.ParseStringToUUID(c.Param("id"))
	if jobID == uuid.Nil {
		response.BadRequest(c, "Invalid export job id")
		return
	}

	data, job, err := h.exportService.DownloadArtifact(c.Request.Context(), sessionID, jobID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", job.Filename))
	c.Data(http.StatusOK, job.ContentType, data)
}

// Preview - GET /cards/me/preview
// Synchronous native-resolution render, mainly for iterating on the card.
func (h *ExportHandler) Preview(c *gin.Context) {
	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Missing session")
		return
	}

	card, err := h.cardService.GetCard(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	data, err := h.exportService.Preview(c.Request.Context(), card)
	if err != nil {
		response.InternalServerError(c, model.MsgSnapshotFailed)
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}

func (h *ExportHandler) respondError(c *gin.Context, err error) {
	var exportErr *model.ExportError
	if errors.As(err, &exportErr) {
		status := http.StatusBadRequest
		if exportErr.Code == model.ErrCodeJobNotFound {
			status = http.StatusNotFound
		}
		response.ErrorResponse(c, status, exportErr.Code, exportErr.Message)
		return
	}
	if errors.Is(err, model.ErrJobNotFound) {
		response.NotFound(c, "Export job not found")
		return
	}

	var cardErr *cardmodel.CardError
	if errors.As(err, &cardErr) {
		status := http.StatusBadRequest
		if cardErr.Code == cardmodel.ErrCodeCardNotFound {
			status = http.StatusNotFound
		}
		response.ErrorResponse(c, status, cardErr.Code, cardErr.Message)
		return
	}
	if errors.Is(err, cardmodel.ErrCardNotFound) {
		response.NotFound(c, "Card not found or session expired")
		return
	}

	response.InternalServerError(c, "Something went wrong")
}
