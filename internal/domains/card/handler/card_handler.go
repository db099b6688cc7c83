package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewcard-backend/internal/domains/card/model"
	"reviewcard-backend/internal/domains/card/service"
	"reviewcard-backend/internal/shared/middleware"
	"reviewcard-backend/internal/shared/response"
)

type CardHandler struct {
	cardService    service.CardService
	maxUploadBytes int64
}

func NewCardHandler(cardService service.CardService, maxUploadBytes int64) *CardHandler {
	return &CardHandler{
		cardService:    cardService,
		maxUploadBytes: maxUploadBytes,
	}
}

// StartSession - POST /sessions
func (h *CardHandler) StartSession(c *gin.Context) {
	card, token, err := h.cardService.StartSession(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Could not start editing session")
		return
	}

	response.Success(c, http.StatusCreated, model.SessionResponse{
		Token: token,
		Card:  model.ToResponse(card),
	})
}

// GetCard - GET /cards/me
func (h *CardHandler) GetCard(c *gin.Context) {
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

	response.Success(c, http.StatusOK, model.ToResponse(card))
}

// UpdateCard - PATCH /cards/me
func (h *CardHandler) UpdateCard(c *gin.Context) {
	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Missing session")
		return
	}

	var req model.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid card fields", err.Error())
		return
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), sessionID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ToResponse(card))
}

// Rate - POST /cards/me/rating
func (h *CardHandler) Rate(c *gin.Context) {
	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Missing session")
		return
	}

	var req model.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rating", err.Error())
		return
	}

	card, err := h.cardService.Rate(c.Request.Context(), sessionID, req.Star, req.Half)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ToResponse(card))
}

// Reset - POST /cards/me/reset
func (h *CardHandler) Reset(c *gin.Context) {
	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Missing session")
		return
	}

	card, err := h.cardService.Reset(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ToResponse(card))
}

// UploadImage - POST /cards/me/images/:slot (multipart, field "file")
func (h *CardHandler) UploadImage(c *gin.Context) {
	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Missing session")
		return
	}

	slot := service.ImageSlot(c.Param("slot"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file upload")
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		response.BadRequest(c, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil || int64(len(data)) > h.maxUploadBytes {
		response.BadRequest(c, "Could not read upload")
		return
	}

	card, err := h.cardService.AttachImage(c.Request.Context(), sessionID, slot, data)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ToResponse(card))
}

// RemoveImage - DELETE /cards/me/images/:slot
func (h *CardHandler) RemoveImage(c *gin.Context) {
	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Missing session")
		return
	}

	slot := service.ImageSlot(c.Param("slot"))

	card, err := h.cardService.RemoveImage(c.Request.Context(), sessionID, slot)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ToResponse(card))
}

func (h *CardHandler) respondError(c *gin.Context, err error) {
	var cardErr *model.CardError
	if errors.As(err, &cardErr) {
		status := http.StatusBadRequest
		if cardErr.Code == model.ErrCodeCardNotFound {
			status = http.StatusNotFound
		}
		response.ErrorResponse(c, status, cardErr.Code, cardErr.Message)
		return
	}
	if errors.Is(err, model.ErrCardNotFound) {
		response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeCardNotFound, "Card not found or session expired")
		return
	}
	response.InternalServerError(c, "Something went wrong")
}
