package service

import (
	"context"

	"github.com/google/uuid"

	"reviewcard-backend/internal/domains/card/model"
)

// ImageSlot names an upload target on the record.
type ImageSlot string

const (
	SlotCover ImageSlot = "cover"
	SlotExtra ImageSlot = "extra" // Book group's secondary image
)

type CardService interface {
	// StartSession creates a default record and mints its session token.
	StartSession(ctx context.Context) (*model.ReviewCard, string, error)

	GetCard(ctx context.Context, sessionID uuid.UUID) (*model.ReviewCard, error)

	// UpdateCard applies a validated partial edit and persists the record.
	UpdateCard(ctx context.Context, sessionID uuid.UUID, req model.UpdateCardRequest) (*model.ReviewCard, error)

	// Rate applies one star interaction (primary toggle or half-set).
	Rate(ctx context.Context, sessionID uuid.UUID, star int, half bool) (*model.ReviewCard, error)

	// Reset replaces the record with fresh defaults.
	Reset(ctx context.Context, sessionID uuid.UUID) (*model.ReviewCard, error)

	// AttachImage ingests an upload into the given slot. On decode failure
	// the record is untouched and the slot stays unset.
	AttachImage(ctx context.Context, sessionID uuid.UUID, slot ImageSlot, data []byte) (*model.ReviewCard, error)

	RemoveImage(ctx context.Context, sessionID uuid.UUID, slot ImageSlot) (*model.ReviewCard, error)
}
