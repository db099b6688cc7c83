package repository

import (
	"context"

	"github.com/google/uuid"

	"reviewcard-backend/internal/domains/card/model"
)

// CardRepository stores one ReviewCard per editing session. The record
// lives only as long as the session TTL — there is no durable persistence.
type CardRepository interface {
	// Save writes the record and refreshes the session TTL.
	Save(ctx context.Context, card *model.ReviewCard) error

	// Get returns model.ErrCardNotFound when the session never existed
	// or already expired.
	Get(ctx context.Context, sessionID uuid.UUID) (*model.ReviewCard, error)

	Delete(ctx context.Context, sessionID uuid.UUID) error
}
