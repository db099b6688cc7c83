package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"reviewcard-backend/internal/domains/card/model"
	"reviewcard-backend/internal/domains/card/repository"
	"reviewcard-backend/internal/infrastructure/storage"
	"reviewcard-backend/pkg/jwt"
	"reviewcard-backend/pkg/logger"
)

type cardService struct {
	repo      repository.CardRepository
	processor *storage.ImageProcessor
	tokens    *jwt.Manager
}

func NewCardService(
	repo repository.CardRepository,
	processor *storage.ImageProcessor,
	tokens *jwt.Manager,
) CardService {
	return &cardService{
		repo:      repo,
		processor: processor,
		tokens:    tokens,
	}
}

func (s *cardService) StartSession(ctx context.Context) (*model.ReviewCard, string, error) {
	sessionID := uuid.New()
	card := model.NewReviewCard(sessionID, time.Now().UTC())

	if err := s.repo.Save(ctx, card); err != nil {
		return nil, "", fmt.Errorf("start session: %w", err)
	}

	token, err := s.tokens.GenerateSessionToken(sessionID.String())
	if err != nil {
		return nil, "", fmt.Errorf("mint session token: %w", err)
	}

	logger.Info("Editing session started", map[string]interface{}{
		"session_id": sessionID.String(),
	})

	return card, token, nil
}

func (s *cardService) GetCard(ctx context.Context, sessionID uuid.UUID) (*model.ReviewCard, error) {
	return s.repo.Get(ctx, sessionID)
}

func (s *cardService) UpdateCard(ctx context.Context, sessionID uuid.UUID, req model.UpdateCardRequest) (*model.ReviewCard, error) {
	card, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Switching kind chỉ đổi group đang active; group kia giữ nguyên data
	req.ApplyTo(card)
	card.Touch(time.Now().UTC())

	if err := s.repo.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	return card, nil
}

func (s *cardService) Rate(ctx context.Context, sessionID uuid.UUID, star int, half bool) (*model.ReviewCard, error) {
	card, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if half {
		card.Rating = card.Rating.TapHalf(star)
	} else {
		card.Rating = card.Rating.Tap(star)
	}
	card.Touch(time.Now().UTC())

	if err := s.repo.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("rate card: %w", err)
	}
	return card, nil
}

func (s *cardService) Reset(ctx context.Context, sessionID uuid.UUID) (*model.ReviewCard, error) {
	card, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	card.Reset(time.Now().UTC())

	if err := s.repo.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("reset card: %w", err)
	}
	return card, nil
}

func (s *cardService) AttachImage(ctx context.Context, sessionID uuid.UUID, slot ImageSlot, data []byte) (*model.ReviewCard, error) {
	card, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Decode first: a failed decode delivers nothing, the slot stays as-is
	normalized, err := s.processor.Normalize(data)
	if err != nil {
		logger.Info("Image upload rejected", map[string]interface{}{
			"session_id": sessionID.String(),
			"slot":       string(slot),
			"error":      err.Error(),
		})
		return nil, model.NewInvalidImageError(err)
	}

	embedded := &model.EmbeddedImage{
		Data:   normalized.Data,
		Format: normalized.Format,
		Width:  normalized.Width,
		Height: normalized.Height,
	}

	// Replaced wholesale: last upload wins, never merged
	switch slot {
	case SlotCover:
		card.CoverImage = embedded
	case SlotExtra:
		card.Book.ExtraImage = embedded
	default:
		return nil, model.NewInvalidSlotError(string(slot))
	}
	card.Touch(time.Now().UTC())

	if err := s.repo.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("attach image: %w", err)
	}
	return card, nil
}

func (s *cardService) RemoveImage(ctx context.Context, sessionID uuid.UUID, slot ImageSlot) (*model.ReviewCard, error) {
	card, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch slot {
	case SlotCover:
		card.CoverImage = nil
	case SlotExtra:
		card.Book.ExtraImage = nil
	default:
		return nil, model.NewInvalidSlotError(string(slot))
	}
	card.Touch(time.Now().UTC())

	if err := s.repo.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("remove image: %w", err)
	}
	return card, nil
}
