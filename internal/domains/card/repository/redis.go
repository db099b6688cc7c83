package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"reviewcard-backend/internal/domains/card/model"
	"reviewcard-backend/pkg/cache"
)

type redisCardRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewRedisCardRepository(c cache.Cache, ttl time.Duration) CardRepository {
	return &redisCardRepository{cache: c, ttl: ttl}
}

func cardKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("card:session:%s", sessionID)
}

func (r *redisCardRepository) Save(ctx context.Context, card *model.ReviewCard) error {
	if err := r.cache.Set(ctx, cardKey(card.SessionID), card, r.ttl); err != nil {
		return fmt.Errorf("save card: %w", err)
	}
	return nil
}

func (r *redisCardRepository) Get(ctx context.Context, sessionID uuid.UUID) (*model.ReviewCard, error) {
	var card model.ReviewCard
	found, err := r.cache.Get(ctx, cardKey(sessionID), &card)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	if !found {
		return nil, model.ErrCardNotFound
	}

	// Sliding expiry: mỗi lần đọc cũng giữ session sống thêm
	_ = r.cache.Expire(ctx, cardKey(sessionID), r.ttl)

	return &card, nil
}

func (r *redisCardRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	return r.cache.Delete(ctx, cardKey(sessionID))
}
