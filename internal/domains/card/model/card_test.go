package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReviewCardDefaults(t *testing.T) {
	sessionID := uuid.New()
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	card := NewReviewCard(sessionID, now)

	assert.Equal(t, sessionID, card.SessionID)
	assert.Equal(t, KindBook, card.Kind)
	assert.Equal(t, ThemeGreen, card.Theme)
	assert.Equal(t, QuoteMedium, card.QuoteSize)
	assert.Equal(t, MinRating, card.Rating)
	assert.Equal(t, now, card.Book.DateRead)
	assert.Empty(t, card.Title)
	assert.Nil(t, card.CoverImage)
}

func TestKindSwitchRetainsInactiveGroup(t *testing.T) {
	card := NewReviewCard(uuid.New(), time.Now().UTC())
	card.Book.Author = "Frank Herbert"
	card.Book.Quote = "Fear is the mind-killer."
	card.Movie.Director = "Denis Villeneuve"

	// Book -> Movie: book data stays put
	card.Kind = KindMovie
	assert.Equal(t, "Frank Herbert", card.Book.Author)
	assert.Equal(t, "Fear is the mind-killer.", card.Book.Quote)

	// Movie -> Book: movie data also survived the round trip
	card.Kind = KindBook
	assert.Equal(t, "Denis Villeneuve", card.Movie.Director)
}

func TestReset(t *testing.T) {
	created := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	card := NewReviewCard(uuid.New(), created)
	sessionID := card.SessionID

	card.Title = "Dune"
	card.Kind = KindMovie
	card.Theme = ThemeDark
	card.Rating = 9
	card.Movie.Plot = "Spice."
	card.CoverImage = &EmbeddedImage{Data: []byte{1, 2, 3}, Format: "png"}

	resetAt := created.Add(48 * time.Hour)
	card.Reset(resetAt)

	// Identity and creation time survive, everything else is defaults
	assert.Equal(t, sessionID, card.SessionID)
	assert.Equal(t, created, card.CreatedAt)
	assert.Equal(t, KindBook, card.Kind)
	assert.Equal(t, ThemeGreen, card.Theme)
	assert.Equal(t, MinRating, card.Rating)
	assert.Empty(t, card.Title)
	assert.Empty(t, card.Movie.Plot)
	assert.Nil(t, card.CoverImage)
	assert.Equal(t, resetAt, card.Book.DateRead)
}

func TestDisplayTitle(t *testing.T) {
	card := NewReviewCard(uuid.New(), time.Now().UTC())
	assert.Equal(t, PlaceholderTitle, card.DisplayTitle())

	card.Title = "Blade Runner"
	assert.Equal(t, "Blade Runner", card.DisplayTitle())
}

func TestToResponse(t *testing.T) {
	card := NewReviewCard(uuid.New(), time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))
	card.Rating = 7 // 3.5 stars
	card.CoverImage = &EmbeddedImage{Data: []byte("img"), Format: "jpeg", Width: 100, Height: 150}

	resp := ToResponse(card)

	assert.Equal(t, 3.5, resp.Rating)
	assert.Equal(t, 7, resp.RatingHalf)
	assert.Equal(t, 3, resp.HeaderStars)
	require.Len(t, resp.Stars, StarCount)
	assert.Equal(t, []StarGlyph{StarFull, StarFull, StarFull, StarHalf, StarEmpty}, resp.Stars)

	require.NotNil(t, resp.CoverImage)
	assert.Equal(t, "jpeg", resp.CoverImage.Format)
	assert.Equal(t, 3, resp.CoverImage.Bytes)
	assert.Equal(t, "2026-08-24", resp.Book.DateRead)
}
