package model

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUpdateCardRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateCardRequest
		wantErr bool
	}{
		{"empty request is valid", UpdateCardRequest{}, false},
		{"valid kind", UpdateCardRequest{Kind: strPtr("movie")}, false},
		{"invalid kind", UpdateCardRequest{Kind: strPtr("podcast")}, true},
		{"valid theme", UpdateCardRequest{Theme: strPtr("dark")}, false},
		{"invalid theme", UpdateCardRequest{Theme: strPtr("neon")}, true},
		{"valid quote size", UpdateCardRequest{QuoteSize: strPtr("large")}, false},
		{"invalid quote size", UpdateCardRequest{QuoteSize: strPtr("huge")}, true},
		{"valid date", UpdateCardRequest{DateRead: strPtr("2026-08-24")}, false},
		{"invalid date", UpdateCardRequest{DateRead: strPtr("24/08/2026")}, true},
		{"title too long", UpdateCardRequest{Title: strPtr(strings.Repeat("x", 201))}, true},
		{"quote at limit", UpdateCardRequest{Quote: strPtr(strings.Repeat("q", 500))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyToPartialUpdate(t *testing.T) {
	card := NewReviewCard(uuid.New(), time.Now().UTC())
	card.Title = "Old Title"
	card.Book.Author = "Old Author"

	req := UpdateCardRequest{
		Title:    strPtr("Dune"),
		Director: strPtr("Denis Villeneuve"),
	}
	req.ApplyTo(card)

	// Only named fields change; nil fields are left alone
	assert.Equal(t, "Dune", card.Title)
	assert.Equal(t, "Old Author", card.Book.Author)
	assert.Equal(t, "Denis Villeneuve", card.Movie.Director)
	assert.Equal(t, KindBook, card.Kind)
}

func TestApplyToInactiveGroup(t *testing.T) {
	card := NewReviewCard(uuid.New(), time.Now().UTC())
	card.Kind = KindMovie

	// Editing book fields while the movie group is active still lands
	req := UpdateCardRequest{
		Quote:    strPtr("Fear is the mind-killer."),
		DateRead: strPtr("2026-01-15"),
	}
	req.ApplyTo(card)

	assert.Equal(t, "Fear is the mind-killer.", card.Book.Quote)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), card.Book.DateRead)
	assert.Equal(t, KindMovie, card.Kind)
}

func TestRateRequestValidate(t *testing.T) {
	assert.NoError(t, RateRequest{Star: 1}.Validate())
	assert.NoError(t, RateRequest{Star: 5, Half: true}.Validate())
	assert.Error(t, RateRequest{Star: 0}.Validate())
	assert.Error(t, RateRequest{Star: 6}.Validate())
	assert.Error(t, RateRequest{Star: -1}.Validate())
}
