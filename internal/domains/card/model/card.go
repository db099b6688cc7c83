package model

import (
	"time"

	"github.com/google/uuid"
)

// Kind selects which optional field group is active and which labels show.
type Kind string

const (
	KindBook  Kind = "book"
	KindMovie Kind = "movie"
)

func (k Kind) Valid() bool {
	return k == KindBook || k == KindMovie
}

// Theme selects color tokens and decorative elements only; it never alters
// which fields are shown or their order.
type Theme string

const (
	ThemeGreen   Theme = "green"
	ThemeBlue    Theme = "blue"
	ThemeDark    Theme = "dark"
	ThemeMinimal Theme = "minimal"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeGreen, ThemeBlue, ThemeDark, ThemeMinimal:
		return true
	}
	return false
}

// QuoteSize is presentation-only; it picks one of three fixed point sizes.
type QuoteSize string

const (
	QuoteSmall  QuoteSize = "small"
	QuoteMedium QuoteSize = "medium"
	QuoteLarge  QuoteSize = "large"
)

func (q QuoteSize) Valid() bool {
	switch q {
	case QuoteSmall, QuoteMedium, QuoteLarge:
		return true
	}
	return false
}

// EmbeddedImage is a self-contained image: content inlined, never referenced
// by path, so it stays valid after the original file is gone. Replaced
// wholesale on re-upload.
type EmbeddedImage struct {
	Data   []byte `json:"data"` // base64 in JSON
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// BookFields is the Book-only field group.
type BookFields struct {
	Author      string         `json:"author"`
	Publisher   string         `json:"publisher"`
	DateRead    time.Time      `json:"date_read"`
	Quote       string         `json:"quote"`
	ShortReview string         `json:"short_review"`
	ExtraImage  *EmbeddedImage `json:"extra_image,omitempty"`
}

// MovieFields is the Movie-only field group.
type MovieFields struct {
	Director        string `json:"director"`
	Plot            string `json:"plot"`
	MemorablePoints string `json:"memorable_points"`
	Impressions     string `json:"impressions"`
}

// ReviewCard is the single mutable record behind one editing session.
// Both kind groups are always present: switching Kind only changes which
// group renders, the inactive group's data is retained so toggling back
// loses nothing.
type ReviewCard struct {
	SessionID uuid.UUID `json:"session_id"`

	Kind      Kind      `json:"kind"`
	Theme     Theme     `json:"theme"`
	QuoteSize QuoteSize `json:"quote_size"`

	Title  string `json:"title"`
	Genre  string `json:"genre"`
	Rating Rating `json:"rating"`

	CoverImage *EmbeddedImage `json:"cover_image,omitempty"`

	Book  BookFields  `json:"book"`
	Movie MovieFields `json:"movie"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaceholderTitle renders khi title trống
const PlaceholderTitle = "Untitled"

// PlaceholderGlyph renders for absent optional fields so layout never reflows
const PlaceholderGlyph = "—"

// NewReviewCard creates the session's default record:
// kind=Book, theme=Green, rating=0, dateRead=today.
func NewReviewCard(sessionID uuid.UUID, now time.Time) *ReviewCard {
	return &ReviewCard{
		SessionID: sessionID,
		Kind:      KindBook,
		Theme:     ThemeGreen,
		QuoteSize: QuoteMedium,
		Rating:    MinRating,
		Book: BookFields{
			DateRead: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Reset replaces the whole record with fresh defaults, keeping the session.
// Individual fields are never deleted; reset is whole-record.
func (c *ReviewCard) Reset(now time.Time) {
	fresh := NewReviewCard(c.SessionID, now)
	fresh.CreatedAt = c.CreatedAt
	*c = *fresh
}

// DisplayTitle falls back to the placeholder for rendering.
func (c *ReviewCard) DisplayTitle() string {
	if c.Title == "" {
		return PlaceholderTitle
	}
	return c.Title
}

// Touch bumps the mutation timestamp.
func (c *ReviewCard) Touch(now time.Time) {
	c.UpdatedAt = now
}
