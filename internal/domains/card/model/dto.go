package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ========================================
// REQUEST DTOs
// ========================================

// UpdateCardRequest - partial field edits; only non-nil fields are applied.
// DateRead uses "2006-01-02".
type UpdateCardRequest struct {
	Kind      *string `json:"kind"`
	Theme     *string `json:"theme"`
	QuoteSize *string `json:"quote_size"`

	Title *string `json:"title"`
	Genre *string `json:"genre"`

	// Book group
	Author      *string `json:"author"`
	Publisher   *string `json:"publisher"`
	DateRead    *string `json:"date_read"`
	Quote       *string `json:"quote"`
	ShortReview *string `json:"short_review"`

	// Movie group
	Director        *string `json:"director"`
	Plot            *string `json:"plot"`
	MemorablePoints *string `json:"memorable_points"`
	Impressions     *string `json:"impressions"`
}

func (r UpdateCardRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind, validation.By(optionalEnum(func(v string) bool { return Kind(v).Valid() }, "must be book or movie"))),
		validation.Field(&r.Theme, validation.By(optionalEnum(func(v string) bool { return Theme(v).Valid() }, "must be green, blue, dark or minimal"))),
		validation.Field(&r.QuoteSize, validation.By(optionalEnum(func(v string) bool { return QuoteSize(v).Valid() }, "must be small, medium or large"))),
		validation.Field(&r.Title, validation.By(optionalMaxLen(200))),
		validation.Field(&r.Genre, validation.By(optionalMaxLen(100))),
		validation.Field(&r.DateRead, validation.By(optionalDate)),
		validation.Field(&r.Quote, validation.By(optionalMaxLen(500))),
		validation.Field(&r.ShortReview, validation.By(optionalMaxLen(2000))),
		validation.Field(&r.Plot, validation.By(optionalMaxLen(2000))),
		validation.Field(&r.MemorablePoints, validation.By(optionalMaxLen(2000))),
		validation.Field(&r.Impressions, validation.By(optionalMaxLen(2000))),
	)
}

// stringValue unwraps the field regardless of whether ozzo hands the rule
// the pointer or the indirected value; absent fields validate as ok.
func stringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	}
	return "", false
}

func optionalEnum(valid func(string) bool, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := stringValue(value)
		if !ok {
			return nil
		}
		if !valid(s) {
			return validation.NewError("validation_enum", msg)
		}
		return nil
	}
}

func optionalMaxLen(max int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := stringValue(value)
		if !ok {
			return nil
		}
		if len(s) > max {
			return validation.NewError("validation_length", "value is too long")
		}
		return nil
	}
}

func optionalDate(value interface{}) error {
	s, ok := stringValue(value)
	if !ok {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return validation.NewError("validation_date", "must be a date in YYYY-MM-DD format")
	}
	return nil
}

// ApplyTo mutates card with the non-nil fields. Edits to the inactive kind's
// group are applied too: the record retains both groups at all times.
func (r UpdateCardRequest) ApplyTo(card *ReviewCard) {
	if r.Kind != nil {
		card.Kind = Kind(*r.Kind)
	}
	if r.Theme != nil {
		card.Theme = Theme(*r.Theme)
	}
	if r.QuoteSize != nil {
		card.QuoteSize = QuoteSize(*r.QuoteSize)
	}
	if r.Title != nil {
		card.Title = *r.Title
	}
	if r.Genre != nil {
		card.Genre = *r.Genre
	}
	if r.Author != nil {
		card.Book.Author = *r.Author
	}
	if r.Publisher != nil {
		card.Book.Publisher = *r.Publisher
	}
	if r.DateRead != nil {
		// already validated
		if t, err := time.Parse("2006-01-02", *r.DateRead); err == nil {
			card.Book.DateRead = t
		}
	}
	if r.Quote != nil {
		card.Book.Quote = *r.Quote
	}
	if r.ShortReview != nil {
		card.Book.ShortReview = *r.ShortReview
	}
	if r.Director != nil {
		card.Movie.Director = *r.Director
	}
	if r.Plot != nil {
		card.Movie.Plot = *r.Plot
	}
	if r.MemorablePoints != nil {
		card.Movie.MemorablePoints = *r.MemorablePoints
	}
	if r.Impressions != nil {
		card.Movie.Impressions = *r.Impressions
	}
}

// RateRequest - one star interaction
type RateRequest struct {
	Star int  `json:"star" binding:"required"`
	Half bool `json:"half"` // secondary interaction: always star - 0.5
}

func (r RateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Star,
			validation.Required.Error("star is required"),
			validation.Min(1).Error("star must be between 1 and 5"),
			validation.Max(StarCount).Error("star must be between 1 and 5"),
		),
	)
}

// ========================================
// RESPONSE DTOs
// ========================================

// ImageInfo summarizes an embedded image without shipping its bytes back.
type ImageInfo struct {
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Bytes  int    `json:"bytes"`
}

// CardResponse is the record as the editor sees it.
type CardResponse struct {
	SessionID uuid.UUID `json:"session_id"`

	Kind      Kind      `json:"kind"`
	Theme     Theme     `json:"theme"`
	QuoteSize QuoteSize `json:"quote_size"`

	Title  string `json:"title"`
	Genre  string `json:"genre"`

	Rating      float64     `json:"rating"`
	RatingHalf  int         `json:"rating_half_points"`
	Stars       []StarGlyph `json:"stars"`
	HeaderStars int         `json:"header_stars"`

	CoverImage *ImageInfo `json:"cover_image,omitempty"`

	Book  BookFieldsResponse  `json:"book"`
	Movie MovieFields         `json:"movie"`

	UpdatedAt time.Time `json:"updated_at"`
}

type BookFieldsResponse struct {
	Author      string     `json:"author"`
	Publisher   string     `json:"publisher"`
	DateRead    string     `json:"date_read"`
	Quote       string     `json:"quote"`
	ShortReview string     `json:"short_review"`
	ExtraImage  *ImageInfo `json:"extra_image,omitempty"`
}

// SessionResponse - returned by POST /sessions
type SessionResponse struct {
	Token string       `json:"token"`
	Card  CardResponse `json:"card"`
}

func imageInfo(img *EmbeddedImage) *ImageInfo {
	if img == nil {
		return nil
	}
	return &ImageInfo{
		Format: img.Format,
		Width:  img.Width,
		Height: img.Height,
		Bytes:  len(img.Data),
	}
}

// ToResponse maps the entity to its API shape.
func ToResponse(card *ReviewCard) CardResponse {
	stars := make([]StarGlyph, StarCount)
	for i := 1; i <= StarCount; i++ {
		stars[i-1] = card.Rating.ClassifyStar(i)
	}

	return CardResponse{
		SessionID:   card.SessionID,
		Kind:        card.Kind,
		Theme:       card.Theme,
		QuoteSize:   card.QuoteSize,
		Title:       card.Title,
		Genre:       card.Genre,
		Rating:      card.Rating.Value(),
		RatingHalf:  card.Rating.HalfPoints(),
		Stars:       stars,
		HeaderStars: card.Rating.WholeStars(),
		CoverImage:  imageInfo(card.CoverImage),
		Book: BookFieldsResponse{
			Author:      card.Book.Author,
			Publisher:   card.Book.Publisher,
			DateRead:    card.Book.DateRead.Format("2006-01-02"),
			Quote:       card.Book.Quote,
			ShortReview: card.Book.ShortReview,
			ExtraImage:  imageInfo(card.Book.ExtraImage),
		},
		Movie:     card.Movie,
		UpdatedAt: card.UpdatedAt,
	}
}
