package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCardNotFound  = "CARD001"
	ErrCodeInvalidKind   = "CARD002"
	ErrCodeInvalidTheme  = "CARD003"
	ErrCodeInvalidRating = "CARD004"
	ErrCodeInvalidImage  = "CARD005"
	ErrCodeInvalidSlot   = "CARD006"
)

// Errors
var (
	ErrCardNotFound  = errors.New("card not found or session expired")
	ErrInvalidKind   = errors.New("invalid card kind")
	ErrInvalidTheme  = errors.New("invalid card theme")
	ErrInvalidRating = errors.New("rating outside half-point domain")
	ErrInvalidImage  = errors.New("uploaded file is not a usable image")
	ErrInvalidSlot   = errors.New("unknown image slot")
)

// CardError custom error type
type CardError struct {
	Code    string
	Message string
	Err     error
}

func (e *CardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CardError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewCardNotFoundError() *CardError {
	return &CardError{
		Code:    ErrCodeCardNotFound,
		Message: "Card not found or session expired",
		Err:     ErrCardNotFound,
	}
}

func NewInvalidImageError(err error) *CardError {
	return &CardError{
		Code:    ErrCodeInvalidImage,
		Message: "Uploaded file could not be read as an image",
		Err:     errors.Join(ErrInvalidImage, err),
	}
}

func NewInvalidSlotError(slot string) *CardError {
	return &CardError{
		Code:    ErrCodeInvalidSlot,
		Message: fmt.Sprintf("Unknown image slot %q (want cover or extra)", slot),
		Err:     ErrInvalidSlot,
	}
}
