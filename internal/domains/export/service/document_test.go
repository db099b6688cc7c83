package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardmodel "reviewcard-backend/internal/domains/card/model"
	"reviewcard-backend/internal/domains/export/model"
)

func TestAssembleDocument(t *testing.T) {
	card := cardmodel.NewReviewCard(uuid.New(), time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))
	card.Title = "Dune"

	// Document captures run at 2x over opaque white
	data, w, h, err := capture(card, model.DocumentScale, true)
	require.NoError(t, err)
	assert.Equal(t, 839, w)
	assert.Equal(t, 1191, h)

	pdf, err := assembleDocument(data, w, h)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestAssembleDocumentRejectsDegenerateCapture(t *testing.T) {
	_, err := assembleDocument([]byte{}, 0, 100)
	assert.Error(t, err)

	_, err = assembleDocument([]byte{}, 100, 0)
	assert.Error(t, err)
}

func TestCaptureOpaqueVsTransparent(t *testing.T) {
	card := cardmodel.NewReviewCard(uuid.New(), time.Now().UTC())

	opaque, _, _, err := capture(card, model.SnapshotScale, true)
	require.NoError(t, err)
	transparent, _, _, err := capture(card, model.SnapshotScale, false)
	require.NoError(t, err)

	assert.NotEmpty(t, opaque)
	assert.NotEmpty(t, transparent)
}
