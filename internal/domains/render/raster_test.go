package render

import (
	"image/color"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardmodel "reviewcard-backend/internal/domains/card/model"
)

func TestRenderRejectsUnsupportedBlend(t *testing.T) {
	tree := &Node{
		Kind: NodeFrame, W: 100, H: 100,
		Children: []*Node{
			{Kind: NodeRect, Name: "texture", W: 100, H: 100, Blend: BlendOverlay},
		},
	}

	r := Rasterizer{Scale: 1}
	_, err := r.Render(tree)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedBlend)
}

func TestRenderWithNormalizeFilter(t *testing.T) {
	tree := &Node{
		Kind: NodeFrame, W: 100, H: 100,
		Children: []*Node{
			{Kind: NodeRect, Name: "texture", W: 100, H: 100, Blend: BlendOverlay, Color: color.NRGBA{A: 0x40}},
		},
	}

	r := Rasterizer{Scale: 1, Filter: NormalizeUnsupported}
	img, err := r.Render(tree)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
}

func TestNormalizeUnsupportedCopies(t *testing.T) {
	n := &Node{Kind: NodeRect, Blend: BlendOverlay, Color: color.NRGBA{A: 0x40}}

	flat := NormalizeUnsupported(n)

	require.NotSame(t, n, flat)
	assert.Equal(t, BlendNormal, flat.Blend)
	assert.Equal(t, uint8(0x20), flat.Color.A)

	// Input stays untouched: Compose output is shared
	assert.Equal(t, BlendOverlay, n.Blend)
	assert.Equal(t, uint8(0x40), n.Color.A)
}

func TestNormalizeUnsupportedPassesNormalThrough(t *testing.T) {
	n := &Node{Kind: NodeRect, Color: color.NRGBA{A: 0xFF}}
	assert.Same(t, n, NormalizeUnsupported(n))
}

func TestRenderExcludeFilterDropsSubtree(t *testing.T) {
	tree := &Node{
		Kind: NodeFrame, W: 50, H: 50,
		Children: []*Node{
			{Kind: NodeRect, Name: "drop-me", W: 50, H: 50, Blend: BlendOverlay},
		},
	}

	drop := func(n *Node) *Node {
		if n.Name == "drop-me" {
			return nil
		}
		return n
	}

	r := Rasterizer{Scale: 1, Filter: drop}
	_, err := r.Render(tree)
	assert.NoError(t, err)
}

func TestRenderScale(t *testing.T) {
	tree := &Node{Kind: NodeFrame, W: 100, H: 60}

	r := Rasterizer{Scale: 2}
	img, err := r.Render(tree)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestRenderOpaqueBackground(t *testing.T) {
	// Bare frame: nothing drawn, only the explicit background shows
	tree := &Node{Kind: NodeFrame, W: 10, H: 10}

	r := Rasterizer{Scale: 1, Background: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}}
	img, err := r.Render(tree)
	require.NoError(t, err)

	_, _, _, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), a)
}

func TestRenderTransparentByDefault(t *testing.T) {
	tree := &Node{Kind: NodeFrame, W: 10, H: 10}

	r := Rasterizer{Scale: 1}
	img, err := r.Render(tree)
	require.NoError(t, err)

	_, _, _, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestRenderFullCard(t *testing.T) {
	card := cardmodel.NewReviewCard(uuid.New(), time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))
	card.Title = "Dune"
	card.Rating = 7
	card.Book.Quote = "Fear is the mind-killer."

	r := Rasterizer{Scale: 1, Filter: NormalizeUnsupported}
	img, err := r.Render(Compose(card))
	require.NoError(t, err)

	assert.Equal(t, 420, img.Bounds().Dx())
	assert.Equal(t, 595, img.Bounds().Dy())
}
