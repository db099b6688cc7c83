package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 0x80, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestNormalizePNGStaysPNG(t *testing.T) {
	p := NewImageProcessor(0)

	out, err := p.Normalize(encodePNG(t, 300, 200))
	require.NoError(t, err)

	assert.Equal(t, "png", out.Format)
	assert.Equal(t, 300, out.Width)
	assert.Equal(t, 200, out.Height)
	assert.NotEmpty(t, out.Data)
}

func TestNormalizeJPEGStaysJPEG(t *testing.T) {
	p := NewImageProcessor(0)

	out, err := p.Normalize(encodeJPEG(t, 100, 100))
	require.NoError(t, err)

	assert.Equal(t, "jpeg", out.Format)
}

func TestNormalizeDownscalesLargeImages(t *testing.T) {
	p := NewImageProcessor(64 * 1024 * 1024)

	out, err := p.Normalize(encodePNG(t, 2400, 1200))
	require.NoError(t, err)

	assert.LessOrEqual(t, out.Width, maxEmbedDimension)
	assert.LessOrEqual(t, out.Height, maxEmbedDimension)
	// Aspect ratio preserved
	assert.Equal(t, 1200, out.Width)
	assert.Equal(t, 600, out.Height)
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	p := NewImageProcessor(0)

	out, err := p.Normalize([]byte("definitely not an image"))
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestNormalizeRejectsOversized(t *testing.T) {
	p := NewImageProcessor(10) // 10 bytes

	out, err := p.Normalize(encodePNG(t, 50, 50))
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestValidateImageFormats(t *testing.T) {
	p := NewImageProcessor(0)

	assert.NoError(t, p.ValidateImage(encodePNG(t, 10, 10)))
	assert.NoError(t, p.ValidateImage(encodeJPEG(t, 10, 10)))
	assert.Error(t, p.ValidateImage([]byte{0x00, 0x01}))
}
