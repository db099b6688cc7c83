package storage

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	"image/jpeg"
	_ "image/jpeg"
	"image/png"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// maxEmbedDimension caps embedded images at roughly twice the card canvas,
// so re-uploads of camera-sized photos don't bloat the session record.
const maxEmbedDimension = 1200

// NormalizedImage is the self-contained form an upload is reduced to.
// Content is inlined; it stays valid if the original file disappears.
type NormalizedImage struct {
	Data   []byte
	Format string // "jpeg" or "png"
	Width  int
	Height int
}

type ImageProcessor struct {
	MaxSize int64 // bytes (default: 5MB)
}

func NewImageProcessor(maxSize int64) *ImageProcessor {
	if maxSize <= 0 {
		maxSize = 5 * 1024 * 1024 // 5MB
	}
	return &ImageProcessor{MaxSize: maxSize}
}

// ValidateImage checks size cap và decodable raster (jpeg/png/gif)
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png", "gif":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png/gif)", format)
	}
}

// Normalize decode upload → downscale nếu quá lớn → re-encode.
// Either a complete NormalizedImage or an error; never partial data.
// PNG giữ nguyên PNG (alpha), mọi format khác encode JPEG quality 90.
func (p *ImageProcessor) Normalize(data []byte) (*NormalizedImage, error) {
	if err := p.ValidateImage(data); err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxEmbedDimension || bounds.Dy() > maxEmbedDimension {
		img = imaging.Fit(img, maxEmbedDimension, maxEmbedDimension, imaging.Lanczos)
		bounds = img.Bounds()
	}

	b := new(bytes.Buffer)
	outFormat := "jpeg"
	if format == "png" {
		outFormat = "png"
		if err := png.Encode(b, img); err != nil {
			return nil, fmt.Errorf("cannot encode png: %w", err)
		}
	} else {
		if err := jpeg.Encode(b, img, &jpeg.Options{Quality: 90}); err != nil {
			return nil, fmt.Errorf("cannot encode jpeg: %w", err)
		}
	}

	return &NormalizedImage{
		Data:   b.Bytes(),
		Format: outFormat,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
