package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Bundled Go fonts keep captures reproducible across hosts: no dependency on
// system font availability.
var (
	fontOnce    sync.Once
	fontErr     error
	fontRegular *opentype.Font
	fontBold    *opentype.Font
	fontItalic  *opentype.Font
)

func loadFonts() error {
	fontOnce.Do(func() {
		fontRegular, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		fontBold, fontErr = opentype.Parse(gobold.TTF)
		if fontErr != nil {
			return
		}
		fontItalic, fontErr = opentype.Parse(goitalic.TTF)
	})
	return fontErr
}

// faceFor returns a face at the given pixel size. Bold wins over italic when
// both are set (the layout never asks for bold-italic).
func faceFor(size float64, bold, italic bool) (font.Face, error) {
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	src := fontRegular
	switch {
	case bold:
		src = fontBold
	case italic:
		src = fontItalic
	}

	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}
