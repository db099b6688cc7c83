package render

import (
	"image/color"

	cardmodel "reviewcard-backend/internal/domains/card/model"
)

// Palette is the full set of color tokens one theme resolves to.
// Themes only ever swap tokens and decor; field layout is theme-blind.
type Palette struct {
	Background color.NRGBA // behind the paper edge
	Paper      color.NRGBA
	Ink        color.NRGBA
	Muted      color.NRGBA
	Accent     color.NRGBA
	Line       color.NRGBA
	DecorA     color.NRGBA
	DecorB     color.NRGBA

	Decor   bool // decorative background shapes
	Texture bool // paper-grain overlay
}

func paletteFor(theme cardmodel.Theme) Palette {
	switch theme {
	case cardmodel.ThemeBlue:
		return Palette{
			Background: color.NRGBA{R: 0xDC, G: 0xE6, B: 0xF2, A: 0xFF},
			Paper:      color.NRGBA{R: 0xF2, G: 0xF6, B: 0xFB, A: 0xFF},
			Ink:        color.NRGBA{R: 0x1E, G: 0x2A, B: 0x3A, A: 0xFF},
			Muted:      color.NRGBA{R: 0x6B, G: 0x7C, B: 0x93, A: 0xFF},
			Accent:     color.NRGBA{R: 0x3A, G: 0x5A, B: 0x8C, A: 0xFF},
			Line:       color.NRGBA{R: 0xC3, G: 0xD0, B: 0xE0, A: 0xFF},
			DecorA:     color.NRGBA{R: 0x3A, G: 0x5A, B: 0x8C, A: 0x26},
			DecorB:     color.NRGBA{R: 0x8C, G: 0xAA, B: 0xD0, A: 0x33},
			Decor:      true,
			Texture:    true,
		}
	case cardmodel.ThemeDark:
		return Palette{
			Background: color.NRGBA{R: 0x15, G: 0x17, B: 0x1A, A: 0xFF},
			Paper:      color.NRGBA{R: 0x23, G: 0x26, B: 0x2B, A: 0xFF},
			Ink:        color.NRGBA{R: 0xEC, G: 0xEC, B: 0xE4, A: 0xFF},
			Muted:      color.NRGBA{R: 0x8E, G: 0x93, B: 0x9B, A: 0xFF},
			Accent:     color.NRGBA{R: 0xC9, G: 0xA8, B: 0x5C, A: 0xFF},
			Line:       color.NRGBA{R: 0x3A, G: 0x3E, B: 0x45, A: 0xFF},
			DecorA:     color.NRGBA{R: 0xC9, G: 0xA8, B: 0x5C, A: 0x1F},
			DecorB:     color.NRGBA{R: 0x4A, G: 0x4F, B: 0x58, A: 0x33},
			Decor:      true,
			Texture:    true,
		}
	case cardmodel.ThemeMinimal:
		return Palette{
			Background: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
			Paper:      color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
			Ink:        color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF},
			Muted:      color.NRGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xFF},
			Accent:     color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF},
			Line:       color.NRGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF},
			// decor suppressed entirely for the minimal idiom
			Decor:   false,
			Texture: false,
		}
	default: // green
		return Palette{
			Background: color.NRGBA{R: 0xE3, G: 0xEA, B: 0xDD, A: 0xFF},
			Paper:      color.NRGBA{R: 0xF4, G: 0xF1, B: 0xE8, A: 0xFF},
			Ink:        color.NRGBA{R: 0x2B, G: 0x2B, B: 0x26, A: 0xFF},
			Muted:      color.NRGBA{R: 0x7A, G: 0x80, B: 0x6F, A: 0xFF},
			Accent:     color.NRGBA{R: 0x3E, G: 0x6B, B: 0x4F, A: 0xFF},
			Line:       color.NRGBA{R: 0xD4, G: 0xD0, B: 0xC2, A: 0xFF},
			DecorA:     color.NRGBA{R: 0x3E, G: 0x6B, B: 0x4F, A: 0x26},
			DecorB:     color.NRGBA{R: 0x9B, G: 0xB8, B: 0x9A, A: 0x33},
			Decor:      true,
			Texture:    true,
		}
	}
}
