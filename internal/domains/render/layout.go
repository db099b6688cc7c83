package render

import (
	"fmt"
	"image/color"

	cardmodel "reviewcard-backend/internal/domains/card/model"
)

// Fixed quote point sizes selected by QuoteSize.
const (
	quoteSizeSmall  = 13.0
	quoteSizeMedium = 16.0
	quoteSizeLarge  = 20.0
)

// Archive labels per kind.
const (
	labelBookArchive  = "Library Archive"
	labelMovieArchive = "Cinema Archive"
)

const (
	margin     = 28.0
	contentW   = CanvasWidth - 2*margin
	bodySize   = 10.5
	labelSize  = 8.5
	titleSize  = 23.0
	lineWeight = 1.35
)

// Compose derives the card's visual tree from the record. Pure and
// deterministic: no IO, no clock, no mutation of the record; calling it twice
// on an unchanged record yields identical trees.
//
// Kind picks labels, the identity field and the bottom content blocks.
// Theme picks color tokens and decor only — never field presence or order.
func Compose(card *cardmodel.ReviewCard) *Node {
	p := paletteFor(card.Theme)

	root := &Node{
		Kind: NodeFrame,
		Name: "card",
		W:    CanvasWidth,
		H:    CanvasHeight,
	}

	// Paper fills the full canvas; the background token peeks through as a
	// border band behind the paper inset.
	root.Children = append(root.Children,
		&Node{Kind: NodeRect, Name: "background", W: CanvasWidth, H: CanvasHeight, Color: p.Background},
		&Node{Kind: NodeRect, Name: "paper", X: 10, Y: 10, W: CanvasWidth - 20, H: CanvasHeight - 20, Color: p.Paper},
	)

	if p.Decor {
		root.Children = append(root.Children,
			&Node{Kind: NodeCircle, Name: "decor-top", X: CanvasWidth - 46, Y: 52, Radius: 64, Color: p.DecorA},
			&Node{Kind: NodeCircle, Name: "decor-bottom", X: 54, Y: CanvasHeight - 48, Radius: 80, Color: p.DecorB},
		)
	}
	if p.Texture {
		// Paper-grain overlay. Overlay blending is beyond the rasterizer;
		// captures normalize or drop this node through their filter.
		root.Children = append(root.Children, &Node{
			Kind:  NodeRect,
			Name:  "texture",
			X:     10,
			Y:     10,
			W:     CanvasWidth - 20,
			H:     CanvasHeight - 20,
			Color: color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x14},
			Blend: BlendOverlay,
		})
	}

	y := margin + 8

	// Header: archive label, title, genre, whole-star strip, exact readout.
	root.Children = append(root.Children, composeHeader(card, p, &y)...)

	// Cover image area.
	root.Children = append(root.Children, composeCover(card, p, &y)...)

	// Identity line + kind-specific bottom blocks.
	root.Children = append(root.Children, composeDetails(card, p, &y)...)

	return root
}

func composeHeader(card *cardmodel.ReviewCard, p Palette, y *float64) []*Node {
	label := labelBookArchive
	if card.Kind == cardmodel.KindMovie {
		label = labelMovieArchive
	}

	nodes := []*Node{
		{Kind: NodeText, Name: "archive-label", X: margin, Y: *y, W: contentW, Text: label, FontSize: labelSize, Color: p.Muted, LineSpacing: 1},
	}
	*y += 16

	nodes = append(nodes, &Node{
		Kind: NodeText, Name: "title", X: margin, Y: *y, W: contentW,
		Text: card.DisplayTitle(), FontSize: titleSize, Bold: true, Color: p.Ink, LineSpacing: 1.1,
	})
	*y += 34

	genre := card.Genre
	if genre == "" {
		genre = cardmodel.PlaceholderGlyph
	}
	nodes = append(nodes, &Node{
		Kind: NodeText, Name: "genre", X: margin, Y: *y, W: contentW,
		Text: genre, FontSize: bodySize, Italic: true, Color: p.Muted, LineSpacing: 1,
	})
	*y += 20

	// Header stars simplify to whole stars (full/empty only) while the
	// readout next to them keeps the exact half-point value. Intentional.
	whole := card.Rating.WholeStars()
	glyphs := make([]cardmodel.StarGlyph, cardmodel.StarCount)
	for i := range glyphs {
		if i < whole {
			glyphs[i] = cardmodel.StarFull
		} else {
			glyphs[i] = cardmodel.StarEmpty
		}
	}
	nodes = append(nodes,
		&Node{Kind: NodeStars, Name: "header-stars", X: margin, Y: *y, StarSize: 13, Glyphs: glyphs, Color: p.Accent},
		&Node{Kind: NodeText, Name: "rating-readout", X: margin + 5.5*20, Y: *y + 11,
			Text: fmt.Sprintf("%.1f", card.Rating.Value()), FontSize: bodySize, Bold: true, Color: p.Ink, LineSpacing: 1},
	)
	*y += 26

	nodes = append(nodes, &Node{Kind: NodeRect, Name: "header-rule", X: margin, Y: *y, W: contentW, H: 1, Color: p.Line})
	*y += 12

	return nodes
}

func composeCover(card *cardmodel.ReviewCard, p Palette, y *float64) []*Node {
	const coverH = 170.0

	frame := &Node{Kind: NodeRect, Name: "cover-frame", X: margin, Y: *y, W: contentW, H: coverH, Color: p.Line}

	var content *Node
	if card.CoverImage != nil {
		content = &Node{
			Kind: NodeImage, Name: "cover",
			X: margin + 2, Y: *y + 2, W: contentW - 4, H: coverH - 4,
			Image: card.CoverImage, Color: p.Paper,
		}
	} else {
		// Absent cover keeps its frame and renders the placeholder glyph,
		// so filling the field later never reflows the card.
		content = &Node{
			Kind: NodeText, Name: "cover-placeholder",
			X: margin, Y: *y + coverH/2 - 8, W: contentW,
			Text: cardmodel.PlaceholderGlyph, FontSize: 16, Align: AlignCenter, Color: p.Muted, LineSpacing: 1,
		}
	}

	*y += coverH + 14
	return []*Node{frame, content}
}

func composeDetails(card *cardmodel.ReviewCard, p Palette, y *float64) []*Node {
	var nodes []*Node

	if card.Kind == cardmodel.KindMovie {
		nodes = append(nodes, composeField("identity", "Director", card.Movie.Director, p, y)...)
		nodes = append(nodes, composeField("plot", "Plot", card.Movie.Plot, p, y)...)
		nodes = append(nodes, composeField("memorable-points", "Memorable Points", card.Movie.MemorablePoints, p, y)...)
		nodes = append(nodes, composeField("impressions", "Impressions", card.Movie.Impressions, p, y)...)
		return nodes
	}

	nodes = append(nodes, composeField("identity", "Author", card.Book.Author, p, y)...)
	nodes = append(nodes, composeField("publisher", "Publisher", card.Book.Publisher, p, y)...)
	nodes = append(nodes, composeField("date-read", "Date Read", card.Book.DateRead.Format("Jan 2, 2006"), p, y)...)

	// The quote block is the one block allowed to disappear: present iff the
	// quote text is non-empty, with interpolated quotation marks and the
	// point size the QuoteSize picked.
	if card.Book.Quote != "" {
		nodes = append(nodes, &Node{
			Kind: NodeText, Name: "quote",
			X: margin + 10, Y: *y, W: contentW - 20,
			Text:     fmt.Sprintf("“%s”", card.Book.Quote),
			FontSize: quotePointSize(card.QuoteSize),
			Italic:   true, Color: p.Accent, LineSpacing: lineWeight,
		})
		*y += quotePointSize(card.QuoteSize)*2.6 + 10
	}

	nodes = append(nodes, composeField("short-review", "Short Review", card.Book.ShortReview, p, y)...)

	if card.Book.ExtraImage != nil {
		nodes = append(nodes, &Node{
			Kind: NodeImage, Name: "extra-image",
			X: margin, Y: *y, W: contentW, H: 72,
			Image: card.Book.ExtraImage, Color: p.Paper,
		})
		*y += 80
	} else {
		nodes = append(nodes, &Node{
			Kind: NodeText, Name: "extra-image-placeholder",
			X: margin, Y: *y, W: contentW,
			Text: cardmodel.PlaceholderGlyph, FontSize: bodySize, Color: p.Muted, LineSpacing: 1,
		})
		*y += 18
	}

	return nodes
}

// composeField renders a labelled value row; empty values keep the row and
// show the placeholder glyph (layout stability across edits).
func composeField(name, label, value string, p Palette, y *float64) []*Node {
	if value == "" {
		value = cardmodel.PlaceholderGlyph
	}

	nodes := []*Node{
		{Kind: NodeText, Name: name + "-label", X: margin, Y: *y, Text: label, FontSize: labelSize, Color: p.Muted, LineSpacing: 1},
		{Kind: NodeText, Name: name, X: margin, Y: *y + 12, W: contentW, Text: value, FontSize: bodySize, Color: p.Ink, LineSpacing: lineWeight},
	}
	*y += 34

	return nodes
}

func quotePointSize(size cardmodel.QuoteSize) float64 {
	switch size {
	case cardmodel.QuoteSmall:
		return quoteSizeSmall
	case cardmodel.QuoteLarge:
		return quoteSizeLarge
	default:
		return quoteSizeMedium
	}
}
