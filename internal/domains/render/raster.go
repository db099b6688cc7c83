package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	cardmodel "reviewcard-backend/internal/domains/card/model"
)

// ErrUnsupportedBlend is returned when a node carries a blend mode the
// rasterizer cannot evaluate and no filter normalized it away.
var ErrUnsupportedBlend = errors.New("rasterizer cannot evaluate blend mode")

// NodeFilter transforms or excludes nodes before drawing. Returning nil
// drops the node and its whole subtree; returning a modified copy draws
// that instead. The input node must not be mutated — Compose output is
// shared with the caller.
type NodeFilter func(*Node) *Node

// NormalizeUnsupported is the capture-side filter: nodes with a blend mode
// the rasterizer cannot evaluate are flattened to normal blending at reduced
// opacity instead of aborting the capture.
func NormalizeUnsupported(n *Node) *Node {
	if n.Blend == "" || n.Blend == BlendNormal {
		return n
	}
	flat := *n
	flat.Blend = BlendNormal
	flat.Color.A /= 2
	return &flat
}

// Rasterizer snapshots a visual tree into a bitmap. It only reads the tree;
// ownership stays with the layout engine.
type Rasterizer struct {
	// Scale multiplies canvas points into pixels (1 = native).
	Scale float64

	// Background fills the canvas before drawing when alpha > 0. Document
	// captures set opaque white so output never inherits the page's ambient
	// (possibly transparent) background.
	Background color.NRGBA

	Filter NodeFilter
}

// Render draws the tree at the configured scale.
func (r *Rasterizer) Render(root *Node) (image.Image, error) {
	scale := r.Scale
	if scale <= 0 {
		scale = 1
	}

	w := int(math.Round(root.W * scale))
	h := int(math.Round(root.H * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("degenerate canvas %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	if r.Background.A > 0 {
		dc.SetColor(r.Background)
		dc.Clear()
	}

	if err := r.draw(dc, root, scale); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func (r *Rasterizer) draw(dc *gg.Context, n *Node, s float64) error {
	if r.Filter != nil {
		n = r.Filter(n)
		if n == nil {
			return nil
		}
	}
	if n.Blend != "" && n.Blend != BlendNormal {
		return fmt.Errorf("%w: %s (node %q)", ErrUnsupportedBlend, n.Blend, n.Name)
	}

	switch n.Kind {
	case NodeFrame:
		// container only
	case NodeRect:
		dc.SetColor(n.Color)
		if n.Radius > 0 {
			dc.DrawRoundedRectangle(n.X*s, n.Y*s, n.W*s, n.H*s, n.Radius*s)
		} else {
			dc.DrawRectangle(n.X*s, n.Y*s, n.W*s, n.H*s)
		}
		dc.Fill()
	case NodeCircle:
		dc.SetColor(n.Color)
		dc.DrawCircle(n.X*s, n.Y*s, n.Radius*s)
		dc.Fill()
	case NodeText:
		if err := r.drawText(dc, n, s); err != nil {
			return err
		}
	case NodeImage:
		if err := r.drawImage(dc, n, s); err != nil {
			return err
		}
	case NodeStars:
		r.drawStars(dc, n, s)
	default:
		return fmt.Errorf("unknown node kind %q", n.Kind)
	}

	for _, child := range n.Children {
		if err := r.draw(dc, child, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Rasterizer) drawText(dc *gg.Context, n *Node, s float64) error {
	face, err := faceFor(n.FontSize*s, n.Bold, n.Italic)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(n.Color)

	align := gg.AlignLeft
	switch n.Align {
	case AlignCenter:
		align = gg.AlignCenter
	case AlignRight:
		align = gg.AlignRight
	}

	if n.W > 0 {
		spacing := n.LineSpacing
		if spacing <= 0 {
			spacing = 1
		}
		dc.DrawStringWrapped(n.Text, n.X*s, n.Y*s, 0, 0, n.W*s, spacing, align)
		return nil
	}

	dc.DrawString(n.Text, n.X*s, n.Y*s+n.FontSize*s)
	return nil
}

func (r *Rasterizer) drawImage(dc *gg.Context, n *Node, s float64) error {
	if n.Image == nil || len(n.Image.Data) == 0 {
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(n.Image.Data))
	if err != nil {
		return fmt.Errorf("decode embedded image (node %q): %w", n.Name, err)
	}

	boxW := int(math.Round(n.W * s))
	boxH := int(math.Round(n.H * s))
	fitted := imaging.Fit(img, boxW, boxH, imaging.Lanczos)

	// center inside the box
	x := int(math.Round(n.X*s)) + (boxW-fitted.Bounds().Dx())/2
	y := int(math.Round(n.Y*s)) + (boxH-fitted.Bounds().Dy())/2
	dc.DrawImage(fitted, x, y)
	return nil
}

func (r *Rasterizer) drawStars(dc *gg.Context, n *Node, s float64) {
	size := n.StarSize * s
	gap := size * 0.45
	cy := n.Y*s + size/2

	for i, glyph := range n.Glyphs {
		cx := n.X*s + size/2 + float64(i)*(size+gap)

		switch glyph {
		case cardmodel.StarFull:
			starPath(dc, cx, cy, size/2)
			dc.SetColor(n.Color)
			dc.Fill()
		case cardmodel.StarHalf:
			// fill the left half only, then outline the whole star
			dc.Push()
			dc.DrawRectangle(cx-size/2, cy-size/2, size/2, size)
			dc.Clip()
			starPath(dc, cx, cy, size/2)
			dc.SetColor(n.Color)
			dc.Fill()
			dc.ResetClip()
			dc.Pop()
			starPath(dc, cx, cy, size/2)
			dc.SetColor(n.Color)
			dc.SetLineWidth(s)
			dc.Stroke()
		default:
			starPath(dc, cx, cy, size/2)
			dc.SetColor(n.Color)
			dc.SetLineWidth(s)
			dc.Stroke()
		}
	}
}

// starPath traces a five-point star centered at (cx, cy).
func starPath(dc *gg.Context, cx, cy, outer float64) {
	inner := outer * 0.42
	for i := 0; i < 10; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}
