package render

import (
	"image/color"

	cardmodel "reviewcard-backend/internal/domains/card/model"
)

// Canvas dimensions: A5 portrait in points (148mm x 210mm), theme-independent.
const (
	CanvasWidth  = 419.53
	CanvasHeight = 595.28
)

type NodeKind string

const (
	NodeFrame  NodeKind = "frame"
	NodeRect   NodeKind = "rect"
	NodeCircle NodeKind = "circle"
	NodeText   NodeKind = "text"
	NodeImage  NodeKind = "image"
	NodeStars  NodeKind = "stars"
)

// BlendMode on a node. The rasterizer only evaluates BlendNormal; anything
// else must be normalized or excluded through the capture's NodeFilter.
type BlendMode string

const (
	BlendNormal  BlendMode = "normal"
	BlendOverlay BlendMode = "overlay"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Node is one element of the visual tree. The tree is plain data: composing
// it has no side effects and comparing two trees is a deep equality check.
type Node struct {
	Kind NodeKind
	// Name is a stable identifier ("quote", "header-stars") used by tests
	// and capture filters; purely informational for drawing.
	Name string

	// Geometry in canvas points. Circles use X,Y as center plus Radius.
	X, Y, W, H float64
	Radius     float64

	Color color.NRGBA
	Blend BlendMode

	// Text nodes
	Text        string
	FontSize    float64
	Bold        bool
	Italic      bool
	Align       Align
	LineSpacing float64

	// Image nodes
	Image *cardmodel.EmbeddedImage

	// Stars nodes
	Glyphs   []cardmodel.StarGlyph
	StarSize float64

	Children []*Node
}

// FindByName walks the tree depth-first; nil when absent.
func (n *Node) FindByName(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// CountByKind counts nodes of a kind across the whole tree.
func (n *Node) CountByKind(kind NodeKind) int {
	if n == nil {
		return 0
	}
	count := 0
	if n.Kind == kind {
		count++
	}
	for _, child := range n.Children {
		count += child.CountByKind(kind)
	}
	return count
}
