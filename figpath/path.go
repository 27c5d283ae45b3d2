package figpath

import (
	"strconv"
	"strings"
)

// This file defines the basic path structure

// Operation groups the basic path commands
type Operation interface {
	// flipped returns the operation mirrored around the
	// horizontal line at h/2 (scene space to document space)
	flipped(h float64) Operation
}

type MoveTo Point

type LineTo Point

type QuadTo [2]Point

type CubicTo [3]Point

type Close struct{}

func (op MoveTo) flipped(h float64) Operation { return MoveTo{X: op.X, Y: h - op.Y} }

func (op LineTo) flipped(h float64) Operation { return LineTo{X: op.X, Y: h - op.Y} }

func (op QuadTo) flipped(h float64) Operation {
	return QuadTo{
		{X: op[0].X, Y: h - op[0].Y},
		{X: op[1].X, Y: h - op[1].Y},
	}
}

func (op CubicTo) flipped(h float64) Operation {
	return CubicTo{
		{X: op[0].X, Y: h - op[0].Y},
		{X: op[1].X, Y: h - op[1].Y},
		{X: op[2].X, Y: h - op[2].Y},
	}
}

func (op Close) flipped(float64) Operation { return op }

// Path describes a sequence of basic path operations, which should not be nil.
// Higher-level shapes are reduced to a path before emission.
type Path []Operation

// Start starts a new subpath at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current subpath.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// QuadBezier adds a quadratic segment to the current subpath.
func (p *Path) QuadBezier(b, c Point) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current subpath.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the subpath
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// FlipY returns the path converted to top-left-origin document space,
// mirroring every anchor and control point around the container height h.
// The serializer applies this exactly once per primitive, with the height
// of the primitive's immediate container.
func (p Path) FlipY(h float64) Path {
	out := make(Path, len(p))
	for i, op := range p {
		out[i] = op.flipped(h)
	}
	return out
}

// coord keeps the shortest decimal form that round-trips the float,
// so no precision is lost between geometry and document.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = "M " + coord(op.X) + " " + coord(op.Y)
		case LineTo:
			chunks[i] = "L " + coord(op.X) + " " + coord(op.Y)
		case QuadTo:
			chunks[i] = "Q " + coord(op[0].X) + " " + coord(op[0].Y) +
				" " + coord(op[1].X) + " " + coord(op[1].Y)
		case CubicTo:
			chunks[i] = "C " + coord(op[0].X) + " " + coord(op[0].Y) +
				" " + coord(op[1].X) + " " + coord(op[1].Y) +
				" " + coord(op[2].X) + " " + coord(op[2].Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}
