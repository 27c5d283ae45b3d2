package figscene

import (
	"fmt"
	"math"

	"github.com/okfig/okfig/figpath"
)

// Bounds is an axis-aligned extent in scene coordinates.
type Bounds struct{ X, Y, W, H float64 }

// Center returns the middle of the extent.
func (b Bounds) Center() figpath.Point {
	return figpath.Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Object is the closed set of primitives an Axes holds: Point, Vector,
// Curve and Tick. The serializer dispatches on the concrete kind.
type Object interface {
	object()
}

// Point is a filled dot of a given diameter.
type Point struct {
	Size  float64 // diameter
	At    figpath.Point
	Style Style

	label    Label
	hasLabel bool
}

// NewPoint builds a point of the given diameter at local coordinates at.
func NewPoint(size float64, at figpath.Point, opts ...Option) (Point, error) {
	if size < 0 {
		return Point{}, &ValidationError{Reason: fmt.Sprintf("point size must not be negative, got %g", size)}
	}
	st, _, err := resolveStyle(ThemeDefault, opts)
	if err != nil {
		return Point{}, err
	}
	return Point{Size: size, At: at, Style: st}, nil
}

// WithLabel returns a copy of the point carrying the label.
func (p Point) WithLabel(l Label) Point {
	p.label, p.hasLabel = l, true
	return p
}

// Label returns the point's label, if any.
func (p Point) Label() (Label, bool) { return p.label, p.hasLabel }

// Bounds returns the point's extent.
func (p Point) Bounds() Bounds {
	return Bounds{X: p.At.X - p.Size/2, Y: p.At.Y - p.Size/2, W: p.Size, H: p.Size}
}

func (Point) object() {}

// defaultArrowSize is the arrow tip size vectors start with.
const defaultArrowSize = 8.0

// Vector is a directed segment drawn with an arrow tip at its endpoint.
// It is degenerate when Dir is the zero vector: only a zero-length line
// is drawn, never an arrowhead.
type Vector struct {
	Pos       figpath.Point // starting point
	Dir       figpath.Point // direction and magnitude
	Style     Style
	ArrowSize float64

	label    Label
	hasLabel bool
}

// NewVector builds a vector at local position pos extending by dir.
func NewVector(pos, dir figpath.Point, opts ...Option) (Vector, error) {
	st, cfg, err := resolveStyle(ThemeDefault, opts)
	if err != nil {
		return Vector{}, err
	}
	arrow := defaultArrowSize
	if cfg.arrowSize != nil {
		if *cfg.arrowSize <= 0 {
			return Vector{}, &ConfigurationError{Reason: fmt.Sprintf("arrow size must be positive, got %g", *cfg.arrowSize)}
		}
		arrow = *cfg.arrowSize
	}
	return Vector{Pos: pos, Dir: dir, Style: st, ArrowSize: arrow}, nil
}

// End returns Pos + Dir.
func (v Vector) End() figpath.Point { return v.Pos.Add(v.Dir) }

// GapFill returns the solid segment drawn behind the arrow tip of a
// dashed vector, sized to the dash gap. ok is false when the vector is
// degenerate.
func (v Vector) GapFill() (from, to figpath.Point, ok bool) {
	return figpath.GapFill(v.Pos, v.Dir, dashGap)
}

// WithLabel returns a copy of the vector carrying the label.
func (v Vector) WithLabel(l Label) Vector {
	v.label, v.hasLabel = l, true
	return v
}

// Label returns the vector's label, if any.
func (v Vector) Label() (Label, bool) { return v.label, v.hasLabel }

// Bounds returns the extent spanned by the two endpoints.
func (v Vector) Bounds() Bounds {
	end := v.End()
	minX, maxX := math.Min(v.Pos.X, end.X), math.Max(v.Pos.X, end.X)
	minY, maxY := math.Min(v.Pos.Y, end.Y), math.Max(v.Pos.Y, end.Y)
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func (Vector) object() {}

// Curve is a cubic Hermite spline: anchors plus one tangent per anchor.
type Curve struct {
	Points   []figpath.Point
	Tangents []figpath.Point
	Style    Style

	label    Label
	hasLabel bool
}

// NewCurve builds a curve from anchors and tangents in Hermite form.
// It requires at least two anchors and exactly one tangent per anchor.
func NewCurve(points, tangents []figpath.Point, opts ...Option) (Curve, error) {
	if len(points) < 2 {
		return Curve{}, &ValidationError{Reason: fmt.Sprintf("a curve needs at least two anchors, got %d", len(points))}
	}
	if len(points) != len(tangents) {
		return Curve{}, &ValidationError{Reason: fmt.Sprintf("curve has %d anchors but %d tangents", len(points), len(tangents))}
	}
	st, _, err := resolveStyle(ThemeDefault, opts)
	if err != nil {
		return Curve{}, err
	}
	return Curve{
		Points:   append([]figpath.Point(nil), points...),
		Tangents: append([]figpath.Point(nil), tangents...),
		Style:    st,
	}, nil
}

// Path converts the curve to its cubic segment path: one move-to and
// len(Points)-1 cubic commands.
func (c Curve) Path() figpath.Path {
	return figpath.Hermite(c.Points, c.Tangents)
}

// WithLabel returns a copy of the curve carrying the label.
func (c Curve) WithLabel(l Label) Curve {
	c.label, c.hasLabel = l, true
	return c
}

// Label returns the curve's label, if any.
func (c Curve) Label() (Label, bool) { return c.label, c.hasLabel }

// Bounds returns the extent spanned by the anchors.
func (c Curve) Bounds() Bounds {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range c.Points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func (Curve) object() {}

// Tick is one short axis graduation. Ticks are generated by
// Axes.AddTicks, already resolved to diagram coordinates.
type Tick struct {
	A, B  figpath.Point
	Color string
}

func (Tick) object() {}
