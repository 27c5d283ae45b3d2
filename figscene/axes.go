package figscene

import (
	"fmt"

	"github.com/okfig/okfig/figpath"
)

// Axes composes primitives declared in axes-local coordinates into the
// parent diagram's coordinate space. Resolution happens exactly once, at
// insertion: stored objects hold diagram-local absolutes and rendering
// never re-resolves them, so serializing the same axes repeatedly yields
// identical output.
type Axes struct {
	Position figpath.Point // origin within the diagram
	Size     figpath.Point // arm lengths; a zero component gives a zero-length arm
	Style    Style

	objects []Object
}

// NewAxes places an axes inside a diagram. Styling defaults to the axes
// theme (gray, thin, dashed).
func NewAxes(position, size figpath.Point, opts ...Option) (Axes, error) {
	st, _, err := resolveStyle(ThemeAxes, opts)
	if err != nil {
		return Axes{}, err
	}
	return Axes{Position: position, Size: size, Style: st}, nil
}

// resolve converts axes-local coordinates to diagram-local ones.
func (a *Axes) resolve(local figpath.Point) figpath.Point {
	return a.Position.Add(local)
}

// Arms returns the two axis vectors, sized by the axes and drawn in its
// style. They paint before any object.
func (a *Axes) Arms() (x, y Vector) {
	x = Vector{Pos: a.Position, Dir: figpath.Point{X: a.Size.X}, Style: a.Style, ArrowSize: defaultArrowSize}
	y = Vector{Pos: a.Position, Dir: figpath.Point{Y: a.Size.Y}, Style: a.Style, ArrowSize: defaultArrowSize}
	return x, y
}

// Objects returns the stored primitives in insertion order.
// The slice is owned by the axes and must not be modified.
func (a *Axes) Objects() []Object { return a.objects }

// AddPoint builds a point at axes-local coordinates and attaches it.
// The returned point holds the resolved position.
func (a *Axes) AddPoint(size float64, local figpath.Point, opts ...Option) (Point, error) {
	p, err := NewPoint(size, local, opts...)
	if err != nil {
		return Point{}, err
	}
	return a.addPoint(p), nil
}

func (a *Axes) addPoint(p Point) Point {
	p.At = a.resolve(p.At)
	a.objects = append(a.objects, p)
	return p
}

// AddVector builds a vector at an axes-local position and attaches it.
// Attached vectors always draw solid, whatever their style says.
func (a *Axes) AddVector(local, dir figpath.Point, opts ...Option) (Vector, error) {
	v, err := NewVector(local, dir, opts...)
	if err != nil {
		return Vector{}, err
	}
	return a.addVector(v), nil
}

func (a *Axes) addVector(v Vector) Vector {
	v.Pos = a.resolve(v.Pos)
	v.Style.Line = Solid
	a.objects = append(a.objects, v)
	return v
}

// AddCurve attaches a curve whose anchors are axes-local.
func (a *Axes) AddCurve(c Curve) Curve {
	return a.addCurve(c)
}

func (a *Axes) addCurve(c Curve) Curve {
	pts := make([]figpath.Point, len(c.Points))
	for i, p := range c.Points {
		pts[i] = a.resolve(p)
	}
	c.Points = pts
	c.Tangents = append([]figpath.Point(nil), c.Tangents...)
	a.objects = append(a.objects, c)
	return c
}

// AddObject attaches any supported primitive, resolving its coordinates
// like the dedicated Add methods do. The returned object is the stored,
// resolved copy. Ticks and unknown kinds are rejected with a KindError.
func (a *Axes) AddObject(obj Object) (Object, error) {
	switch o := obj.(type) {
	case Point:
		return a.addPoint(o), nil
	case Vector:
		return a.addVector(o), nil
	case Curve:
		return a.addCurve(o), nil
	default:
		return nil, &KindError{Kind: fmt.Sprintf("%T", obj)}
	}
}

// Orientation selects which axis arms receive ticks.
type Orientation uint8

const (
	OrientBoth Orientation = iota
	OrientX
	OrientY
)

// ParseOrientation reads the textual form used in scene descriptions.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "both":
		return OrientBoth, nil
	case "x":
		return OrientX, nil
	case "y":
		return OrientY, nil
	}
	return 0, &ConfigurationError{Reason: fmt.Sprintf("tick orientation must be 'x', 'y' or 'both', got %q", s)}
}

// Placement sets which side of the axis line a tick extends to.
type Placement uint8

const (
	PlaceInside Placement = iota
	PlaceOutside
	PlaceMiddle
)

// ParsePlacement reads the textual form used in scene descriptions.
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "inside":
		return PlaceInside, nil
	case "outside":
		return PlaceOutside, nil
	case "middle":
		return PlaceMiddle, nil
	}
	return 0, &ConfigurationError{Reason: fmt.Sprintf("tick placement must be 'inside', 'outside' or 'middle', got %q", s)}
}

// AddTicks generates one graduation per integer multiple of spacing
// along the selected arms, up to the arm length inclusive. Fractional
// arm lengths truncate to the last multiple that fits. The segments are
// length long, offset from the axis line according to placement.
func (a *Axes) AddTicks(spacing, length float64, orient Orientation, place Placement, color string) error {
	if spacing <= 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("tick spacing must be positive, got %g", spacing)}
	}
	switch orient {
	case OrientBoth, OrientX, OrientY:
	default:
		return &ConfigurationError{Reason: fmt.Sprintf("unknown tick orientation %d", orient)}
	}
	switch place {
	case PlaceInside, PlaceOutside, PlaceMiddle:
	default:
		return &ConfigurationError{Reason: fmt.Sprintf("unknown tick placement %d", place)}
	}

	ox, oy := a.Position.X, a.Position.Y
	if orient == OrientX || orient == OrientBoth {
		for i := 1; float64(i)*spacing <= a.Size.X; i++ {
			x := ox + float64(i)*spacing
			var s, e figpath.Point
			switch place {
			case PlaceInside:
				s, e = figpath.Point{X: x, Y: oy}, figpath.Point{X: x, Y: oy + length}
			case PlaceOutside:
				s, e = figpath.Point{X: x, Y: oy}, figpath.Point{X: x, Y: oy - length}
			case PlaceMiddle:
				s, e = figpath.Point{X: x, Y: oy - length/2}, figpath.Point{X: x, Y: oy + length/2}
			}
			a.objects = append(a.objects, Tick{A: s, B: e, Color: color})
		}
	}
	if orient == OrientY || orient == OrientBoth {
		for i := 1; float64(i)*spacing <= a.Size.Y; i++ {
			y := oy + float64(i)*spacing
			var s, e figpath.Point
			switch place {
			case PlaceInside:
				s, e = figpath.Point{X: ox, Y: y}, figpath.Point{X: ox + length, Y: y}
			case PlaceOutside:
				s, e = figpath.Point{X: ox, Y: y}, figpath.Point{X: ox - length, Y: y}
			case PlaceMiddle:
				s, e = figpath.Point{X: ox - length/2, Y: y}, figpath.Point{X: ox + length/2, Y: y}
			}
			a.objects = append(a.objects, Tick{A: s, B: e, Color: color})
		}
	}
	return nil
}
