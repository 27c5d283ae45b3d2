package figscene

import (
	"fmt"

	"github.com/okfig/okfig/figpath"
)

// Diagram is one bordered panel of a figure. X and Y place its lower
// left corner in the figure, Y measured up from the figure's bottom
// edge. Contents live in diagram-local coordinates with the origin at
// the panel's lower left.
type Diagram struct {
	Width, Height float64
	X, Y          float64

	fill    string
	hasFill bool
	axes    []Axes
	points  []Point
	vectors []Vector
}

// NewDiagram builds an empty panel of the given size at (x, y).
func NewDiagram(width, height, x, y float64) (Diagram, error) {
	if width <= 0 || height <= 0 {
		return Diagram{}, &ValidationError{Reason: fmt.Sprintf("diagram size must be positive, got %gx%g", width, height)}
	}
	return Diagram{Width: width, Height: height, X: x, Y: y}, nil
}

// SetFill gives the panel a background color. Panels without a fill
// draw only their border.
func (d *Diagram) SetFill(color string) {
	d.fill, d.hasFill = color, true
}

// Fill returns the panel's background color, if one was set.
func (d *Diagram) Fill() (string, bool) { return d.fill, d.hasFill }

// AddAxes attaches a copy of the axes, contents included. Later changes
// to the argument do not affect the diagram.
func (d *Diagram) AddAxes(a Axes) {
	a.objects = append([]Object(nil), a.objects...)
	d.axes = append(d.axes, a)
}

// AddPoint attaches a loose point at diagram-local coordinates.
func (d *Diagram) AddPoint(size float64, at figpath.Point, opts ...Option) (Point, error) {
	p, err := NewPoint(size, at, opts...)
	if err != nil {
		return Point{}, err
	}
	d.points = append(d.points, p)
	return p, nil
}

// AddVector attaches a loose vector at diagram-local coordinates.
// Like vectors attached to axes, it always draws solid.
func (d *Diagram) AddVector(pos, dir figpath.Point, opts ...Option) (Vector, error) {
	v, err := NewVector(pos, dir, opts...)
	if err != nil {
		return Vector{}, err
	}
	v.Style.Line = Solid
	d.vectors = append(d.vectors, v)
	return v, nil
}

// AddObject attaches an already built loose primitive. Diagrams hold
// only points and vectors directly; anything else is a KindError.
func (d *Diagram) AddObject(obj Object) (Object, error) {
	switch o := obj.(type) {
	case Point:
		d.points = append(d.points, o)
		return o, nil
	case Vector:
		o.Style.Line = Solid
		d.vectors = append(d.vectors, o)
		return o, nil
	default:
		return nil, &KindError{Kind: fmt.Sprintf("%T", obj)}
	}
}

// Axes returns the attached axes in insertion order.
func (d *Diagram) Axes() []Axes { return d.axes }

// Points returns the loose points in insertion order.
func (d *Diagram) Points() []Point { return d.points }

// Vectors returns the loose vectors in insertion order.
func (d *Diagram) Vectors() []Vector { return d.vectors }
