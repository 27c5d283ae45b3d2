package figscene

import "fmt"

// Figure is the document root: a canvas of fixed pixel size holding
// diagrams in insertion order. There is no shared default figure; every
// scene builds its own.
type Figure struct {
	Width, Height float64

	diagrams []Diagram
}

// NewFigure builds an empty canvas.
func NewFigure(width, height float64) (Figure, error) {
	if width <= 0 || height <= 0 {
		return Figure{}, &ValidationError{Reason: fmt.Sprintf("figure size must be positive, got %gx%g", width, height)}
	}
	return Figure{Width: width, Height: height}, nil
}

// AddDiagram attaches a copy of the diagram, contents included. Later
// changes to the argument do not affect the figure.
func (f *Figure) AddDiagram(d Diagram) {
	d.axes = append([]Axes(nil), d.axes...)
	for i := range d.axes {
		d.axes[i].objects = append([]Object(nil), d.axes[i].objects...)
	}
	d.points = append([]Point(nil), d.points...)
	d.vectors = append([]Vector(nil), d.vectors...)
	f.diagrams = append(f.diagrams, d)
}

// Diagrams returns the attached diagrams in insertion order.
func (f *Figure) Diagrams() []Diagram { return f.diagrams }
