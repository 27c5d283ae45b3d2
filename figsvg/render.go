// Package figsvg serializes a scene into an SVG document.
//
// The walk is a single top-down pass in insertion order at every level,
// so later primitives paint over earlier ones. Scene coordinates have y
// growing up; the serializer flips each primitive exactly once, against
// the height of its immediate container.
package figsvg

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"

	"github.com/okfig/okfig/figpath"
	"github.com/okfig/okfig/figscene"
)

// decimals bounds the precision of element coordinates. Path data is
// formatted separately, with no precision loss.
const decimals = 3

// attr formats a raw XML attribute. Strings containing '=' pass through
// the svgo style parameter untouched.
func attr(name, value string) string {
	return fmt.Sprintf("%s=%q", name, value)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Render writes the figure as a complete SVG document. Nothing reaches
// w until the whole scene has serialized cleanly.
func Render(fig *figscene.Figure, w io.Writer) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Decimals = decimals

	canvas.Start(fig.Width, fig.Height)
	canvas.Rect(0, 0, fig.Width, fig.Height, attr("fill", "white"))
	for _, d := range fig.Diagrams() {
		if err := renderDiagram(canvas, fig, &d); err != nil {
			return err
		}
	}
	canvas.End()

	_, err := w.Write(buf.Bytes())
	return err
}

func renderDiagram(canvas *svg.SVG, fig *figscene.Figure, d *figscene.Diagram) error {
	// The group maps the diagram's lower left corner, y measured up
	// from the figure's bottom edge, onto the SVG's y-down canvas.
	canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", num(d.X), num(fig.Height-d.Height-d.Y)))
	defer canvas.Gend()

	fill := "none"
	if c, ok := d.Fill(); ok {
		fill = c
	}
	canvas.Rect(0, 0, d.Width, d.Height,
		attr("fill", fill), attr("stroke", "black"), attr("stroke-width", "2"))

	h := d.Height
	for _, p := range d.Points() {
		renderPoint(canvas, p, h)
	}
	for _, v := range d.Vectors() {
		renderVector(canvas, v, h)
	}
	for _, a := range d.Axes() {
		if err := renderAxes(canvas, &a, h); err != nil {
			return err
		}
	}
	return nil
}

func renderAxes(canvas *svg.SVG, a *figscene.Axes, h float64) error {
	armX, armY := a.Arms()
	renderVector(canvas, armX, h)
	renderVector(canvas, armY, h)
	for _, obj := range a.Objects() {
		switch o := obj.(type) {
		case figscene.Point:
			renderPoint(canvas, o, h)
		case figscene.Vector:
			renderVector(canvas, o, h)
		case figscene.Curve:
			renderCurve(canvas, o, h)
		case figscene.Tick:
			renderTick(canvas, o, h)
		default:
			return &figscene.KindError{Kind: fmt.Sprintf("%T", obj)}
		}
	}
	return nil
}

func renderPoint(canvas *svg.SVG, p figscene.Point, h float64) {
	canvas.Circle(p.At.X, h-p.At.Y, p.Size/2, attr("fill", p.Style.Color))
	if l, ok := p.Label(); ok {
		renderLabel(canvas, l, p.Bounds(), p.Style.Color, h)
	}
}

func renderVector(canvas *svg.SVG, v figscene.Vector, h float64) {
	st := v.Style
	end := v.End()
	canvas.Line(v.Pos.X, h-v.Pos.Y, end.X, h-end.Y,
		attr("stroke", st.Color),
		attr("stroke-width", num(st.Thickness)),
		attr("stroke-linecap", "round"),
		attr("stroke-dasharray", st.DashArray()))

	// A zero direction has no angle: the arrow tip is skipped and only
	// the zero-length line above remains.
	wings, ok := figpath.Arrowhead(v.Pos, v.Dir, v.ArrowSize)
	if !ok {
		if l, lok := v.Label(); lok {
			renderLabel(canvas, l, v.Bounds(), st.Color, h)
		}
		return
	}

	if st.Line == figscene.Dashed {
		// A solid stub under the tip, so the arrowhead never sits on a
		// gap of the dash pattern.
		if from, to, gok := v.GapFill(); gok {
			canvas.Line(from.X, h-from.Y, to.X, h-to.Y,
				attr("stroke", st.Color),
				attr("stroke-width", num(st.Thickness)))
		}
	}

	for _, wing := range wings {
		canvas.Path(wing.FlipY(h).ToSVGPath(),
			attr("stroke", st.Color),
			attr("stroke-width", num(st.Thickness)),
			attr("stroke-linecap", "round"),
			attr("fill", "none"))
	}

	if l, ok := v.Label(); ok {
		renderLabel(canvas, l, v.Bounds(), st.Color, h)
	}
}

func renderCurve(canvas *svg.SVG, c figscene.Curve, h float64) {
	canvas.Path(c.Path().FlipY(h).ToSVGPath(),
		attr("stroke", c.Style.Color),
		attr("stroke-width", num(c.Style.Thickness)),
		attr("stroke-linecap", "round"),
		attr("stroke-dasharray", c.Style.DashArray()),
		attr("fill", "none"))
	if l, ok := c.Label(); ok {
		renderLabel(canvas, l, c.Bounds(), c.Style.Color, h)
	}
}

func renderTick(canvas *svg.SVG, t figscene.Tick, h float64) {
	canvas.Line(t.A.X, h-t.A.Y, t.B.X, h-t.B.Y,
		attr("stroke", t.Color), attr("stroke-width", "1"))
}

func renderLabel(canvas *svg.SVG, l figscene.Label, box figscene.Bounds, color string, h float64) {
	pos := l.Position(box)
	canvas.Text(pos.X, h-pos.Y, l.Text,
		attr("text-anchor", "middle"),
		attr("font-size", "12px"),
		attr("fill", color))
}
