package figscene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okfig/okfig/figpath"
)

func TestNewDiagramValidation(t *testing.T) {
	var verr *ValidationError
	_, err := NewDiagram(0, 100, 0, 0)
	require.ErrorAs(t, err, &verr)
	_, err = NewDiagram(100, -5, 0, 0)
	require.ErrorAs(t, err, &verr)
}

func TestDiagramFill(t *testing.T) {
	d, err := NewDiagram(100, 100, 0, 0)
	require.NoError(t, err)

	_, ok := d.Fill()
	assert.False(t, ok)

	d.SetFill("aliceblue")
	fill, ok := d.Fill()
	require.True(t, ok)
	assert.Equal(t, "aliceblue", fill)
}

func TestDiagramLooseVectorForcedSolid(t *testing.T) {
	d, err := NewDiagram(100, 100, 0, 0)
	require.NoError(t, err)

	v, err := d.AddVector(figpath.Pt(0, 0), figpath.Pt(10, 10), WithLine(Dashed))
	require.NoError(t, err)
	assert.Equal(t, Solid, v.Style.Line)
	assert.Equal(t, Solid, d.Vectors()[0].Style.Line)
}

func TestDiagramAddObject(t *testing.T) {
	d, err := NewDiagram(100, 100, 0, 0)
	require.NoError(t, err)

	p, err := NewPoint(2, figpath.Pt(5, 5))
	require.NoError(t, err)
	_, err = d.AddObject(p)
	require.NoError(t, err)
	assert.Len(t, d.Points(), 1)

	c, err := NewCurve(
		[]figpath.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		[]figpath.Point{{X: 1, Y: 0}, {X: 1, Y: 0}},
	)
	require.NoError(t, err)
	_, err = d.AddObject(c)
	var kerr *KindError
	require.ErrorAs(t, err, &kerr)
}

func TestDiagramAddAxesCopies(t *testing.T) {
	d, err := NewDiagram(100, 100, 0, 0)
	require.NoError(t, err)

	a, err := NewAxes(figpath.Pt(10, 10), figpath.Pt(50, 50))
	require.NoError(t, err)
	_, err = a.AddPoint(1, figpath.Pt(0, 0))
	require.NoError(t, err)

	d.AddAxes(a)

	// Growing the original after attach must not leak into the diagram.
	_, err = a.AddPoint(1, figpath.Pt(5, 5))
	require.NoError(t, err)
	assert.Len(t, d.Axes()[0].Objects(), 1)
}

func TestFigureValidation(t *testing.T) {
	var verr *ValidationError
	_, err := NewFigure(-1, 100)
	require.ErrorAs(t, err, &verr)
}

func TestFigureAddDiagramCopies(t *testing.T) {
	fig, err := NewFigure(400, 400)
	require.NoError(t, err)

	d, err := NewDiagram(100, 100, 0, 0)
	require.NoError(t, err)
	_, err = d.AddPoint(1, figpath.Pt(1, 1))
	require.NoError(t, err)

	fig.AddDiagram(d)

	_, err = d.AddPoint(1, figpath.Pt(2, 2))
	require.NoError(t, err)
	require.Len(t, fig.Diagrams(), 1)
	assert.Len(t, fig.Diagrams()[0].Points(), 1)
}

func TestFigureKeepsInsertionOrder(t *testing.T) {
	fig, err := NewFigure(400, 400)
	require.NoError(t, err)

	d1, err := NewDiagram(100, 100, 0, 0)
	require.NoError(t, err)
	d2, err := NewDiagram(100, 100, 50, 50)
	require.NoError(t, err)
	fig.AddDiagram(d1)
	fig.AddDiagram(d2)

	ds := fig.Diagrams()
	require.Len(t, ds, 2)
	assert.Equal(t, 0.0, ds[0].X)
	assert.Equal(t, 50.0, ds[1].X)
}
