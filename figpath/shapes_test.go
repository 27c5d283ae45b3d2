package figpath

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowheadZeroDirection(t *testing.T) {
	wings, ok := Arrowhead(Pt(10, 10), Point{}, 8)
	assert.False(t, ok)
	assert.Nil(t, wings)
}

func TestArrowheadGeometry(t *testing.T) {
	pos, dir := Pt(2, 3), Pt(10, 0)
	const size = 8.0
	wings, ok := Arrowhead(pos, dir, size)
	require.True(t, ok)
	require.Len(t, wings, 2)

	end := pos.Add(dir)
	for _, wing := range wings {
		require.Len(t, wing, 2)
		move, isMove := wing[0].(MoveTo)
		require.True(t, isMove)
		assert.Equal(t, end, Point(move))

		quad, isQuad := wing[1].(QuadTo)
		require.True(t, isQuad)
		control, target := quad[0], quad[1]
		assert.InDelta(t, size, end.Distance(target), 1e-12)
		assert.InDelta(t, 0.7*size, end.Distance(control), 1e-12)
	}

	// For a horizontal direction the two wings mirror around the axis.
	q0 := wings[0][1].(QuadTo)
	q1 := wings[1][1].(QuadTo)
	assert.InDelta(t, q0[1].X, q1[1].X, 1e-12)
	assert.InDelta(t, end.Y-q0[1].Y, q1[1].Y-end.Y, 1e-12)

	// Wings open by 20 degrees off the shaft.
	back := q0[1].Sub(end)
	assert.InDelta(t, math.Pi-math.Pi/9, math.Abs(math.Atan2(back.Y, back.X)), 1e-12)
}

func TestGapFill(t *testing.T) {
	from, to, ok := GapFill(Pt(0, 0), Pt(3, 4), 2)
	require.True(t, ok)
	assert.Equal(t, Pt(3, 4), from)
	assert.InDelta(t, 1.8, to.X, 1e-12)
	assert.InDelta(t, 2.4, to.Y, 1e-12)

	_, _, ok = GapFill(Pt(5, 5), Point{}, 2)
	assert.False(t, ok)
}

func TestHermite(t *testing.T) {
	// Anchors three apart: h = 3, so tangents scale by exactly 1.
	p := Hermite(
		[]Point{{0, 0}, {0, 3}},
		[]Point{{1, 0}, {0, 2}},
	)
	assert.Equal(t, Path{
		MoveTo{X: 0, Y: 0},
		CubicTo{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 3}},
	}, p)
}

func TestHermiteOpCount(t *testing.T) {
	points := []Point{{0, 0}, {10, 5}, {20, 0}, {30, 8}}
	tangents := []Point{{5, 0}, {5, 0}, {5, 0}, {5, 0}}
	p := Hermite(points, tangents)

	require.Len(t, p, len(points))
	_, isMove := p[0].(MoveTo)
	assert.True(t, isMove)
	for _, op := range p[1:] {
		_, isCubic := op.(CubicTo)
		assert.True(t, isCubic)
	}
}

func TestHermiteCoincidentAnchors(t *testing.T) {
	// Coincident anchors use the fallback length 1 instead of
	// collapsing the span.
	p := Hermite(
		[]Point{{5, 5}, {5, 5}},
		[]Point{{3, 0}, {0, 3}},
	)
	assert.Equal(t, Path{
		MoveTo{X: 5, Y: 5},
		CubicTo{{X: 6, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 5}},
	}, p)

	d := p.ToSVGPath()
	assert.False(t, strings.Contains(d, "NaN"))
	assert.False(t, strings.Contains(d, "Inf"))
}
