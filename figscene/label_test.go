package figscene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okfig/okfig/figpath"
)

func TestLabelAnchors(t *testing.T) {
	box := Bounds{X: 10, Y: 10, W: 20, H: 20}
	center := figpath.Pt(20, 20)

	tests := []struct {
		label Label
		want  figpath.Point
	}{
		{LabelAbove("a"), center.Add(figpath.Pt(0, 12))},
		{LabelBelow("b"), center.Add(figpath.Pt(0, -12))},
		{LabelLeft("l"), center.Add(figpath.Pt(-12, 0))},
		{LabelRight("r"), center.Add(figpath.Pt(12, 0))},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.label.Position(box))
	}
}

func TestLabelAtHeuristic(t *testing.T) {
	box := Bounds{X: 0, Y: 0, W: 40, H: 40}

	// Both components within 50: an offset from the center.
	rel := LabelAt("x", 10, -5)
	assert.Equal(t, figpath.Pt(30, 15), rel.Position(box))

	// The boundary itself is still relative.
	edge := LabelAt("x", 50, -50)
	assert.Equal(t, figpath.Pt(70, -30), edge.Position(box))

	// One component beyond 50: the pair is an absolute position.
	abs := LabelAt("x", 120, 10)
	assert.Equal(t, figpath.Pt(120, 10), abs.Position(box))
}
