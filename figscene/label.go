package figscene

import (
	"math"

	"github.com/okfig/okfig/figpath"
)

// Anchor tells where a label sits relative to its primitive.
type Anchor uint8

const (
	AnchorAt Anchor = iota // explicit pair, interpreted by the magnitude heuristic
	AnchorAbove
	AnchorBelow
	AnchorLeft
	AnchorRight
)

// anchorOffset is the fixed distance used by the directional anchors.
const anchorOffset = 12.0

// relativeLimit bounds the magnitude heuristic for explicit pairs: when
// both components are at most this value the pair is an offset from the
// primitive center, otherwise an absolute diagram-local position.
const relativeLimit = 50.0

// Label is an optional text annotation on a primitive.
// Offsets are in scene coordinates: positive Y moves the label up.
type Label struct {
	Text   string
	Anchor Anchor
	Offset figpath.Point
}

// LabelAbove places text a fixed distance above the primitive center.
func LabelAbove(text string) Label { return Label{Text: text, Anchor: AnchorAbove} }

// LabelBelow places text a fixed distance below the primitive center.
func LabelBelow(text string) Label { return Label{Text: text, Anchor: AnchorBelow} }

// LabelLeft places text a fixed distance left of the primitive center.
func LabelLeft(text string) Label { return Label{Text: text, Anchor: AnchorLeft} }

// LabelRight places text a fixed distance right of the primitive center.
func LabelRight(text string) Label { return Label{Text: text, Anchor: AnchorRight} }

// LabelAt places text by an explicit pair. Pairs with both components of
// magnitude at most 50 are offsets from the primitive center; larger
// pairs are absolute positions in the diagram.
func LabelAt(text string, dx, dy float64) Label {
	return Label{Text: text, Anchor: AnchorAt, Offset: figpath.Point{X: dx, Y: dy}}
}

// Position resolves the label against the primitive's bounding box,
// in scene coordinates.
func (l Label) Position(box Bounds) figpath.Point {
	center := box.Center()
	switch l.Anchor {
	case AnchorAbove:
		return center.Add(figpath.Point{Y: anchorOffset})
	case AnchorBelow:
		return center.Add(figpath.Point{Y: -anchorOffset})
	case AnchorLeft:
		return center.Add(figpath.Point{X: -anchorOffset})
	case AnchorRight:
		return center.Add(figpath.Point{X: anchorOffset})
	}
	if math.Abs(l.Offset.X) <= relativeLimit && math.Abs(l.Offset.Y) <= relativeLimit {
		return center.Add(l.Offset)
	}
	return l.Offset
}
