package figpath

import "math"

// This file implements the transformation from
// high level diagram shapes to their path equivalent

// wingAngle is the half opening of an arrowhead (20 degrees).
const wingAngle = math.Pi / 9

// Arrowhead builds the two curved wings of an arrow tip for a vector
// starting at pos with direction dir. Each wing is a quadratic segment
// swept from the endpoint back toward pos: the wing target sits at
// distance size along the directions theta±wingAngle, the control point
// at 0.7*size along the half-angle bisector. ok is false for a zero
// direction, where no angle exists and no wings are produced.
func Arrowhead(pos, dir Point, size float64) (wings []Path, ok bool) {
	if dir.IsZero() {
		return nil, false
	}
	end := pos.Add(dir)
	theta := math.Atan2(dir.Y, dir.X)
	for _, sign := range [2]float64{-1, 1} {
		target := Point{
			X: end.X - size*math.Cos(theta+sign*wingAngle),
			Y: end.Y - size*math.Sin(theta+sign*wingAngle),
		}
		control := Point{
			X: end.X - 0.7*size*math.Cos(theta+sign*wingAngle/2),
			Y: end.Y - 0.7*size*math.Sin(theta+sign*wingAngle/2),
		}
		var wing Path
		wing.Start(end)
		wing.QuadBezier(control, target)
		wings = append(wings, wing)
	}
	return wings, true
}

// GapFill is the short solid segment from a dashed vector's endpoint
// back along its direction, sized to the dash gap so the trailing gap of
// the dash pattern never reaches the arrow tip. ok is false for a zero
// direction.
func GapFill(pos, dir Point, gap float64) (from, to Point, ok bool) {
	if dir.IsZero() {
		return Point{}, Point{}, false
	}
	end := pos.Add(dir)
	theta := math.Atan2(dir.Y, dir.X)
	to = Point{
		X: end.X - gap*math.Cos(theta),
		Y: end.Y - gap*math.Sin(theta),
	}
	return end, to, true
}

// Hermite converts anchors plus per-anchor tangents to a path of cubic
// spans: one MoveTo followed by len(points)-1 CubicTo operations.
// Tangents are scaled per span by the characteristic length
// h = |P(i)P(i+1)|, keeping curvature visually consistent when anchors
// are unevenly spaced. Coincident anchors fall back to h = 1 so the
// span keeps its curvature instead of collapsing.
// The caller guarantees len(points) == len(tangents) >= 2.
func Hermite(points, tangents []Point) Path {
	var p Path
	p.Start(points[0])
	for i := 0; i < len(points)-1; i++ {
		p0, p1 := points[i], points[i+1]
		m0, m1 := tangents[i], tangents[i+1]
		h := p0.Distance(p1)
		if h == 0 {
			h = 1
		}
		c1 := p0.Add(m0.Mul(h / 3))
		c2 := p1.Sub(m1.Mul(h / 3))
		p.CubeBezier(c1, c2, p1)
	}
	return p
}
