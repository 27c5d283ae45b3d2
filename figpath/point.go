package figpath

import "math"

// Point is a position or displacement in the scene plane.
// Scene coordinates grow upward; the flip to top-left-origin
// document space happens once, through Path.FlipY.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns the translation of p by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the translation of p by -q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Distance is the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// IsZero reports whether both components are exactly zero.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }
