package isovt

import "math"

// Point represents a 2D point or vector in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Perp returns the vector rotated by 90 degrees.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Offset returns the rectangle moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset returns the rectangle shrunk by d on every side.
// The size never goes negative.
func (r Rect) Inset(d float64) Rect {
	r.X += d
	r.Y += d
	r.W = math.Max(0, r.W-2*d)
	r.H = math.Max(0, r.H-2*d)
	return r
}

// Arc is an elliptical arc around Center with radii RX and RY.
// Start and Sweep are canvas angles in radians: 0 points along +X and
// positive values turn towards +Y (clockwise on screen). A negative Sweep
// traces the arc counter-clockwise.
type Arc struct {
	Center Point
	RX, RY float64
	Start  float64
	Sweep  float64
}

// PointAt returns the point of the arc's ellipse at canvas angle a.
func (a Arc) PointAt(angle float64) Point {
	s, c := math.Sincos(angle)
	return Point{X: a.Center.X + a.RX*c, Y: a.Center.Y + a.RY*s}
}

// Polyline returns points along the arc no further than step radians apart,
// including both endpoints.
func (a Arc) Polyline(step float64) []Point {
	n := int(math.Ceil(math.Abs(a.Sweep) / step))
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, a.PointAt(a.Start+a.Sweep*float64(i)/float64(n)))
	}
	return pts
}
