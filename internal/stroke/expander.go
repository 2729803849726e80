package stroke

import "math"

// Point represents a 2D point (internal copy to avoid an import cycle).
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point     { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) sub(q Point) Point     { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }
func (p Point) dot(q Point) float64   { return p.X*q.X + p.Y*q.Y }
func (p Point) cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) perp() Point           { return Point{X: -p.Y, Y: p.X} }
func (p Point) length() float64       { return math.Hypot(p.X, p.Y) }

func (p Point) near(q Point, eps float64) bool { return p.sub(q).length() <= eps }

func (p Point) unit() Point {
	l := p.length()
	if l < 1e-12 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Cap specifies the shape of open polyline endpoints.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join specifies the shape of polyline corners.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Style defines the stroke expansion parameters.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Polygon is a closed fill outline; the closing edge is implicit.
type Polygon []Point

// Expander converts stroked polylines to fill polygons.
type Expander struct {
	style Style
	out   []Polygon
}

// NewExpander creates an expander for the given style.
// A miter limit below 1 is replaced by 4.
func NewExpander(style Style) *Expander {
	if style.MiterLimit < 1 {
		style.MiterLimit = 4
	}
	return &Expander{style: style}
}

// Expand returns the fill polygons covering the stroked subpaths.
// Every polygon has positive signed area in canvas coordinates.
func (e *Expander) Expand(lines []Polyline) []Polygon {
	e.out = e.out[:0]
	if e.style.Width <= 0 {
		return nil
	}
	for _, l := range lines {
		e.expandOne(l)
	}
	result := make([]Polygon, len(e.out))
	copy(result, e.out)
	return result
}

func (e *Expander) expandOne(l Polyline) {
	pts := dedupe(l.Points, l.Closed)
	hw := e.style.Width / 2

	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		// A zero-length open subpath only shows its caps.
		if l.Closed {
			return
		}
		switch e.style.Cap {
		case CapRound:
			e.emit(circle(pts[0], hw))
		case CapSquare:
			p := pts[0]
			e.emit(Polygon{{p.X - hw, p.Y - hw}, {p.X + hw, p.Y - hw}, {p.X + hw, p.Y + hw}, {p.X - hw, p.Y + hw}})
		}
		return
	}

	n := len(pts)
	segs := n - 1
	if l.Closed {
		segs = n
	}

	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		d := b.sub(a).unit()
		if !l.Closed && e.style.Cap == CapSquare {
			if i == 0 {
				a = a.sub(d.scale(hw))
			}
			if i == segs-1 {
				b = b.add(d.scale(hw))
			}
		}
		off := d.perp().scale(hw)
		e.emit(Polygon{a.add(off), b.add(off), b.sub(off), a.sub(off)})
	}

	first, last := 1, n-1
	if l.Closed {
		first, last = 0, n
	}
	for i := first; i < last; i++ {
		prev := pts[(i-1+n)%n]
		cur := pts[i]
		next := pts[(i+1)%n]
		e.join(prev, cur, next, hw)
	}

	if !l.Closed && e.style.Cap == CapRound {
		e.emit(circle(pts[0], hw))
		e.emit(circle(pts[n-1], hw))
	}
}

// join emits the piece filling the outer wedge at cur.
func (e *Expander) join(prev, cur, next Point, hw float64) {
	d0 := cur.sub(prev).unit()
	d1 := next.sub(cur).unit()
	cross := d0.cross(d1)
	if math.Abs(cross) < 1e-9 && d0.dot(d1) > 0 {
		return
	}

	if e.style.Join == JoinRound {
		e.emit(circle(cur, hw))
		return
	}

	// The outer side is opposite the turn.
	side := -1.0
	if cross < 0 {
		side = 1.0
	}
	o0 := d0.perp().scale(side)
	o1 := d1.perp().scale(side)
	p0 := cur.add(o0.scale(hw))
	p1 := cur.add(o1.scale(hw))

	if e.style.Join == JoinMiter {
		bis := o0.add(o1).unit()
		if c := bis.dot(o0); c > 1e-9 && 1/c <= e.style.MiterLimit {
			tip := cur.add(bis.scale(hw / c))
			e.emit(Polygon{cur, p0, tip, p1})
			return
		}
	}
	e.emit(Polygon{cur, p0, p1})
}

// emit stores p with positive winding.
func (e *Expander) emit(p Polygon) {
	if signedArea(p) < 0 {
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
	}
	e.out = append(e.out, p)
}

func signedArea(p Polygon) float64 {
	var a float64
	for i := range p {
		j := (i + 1) % len(p)
		a += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return a / 2
}

// circle approximates a disc with a regular polygon fine enough that the
// chord error stays under a quarter pixel.
func circle(c Point, r float64) Polygon {
	n := int(math.Ceil(math.Pi / math.Acos(math.Max(-1, 1-0.25/math.Max(r, 0.25)))))
	if n < 8 {
		n = 8
	}
	if n > 128 {
		n = 128
	}
	p := make(Polygon, n)
	for i := range p {
		s, co := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		p[i] = Point{X: c.X + r*co, Y: c.Y + r*s}
	}
	return p
}

// dedupe drops consecutive coincident points, and the closing point of a
// ring when it repeats the first.
func dedupe(pts []Point, closed bool) []Point {
	const eps = 1e-9
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && p.near(out[len(out)-1], eps) {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0].near(out[len(out)-1], eps) {
		out = out[:len(out)-1]
	}
	return out
}
