package isovt

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
// On an empty path it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of path elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsClosed reports whether the last element closes its subpath.
func (p *Path) IsClosed() bool {
	if len(p.elements) == 0 {
		return false
	}
	_, ok := p.elements[len(p.elements)-1].(Close)
	return ok
}

// Translate returns a copy of the path moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	d := Pt(dx, dy)
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements = append(result.elements, MoveTo{Point: e.Point.Add(d)})
		case LineTo:
			result.elements = append(result.elements, LineTo{Point: e.Point.Add(d)})
		case CubicTo:
			result.elements = append(result.elements, CubicTo{
				Control1: e.Control1.Add(d),
				Control2: e.Control2.Add(d),
				Point:    e.Point.Add(d),
			})
		case Close:
			result.elements = append(result.elements, Close{})
		}
	}
	result.start = p.start.Add(d)
	result.current = p.current.Add(d)
	return result
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Polygon adds a closed polygon through pts.
func (p *Path) Polygon(pts ...Point) {
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	if len(pts) > 0 {
		p.Close()
	}
}

// Ellipse adds an ellipse inscribed in the rectangle (x, y, w, h).
func (p *Path) Ellipse(x, y, w, h float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
