package isovt

// Canvas is the drawing surface renderers paint onto.
//
// Coordinates are floating point canvas pixels relative to the object's
// top-left corner. Every primitive carries its own colour; there is no
// current-colour state to reset between primitives.
type Canvas interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c RGBA)

	// DrawRect outlines a rectangle. The outline lies inside r and
	// greater thicknesses extend inwards.
	DrawRect(r Rect, thickness float64, c RGBA)

	// FillPath fills the closed subpaths of p using the non-zero rule.
	FillPath(p *Path, c RGBA)

	// StrokePath strokes p with the given style.
	StrokePath(p *Path, s Stroke, c RGBA)

	// DrawLine draws a straight line with butt ends.
	DrawLine(from, to Point, thickness float64, c RGBA)

	// DrawArc strokes an elliptical arc.
	DrawArc(a Arc, s Stroke, c RGBA)
}

// Translate returns a Canvas that forwards every primitive to c moved by
// (dx, dy). Container objects use it to paint children at their offsets.
func Translate(c Canvas, dx, dy float64) Canvas {
	if dx == 0 && dy == 0 {
		return c
	}
	if t, ok := c.(*translated); ok {
		return &translated{dst: t.dst, dx: t.dx + dx, dy: t.dy + dy}
	}
	return &translated{dst: c, dx: dx, dy: dy}
}

type translated struct {
	dst    Canvas
	dx, dy float64
}

func (t *translated) move(p Point) Point { return Point{X: p.X + t.dx, Y: p.Y + t.dy} }

func (t *translated) FillRect(r Rect, c RGBA) {
	t.dst.FillRect(r.Offset(t.dx, t.dy), c)
}

func (t *translated) DrawRect(r Rect, thickness float64, c RGBA) {
	t.dst.DrawRect(r.Offset(t.dx, t.dy), thickness, c)
}

func (t *translated) FillPath(p *Path, c RGBA) {
	t.dst.FillPath(p.Translate(t.dx, t.dy), c)
}

func (t *translated) StrokePath(p *Path, s Stroke, c RGBA) {
	t.dst.StrokePath(p.Translate(t.dx, t.dy), s, c)
}

func (t *translated) DrawLine(from, to Point, thickness float64, c RGBA) {
	t.dst.DrawLine(t.move(from), t.move(to), thickness, c)
}

func (t *translated) DrawArc(a Arc, s Stroke, c RGBA) {
	a.Center = t.move(a.Center)
	t.dst.DrawArc(a, s, c)
}
