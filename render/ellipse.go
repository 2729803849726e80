// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
)

// arcStep is the angular increment in radians when tracing ellipse arcs.
const arcStep = 0.05

// Ellipse renders an output ellipse.
type Ellipse struct {
	obj object.Ellipse
}

// NewEllipse creates a renderer for e.
func NewEllipse(e object.Ellipse) *Ellipse {
	return &Ellipse{obj: e}
}

// ID implements Renderer.
func (e *Ellipse) ID() object.ID { return e.obj.ID }

// Size implements Renderer.
func (e *Ellipse) Size() (width, height float64) {
	return float64(e.obj.Width), float64(e.obj.Height)
}

// Render implements Renderer.
func (e *Ellipse) Render(c isovt.Canvas, ws object.Resolver) {
	fill := resolveFill(ws, e.obj.FillAttributes)
	line := resolveLine(ws, e.obj.LineAttributes, lineStyle{colour: isovt.Black})
	fillColour := fill.with(line.colour)

	w, h := e.Size()
	lw := line.width
	kind := e.obj.EllipseType
	start, end := e.obj.StartAngle, e.obj.EndAngle

	switch {
	case start == end && (kind == object.EllipseClosed || kind == object.EllipseSegment):
		// A single line from the centre to the border at the start angle.
		if lw > 0 {
			from, to := RadialLine(w, h, lw, start)
			c.DrawLine(from, to, lw, line.colour)
		}

	case kind == object.EllipseClosed || start == end:
		if fill.needed && kind != object.EllipseOpen {
			p := isovt.NewPath()
			p.Ellipse(0, 0, w, h)
			c.FillPath(p, fillColour)
		}
		if lw > 0 {
			p := isovt.NewPath()
			p.Ellipse(lw/2, lw/2, w-lw, h-lw)
			c.StrokePath(p, isovt.DefaultStroke().WithWidth(lw), line.colour)
		}

	default:
		bounds := isovt.R(lw/2, lw/2, w-lw, h-lw)
		pts := ArcPoints(bounds, degToRad(2*float64(start)), degToRad(2*float64(end)))
		p := isovt.NewPath()
		if kind == object.EllipseSegment {
			p.MoveTo(w/2, h/2)
		}
		for _, pt := range pts {
			p.LineTo(pt.X, pt.Y)
		}
		switch kind {
		case object.EllipseSegment:
			p.LineTo(w/2, h/2)
			p.Close()
		case object.EllipseSection:
			p.Close()
		}
		if fill.needed && kind != object.EllipseOpen {
			c.FillPath(p, fillColour)
		}
		if lw > 0 {
			c.StrokePath(p, isovt.DefaultStroke().WithWidth(lw), line.colour)
		}
	}
}

// RadialLine returns the line drawn for a closed ellipse whose start and
// end angles are equal: from the centre of a w x h ellipse to its border,
// pulled in by half the line width, at the VT angle (two-degree units,
// counter-clockwise from +X).
func RadialLine(w, h, lineWidth float64, vtAngle uint8) (from, to isovt.Point) {
	// Measured clockwise from +Y.
	a := degToRad(-(2*float64(vtAngle) - 90))
	if a < 0 {
		a += 2 * math.Pi
	}
	cx, cy := w/2, h/2
	hw := lineWidth / 2
	sin, cos := math.Sincos(a)
	return isovt.Pt(cx, cy), isovt.Pt(cx+(cx-hw)*sin, cy-(cy-hw)*cos)
}

// ArcPoints traces the border of the ellipse inscribed in bounds from
// angle from to angle to (radians, counter-clockwise from +X). Points are
// placed at the true polar angle on the ellipse, not at the parametric
// angle, and the exact end point is always included. When to is smaller
// than from the arc wraps through 0.
func ArcPoints(bounds isovt.Rect, from, to float64) []isovt.Point {
	a, b := bounds.W/2, bounds.H/2
	cx, cy := bounds.X+a, bounds.Y+b
	if to < from {
		to += 2 * math.Pi
	}
	pts := make([]isovt.Point, 0, int((to-from)/arcStep)+2)
	for t := from; t < to; t += arcStep {
		pts = append(pts, polarPoint(a, b, t).Add(isovt.Pt(cx, cy)))
	}
	return append(pts, polarPoint(a, b, to).Add(isovt.Pt(cx, cy)))
}

// polarPoint returns the point of an origin-centred ellipse with radii a
// and b that lies at polar angle theta, in canvas orientation (y down).
func polarPoint(a, b, theta float64) isovt.Point {
	const eps = 1e-6
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	switch {
	case math.Abs(theta-math.Pi/2) < eps:
		return isovt.Pt(0, -b)
	case math.Abs(theta-3*math.Pi/2) < eps:
		return isovt.Pt(0, b)
	}
	tan := math.Tan(theta)
	div := math.Sqrt(b*b + a*a*tan*tan)
	if div == 0 {
		return isovt.Point{}
	}
	x := a * b / div
	y := -a * b * tan / div
	if theta > math.Pi/2 && theta < 3*math.Pi/2 {
		x, y = -x, -y
	}
	return isovt.Pt(x, y)
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
