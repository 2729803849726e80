// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/internal/stroke"
)

// flatTolerance bounds the distance in canvas pixels between a cubic
// and its flattened chords.
const flatTolerance = 0.1

// flatten converts p into polylines, one per subpath. Cubic curves are
// subdivided uniformly; the segment count follows from the control
// polygon's second differences.
func flatten(p *isovt.Path) []stroke.Polyline {
	var (
		lines []stroke.Polyline
		cur   []stroke.Point
		pen   isovt.Point
	)
	flush := func(closed bool) {
		if len(cur) >= 2 {
			lines = append(lines, stroke.Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case isovt.MoveTo:
			flush(false)
			pen = e.Point
			cur = append(cur, toStroke(pen))
		case isovt.LineTo:
			if len(cur) == 0 {
				cur = append(cur, toStroke(pen))
			}
			pen = e.Point
			cur = append(cur, toStroke(pen))
		case isovt.CubicTo:
			if len(cur) == 0 {
				cur = append(cur, toStroke(pen))
			}
			n := cubicSegments(pen, e.Control1, e.Control2, e.Point)
			for i := 1; i <= n; i++ {
				cur = append(cur, toStroke(cubicAt(pen, e.Control1, e.Control2, e.Point, float64(i)/float64(n))))
			}
			pen = e.Point
		case isovt.Close:
			if len(cur) > 0 {
				pen = isovt.Point{X: cur[0].X, Y: cur[0].Y}
			}
			flush(true)
		}
	}
	flush(false)
	return lines
}

func cubicSegments(p0, p1, p2, p3 isovt.Point) int {
	dd1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	dd2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	dd := math.Max(dd1, dd2)
	n := int(math.Ceil(math.Sqrt(0.75 * dd / flatTolerance)))
	if n < 1 {
		n = 1
	}
	if n > 256 {
		n = 256
	}
	return n
}

func cubicAt(p0, p1, p2, p3 isovt.Point, t float64) isovt.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return isovt.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
