// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
)

// Polygon renders an output polygon.
type Polygon struct {
	obj object.Polygon
}

// NewPolygon creates a renderer for p. The point list is copied.
func NewPolygon(p object.Polygon) *Polygon {
	p.Points = append([]object.Point(nil), p.Points...)
	return &Polygon{obj: p}
}

// ID implements Renderer.
func (p *Polygon) ID() object.ID { return p.obj.ID }

// Size implements Renderer.
func (p *Polygon) Size() (width, height float64) {
	return float64(p.obj.Width), float64(p.obj.Height)
}

// Render implements Renderer. Polygons with fewer than three points are
// not drawn.
func (p *Polygon) Render(c isovt.Canvas, ws object.Resolver) {
	if len(p.obj.Points) < 3 {
		return
	}
	line := resolveLine(ws, p.obj.LineAttributes, defaultLine)
	fill := resolveFill(ws, p.obj.FillAttributes)

	// Wide lines are shifted so the outline stays inside the object.
	var off float64
	if line.width > 1 {
		off = line.width / 2
	}
	path := isovt.NewPath()
	for i, pt := range p.obj.Points {
		x, y := float64(pt.X)+off, float64(pt.Y)+off
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}

	if p.obj.PolygonType != object.PolygonOpen {
		path.Close()
		if fill.needed {
			c.FillPath(path, fill.with(line.colour))
		}
	}

	if line.width > 0 {
		s := isovt.Stroke{
			Width:      line.width,
			Cap:        isovt.LineCapSquare,
			Join:       isovt.LineJoinRound,
			MiterLimit: 4,
		}
		c.StrokePath(path, s, line.colour)
	}
}
