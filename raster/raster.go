// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements isovt.Canvas on an anti-aliased RGBA image.
//
// Every primitive is reduced to closed polygons and scan converted with
// golang.org/x/image/vector. Strokes are expanded into fill polygons by
// internal/stroke before rasterization, so a single fill routine serves
// all six primitives.
//
// # Example
//
//	c := raster.New(120, 80, raster.WithBackground(isovt.White))
//	r.Render(c, ws)
//	_ = c.EncodePNG(w)
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/internal/stroke"
)

// arcStep is the maximum angle in radians between consecutive points
// of a flattened arc.
const arcStep = 0.05

// Canvas renders primitives into an *image.RGBA.
type Canvas struct {
	img   *image.RGBA
	scale float64
	rz    *vector.Rasterizer
}

var _ isovt.Canvas = (*Canvas)(nil)

// New creates a canvas covering width x height canvas pixels.
// The backing image is scaled by the WithScale factor.
func New(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := int(math.Ceil(float64(width) * o.scale))
	h := int(math.Ceil(float64(height) * o.scale))
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scale: o.scale,
		rz:    vector.NewRasterizer(w, h),
	}
	if o.background.A > 0 {
		draw.Draw(c.img, c.img.Bounds(), image.NewUniform(o.background.Color()), image.Point{}, draw.Src)
	}
	return c
}

// Image returns the backing image. It is not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// FillRect implements isovt.Canvas.
func (c *Canvas) FillRect(r isovt.Rect, col isovt.RGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c.fill([]stroke.Polygon{rectPolygon(r, false)}, col)
}

// DrawRect implements isovt.Canvas. The outline is a ring between r and r
// inset by thickness; the inner edge is wound the opposite way.
func (c *Canvas) DrawRect(r isovt.Rect, thickness float64, col isovt.RGBA) {
	if thickness <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	if 2*thickness >= r.W || 2*thickness >= r.H {
		c.FillRect(r, col)
		return
	}
	outer := rectPolygon(r, false)
	inner := rectPolygon(r.Inset(thickness), true)
	c.fill([]stroke.Polygon{outer, inner}, col)
}

// FillPath implements isovt.Canvas. Open subpaths are closed implicitly.
func (c *Canvas) FillPath(p *isovt.Path, col isovt.RGBA) {
	if p == nil {
		return
	}
	lines := flatten(p)
	polys := make([]stroke.Polygon, 0, len(lines))
	for _, l := range lines {
		if len(l.Points) >= 3 {
			polys = append(polys, stroke.Polygon(l.Points))
		}
	}
	c.fill(polys, col)
}

// StrokePath implements isovt.Canvas.
func (c *Canvas) StrokePath(p *isovt.Path, s isovt.Stroke, col isovt.RGBA) {
	if p == nil {
		return
	}
	c.stroke(flatten(p), s, col)
}

// DrawLine implements isovt.Canvas.
func (c *Canvas) DrawLine(from, to isovt.Point, thickness float64, col isovt.RGBA) {
	line := stroke.Polyline{Points: []stroke.Point{toStroke(from), toStroke(to)}}
	c.stroke([]stroke.Polyline{line}, isovt.DefaultStroke().WithWidth(thickness), col)
}

// DrawArc implements isovt.Canvas.
func (c *Canvas) DrawArc(a isovt.Arc, s isovt.Stroke, col isovt.RGBA) {
	pts := a.Polyline(arcStep)
	line := stroke.Polyline{
		Points: make([]stroke.Point, len(pts)),
		Closed: math.Abs(a.Sweep) >= 2*math.Pi,
	}
	for i, pt := range pts {
		line.Points[i] = toStroke(pt)
	}
	c.stroke([]stroke.Polyline{line}, s, col)
}

func (c *Canvas) stroke(lines []stroke.Polyline, s isovt.Stroke, col isovt.RGBA) {
	e := stroke.NewExpander(stroke.Style{
		Width:      s.Width,
		Cap:        stroke.Cap(s.Cap),
		Join:       stroke.Join(s.Join),
		MiterLimit: s.MiterLimit,
	})
	c.fill(e.Expand(lines), col)
}

// fill rasterizes polys as one shape. Coverage is the clamped absolute
// winding, so overlapping pieces of equal orientation merge and opposite
// orientations cancel.
func (c *Canvas) fill(polys []stroke.Polygon, col isovt.RGBA) {
	if len(polys) == 0 || col.A <= 0 {
		return
	}
	b := c.img.Bounds()
	if b.Empty() {
		return
	}
	c.rz.Reset(b.Dx(), b.Dy())
	c.rz.DrawOp = draw.Over
	s := float32(c.scale)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		c.rz.MoveTo(float32(poly[0].X)*s, float32(poly[0].Y)*s)
		for _, pt := range poly[1:] {
			c.rz.LineTo(float32(pt.X)*s, float32(pt.Y)*s)
		}
		c.rz.ClosePath()
	}
	c.rz.Draw(c.img, b, image.NewUniform(col.Color()), image.Point{})
}

func rectPolygon(r isovt.Rect, reverse bool) stroke.Polygon {
	p := stroke.Polygon{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
	if reverse {
		p[1], p[3] = p[3], p[1]
	}
	return p
}

func toStroke(p isovt.Point) stroke.Point {
	return stroke.Point{X: p.X, Y: p.Y}
}
