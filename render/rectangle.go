// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
)

// Rectangle renders an output rectangle.
type Rectangle struct {
	obj object.Rectangle
}

// NewRectangle creates a renderer for r.
func NewRectangle(r object.Rectangle) *Rectangle {
	return &Rectangle{obj: r}
}

// ID implements Renderer.
func (r *Rectangle) ID() object.ID { return r.obj.ID }

// Size implements Renderer.
func (r *Rectangle) Size() (width, height float64) {
	return float64(r.obj.Width), float64(r.obj.Height)
}

// Render implements Renderer.
func (r *Rectangle) Render(c isovt.Canvas, ws object.Resolver) {
	line := resolveLine(ws, r.obj.LineAttributes, defaultLine)
	fill := resolveFill(ws, r.obj.FillAttributes)
	w, h := r.Size()

	switch {
	case fill.pattern:
		fillCheckerboard(c, w, h)
	case fill.needed:
		c.FillRect(isovt.R(0, 0, w, h), fill.with(line.colour))
	}
	if line.width <= 0 {
		return
	}

	suppressed := r.obj.LineSuppression
	if suppressed == 0 {
		c.DrawRect(isovt.R(0, 0, w, h), line.width, line.colour)
		return
	}

	// Each edge sits where the matching side of the unified outline would.
	hw := line.width / 2
	edges := []struct {
		bit      object.LineSuppression
		from, to isovt.Point
	}{
		{object.SuppressTop, isovt.Pt(0, hw), isovt.Pt(w, hw)},
		{object.SuppressRight, isovt.Pt(w-hw, 0), isovt.Pt(w-hw, h)},
		{object.SuppressBottom, isovt.Pt(0, h-hw), isovt.Pt(w, h-hw)},
		{object.SuppressLeft, isovt.Pt(hw, 0), isovt.Pt(hw, h)},
	}
	for _, e := range edges {
		if !suppressed.Has(e.bit) {
			c.DrawLine(e.from, e.to, line.width, line.colour)
		}
	}
}

const checkerSize = 10

// fillCheckerboard fills a w x h area with white and black squares,
// white in the top-left corner. Squares on the right and bottom edges are
// clipped to the area.
func fillCheckerboard(c isovt.Canvas, w, h float64) {
	c.FillRect(isovt.R(0, 0, w, h), isovt.White)
	for row := 0; float64(row*checkerSize) < h; row++ {
		for col := 0; float64(col*checkerSize) < w; col++ {
			if (row+col)%2 == 0 {
				continue
			}
			x, y := float64(col*checkerSize), float64(row*checkerSize)
			c.FillRect(isovt.R(x, y, math.Min(checkerSize, w-x), math.Min(checkerSize, h-y)), isovt.Black)
		}
	}
}
