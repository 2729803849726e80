// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
)

const (
	barValueLineWidth = 3
	barTickMinLength  = 2
	barTickMaxLength  = 6
)

// barKey selects one axis and growth direction of a linear bar graph.
type barKey struct {
	horizontal bool
	positive   bool
}

// barLayout holds the geometry of one axis/direction combination.
type barLayout struct {
	// position is the coordinate on the value axis for ratio.
	position func(ratio, w, h float64) float64
	// bar is the filled region for ratio.
	bar func(ratio, w, h float64) isovt.Rect
}

var barLayouts = map[barKey]barLayout{
	// From left.
	{horizontal: true, positive: true}: {
		position: func(r, w, _ float64) float64 { return w * r },
		bar:      func(r, w, h float64) isovt.Rect { return isovt.R(0, 0, w*r, h) },
	},
	// From right.
	{horizontal: true, positive: false}: {
		position: func(r, w, _ float64) float64 { return w * (1 - r) },
		bar:      func(r, w, h float64) isovt.Rect { return isovt.R(w*(1-r), 0, w*r, h) },
	},
	// From bottom.
	{horizontal: false, positive: true}: {
		position: func(r, _, h float64) float64 { return h * (1 - r) },
		bar:      func(r, w, h float64) isovt.Rect { return isovt.R(0, h*(1-r), w, h*r) },
	},
	// From top.
	{horizontal: false, positive: false}: {
		position: func(r, _, h float64) float64 { return h * r },
		bar:      func(r, w, h float64) isovt.Rect { return isovt.R(0, 0, w, h*r) },
	},
}

// LinearBarGraph renders an output linear bar graph.
type LinearBarGraph struct {
	obj object.LinearBarGraph
}

// NewLinearBarGraph creates a renderer for b.
func NewLinearBarGraph(b object.LinearBarGraph) *LinearBarGraph {
	return &LinearBarGraph{obj: b}
}

// ID implements Renderer.
func (b *LinearBarGraph) ID() object.ID { return b.obj.ID }

// Size implements Renderer.
func (b *LinearBarGraph) Size() (width, height float64) {
	return float64(b.obj.Width), float64(b.obj.Height)
}

// Ratio returns the current value as a fraction of the maximum.
func (b *LinearBarGraph) Ratio(ws object.Resolver) float64 {
	v := object.ResolveValue(ws, b.obj.VariableReference, uint32(b.obj.Value))
	return valueRatio(v, b.obj.MaxValue)
}

// TargetRatio returns the current target value as a fraction of the maximum.
func (b *LinearBarGraph) TargetRatio(ws object.Resolver) float64 {
	v := object.ResolveValue(ws, b.obj.TargetValueVariableReference, uint32(b.obj.TargetValue))
	return valueRatio(v, b.obj.MaxValue)
}

// Render implements Renderer.
func (b *LinearBarGraph) Render(c isovt.Canvas, ws object.Resolver) {
	opts := b.obj.Options
	w, h := b.Size()
	colour := ws.Colour(b.obj.Colour)
	key := barKey{horizontal: opts.Has(object.BarHorizontal), positive: opts.Has(object.BarGrowsPositive)}
	layout := barLayouts[key]

	if opts.Has(object.BarDrawBorder) {
		c.DrawRect(isovt.R(0, 0, w, h), 1, colour)
	}

	ratio := b.Ratio(ws)
	if opts.Has(object.BarLineStyle) {
		from, to := axisLine(key.horizontal, layout.position(ratio, w, h), w, h)
		c.DrawLine(from, to, barValueLineWidth, colour)
	} else {
		c.FillRect(layout.bar(ratio, w, h), colour)
	}

	if opts.Has(object.BarDrawTargetLine) {
		from, to := axisLine(key.horizontal, layout.position(b.TargetRatio(ws), w, h), w, h)
		c.DrawLine(from, to, 1, ws.Colour(b.obj.TargetLineColour))
	}

	if opts.Has(object.BarDrawTicks) {
		b.drawTicks(c, key.horizontal, w, h, colour)
	}
}

// drawTicks draws the interior tick marks along both long edges. The
// first and last positions fall on the border and are skipped.
func (b *LinearBarGraph) drawTicks(c isovt.Canvas, horizontal bool, w, h float64, colour isovt.RGBA) {
	n := int(b.obj.NumberOfTicks)
	if n < 2 {
		return
	}
	extent, cross := h, w
	if horizontal {
		extent, cross = w, h
	}
	spacing := extent / float64(n-1)
	length := tickLength(cross)
	for k := 1; k <= n-2; k++ {
		p := spacing * float64(k)
		if horizontal {
			c.DrawLine(isovt.Pt(p, 0), isovt.Pt(p, length), 1, colour)
			c.DrawLine(isovt.Pt(p, h-length), isovt.Pt(p, h), 1, colour)
		} else {
			c.DrawLine(isovt.Pt(0, p), isovt.Pt(length, p), 1, colour)
			c.DrawLine(isovt.Pt(w-length, p), isovt.Pt(w, p), 1, colour)
		}
	}
}

// axisLine returns the line across the graph at value-axis coordinate p.
func axisLine(horizontal bool, p, w, h float64) (from, to isovt.Point) {
	if horizontal {
		return isovt.Pt(p, 0), isovt.Pt(p, h)
	}
	return isovt.Pt(0, p), isovt.Pt(w, p)
}

func tickLength(cross float64) float64 {
	l := cross / 3
	if l > barTickMaxLength {
		return barTickMaxLength
	}
	if l < barTickMinLength {
		return barTickMinLength
	}
	return l
}
