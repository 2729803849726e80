// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
)

// lineStyle is a resolved line attributes object.
type lineStyle struct {
	colour isovt.RGBA
	width  float64
}

// defaultLine is used by rectangles and polygons without line attributes.
var defaultLine = lineStyle{colour: isovt.Black, width: 1}

// resolveLine looks up id and returns def when it does not resolve.
func resolveLine(ws object.Resolver, id object.ID, def lineStyle) lineStyle {
	la, ok := object.LookupLineAttributes(ws, id)
	if !ok {
		return def
	}
	return lineStyle{colour: ws.Colour(la.Colour), width: float64(la.Width)}
}

// fillStyle is a resolved fill attributes object. The colour of a
// line-colour fill is only known once the line attributes are resolved.
type fillStyle struct {
	needed  bool
	useLine bool
	pattern bool
	colour  isovt.RGBA
}

// resolveFill looks up id. Pattern pictures are not rendered: rectangles
// substitute a checkerboard and other shapes fill with the line colour.
func resolveFill(ws object.Resolver, id object.ID) fillStyle {
	fa, ok := object.LookupFillAttributes(ws, id)
	if !ok {
		return fillStyle{}
	}
	switch fa.FillType {
	case object.FillColour:
		return fillStyle{needed: true, colour: ws.Colour(fa.Colour)}
	case object.FillLineColour:
		return fillStyle{needed: true, useLine: true}
	case object.FillPattern:
		isovt.Logger().Debug("render: pattern fill not rendered", "fill", id, "pattern", fa.Pattern)
		return fillStyle{needed: true, useLine: true, pattern: true}
	}
	return fillStyle{}
}

// with returns the fill colour given the resolved line colour.
func (f fillStyle) with(line isovt.RGBA) isovt.RGBA {
	if f.useLine {
		return line
	}
	return f.colour
}

// valueRatio returns value / maxValue, or 0 when maxValue is 0. The
// result is not clamped.
func valueRatio(value uint32, maxValue uint16) float64 {
	if maxValue == 0 {
		return 0
	}
	return float64(value) / float64(maxValue)
}
