// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"iter"
	"math"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
)

const (
	needleHeadLength = 5
	needleHeadWidth  = 5
	meterTickLength  = 5
)

// Meter renders an output meter.
type Meter struct {
	obj object.Meter
}

// NewMeter creates a renderer for m.
func NewMeter(m object.Meter) *Meter {
	return &Meter{obj: m}
}

// ID implements Renderer.
func (m *Meter) ID() object.ID { return m.obj.ID }

// Size implements Renderer. Meters are square.
func (m *Meter) Size() (width, height float64) {
	return float64(m.obj.Width), float64(m.obj.Width)
}

// Ratio returns the current value as a fraction of the maximum.
func (m *Meter) Ratio(ws object.Resolver) float64 {
	v := object.ResolveValue(ws, m.obj.VariableReference, uint32(m.obj.Value))
	return valueRatio(v, m.obj.MaxValue)
}

// angles returns the start and end angles in degrees with the end
// unwrapped so that it is not smaller than the start.
func (m *Meter) angles() (start, end float64) {
	start = 2 * float64(m.obj.StartAngle)
	end = 2 * float64(m.obj.EndAngle)
	if end < start {
		end += 360
	}
	return start, end
}

// NeedleAngle returns the needle direction in degrees, counter-clockwise
// from +X, for a value at ratio of the maximum.
func (m *Meter) NeedleAngle(ratio float64) float64 {
	start, end := m.angles()
	theta := ratio * (start - end)
	if m.obj.Options.Has(object.MeterClockwise) {
		return end + theta
	}
	return end - theta
}

// Render implements Renderer.
func (m *Meter) Render(c isovt.Canvas, ws object.Resolver) {
	opts := m.obj.Options
	w, _ := m.Size()
	r := w / 2
	centre := isovt.Pt(r, r)
	arcColour := ws.Colour(m.obj.ArcAndTickColour)

	if opts.Has(object.MeterDrawBorder) {
		c.DrawRect(isovt.R(0, 0, w, w), 1, ws.Colour(m.obj.BorderColour))
	}

	if opts.Has(object.MeterDrawArc) {
		c.DrawArc(m.arc(centre, r-1), isovt.DefaultStroke().WithJoin(isovt.LineJoinRound), arcColour)
	}

	m.drawNeedle(c, centre, r, m.NeedleAngle(m.Ratio(ws)), ws.Colour(m.obj.NeedleColour))

	if opts.Has(object.MeterDrawTicks) && m.obj.NumberOfTicks > 0 {
		for angle := range m.tickAngles() {
			dir := direction(angle)
			c.DrawLine(centre.Add(dir.Mul(r-1)), centre.Add(dir.Mul(r-1-meterTickLength)), 1, arcColour)
		}
	}
}

// tickAngles yields the tick directions in degrees, evenly spaced over the
// scale. Clockwise meters count from the start angle, counter-clockwise
// meters from the end angle. A single tick sits at that reference. On a
// full circle the ticks split it into n equal parts.
func (m *Meter) tickAngles() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		n := int(m.obj.NumberOfTicks)
		start, end := m.angles()
		span, parts := end-start, n-1
		if m.obj.StartAngle == m.obj.EndAngle {
			span, parts = 360, n
		}
		ref, step := start+span, -span
		if m.obj.Options.Has(object.MeterClockwise) {
			ref, step = start, span
		}
		if parts > 0 {
			step /= float64(parts)
		}
		for i := range n {
			if !yield(ref + float64(i)*step) {
				return
			}
		}
	}
}

// arc returns the meter scale. The raw angles are compared before the end
// is unwrapped; equal angles give a full circle.
func (m *Meter) arc(centre isovt.Point, radius float64) isovt.Arc {
	start, end := m.angles()
	sweep := end - start
	if m.obj.StartAngle == m.obj.EndAngle {
		sweep = 360
	}
	// Canvas angles grow towards +Y, VT angles towards -Y.
	return isovt.Arc{
		Center: centre,
		RX:     radius,
		RY:     radius,
		Start:  -degToRad(start),
		Sweep:  -degToRad(sweep),
	}
}

// drawNeedle draws an arrow from the centre with its tip one pixel inside
// the meter radius. The head has a fixed size.
func (m *Meter) drawNeedle(c isovt.Canvas, centre isovt.Point, r, angle float64, colour isovt.RGBA) {
	dir := direction(angle)
	tip := centre.Add(dir.Mul(r - 1))
	base := centre.Add(dir.Mul(r - 1 - needleHeadLength))
	side := dir.Perp().Mul(needleHeadWidth / 2.0)

	if r-1-needleHeadLength > 0 {
		c.DrawLine(centre, base, 1, colour)
	}
	head := isovt.NewPath()
	head.Polygon(tip, base.Add(side), base.Sub(side))
	c.FillPath(head, colour)
}

// NeedleTip returns the needle tip position for a value at ratio of the
// maximum.
func (m *Meter) NeedleTip(ratio float64) isovt.Point {
	w, _ := m.Size()
	r := w / 2
	return isovt.Pt(r, r).Add(direction(m.NeedleAngle(ratio)).Mul(r - 1))
}

// direction returns the canvas unit vector for a VT angle in degrees.
func direction(deg float64) isovt.Point {
	sin, cos := math.Sincos(degToRad(deg))
	return isovt.Pt(cos, -sin)
}
