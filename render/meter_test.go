// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
	"github.com/gogpu/isovt/recording"
)

func meter(opts object.MeterOptions, start, end uint8, value, maxValue uint16) object.Meter {
	return object.Meter{
		ID:                3,
		Width:             100,
		NeedleColour:      colourRed,
		BorderColour:      colourBlue,
		ArcAndTickColour:  colourGreen,
		Options:           opts,
		StartAngle:        start,
		EndAngle:          end,
		MaxValue:          maxValue,
		VariableReference: object.NullID,
		Value:             value,
	}
}

func TestMeterIsSquare(t *testing.T) {
	w, h := NewMeter(meter(0, 0, 90, 0, 100)).Size()
	if w != 100 || h != 100 {
		t.Errorf("Size() = %gx%g, want 100x100", w, h)
	}
}

func TestMeterNeedleAngle(t *testing.T) {
	tests := []struct {
		name       string
		opts       object.MeterOptions
		start, end uint8
		ratio      float64
		want       float64
	}{
		{"ccw at zero", 0, 0, 90, 0, 180},
		{"ccw half", 0, 0, 90, 0.5, 270},
		{"cw at zero", object.MeterClockwise, 0, 90, 0, 180},
		{"cw full", object.MeterClockwise, 0, 90, 1, 0},
		{"cw wrapped end", object.MeterClockwise, 135, 45, 1, 270},
		{"cw wrapped end at zero", object.MeterClockwise, 135, 45, 0, 450},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMeter(meter(tt.opts, tt.start, tt.end, 0, 100)).NeedleAngle(tt.ratio)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NeedleAngle(%g) = %g, want %g", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestMeterNeedleContinuousAcrossWrap(t *testing.T) {
	const maxValue = 1000
	// One value step moves the needle at most 360/maxValue degrees.
	maxStep := 49 * degToRad(360.0/maxValue) * 1.0001

	for _, opts := range []object.MeterOptions{0, object.MeterClockwise} {
		// End crosses start: just below (wraps by 360) and just above.
		for _, end := range []uint8{59, 60, 61} {
			m := NewMeter(meter(opts, 60, end, 0, maxValue))
			prev := m.NeedleTip(0)
			for v := 1; v <= maxValue; v++ {
				tip := m.NeedleTip(float64(v) / maxValue)
				if d := tip.Distance(prev); d > maxStep {
					t.Fatalf("opts %d end %d: needle jumped %g px between values %d and %d", opts, end, d, v-1, v)
				}
				prev = tip
			}
		}

		// At a fixed value the needle moves smoothly as the end angle
		// steps across the start angle.
		below := NewMeter(meter(opts, 60, 59, 0, maxValue)).NeedleTip(0)
		above := NewMeter(meter(opts, 60, 61, 0, maxValue)).NeedleTip(0)
		if d := below.Distance(above); d > 49*degToRad(4)*1.0001 {
			t.Errorf("opts %d: needle jumped %g px as the end angle crossed the start", opts, d)
		}
	}
}

func TestMeterArc(t *testing.T) {
	tests := []struct {
		name         string
		start, end   uint8
		wantStartDeg float64
		wantSweepDeg float64
	}{
		{"quarter", 0, 45, 0, 90},
		{"wrapped", 135, 45, 270, 180},
		{"equal is full circle", 30, 30, 60, 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(NewMeter(meter(object.MeterDrawArc, tt.start, tt.end, 0, 100)), fixture())
			arcs := commandsOf[recording.DrawArcCommand](rec)
			if len(arcs) != 1 {
				t.Fatalf("got %d arcs, want 1", len(arcs))
			}
			want := isovt.Arc{
				Center: isovt.Pt(50, 50),
				RX:     49,
				RY:     49,
				Start:  -degToRad(tt.wantStartDeg),
				Sweep:  -degToRad(tt.wantSweepDeg),
			}
			if diff := cmp.Diff(want, arcs[0].Arc, approx); diff != "" {
				t.Errorf("arc mismatch (-want +got):\n%s", diff)
			}
			if arcs[0].Stroke.Width != 1 || arcs[0].Colour != colour(colourGreen) {
				t.Errorf("arc stroke = %+v colour %v, want 1px green", arcs[0].Stroke, arcs[0].Colour)
			}
		})
	}
}

func TestMeterPrimitiveOrder(t *testing.T) {
	m := meter(object.MeterDrawBorder|object.MeterDrawArc|object.MeterDrawTicks, 0, 90, 50, 100)
	m.NumberOfTicks = 3
	rec := record(NewMeter(m), fixture())
	wantTypes(t, rec,
		recording.CmdDrawRect,
		recording.CmdDrawArc,
		recording.CmdDrawLine, recording.CmdFillPath,
		recording.CmdDrawLine, recording.CmdDrawLine, recording.CmdDrawLine,
	)

	border := rec.Commands()[0].(recording.DrawRectCommand)
	if border.Rect != isovt.R(0, 0, 100, 100) || border.Thickness != 1 || border.Colour != colour(colourBlue) {
		t.Errorf("border = %+v", border)
	}
}

func TestMeterNeedleGeometry(t *testing.T) {
	// Start 0, end 180 degrees, counter-clockwise: ratio 0.5 points at 270
	// degrees, straight down.
	rec := record(NewMeter(meter(0, 0, 90, 50, 100)), fixture())
	wantTypes(t, rec, recording.CmdDrawLine, recording.CmdFillPath)

	shaft := rec.Commands()[0].(recording.DrawLineCommand)
	want := recording.DrawLineCommand{
		From:      isovt.Pt(50, 50),
		To:        isovt.Pt(50, 94),
		Thickness: 1,
		Colour:    colour(colourRed),
	}
	if diff := cmp.Diff(want, shaft, approx); diff != "" {
		t.Errorf("shaft mismatch (-want +got):\n%s", diff)
	}

	head := rec.Commands()[1].(recording.FillPathCommand)
	pts := pathPoints(rec.Path(head.Path))
	wantHead := []isovt.Point{isovt.Pt(50, 99), isovt.Pt(47.5, 94), isovt.Pt(52.5, 94)}
	if diff := cmp.Diff(wantHead, pts, approx); diff != "" {
		t.Errorf("head mismatch (-want +got):\n%s", diff)
	}
}

func TestMeterTicks(t *testing.T) {
	m := meter(object.MeterDrawTicks, 0, 90, 0, 100)
	m.NumberOfTicks = 3
	rec := record(NewMeter(m), fixture())

	var ticks []recording.DrawLineCommand
	for _, l := range commandsOf[recording.DrawLineCommand](rec) {
		if l.Colour == colour(colourGreen) {
			ticks = append(ticks, l)
		}
	}
	// Counter-clockwise ticks count down from the end angle: 180, 90 and
	// 0 degrees.
	want := []recording.DrawLineCommand{
		{From: isovt.Pt(1, 50), To: isovt.Pt(6, 50)},
		{From: isovt.Pt(50, 1), To: isovt.Pt(50, 6)},
		{From: isovt.Pt(99, 50), To: isovt.Pt(94, 50)},
	}
	for i := range want {
		want[i].Thickness = 1
		want[i].Colour = colour(colourGreen)
	}
	if diff := cmp.Diff(want, ticks, approx); diff != "" {
		t.Errorf("ticks mismatch (-want +got):\n%s", diff)
	}
}

func TestMeterTicksFollowArc(t *testing.T) {
	tests := []struct {
		name       string
		opts       object.MeterOptions
		start, end uint8
		want       []float64
	}{
		{"ccw", 0, 0, 90, []float64{180, 90, 0}},
		{"cw", object.MeterClockwise, 0, 90, []float64{0, 90, 180}},
		{"ccw wrapped", 0, 135, 45, []float64{450, 360, 270}},
		{"cw wrapped", object.MeterClockwise, 135, 45, []float64{270, 360, 450}},
		{"single ccw", 0, 10, 60, []float64{120}},
		{"single cw", object.MeterClockwise, 10, 60, []float64{20}},
		{"full circle cw", object.MeterClockwise, 30, 30, []float64{60, 150, 240, 330}},
		{"full circle ccw", 0, 30, 30, []float64{420, 330, 240, 150}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := meter(tt.opts|object.MeterDrawTicks, tt.start, tt.end, 0, 100)
			m.NumberOfTicks = uint8(len(tt.want))
			var got []float64
			for a := range NewMeter(m).tickAngles() {
				got = append(got, a)
			}
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("tick angles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMeterTicksOnUpperArc(t *testing.T) {
	// The 0..180 degree scale covers the upper half of the dial.
	for _, opts := range []object.MeterOptions{0, object.MeterClockwise} {
		m := meter(opts|object.MeterDrawArc|object.MeterDrawTicks, 0, 90, 0, 100)
		m.NumberOfTicks = 5
		for _, l := range commandsOf[recording.DrawLineCommand](record(NewMeter(m), fixture())) {
			if l.Colour != colour(colourGreen) {
				continue
			}
			if l.From.Y > 50+1e-9 {
				t.Errorf("opts %d: tick at %v lies below the scale", opts, l.From)
			}
		}
	}
}

func TestMeterSingleTick(t *testing.T) {
	m := meter(object.MeterDrawTicks, 0, 90, 0, 100)
	m.NumberOfTicks = 1
	rec := record(NewMeter(m), fixture())
	if n := len(commandsOf[recording.DrawLineCommand](rec)); n != 2 {
		t.Errorf("got %d lines, want needle shaft plus one tick", n)
	}
}

func TestMeterVariableMatchesStatic(t *testing.T) {
	opts := object.MeterDrawArc | object.MeterDrawBorder | object.MeterDrawTicks
	static := meter(opts, 10, 80, 33, 120)
	static.NumberOfTicks = 4
	viaVar := static
	viaVar.Value = 0
	viaVar.VariableReference = valueVar

	ws := fixture()
	ws.SetValue(valueVar, 33)
	a := record(NewMeter(static), ws)
	b := record(NewMeter(viaVar), ws)
	if diff := cmp.Diff(a.Commands(), b.Commands()); diff != "" {
		t.Errorf("variable and static rendering differ (-static +variable):\n%s", diff)
	}
	if diff := cmp.Diff(a.Path(0).Elements(), b.Path(0).Elements()); diff != "" {
		t.Errorf("needle heads differ (-static +variable):\n%s", diff)
	}
}

func TestMeterZeroMax(t *testing.T) {
	m := NewMeter(meter(0, 0, 90, 10, 0))
	if got := m.Ratio(fixture()); got != 0 {
		t.Errorf("Ratio() = %g, want 0", got)
	}
}
