// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
	"github.com/gogpu/isovt/recording"
	"github.com/gogpu/isovt/workingset"
)

// Shared fixture IDs and palette indices.
const (
	lineRed     object.ID = 100
	lineZero    object.ID = 101
	lineWide    object.ID = 102
	fillBlue    object.ID = 200
	fillLine    object.ID = 201
	fillPattern object.ID = 202
	fillNone    object.ID = 203
	valueVar    object.ID = 300

	colourRed    = 12
	colourBlue   = 9
	colourYellow = 14
	colourGreen  = 2
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// fixture returns a working set holding the shared attribute objects
// plus objs.
func fixture(objs ...object.Object) *workingset.Set {
	ws := workingset.New()
	ws.Put(object.LineAttributes{ID: lineRed, Colour: colourRed, Width: 2})
	ws.Put(object.LineAttributes{ID: lineZero, Colour: colourRed, Width: 0})
	ws.Put(object.LineAttributes{ID: lineWide, Colour: colourRed, Width: 4})
	ws.Put(object.FillAttributes{ID: fillBlue, FillType: object.FillColour, Colour: colourBlue, Pattern: object.NullID})
	ws.Put(object.FillAttributes{ID: fillLine, FillType: object.FillLineColour, Colour: colourBlue, Pattern: object.NullID})
	ws.Put(object.FillAttributes{ID: fillPattern, FillType: object.FillPattern, Colour: colourBlue, Pattern: 999})
	ws.Put(object.FillAttributes{ID: fillNone, FillType: object.NoFill, Colour: colourBlue, Pattern: object.NullID})
	ws.Put(object.NumberVariable{ID: valueVar, Value: 0})
	for _, o := range objs {
		ws.Put(o)
	}
	return ws
}

func colour(i uint8) isovt.RGBA {
	return workingset.DefaultPalette()[i]
}

// record renders r once and returns what it drew.
func record(r Renderer, ws object.Resolver) *recording.Recording {
	w, h := r.Size()
	rec := recording.NewRecorder(w, h)
	r.Render(rec, ws)
	return rec.FinishRecording()
}

func wantTypes(t *testing.T, rec *recording.Recording, want ...recording.CommandType) {
	t.Helper()
	if want == nil {
		want = []recording.CommandType{}
	}
	if diff := cmp.Diff(want, rec.Types()); diff != "" {
		t.Fatalf("command types mismatch (-want +got):\n%s\n%s", diff, spew.Sdump(rec.Commands()))
	}
}

// commandsOf returns the commands of type T in recording order.
func commandsOf[T recording.Command](rec *recording.Recording) []T {
	var out []T
	for _, cmd := range rec.Commands() {
		if c, ok := cmd.(T); ok {
			out = append(out, c)
		}
	}
	return out
}

// pathPoints returns the end points of every element of p.
func pathPoints(p *isovt.Path) []isovt.Point {
	var pts []isovt.Point
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case isovt.MoveTo:
			pts = append(pts, e.Point)
		case isovt.LineTo:
			pts = append(pts, e.Point)
		case isovt.CubicTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}
