package recording

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/isovt"
)

var blue = isovt.RGB(0, 0, 1)

func record(draw func(c isovt.Canvas)) *Recording {
	rec := NewRecorder(100, 50)
	draw(rec)
	return rec.FinishRecording()
}

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(100, 50)
	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rec.Len())
	}
	r := rec.FinishRecording()
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("size = %gx%g, want 100x50", r.Width(), r.Height())
	}
	if r.Resources() == nil {
		t.Error("Resources() should not be nil")
	}
}

func TestRecorderCommands(t *testing.T) {
	s := isovt.DefaultStroke().WithWidth(3)
	arc := isovt.Arc{Center: isovt.Pt(5, 5), RX: 4, RY: 4, Sweep: 1}
	r := record(func(c isovt.Canvas) {
		c.FillRect(isovt.R(0, 0, 10, 10), blue)
		c.DrawRect(isovt.R(1, 1, 8, 8), 2, isovt.Black)
		c.DrawLine(isovt.Pt(0, 0), isovt.Pt(3, 4), 1, blue)
		c.DrawArc(arc, s, isovt.White)
	})

	want := []Command{
		FillRectCommand{Rect: isovt.R(0, 0, 10, 10), Colour: blue},
		DrawRectCommand{Rect: isovt.R(1, 1, 8, 8), Thickness: 2, Colour: isovt.Black},
		DrawLineCommand{From: isovt.Pt(0, 0), To: isovt.Pt(3, 4), Thickness: 1, Colour: blue},
		DrawArcCommand{Arc: arc, Stroke: s, Colour: isovt.White},
	}
	if diff := cmp.Diff(want, r.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorderClonesPaths(t *testing.T) {
	p := isovt.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)

	rec := NewRecorder(10, 10)
	rec.StrokePath(p, isovt.DefaultStroke(), blue)
	p.LineTo(10, 10)
	r := rec.FinishRecording()

	cmd, ok := r.Commands()[0].(StrokePathCommand)
	if !ok {
		t.Fatalf("command = %T, want StrokePathCommand", r.Commands()[0])
	}
	got := r.Path(cmd.Path).Elements()
	want := []isovt.PathElement{
		isovt.MoveTo{Point: isovt.Pt(0, 0)},
		isovt.LineTo{Point: isovt.Pt(10, 0)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pooled path changed with caller's path (-want +got):\n%s", diff)
	}
}

func TestPlaybackPreservesOrder(t *testing.T) {
	p := isovt.NewPath()
	p.Rectangle(0, 0, 4, 4)
	src := record(func(c isovt.Canvas) {
		c.FillPath(p, blue)
		c.FillRect(isovt.R(0, 0, 1, 1), blue)
		c.StrokePath(p, isovt.DefaultStroke(), isovt.Black)
		c.DrawArc(isovt.Arc{RX: 1, RY: 1, Sweep: 2}, isovt.DefaultStroke(), blue)
	})

	dst := NewRecorder(100, 50)
	src.Playback(dst)
	got := dst.FinishRecording()

	if diff := cmp.Diff(src.Commands(), got.Commands()); diff != "" {
		t.Errorf("playback mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(p.Elements(), got.Path(0).Elements()); diff != "" {
		t.Errorf("played back path mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaybackThroughTranslate(t *testing.T) {
	src := record(func(c isovt.Canvas) {
		c.DrawLine(isovt.Pt(1, 1), isovt.Pt(2, 2), 1, blue)
	})
	dst := NewRecorder(10, 10)
	src.Playback(isovt.Translate(dst, 10, 20))

	want := []Command{
		DrawLineCommand{From: isovt.Pt(11, 21), To: isovt.Pt(12, 22), Thickness: 1, Colour: blue},
	}
	if diff := cmp.Diff(want, dst.FinishRecording().Commands()); diff != "" {
		t.Errorf("translated playback mismatch (-want +got):\n%s", diff)
	}
}

func TestTypes(t *testing.T) {
	r := record(func(c isovt.Canvas) {
		c.FillRect(isovt.R(0, 0, 1, 1), blue)
		c.DrawLine(isovt.Pt(0, 0), isovt.Pt(1, 1), 1, blue)
	})
	want := []CommandType{CmdFillRect, CmdDrawLine}
	if diff := cmp.Diff(want, r.Types()); diff != "" {
		t.Errorf("Types() mismatch (-want +got):\n%s", diff)
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CmdFillRect, "FillRect"},
		{CmdDrawRect, "DrawRect"},
		{CmdFillPath, "FillPath"},
		{CmdStrokePath, "StrokePath"},
		{CmdDrawLine, "DrawLine"},
		{CmdDrawArc, "DrawArc"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestResourcePool(t *testing.T) {
	pool := NewResourcePool()
	if ref := pool.AddPath(nil); ref != 0 {
		t.Errorf("first ref = %d, want 0", ref)
	}
	if pool.GetPath(0) != nil {
		t.Error("nil path should stay nil")
	}
	if pool.GetPath(5) != nil {
		t.Error("out of range ref should return nil")
	}
	if pool.PathCount() != 1 {
		t.Errorf("PathCount() = %d, want 1", pool.PathCount())
	}
	if PathRef(InvalidRef).IsValid() {
		t.Error("InvalidRef should not be valid")
	}
}

func TestDump(t *testing.T) {
	p := isovt.NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	r := record(func(c isovt.Canvas) {
		c.FillRect(isovt.R(0, 0, 1, 1), blue)
		c.StrokePath(p, isovt.DefaultStroke(), blue)
	})

	var buf bytes.Buffer
	if err := r.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"2 commands", "#0 FillRect", "#1 StrokePath", "LineTo"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump output missing %q:\n%s", want, out)
		}
	}
}
