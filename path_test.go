package isovt

import "testing"

func TestPathLineToStartsSubpath(t *testing.T) {
	p := NewPath()
	p.LineTo(3, 4)
	if _, ok := p.Elements()[0].(MoveTo); !ok {
		t.Fatalf("first element = %T, want MoveTo", p.Elements()[0])
	}
}

func TestPathPolygon(t *testing.T) {
	p := NewPath()
	p.Polygon(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}
	if !p.IsClosed() {
		t.Error("polygon path should be closed")
	}
	if p.CurrentPoint() != Pt(0, 0) {
		t.Errorf("CurrentPoint() after Close = %v, want start", p.CurrentPoint())
	}
}

func TestPathEllipse(t *testing.T) {
	p := NewPath()
	p.Ellipse(0, 0, 20, 10)
	m, ok := p.Elements()[0].(MoveTo)
	if !ok || m.Point != Pt(20, 5) {
		t.Fatalf("ellipse starts at %v, want {20 5}", p.Elements()[0])
	}
	if p.Len() != 6 {
		t.Errorf("Len() = %d, want 6", p.Len())
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	q := p.Clone()
	q.LineTo(3, 4)
	if p.Len() != 1 {
		t.Errorf("Clone shares storage: original Len() = %d", p.Len())
	}
}
