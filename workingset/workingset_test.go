package workingset

import (
	"sync"
	"testing"

	"github.com/pkg/errors"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		index uint8
		want  string
	}{
		{0, "#000000"},
		{1, "#ffffff"},
		{2, "#009900"},
		{7, "#cccccc"},
		{12, "#ff0000"},
		{15, "#000099"},
		{16, "#000000"},
		{17, "#000033"},
		{22, "#003300"},
		{231, "#ffffff"},
		{232, "#000000"},
		{255, "#000000"},
	}
	for _, tt := range tests {
		if got := p[tt.index].Hex(); got != tt.want {
			t.Errorf("palette[%d] = %s, want %s", tt.index, got, tt.want)
		}
	}
}

func TestSetAddAndResolve(t *testing.T) {
	s := New()
	if err := s.Add(object.LineAttributes{ID: 3, Colour: 1, Width: 2}); err != nil {
		t.Fatalf("Add() = %v", err)
	}

	err := s.Add(object.FillAttributes{ID: 3})
	if errors.Cause(err) != ErrDuplicateID {
		t.Errorf("duplicate Add() = %v, want ErrDuplicateID", err)
	}
	if err := s.Add(object.NumberVariable{ID: object.NullID}); errors.Cause(err) != ErrNullID {
		t.Errorf("null Add() = %v, want ErrNullID", err)
	}

	obj, ok := s.Object(3)
	if !ok || obj.Type() != object.TypeLineAttributes {
		t.Fatalf("Object(3) = %v, %v", obj, ok)
	}
	if _, ok := s.Object(object.NullID); ok {
		t.Error("Object(NullID) should not resolve")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSetValue(t *testing.T) {
	s := New()
	s.Put(object.NumberVariable{ID: 8, Value: 1})
	s.Put(object.LineAttributes{ID: 9})

	if !s.SetValue(8, 42) {
		t.Fatal("SetValue on a number variable should succeed")
	}
	if got := object.ResolveValue(s, 8, 0); got != 42 {
		t.Errorf("value = %d, want 42", got)
	}
	if s.SetValue(9, 1) {
		t.Error("SetValue on line attributes should fail")
	}
	if s.SetValue(10, 1) {
		t.Error("SetValue on a missing object should fail")
	}
}

func TestSetValueObjectPointer(t *testing.T) {
	s := New()
	s.Put(object.ObjectPointer{ID: 3, Value: object.NullID})

	if !s.SetValue(3, 77) {
		t.Fatal("SetValue on an object pointer should succeed")
	}
	obj, _ := s.Object(3)
	if got := obj.(object.ObjectPointer).Value; got != 77 {
		t.Errorf("pointer value = %d, want 77", got)
	}
}

func TestSetColour(t *testing.T) {
	s := New()
	s.SetColour(240, isovt.RGB8(0xff, 0x88, 0))
	if got := s.Colour(240).Hex(); got != "#ff8800" {
		t.Errorf("Colour(240) = %s", got)
	}
}

func TestIDsSorted(t *testing.T) {
	s := New()
	for _, id := range []object.ID{30, 2, 17} {
		s.Put(object.NumberVariable{ID: id})
	}
	s.Remove(17)
	ids := s.IDs()
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 30 {
		t.Errorf("IDs() = %v, want [2 30]", ids)
	}
}

func TestSetConcurrentAccess(t *testing.T) {
	s := New()
	s.Put(object.NumberVariable{ID: 1})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.SetValue(1, uint32(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = object.ResolveValue(s, 1, 0)
			_ = s.Colour(uint8(i))
		}
	}()
	wg.Wait()
}

func TestRevision(t *testing.T) {
	s := New()
	last := s.Revision()
	changes := []func(){
		func() { s.Put(object.NumberVariable{ID: 1}) },
		func() { _ = s.Add(object.NumberVariable{ID: 2}) },
		func() { s.SetValue(1, 5) },
		func() { s.SetColour(3, isovt.White) },
		func() { s.Remove(2) },
	}
	for i, change := range changes {
		change()
		if rev := s.Revision(); rev == last {
			t.Errorf("change %d did not move the revision", i)
		} else {
			last = rev
		}
	}

	s.SetValue(99, 1)
	_ = s.Add(object.NumberVariable{ID: 1})
	if s.Revision() != last {
		t.Error("failed updates moved the revision")
	}
}
