package main

import (
	"flag"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/render"
)

func TestKeyFlagsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var k keyFlags
	k.register(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(render.DefaultDimensions(), k.dimensions()); diff != "" {
		t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyFlagsParse(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var k keyFlags
	k.register(fs)
	if err := fs.Parse([]string{"-key-columns", "2", "-key-order", "0", "-key-padding", "4"}); err != nil {
		t.Fatal(err)
	}
	d := k.dimensions()
	if d.KeyColumnCount != 2 || d.KeyOrder != render.OrderTopLeft || d.KeyPadding != 4 {
		t.Errorf("dimensions = %+v", d)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    isovt.RGBA
		wantErr bool
	}{
		{"#ff8800", isovt.RGB8(0xff, 0x88, 0), false},
		{"0000ff", isovt.RGB8(0, 0, 0xff), false},
		{"#fff", isovt.RGBA{}, true},
		{"zzzzzz", isovt.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := parseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestObjectID(t *testing.T) {
	if id, err := objectID(1000); err != nil || id != 1000 {
		t.Errorf("objectID(1000) = %v, %v", id, err)
	}
	if _, err := objectID(0xFFFF); err == nil {
		t.Error("objectID(NullID) should fail")
	}
}
