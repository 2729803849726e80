package workingset

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
)

// ErrUnknownType is returned when a working set file names an object type
// this package cannot decode.
var ErrUnknownType = errors.New("workingset: unknown object type")

// file is the on-disk layout of a working set description.
//
//	palette:
//	  - {index: 240, colour: "#ff8800"}
//	objects:
//	  - {id: 1, type: rectangle, width: 40, height: 20, line_attributes: 10}
//	  - {id: 10, type: line_attributes, colour: 12, width: 2}
//
// Reference fields left out of an object default to the null ID.
type file struct {
	Palette []paletteEntry `yaml:"palette"`
	Objects []yaml.Node    `yaml:"objects"`
}

type paletteEntry struct {
	Index  uint8  `yaml:"index"`
	Colour string `yaml:"colour"`
}

type header struct {
	ID   object.ID `yaml:"id"`
	Type string    `yaml:"type"`
}

// LoadFile reads a YAML working set description from path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "workingset: open")
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return s, nil
}

// Load decodes a YAML working set description.
func Load(r io.Reader) (*Set, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "workingset: decode")
	}

	s := New()
	for _, e := range doc.Palette {
		c, err := parseColour(e.Colour)
		if err != nil {
			return nil, errors.Wrapf(err, "palette index %d", e.Index)
		}
		s.SetColour(e.Index, c)
	}

	for i := range doc.Objects {
		node := &doc.Objects[i]
		obj, err := decodeObject(node)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", node.Line)
		}
		if err := s.Add(obj); err != nil {
			return nil, errors.Wrapf(err, "line %d", node.Line)
		}
	}

	isovt.Logger().Info("workingset: loaded", "objects", s.Len(), "palette_overrides", len(doc.Palette))
	return s, nil
}

func decodeObject(node *yaml.Node) (object.Object, error) {
	var h header
	if err := node.Decode(&h); err != nil {
		return nil, errors.Wrap(err, "object header")
	}

	const null = object.NullID
	switch strings.ToLower(h.Type) {
	case "rectangle":
		return decodeAs(node, object.Rectangle{LineAttributes: null, FillAttributes: null})
	case "ellipse":
		return decodeAs(node, object.Ellipse{LineAttributes: null, FillAttributes: null})
	case "polygon":
		return decodeAs(node, object.Polygon{LineAttributes: null, FillAttributes: null})
	case "meter":
		return decodeAs(node, object.Meter{VariableReference: null})
	case "linear_bar_graph":
		return decodeAs(node, object.LinearBarGraph{VariableReference: null, TargetValueVariableReference: null})
	case "soft_key_mask":
		return decodeAs(node, object.SoftKeyMask{})
	case "key":
		return decodeAs(node, object.Key{})
	case "number_variable":
		return decodeAs(node, object.NumberVariable{})
	case "line_attributes":
		return decodeAs(node, object.LineAttributes{})
	case "fill_attributes":
		return decodeAs(node, object.FillAttributes{Pattern: null})
	case "object_pointer":
		return decodeAs(node, object.ObjectPointer{Value: null})
	}
	return nil, errors.Wrapf(ErrUnknownType, "object %d: %q", h.ID, h.Type)
}

// decodeAs decodes node over the defaults already present in v.
func decodeAs[T object.Object](node *yaml.Node, v T) (object.Object, error) {
	if err := node.Decode(&v); err != nil {
		return nil, errors.Wrapf(err, "decode %s", v.Type())
	}
	return v, nil
}

// parseColour accepts "#rrggbb" or "rrggbb".
func parseColour(s string) (isovt.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return isovt.RGBA{}, errors.Errorf("colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return isovt.RGBA{}, errors.Wrapf(err, "colour %q", s)
	}
	return isovt.RGB8(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
