// Package object defines snapshots of ISOBUS VT objects and the read-only
// view of a working set that renderers resolve references against.
//
// Every object is a plain value. A renderer copies its object once when it
// is built; attribute objects and number variables it refers to are looked
// up through a [Resolver] on every paint.
package object

import (
	"fmt"

	"github.com/gogpu/isovt"
)

// ID identifies an object inside a working set.
type ID uint16

// NullID is the reserved ID meaning "no object".
const NullID ID = 0xFFFF

// IsNull reports whether id is the null reference.
func (id ID) IsNull() bool { return id == NullID }

// Type is the ISO 11783-6 object type code.
type Type uint8

// Object type codes handled by this module.
const (
	TypeSoftKeyMask    Type = 4
	TypeKey            Type = 5
	TypeRectangle      Type = 14
	TypeEllipse        Type = 15
	TypePolygon        Type = 16
	TypeMeter          Type = 17
	TypeLinearBarGraph Type = 18
	TypeNumberVariable Type = 21
	TypeLineAttributes Type = 24
	TypeFillAttributes Type = 25
	TypeObjectPointer  Type = 27
)

var typeNames = map[Type]string{
	TypeSoftKeyMask:    "SoftKeyMask",
	TypeKey:            "Key",
	TypeRectangle:      "OutputRectangle",
	TypeEllipse:        "OutputEllipse",
	TypePolygon:        "OutputPolygon",
	TypeMeter:          "OutputMeter",
	TypeLinearBarGraph: "OutputLinearBarGraph",
	TypeNumberVariable: "NumberVariable",
	TypeLineAttributes: "LineAttributes",
	TypeFillAttributes: "FillAttributes",
	TypeObjectPointer:  "ObjectPointer",
}

// String returns the ISO 11783-6 name of the type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Object is implemented by every VT object snapshot.
type Object interface {
	// ObjectID returns the object's ID in its working set.
	ObjectID() ID
	// Type returns the object's type code.
	Type() Type
}

// Drawable is an object with a fixed on-screen size.
type Drawable interface {
	Object
	Size() (width, height uint16)
}

// Resolver is the read-only query interface of a working set.
//
// Implementations must tolerate being called on every paint; renderers do
// not cache what they resolve.
type Resolver interface {
	// Object returns the object with the given ID.
	Object(id ID) (Object, bool)
	// Colour resolves a palette index.
	Colour(index uint8) isovt.RGBA
}

// lookup resolves id and asserts the result to T. Null, missing and
// mistyped references all report false.
func lookup[T Object](ws Resolver, id ID, want Type) (T, bool) {
	var zero T
	if id.IsNull() || ws == nil {
		return zero, false
	}
	obj, ok := ws.Object(id)
	if !ok {
		isovt.Logger().Debug("object: reference not found", "id", id, "want", want)
		return zero, false
	}
	v, ok := obj.(T)
	if !ok {
		isovt.Logger().Debug("object: reference has wrong type", "id", id, "want", want, "got", obj.Type())
		return zero, false
	}
	return v, true
}

// LookupLineAttributes resolves a line attributes reference.
func LookupLineAttributes(ws Resolver, id ID) (LineAttributes, bool) {
	return lookup[LineAttributes](ws, id, TypeLineAttributes)
}

// LookupFillAttributes resolves a fill attributes reference.
func LookupFillAttributes(ws Resolver, id ID) (FillAttributes, bool) {
	return lookup[FillAttributes](ws, id, TypeFillAttributes)
}

// LookupNumberVariable resolves a number variable reference.
func LookupNumberVariable(ws Resolver, id ID) (NumberVariable, bool) {
	return lookup[NumberVariable](ws, id, TypeNumberVariable)
}

// ResolveValue returns the value of the number variable ref when it
// resolves, and static otherwise.
func ResolveValue(ws Resolver, ref ID, static uint32) uint32 {
	if nv, ok := LookupNumberVariable(ws, ref); ok {
		return nv.Value
	}
	return static
}
