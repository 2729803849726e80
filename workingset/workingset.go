// Package workingset holds the object pool of one VT client and answers
// the read-only queries renderers make while painting.
package workingset

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
)

// ErrDuplicateID is returned by Add when the ID is already taken.
var ErrDuplicateID = errors.New("workingset: duplicate object id")

// ErrNullID is returned by Add for objects carrying the null ID.
var ErrNullID = errors.New("workingset: object uses the null id")

// Set is an in-memory working set. It implements [object.Resolver].
//
// Set is safe for concurrent use: a protocol goroutine may replace objects
// while a paint pass reads them.
type Set struct {
	mu      sync.RWMutex
	objects map[object.ID]object.Object
	palette Palette
	rev     uint64
}

var _ object.Resolver = (*Set)(nil)

// New creates an empty working set using the default colour table.
func New() *Set {
	return &Set{
		objects: make(map[object.ID]object.Object),
		palette: DefaultPalette(),
	}
}

// Add inserts obj. It fails if the ID is null or already present.
func (s *Set) Add(obj object.Object) error {
	id := obj.ObjectID()
	if id.IsNull() {
		return errors.Wrapf(ErrNullID, "%s", obj.Type())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.objects[id]; dup {
		return errors.Wrapf(ErrDuplicateID, "id %d", id)
	}
	s.objects[id] = obj
	s.rev++
	return nil
}

// Put inserts or replaces obj, as a change-attribute or change-numeric-value
// command would.
func (s *Set) Put(obj object.Object) {
	s.mu.Lock()
	s.objects[obj.ObjectID()] = obj
	s.rev++
	s.mu.Unlock()
}

// SetValue changes the value of a number variable, or the target of an
// object pointer. It reports false when id is neither.
func (s *Set) SetValue(id object.ID, value uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch obj := s.objects[id].(type) {
	case object.NumberVariable:
		obj.Value = value
		s.objects[id] = obj
	case object.ObjectPointer:
		// #nosec G115 -- pointer values are 16-bit object IDs on the wire
		obj.Value = object.ID(value)
		s.objects[id] = obj
	default:
		return false
	}
	s.rev++
	return true
}

// Remove deletes the object with the given ID.
func (s *Set) Remove(id object.ID) {
	s.mu.Lock()
	delete(s.objects, id)
	s.rev++
	s.mu.Unlock()
}

// Object implements [object.Resolver].
func (s *Set) Object(id object.ID) (object.Object, bool) {
	if id.IsNull() {
		return nil, false
	}
	s.mu.RLock()
	obj, ok := s.objects[id]
	s.mu.RUnlock()
	return obj, ok
}

// Colour implements [object.Resolver].
func (s *Set) Colour(index uint8) isovt.RGBA {
	s.mu.RLock()
	c := s.palette[index]
	s.mu.RUnlock()
	return c
}

// SetColour redefines one palette entry, as the VT colour map commands do.
func (s *Set) SetColour(index uint8, c isovt.RGBA) {
	s.mu.Lock()
	s.palette[index] = c
	s.rev++
	s.mu.Unlock()
}

// Revision returns a counter that changes whenever an object or palette
// entry changes.
func (s *Set) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rev
}

// Len returns the number of objects.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// IDs returns all object IDs in ascending order.
func (s *Set) IDs() []object.ID {
	s.mu.RLock()
	ids := make([]object.ID, 0, len(s.objects))
	for id := range s.objects {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
