// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
)

// Renderer paints one VT object.
//
// Render may be called any number of times. Each call resolves the
// object's references through ws and emits primitives onto c in canvas
// coordinates relative to the object's top-left corner.
//
// Thread Safety: Renderers are NOT thread-safe. A renderer and the
// canvas it paints on should be used from a single goroutine.
type Renderer interface {
	// ID returns the ID of the rendered object.
	ID() object.ID

	// Size returns the on-screen size of the object in canvas pixels.
	Size() (width, height float64)

	// Render draws the object.
	Render(c isovt.Canvas, ws object.Resolver)
}

// Option configures renderers built by New.
type Option func(*config)

type config struct {
	dimensions Dimensions
	depth      int
}

// maxNesting bounds container recursion so a pointer cycle in a working
// set cannot recurse forever.
const maxNesting = 8

// nested returns the configuration for a container's children.
func (c config) nested() config {
	c.depth++
	return c
}

func defaultConfig() config {
	return config{dimensions: DefaultDimensions()}
}

// WithDimensions sets the soft-key area geometry used by soft-key masks
// and their keys.
func WithDimensions(d Dimensions) Option {
	return func(c *config) {
		c.dimensions = d
	}
}

// New builds the renderer for obj. It reports false for object types
// that have no visual representation.
//
// ws is only consulted while building container objects; the returned
// renderer keeps no reference to it.
func New(ws object.Resolver, obj object.Object, opts ...Option) (Renderer, bool) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newRenderer(ws, obj, cfg)
}

func newRenderer(ws object.Resolver, obj object.Object, cfg config) (Renderer, bool) {
	if obj == nil {
		return nil, false
	}
	if cfg.depth > maxNesting {
		isovt.Logger().Debug("render: nesting too deep", "id", obj.ObjectID())
		return nil, false
	}
	switch o := obj.(type) {
	case object.Ellipse:
		return NewEllipse(o), true
	case object.LinearBarGraph:
		return NewLinearBarGraph(o), true
	case object.Meter:
		return NewMeter(o), true
	case object.Polygon:
		return NewPolygon(o), true
	case object.Rectangle:
		return NewRectangle(o), true
	case object.SoftKeyMask:
		return newSoftKeyMask(ws, o, cfg), true
	case object.Key:
		return newKey(o, cfg), true
	case object.ObjectPointer:
		return newObjectPointer(o, cfg), true
	}
	isovt.Logger().Debug("render: no renderer for object", "id", obj.ObjectID(), "type", obj.Type())
	return nil, false
}
