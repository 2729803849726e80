// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/object"
)

// Placement is a child renderer positioned inside its container.
type Placement struct {
	Position isovt.Point
	Renderer Renderer
}

// SoftKeyMask renders a soft-key mask and the keys it lists.
//
// The key renderers are built by Rebuild, not on every paint; call
// Rebuild again whenever the mask's content in the working set changes.
type SoftKeyMask struct {
	obj  object.SoftKeyMask
	cfg  config
	keys []Placement
}

// NewSoftKeyMask creates a renderer for m and builds its keys from ws.
func NewSoftKeyMask(ws object.Resolver, m object.SoftKeyMask, opts ...Option) *SoftKeyMask {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newSoftKeyMask(ws, m, cfg)
}

func newSoftKeyMask(ws object.Resolver, m object.SoftKeyMask, cfg config) *SoftKeyMask {
	m.Objects = append([]object.ID(nil), m.Objects...)
	s := &SoftKeyMask{obj: m, cfg: cfg}
	s.Rebuild(ws)
	return s
}

// ID implements Renderer.
func (s *SoftKeyMask) ID() object.ID { return s.obj.ID }

// Size implements Renderer.
func (s *SoftKeyMask) Size() (width, height float64) {
	d := s.cfg.dimensions
	return float64(d.TotalWidth()), float64(d.Height)
}

// Dimensions returns the soft-key area geometry.
func (s *SoftKeyMask) Dimensions() Dimensions {
	return s.cfg.dimensions
}

// Keys returns the placed keys in placement order.
func (s *SoftKeyMask) Keys() []Placement {
	return s.keys
}

// Rebuild replaces the placed keys with fresh renderers for the mask's
// children. Children that do not resolve or cannot be drawn are skipped
// without using a slot; children beyond the available slots are dropped.
func (s *SoftKeyMask) Rebuild(ws object.Resolver) {
	d := s.cfg.dimensions
	capacity := d.KeyCount()
	keys := make([]Placement, 0, capacity)
	for _, id := range s.obj.Objects {
		if len(keys) >= capacity {
			isovt.Logger().Debug("render: soft key mask full", "mask", s.obj.ID, "dropped", id)
			break
		}
		if ws == nil {
			break
		}
		obj, ok := ws.Object(id)
		if !ok {
			isovt.Logger().Debug("render: soft key not found", "mask", s.obj.ID, "key", id)
			continue
		}
		r, ok := newRenderer(ws, obj, s.cfg.nested())
		if !ok {
			continue
		}
		if p, ok := r.(*ObjectPointer); ok {
			p.SetSize(float64(d.KeyWidth), float64(d.KeyHeight))
		}
		keys = append(keys, Placement{Position: d.Slot(len(keys)), Renderer: r})
	}
	s.keys = keys
}

// Render implements Renderer.
func (s *SoftKeyMask) Render(c isovt.Canvas, ws object.Resolver) {
	w, h := s.Size()
	c.FillRect(isovt.R(0, 0, w, h), ws.Colour(s.obj.BackgroundColour))
	for _, k := range s.keys {
		k.Renderer.Render(isovt.Translate(c, k.Position.X, k.Position.Y), ws)
	}
}

// Key renders a soft key: its background and the objects placed on it.
// Children are resolved on every paint.
type Key struct {
	obj  object.Key
	cfg  config
	w, h float64
}

// NewKey creates a renderer for k sized to the key dimensions.
func NewKey(k object.Key, opts ...Option) *Key {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newKey(k, cfg)
}

func newKey(k object.Key, cfg config) *Key {
	k.Objects = append([]object.Child(nil), k.Objects...)
	return &Key{
		obj: k,
		cfg: cfg,
		w:   float64(cfg.dimensions.KeyWidth),
		h:   float64(cfg.dimensions.KeyHeight),
	}
}

// ID implements Renderer.
func (k *Key) ID() object.ID { return k.obj.ID }

// Size implements Renderer.
func (k *Key) Size() (width, height float64) { return k.w, k.h }

// Render implements Renderer.
func (k *Key) Render(c isovt.Canvas, ws object.Resolver) {
	c.FillRect(isovt.R(0, 0, k.w, k.h), ws.Colour(k.obj.BackgroundColour))
	for _, child := range k.obj.Objects {
		obj, ok := ws.Object(child.ID)
		if !ok {
			isovt.Logger().Debug("render: key child not found", "key", k.obj.ID, "child", child.ID)
			continue
		}
		r, ok := newRenderer(ws, obj, k.cfg.nested())
		if !ok {
			continue
		}
		r.Render(isovt.Translate(c, float64(child.X), float64(child.Y)), ws)
	}
}

// ObjectPointer renders whatever its pointer currently refers to. Both the
// pointer's value and its target are resolved on every paint.
type ObjectPointer struct {
	obj  object.ObjectPointer
	cfg  config
	w, h float64
}

// NewObjectPointer creates a renderer for p.
func NewObjectPointer(p object.ObjectPointer, opts ...Option) *ObjectPointer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newObjectPointer(p, cfg)
}

func newObjectPointer(p object.ObjectPointer, cfg config) *ObjectPointer {
	return &ObjectPointer{obj: p, cfg: cfg}
}

// ID implements Renderer.
func (p *ObjectPointer) ID() object.ID { return p.obj.ID }

// Size implements Renderer. A pointer has no size of its own until its
// container assigns one.
func (p *ObjectPointer) Size() (width, height float64) { return p.w, p.h }

// SetSize sets the area the pointer occupies in its container.
func (p *ObjectPointer) SetSize(width, height float64) {
	p.w, p.h = width, height
}

// Target returns the ID the pointer currently refers to. The working
// set's copy of the pointer wins over the snapshot.
func (p *ObjectPointer) Target(ws object.Resolver) object.ID {
	if ws != nil {
		if cur, ok := ws.Object(p.obj.ID); ok {
			if op, ok := cur.(object.ObjectPointer); ok {
				return op.Value
			}
		}
	}
	return p.obj.Value
}

// Render implements Renderer.
func (p *ObjectPointer) Render(c isovt.Canvas, ws object.Resolver) {
	if ws == nil {
		return
	}
	value := p.Target(ws)
	if value.IsNull() {
		return
	}
	target, ok := ws.Object(value)
	if !ok {
		isovt.Logger().Debug("render: pointer target not found", "pointer", p.obj.ID, "target", value)
		return
	}
	if r, ok := newRenderer(ws, target, p.cfg.nested()); ok {
		r.Render(c, ws)
	}
}
