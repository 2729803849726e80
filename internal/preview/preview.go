// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview renders working set objects to PNG images and serves
// them over HTTP.
package preview

import (
	"bytes"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/gogpu/isovt/internal/cache"
	"github.com/gogpu/isovt/object"
	"github.com/gogpu/isovt/raster"
	"github.com/gogpu/isovt/recording"
	"github.com/gogpu/isovt/render"
	"github.com/gogpu/isovt/workingset"
)

var (
	// ErrNotFound is returned for an ID that is not in the working set.
	ErrNotFound = errors.New("preview: object not found")

	// ErrNotDrawable is returned for objects without a renderer.
	ErrNotDrawable = errors.New("preview: object is not drawable")

	// ErrEmpty is returned when the object has no area to draw on.
	ErrEmpty = errors.New("preview: object has zero size")
)

// Preview paints objects of one working set.
//
// Every call builds a fresh renderer, so concurrent calls are safe as long
// as the working set is.
type Preview struct {
	ws         *workingset.Set
	renderOpts []render.Option
	rasterOpts []raster.Option
	images     *cache.Cache[imageKey, []byte]

	pollInterval time.Duration
}

// imageKey identifies an encoded image of one object at one working set
// revision.
type imageKey struct {
	id  object.ID
	rev uint64
}

// Option configures a Preview.
type Option func(*Preview)

// WithRenderOptions sets the options passed to render.New.
func WithRenderOptions(opts ...render.Option) Option {
	return func(p *Preview) {
		p.renderOpts = append(p.renderOpts, opts...)
	}
}

// WithRasterOptions sets the options passed to raster.New.
func WithRasterOptions(opts ...raster.Option) Option {
	return func(p *Preview) {
		p.rasterOpts = append(p.rasterOpts, opts...)
	}
}

// WithImageCache keeps up to about limit encoded images. An image is
// reused until the working set changes.
func WithImageCache(limit int) Option {
	return func(p *Preview) {
		if limit > 0 {
			p.images = cache.New[imageKey, []byte](limit)
		}
	}
}

// WithPollInterval sets how often websocket clients are checked for
// working set changes. The default is 200ms.
func WithPollInterval(d time.Duration) Option {
	return func(p *Preview) {
		if d > 0 {
			p.pollInterval = d
		}
	}
}

// New creates a Preview for ws.
func New(ws *workingset.Set, opts ...Option) *Preview {
	p := &Preview{ws: ws, pollInterval: 200 * time.Millisecond}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WorkingSet returns the working set being previewed.
func (p *Preview) WorkingSet() *workingset.Set {
	return p.ws
}

// Renderer builds the renderer for id.
func (p *Preview) Renderer(id object.ID) (render.Renderer, error) {
	obj, ok := p.ws.Object(id)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "object %d", id)
	}
	r, ok := render.New(p.ws, obj, p.renderOpts...)
	if !ok {
		return nil, errors.Wrapf(ErrNotDrawable, "object %d (%s)", id, obj.Type())
	}
	return r, nil
}

// Record paints id onto a recorder.
func (p *Preview) Record(id object.ID) (*recording.Recording, error) {
	r, err := p.Renderer(id)
	if err != nil {
		return nil, err
	}
	w, h := r.Size()
	rec := recording.NewRecorder(w, h)
	r.Render(rec, p.ws)
	return rec.FinishRecording(), nil
}

// Rasterize paints id onto a raster canvas sized to the object.
func (p *Preview) Rasterize(id object.ID) (*raster.Canvas, error) {
	rec, err := p.Record(id)
	if err != nil {
		return nil, err
	}
	w, h := int(math.Ceil(rec.Width())), int(math.Ceil(rec.Height()))
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrEmpty, "object %d", id)
	}
	c := raster.New(w, h, p.rasterOpts...)
	rec.Playback(c)
	return c, nil
}

// WritePNG rasterizes id and encodes it to w.
func (p *Preview) WritePNG(w io.Writer, id object.ID) error {
	c, err := p.Rasterize(id)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "preview: encode")
}

// PNG returns the encoded image of id.
func (p *Preview) PNG(id object.ID) ([]byte, error) {
	key := imageKey{id: id, rev: p.ws.Revision()}
	if p.images != nil {
		if b, ok := p.images.Get(key); ok {
			return b, nil
		}
	}

	var buf bytes.Buffer
	if err := p.WritePNG(&buf, id); err != nil {
		return nil, err
	}
	if p.images != nil {
		p.images.DeleteFunc(func(k imageKey) bool { return k.id == id })
		p.images.Set(key, buf.Bytes())
	}
	return buf.Bytes(), nil
}

// CacheStats reports image cache usage. It is zero without a cache.
func (p *Preview) CacheStats() cache.Stats {
	if p.images == nil {
		return cache.Stats{}
	}
	return p.images.Stats()
}

// WriteDump writes the recorded commands for id to w.
func (p *Preview) WriteDump(w io.Writer, id object.ID) error {
	rec, err := p.Record(id)
	if err != nil {
		return err
	}
	return errors.Wrap(rec.Dump(w), "preview: dump")
}
