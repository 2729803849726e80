// Package isovt renders ISOBUS Virtual Terminal graphics objects.
//
// # Overview
//
// isovt turns the object pool of a VT working set (rectangles, ellipses,
// polygons, meters, linear bar graphs and soft key masks) into an ordered
// series of drawing primitives on an abstract [Canvas]. The root package
// holds the canvas vocabulary: [Point], [Rect], [Arc], [Path], [Stroke]
// and [RGBA].
//
// # Architecture
//
// The module is organized into:
//   - isovt: Canvas interface and geometry types
//   - object: VT object snapshots and the read-only Resolver view of a working set
//   - workingset: in-memory working set, ISO 11783-6 palette, YAML loader
//   - render: one renderer per VT object type plus the soft key mask layout
//   - recording: a Canvas that records commands for inspection and playback
//   - raster: a Canvas that rasterizes into an image.RGBA
//   - cmd/vtrender: renders, dumps, exports and serves working set objects
//
// # Quick Start
//
//	ws := workingset.New()
//	ws.Add(object.LineAttributes{ID: 10, Colour: 1, Width: 2})
//	ws.Add(object.Rectangle{ID: 1, Width: 40, Height: 20, LineAttributes: 10, FillAttributes: object.NullID})
//
//	obj, _ := ws.Object(1)
//	r, _ := render.New(ws, obj)
//	rec := recording.NewRecorder(r.Size())
//	r.Render(rec, ws)
//
// # Coordinate System
//
// Canvas coordinates follow the VT: origin at the top-left corner of the
// object, X grows right, Y grows down. VT angles are counter-clockwise
// from the positive X axis; renderers convert them before drawing.
//
// # Threading
//
// Rendering is synchronous. Renderers never mutate the working set and
// resolve every reference again on each paint.
package isovt

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"
)
