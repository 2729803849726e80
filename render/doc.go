// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns ISOBUS VT object snapshots into canvas primitives.
//
// There is one renderer per drawable object type. A renderer is built from
// a copy of its object and holds no reference to the working set; every
// Render call receives the working set as an object.Resolver and looks up
// line attributes, fill attributes, number variables and palette colours
// afresh, so a value changed between paints is always picked up.
//
// Renderers never fail. A reference that is null, missing or of the wrong
// type falls back to a default (black, no outline, no fill, static value)
// and is logged at debug level through isovt.Logger.
//
// # Supported Objects
//
//   - Ellipse: closed, open, segment and section ellipses with arcs traced
//     at the correct angular position on non-circular ellipses
//   - LinearBarGraph: filled or line style, X or Y axis, either direction
//   - Meter: arc gauge with border, ticks and needle
//   - Polygon: open or closed polygons
//   - Rectangle: fill and outline with per-edge suppression
//   - SoftKeyMask: key layout for the soft-key area
//   - Key and ObjectPointer: containers placed by the soft-key mask
//
// # Example
//
//	r, ok := render.New(ws, obj)
//	if !ok {
//		return
//	}
//	w, h := r.Size()
//	rec := recording.NewRecorder(w, h)
//	r.Render(rec, ws)
package render
