// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/isovt"

// KeyOrientation is the placement of the soft-key area relative to the
// data mask, as reported by the terminal.
type KeyOrientation uint8

const (
	OrientationTop KeyOrientation = iota
	OrientationBottom
	OrientationLeft
	OrientationRight
	OrientationLeftLeft
	OrientationLeftRight
	OrientationRightRight
	OrientationTopTop
	OrientationTopBottom
	OrientationBottomBottom
)

// Vertical reports whether keys are stacked in columns, which is the case
// for soft-key areas beside the data mask.
func (o KeyOrientation) Vertical() bool {
	switch o {
	case OrientationLeft, OrientationRight, OrientationLeftLeft, OrientationLeftRight, OrientationRightRight:
		return true
	}
	return false
}

// KeyOrder is the corner the first key is placed in.
type KeyOrder uint8

const (
	OrderTopLeft KeyOrder = iota
	OrderTopRight
	OrderBottomLeft
	OrderBottomRight
)

// Dimensions describes the soft-key area geometry in canvas pixels.
type Dimensions struct {
	Height         int
	KeyHeight      int
	KeyWidth       int
	KeyColumnCount int
	KeyRowCount    int
	KeyOrientation KeyOrientation
	KeyOrder       KeyOrder
	KeyPadding     int
}

// DefaultDimensions returns a single column of six 60x60 keys to the
// right of a 480 pixel high data mask, filled from the top right.
func DefaultDimensions() Dimensions {
	return Dimensions{
		Height:         480,
		KeyHeight:      60,
		KeyWidth:       60,
		KeyColumnCount: 1,
		KeyRowCount:    6,
		KeyOrientation: OrientationRightRight,
		KeyOrder:       OrderTopRight,
		KeyPadding:     0,
	}
}

// TotalWidth returns the width of the area including outer padding.
func (d Dimensions) TotalWidth() int {
	return d.KeyColumnCount*(d.KeyWidth+d.KeyPadding) + d.KeyPadding
}

// TotalHeight returns the height of the key grid including outer padding.
func (d Dimensions) TotalHeight() int {
	return d.KeyRowCount*(d.KeyHeight+d.KeyPadding) + d.KeyPadding
}

// KeyCount returns the number of key positions.
func (d Dimensions) KeyCount() int {
	if d.KeyColumnCount <= 0 || d.KeyRowCount <= 0 {
		return 0
	}
	return d.KeyColumnCount * d.KeyRowCount
}

// Slot returns the top-left corner of the i-th key position.
//
// Vertical orientations fill a column before moving to the next one,
// horizontal orientations fill a row first. The order picks the starting
// corner; filling always proceeds away from it.
func (d Dimensions) Slot(i int) isovt.Point {
	var col, row int
	if d.KeyOrientation.Vertical() {
		col, row = i/d.KeyRowCount, i%d.KeyRowCount
	} else {
		row, col = i/d.KeyColumnCount, i%d.KeyColumnCount
	}
	switch d.KeyOrder {
	case OrderTopRight:
		col = d.KeyColumnCount - 1 - col
	case OrderBottomLeft:
		row = d.KeyRowCount - 1 - row
	case OrderBottomRight:
		col = d.KeyColumnCount - 1 - col
		row = d.KeyRowCount - 1 - row
	}
	return isovt.Pt(
		float64(d.KeyPadding+col*(d.KeyWidth+d.KeyPadding)),
		float64(d.KeyPadding+row*(d.KeyHeight+d.KeyPadding)),
	)
}
