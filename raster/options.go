// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/gogpu/isovt"

// Option configures a Canvas during creation.
//
// Example:
//
//	c := raster.New(200, 100, raster.WithBackground(isovt.White), raster.WithScale(2))
type Option func(*options)

type options struct {
	background isovt.RGBA
	scale      float64
}

func defaultOptions() options {
	return options{
		background: isovt.RGBA{},
		scale:      1,
	}
}

// WithBackground fills the canvas with c before anything is drawn.
// The default background is transparent.
func WithBackground(c isovt.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithScale sets the number of image pixels per canvas pixel.
// Values not greater than zero are ignored.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}
