// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package raster draws lines, rectangles, circles and 8x8 text into a
// packed bitmap.
//
// Coordinates are not clipped by the algorithms; the bitmap discards pixels
// outside its bounds.
package raster

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/GermanBionicSystems/espaper/gdeh029a1/bitmap"
	"github.com/GermanBionicSystems/espaper/gdeh029a1/glyph"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Rasterizer draws into a bitmap.
type Rasterizer struct {
	dst    *bitmap.Image
	glyphs glyph.Table
}

// New returns a Rasterizer drawing into dst. glyphs may be nil when Text is
// not used.
func New(dst *bitmap.Image, glyphs glyph.Table) *Rasterizer {
	return &Rasterizer{dst: dst, glyphs: glyphs}
}

// Pixel paints a single pixel.
func (r *Rasterizer) Pixel(x, y int, c image1bit.Bit) {
	r.dst.SetPixel(x, y, c)
}

// Line draws a line from (x0, y0) to (x1, y1).
//
// Axis aligned lines are forwarded to HLine and VLine with the signed
// distance as length, so the end point is not drawn and a negative distance
// draws nothing. Other lines are walked along X with both ends included and
// one pixel per column; lines steeper than 45 degrees show gaps.
func (r *Rasterizer) Line(x0, y0, x1, y1 int, c image1bit.Bit) {
	switch {
	case x0 == x1:
		r.VLine(x0, y0, y1-y0, c)
	case y0 == y1:
		r.HLine(x0, y0, x1-x0, c)
	default:
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		m := float64(y1-y0) / float64(x1-x0)
		for x := x0; x <= x1; x++ {
			y := int(math.Floor(m*float64(x-x0) + float64(y0)))
			r.dst.SetPixel(x, y, c)
		}
	}
}

// HLine draws length pixels to the right of (x, y), starting there.
func (r *Rasterizer) HLine(x, y, length int, c image1bit.Bit) {
	for i := 0; i < length; i++ {
		r.dst.SetPixel(x+i, y, c)
	}
}

// VLine draws length pixels downwards from (x, y), starting there.
func (r *Rasterizer) VLine(x, y, length int, c image1bit.Bit) {
	for i := 0; i < length; i++ {
		r.dst.SetPixel(x, y+i, c)
	}
}

// Rect draws the rectangle spanned by (x0, y0) and (x1, y1).
//
// A filled rectangle covers both corners inclusive. The outline is made of
// HLine and VLine calls of length x1-x0 and y1-y0, leaving out the pixel at
// (x1, y1).
func (r *Rasterizer) Rect(x0, y0, x1, y1 int, c image1bit.Bit, fill bool) {
	if fill {
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				r.dst.SetPixel(x, y, c)
			}
		}
		return
	}

	width, height := x1-x0, y1-y0
	r.HLine(x0, y0, width, c)
	r.HLine(x0, y1, width, c)
	r.VLine(x0, y0, height, c)
	r.VLine(x1, y0, height, c)
}

// Circle draws a circle of the given radius around (cx, cy).
//
// The outline is sampled once per column and once per row so neither flat
// nor steep arcs have gaps. A filled circle is drawn as concentric outlines
// of decreasing radius down to 1, followed by the center pixel. The rings do
// not tile the disk; some interior pixels stay unset from radius 2 on.
func (r *Rasterizer) Circle(cx, cy, radius int, c image1bit.Bit, fill bool) {
	if radius < 0 {
		return
	}

	r.ring(cx, cy, radius, c)

	if !fill {
		return
	}
	if radius > 1 {
		r.Circle(cx, cy, radius-1, c, true)
		return
	}
	r.dst.SetPixel(cx, cy, c)
}

func (r *Rasterizer) ring(cx, cy, radius int, c image1bit.Bit) {
	r2 := float64(radius * radius)

	for x := cx - radius; x <= cx+radius; x++ {
		d := float64(x - cx)
		dy := math.Sqrt(r2 - d*d)
		r.dst.SetPixel(x, int(math.Floor(float64(cy)+dy)), c)
		r.dst.SetPixel(x, int(math.Floor(float64(cy)-dy)), c)
	}

	for y := cy - radius; y <= cy+radius; y++ {
		d := float64(y - cy)
		dx := math.Sqrt(r2 - d*d)
		r.dst.SetPixel(int(math.Floor(float64(cx)+dx)), y, c)
		r.dst.SetPixel(int(math.Floor(float64(cx)-dx)), y, c)
	}
}

// Text draws s with its top left corner at (x, y), one 8 pixel cell per
// character. Only foreground bits are painted.
//
// If any character of s has no glyph an error wrapping glyph.ErrNotFound is
// returned and nothing is drawn.
//
// On a HorizontalMajor bitmap the bit order of every glyph column is
// reversed before it is mapped to the Y axis, so portrait text comes out
// mirrored top to bottom within each cell.
func (r *Rasterizer) Text(s string, x, y int, c image1bit.Bit) error {
	runes := []rune(s)
	cells := make([]glyph.Glyph, len(runes))

	for i, ch := range runes {
		var ok bool
		if r.glyphs != nil {
			cells[i], ok = r.glyphs.Lookup(ch)
		}
		if !ok {
			return fmt.Errorf("raster: %w: %q", glyph.ErrNotFound, ch)
		}
	}

	reverse := r.dst.Layout() == bitmap.HorizontalMajor

	for i, g := range cells {
		for col, b := range g {
			if reverse {
				b = bits.Reverse8(b)
			}
			for row := 0; row < glyph.Size; row++ {
				if b&(0x80>>row) != 0 {
					r.dst.SetPixel(x+i*glyph.Size+col, y+row, c)
				}
			}
		}
	}

	return nil
}
