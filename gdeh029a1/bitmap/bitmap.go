// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bitmap implements the packed 1 bit per pixel framebuffer used by
// the GDEH029A1 panel.
//
// A set bit means white (no ink), a cleared bit means black. Pixel colors
// are expressed as image1bit.Bit, with image1bit.On for white and
// image1bit.Off for black.
package bitmap

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Layout selects how pixels are packed into bytes.
type Layout uint8

const (
	// VerticalMajor packs 8 vertically adjacent pixels into one byte, MSB on
	// top. Consecutive bytes advance along X. Used in landscape orientation.
	VerticalMajor Layout = iota
	// HorizontalMajor packs 8 horizontally adjacent pixels into one byte,
	// MSB on the left. Rows are Width pixels wide. Used in portrait
	// orientation.
	HorizontalMajor
)

func (l Layout) String() string {
	switch l {
	case VerticalMajor:
		return "VerticalMajor"
	case HorizontalMajor:
		return "HorizontalMajor"
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

// addressFunc returns the byte index and the bit offset counted from the
// MSB for an in-bounds pixel.
type addressFunc func(x, y int) (int, uint)

// Image is a packed monochrome image.
//
// Out of bounds writes are discarded silently so that rasterization may
// overshoot the canvas.
type Image struct {
	// Pix holds the packed pixels. Its length is Width*Height/8.
	Pix []byte

	width  int
	height int
	layout Layout
	addr   addressFunc
}

// New returns an all white image of the given size.
//
// VerticalMajor requires a height multiple of 8, HorizontalMajor a width
// multiple of 8.
func New(width, height int, l Layout) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bitmap: invalid size %dx%d", width, height)
	}

	img := &Image{
		width:  width,
		height: height,
		layout: l,
	}

	switch l {
	case VerticalMajor:
		if height%8 != 0 {
			return nil, fmt.Errorf("bitmap: height %d is not a multiple of 8", height)
		}
		img.addr = func(x, y int) (int, uint) {
			return (y>>3)*width + x, 7 - uint(y&7)
		}
	case HorizontalMajor:
		if width%8 != 0 {
			return nil, fmt.Errorf("bitmap: width %d is not a multiple of 8", width)
		}
		img.addr = func(x, y int) (int, uint) {
			return (x + y*width) >> 3, 7 - uint(x&7)
		}
	default:
		return nil, fmt.Errorf("bitmap: unknown layout %v", l)
	}

	img.Pix = bytes.Repeat([]byte{0xFF}, width*height/8)

	return img, nil
}

// Width returns the width in pixels.
func (i *Image) Width() int {
	return i.width
}

// Height returns the height in pixels.
func (i *Image) Height() int {
	return i.height
}

// Layout returns the packing used by the image.
func (i *Image) Layout() Layout {
	return i.layout
}

// PixelAddress returns the byte index and bit offset (counted from the MSB)
// holding pixel (x, y). ok is false when the pixel is outside the image.
func (i *Image) PixelAddress(x, y int) (index int, offset uint, ok bool) {
	if x < 0 || y < 0 || x >= i.width || y >= i.height {
		return 0, 0, false
	}
	index, offset = i.addr(x, y)
	return index, offset, true
}

// SetPixel paints a single pixel. Pixels outside the image are ignored.
func (i *Image) SetPixel(x, y int, c image1bit.Bit) {
	index, offset, ok := i.PixelAddress(x, y)
	if !ok {
		return
	}
	var v byte
	if c {
		v = 1
	}
	i.Pix[index] = (i.Pix[index] &^ (1 << offset)) | (v << offset)
}

// PixelAt returns the color of pixel (x, y). ok is false when the pixel is
// outside the image.
func (i *Image) PixelAt(x, y int) (c image1bit.Bit, ok bool) {
	index, offset, ok := i.PixelAddress(x, y)
	if !ok {
		return image1bit.On, false
	}
	return image1bit.Bit(i.Pix[index]&(1<<offset) != 0), true
}

// Fill paints every pixel with c.
func (i *Image) Fill(c image1bit.Bit) {
	var v byte
	if c {
		v = 0xFF
	}
	for n := range i.Pix {
		i.Pix[n] = v
	}
}

// ColorModel implements image.Image.
func (i *Image) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements image.Image.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.width, i.height)
}

// At implements image.Image. Out of bounds pixels read as white.
func (i *Image) At(x, y int) color.Color {
	c, _ := i.PixelAt(x, y)
	return c
}

// Set implements draw.Image.
func (i *Image) Set(x, y int, c color.Color) {
	i.SetPixel(x, y, image1bit.BitModel.Convert(c).(image1bit.Bit))
}
