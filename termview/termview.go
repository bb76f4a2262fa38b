// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termview implements a 2D display.Drawer that outputs to terminal
// (stdout) using ANSI color codes.
//
// Useful to preview a frame before spending a slow e-paper refresh on it.
package termview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	Width  int
	Height int
	// Step samples every Step-th pixel on both axes. Zero or one prints
	// every pixel.
	Step    int
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a display emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	step    int
	palette ansi256.Palette

	pixels *image.NRGBA
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that writes its frames to w.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	step := opts.Step
	if step < 1 {
		step = 1
	}
	return &Dev{
		w:       w,
		step:    step,
		palette: *p,
		pixels:  image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
	}
}

func (d *Dev) String() string {
	b := d.pixels.Bounds()
	return fmt.Sprintf("TermView{%dx%d, step %d}", b.Dx(), b.Dy(), d.step)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.pixels.Bounds()
}

// Draw implements display.Drawer.
//
// The whole frame is printed again after each call.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d.pixels, r.Intersect(d.Bounds()), src, sp, draw.Src)
	return d.refresh()
}

func (d *Dev) refresh() error {
	b := d.pixels.Bounds()
	d.buf.Reset()
	for y := b.Min.Y; y < b.Max.Y; y += d.step {
		_, _ = d.buf.WriteString("\033[0m")
		for x := b.Min.X; x < b.Max.X; x += d.step {
			_, _ = io.WriteString(&d.buf, d.palette.Block(d.pixels.NRGBAAt(x, y)))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
