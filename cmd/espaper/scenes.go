// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/GermanBionicSystems/espaper/gdeh029a1/bitmap"
	"github.com/GermanBionicSystems/espaper/gdeh029a1/glyph"
	"github.com/GermanBionicSystems/espaper/gdeh029a1/raster"
)

// scene composes a frame into buf.
type scene func(buf *bitmap.Image, text string) error

var scenes = map[string]scene{
	"grid": drawGrid,
	"text": drawText,
	"gg":   drawVector,
}

func sceneNames() []string {
	var names []string
	for n := range scenes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// drawGrid exercises every rasterizer primitive: thirds, diagonals, centre
// lines, a box of sixths, both rectangle styles, both circle styles and the
// whole glyph table along the bottom.
func drawGrid(buf *bitmap.Image, text string) error {
	glyphs, err := glyph.Default()
	if err != nil {
		return err
	}
	r := raster.New(buf, glyphs)
	w, h := buf.Width(), buf.Height()
	black := image1bit.Off

	r.Pixel(w/2, h/2, black)

	for i := 0; i < h; i++ {
		r.Pixel(w/3, i, black)
		r.Pixel(2*w/3, i, black)
	}
	for i := 0; i < w; i++ {
		r.Pixel(i, h/3, black)
		r.Pixel(i, 2*h/3, black)
	}

	r.Line(0, 0, w-1, h-1, black)
	r.Line(0, h-1, w-1, 0, black)

	r.HLine(0, h/2, w, black)
	r.VLine(w/2, 0, h, black)

	r.HLine(w/6, h/6, 4*w/6, black)
	r.VLine(w/6, h/6, 4*h/6, black)
	r.Line(w/6, 5*h/6, 5*w/6, 5*h/6, black)
	r.Line(5*w/6, h/6, 5*w/6, 5*h/6, black)

	r.Rect(w/4, h/4, 3*w/4, 3*h/4, black, false)
	r.Rect(w/3, h/3, 2*w/3, 2*h/3, black, true)

	r.Circle(w/2, h/2, min(w, h)/3, black, false)
	r.Circle(w/6, h/2, min(w, h)/6, black, true)

	if err := r.Text(text, 0, 0, black); err != nil {
		return err
	}

	var all []rune
	for ch := range glyphs {
		all = append(all, ch)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	x, y := 0, h
	for n, ch := range all {
		if (n*glyph.Size)%w == 0 {
			y -= glyph.Size
			x = 0
		} else {
			x += glyph.Size
		}
		if err := r.Text(string(ch), x, y, black); err != nil {
			return err
		}
	}
	return nil
}

// drawText writes text line by line, wrapping at the right edge.
func drawText(buf *bitmap.Image, text string) error {
	glyphs, err := glyph.Default()
	if err != nil {
		return err
	}
	r := raster.New(buf, glyphs)
	perLine := buf.Width() / glyph.Size
	runes := []rune(text)
	for line := 0; len(runes) > 0 && (line+1)*glyph.Size <= buf.Height(); line++ {
		n := min(perLine, len(runes))
		if err := r.Text(string(runes[:n]), 0, line*glyph.Size, image1bit.Off); err != nil {
			return err
		}
		runes = runes[n:]
	}
	return nil
}

// drawVector renders text and shapes with anti-aliased vector graphics and
// thresholds the result into buf.
func drawVector(buf *bitmap.Image, text string) error {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return err
	}
	w, h := float64(buf.Width()), float64(buf.Height())

	dc := gg.NewContext(buf.Width(), buf.Height())
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(color.Black)
	dc.SetLineWidth(3)
	dc.DrawRoundedRectangle(4, 4, w-8, h-8, 12)
	dc.Stroke()

	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: h / 6}))
	dc.DrawStringWrapped(text, w/2, h/2, 0.5, 0.5, w-24, 1.2, gg.AlignCenter)

	draw.Draw(buf, buf.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return nil
}
