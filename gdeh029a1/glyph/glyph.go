// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package glyph provides 8x8 monochrome glyph tables for text rendering.
//
// A Glyph is 8 column bytes. Bit 7 of each byte is the top row of the cell
// and bit 0 the bottom row; a set bit is foreground.
package glyph

import (
	"errors"
	"image"
	"image/draw"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// ErrNotFound is returned when a table has no glyph for a character.
var ErrNotFound = errors.New("glyph not found")

// Size is the width and height of a glyph cell in pixels.
const Size = 8

// Glyph is an 8x8 cell stored column by column.
type Glyph [Size]byte

// Table maps characters to glyphs.
type Table interface {
	Lookup(r rune) (Glyph, bool)
}

// Map is a Table backed by a Go map.
type Map map[rune]Glyph

// Lookup implements Table.
func (m Map) Lookup(r rune) (Glyph, bool) {
	g, ok := m[r]
	return g, ok
}

// FromFace renders every rune in runes with face into an 8x8 cell whose
// baseline is the bottom row. Runes the face has no glyph for are left out.
func FromFace(face font.Face, runes []rune) Map {
	m := make(Map, len(runes))
	cell := image.NewAlpha(image.Rect(0, 0, Size, Size))

	for _, r := range runes {
		dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, Size-1), r)
		if !ok {
			continue
		}

		draw.Draw(cell, cell.Bounds(), image.Transparent, image.Point{}, draw.Src)
		draw.DrawMask(cell, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)

		var g Glyph
		for x := 0; x < Size; x++ {
			for y := 0; y < Size; y++ {
				if cell.AlphaAt(x, y).A >= 0x80 {
					g[x] |= 0x80 >> y
				}
			}
		}
		m[r] = g
	}

	return m
}

// ASCII returns the printable ASCII range, space to tilde.
func ASCII() []rune {
	runes := make([]rune, 0, 0x7F-0x20)
	for r := rune(0x20); r < 0x7F; r++ {
		runes = append(runes, r)
	}
	return runes
}

var (
	defaultOnce  sync.Once
	defaultTable Map
	defaultErr   error
)

// Default returns the printable ASCII range rendered from Go Mono at 8px.
func Default() (Map, error) {
	defaultOnce.Do(func() {
		f, err := truetype.Parse(gomono.TTF)
		if err != nil {
			defaultErr = err
			return
		}

		face := truetype.NewFace(f, &truetype.Options{
			Size:    Size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		defer face.Close()

		var runes []rune
		for _, r := range ASCII() {
			// Index 0 is the missing glyph box.
			if f.Index(r) != 0 {
				runes = append(runes, r)
			}
		}

		defaultTable = FromFace(face, runes)
	})

	return defaultTable, defaultErr
}
