// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/GermanBionicSystems/espaper/gdeh029a1/bitmap"
	"github.com/GermanBionicSystems/espaper/gdeh029a1/glyph"
)

func countBlack(img *bitmap.Image) int {
	n := 0
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if c, _ := img.PixelAt(x, y); c == image1bit.Off {
				n++
			}
		}
	}
	return n
}

func TestSceneNames(t *testing.T) {
	if diff := cmp.Diff(sceneNames(), []string{"gg", "grid", "text"}); diff != "" {
		t.Errorf("sceneNames() difference (-got +want):\n%s", diff)
	}
}

func TestScenes(t *testing.T) {
	for _, layout := range []struct {
		name          string
		width, height int
		layout        bitmap.Layout
	}{
		{"landscape", 296, 128, bitmap.VerticalMajor},
		{"portrait", 128, 296, bitmap.HorizontalMajor},
	} {
		for _, name := range sceneNames() {
			t.Run(layout.name+"/"+name, func(t *testing.T) {
				buf, err := bitmap.New(layout.width, layout.height, layout.layout)
				if err != nil {
					t.Fatal(err)
				}

				if err := scenes[name](buf, "Hello"); err != nil {
					t.Fatalf("scene failed: %v", err)
				}

				total := layout.width * layout.height
				if n := countBlack(buf); n == 0 || n == total {
					t.Errorf("scene drew %d of %d pixels black", n, total)
				}
			})
		}
	}
}

func TestDrawTextWraps(t *testing.T) {
	buf, err := bitmap.New(16, 16, bitmap.HorizontalMajor)
	if err != nil {
		t.Fatal(err)
	}

	// Four glyphs wrap onto two lines; the rest does not fit.
	if err := drawText(buf, "HHHHHH"); err != nil {
		t.Fatal(err)
	}

	for _, p := range [][2]int{{0, 0}, {8, 0}, {0, 8}, {8, 8}} {
		cell, _ := bitmap.New(8, 8, bitmap.HorizontalMajor)
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				c, _ := buf.PixelAt(p[0]+x, p[1]+y)
				cell.SetPixel(x, y, c)
			}
		}
		if countBlack(cell) == 0 {
			t.Errorf("glyph cell at %v is empty", p)
		}
	}
}

func TestDrawTextUnknownGlyph(t *testing.T) {
	buf, err := bitmap.New(296, 128, bitmap.VerticalMajor)
	if err != nil {
		t.Fatal(err)
	}

	if err := drawText(buf, "naïve"); !errors.Is(err, glyph.ErrNotFound) {
		t.Errorf("drawText() = %v, want %v", err, glyph.ErrNotFound)
	}
}
