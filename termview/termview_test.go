// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package termview

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maruel/ansi256"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/GermanBionicSystems/espaper/gdeh029a1/bitmap"
)

func row(blocks ...color.NRGBA) string {
	s := "\033[0m"
	for _, c := range blocks {
		s += ansi256.Default.Block(c)
	}
	return s + "\033[0m\n"
}

func TestDraw(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}

	img, err := bitmap.New(4, 8, bitmap.VerticalMajor)
	if err != nil {
		t.Fatal(err)
	}
	img.SetPixel(0, 0, image1bit.Off)
	img.SetPixel(2, 2, image1bit.Off)
	img.SetPixel(1, 1, image1bit.Off)

	for _, tc := range []struct {
		name string
		step int
		want string
	}{
		{
			name: "every pixel",
			want: row(black, white, white, white) +
				row(white, black, white, white) +
				row(white, white, black, white) +
				strings.Repeat(row(white, white, white, white), 5),
		},
		{
			name: "step 2",
			step: 2,
			want: row(black, white) +
				row(white, black) +
				strings.Repeat(row(white, white), 2),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			d := NewWriter(&out, &Opts{Width: 4, Height: 8, Step: tc.step})

			if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
				t.Fatalf("Draw() failed: %v", err)
			}

			if diff := cmp.Diff(out.String(), tc.want); diff != "" {
				t.Errorf("output difference (-got +want):\n%q", diff)
			}
		})
	}
}

func TestDrawRedraws(t *testing.T) {
	var out bytes.Buffer
	d := NewWriter(&out, &Opts{Width: 2, Height: 1})

	red := image.NewUniform(color.NRGBA{255, 0, 0, 255})
	if err := d.Draw(image.Rect(1, 0, 2, 1), red, image.Point{}); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := d.Draw(image.Rect(0, 0, 1, 1), red, image.Point{}); err != nil {
		t.Fatal(err)
	}

	want := row(color.NRGBA{255, 0, 0, 255}, color.NRGBA{255, 0, 0, 255})
	if got := out.String(); got != want {
		t.Errorf("Draw() wrote %q, want %q", got, want)
	}
}

func TestDev(t *testing.T) {
	var out bytes.Buffer
	d := NewWriter(&out, &Opts{Width: 296, Height: 128, Step: 4})

	if got, want := d.String(), "TermView{296x128, step 4}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := d.Bounds(), image.Rect(0, 0, 296, 128); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if d.ColorModel() != color.NRGBAModel {
		t.Errorf("ColorModel() is not NRGBA")
	}

	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\033[0m" {
		t.Errorf("Halt() wrote %q", got)
	}
}
