// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/basicfont"
)

func TestMapLookup(t *testing.T) {
	m := Map{'x': {0x81, 0x42, 0x24, 0x18, 0x18, 0x24, 0x42, 0x81}}

	g, ok := m.Lookup('x')
	if !ok {
		t.Fatalf("Lookup('x') not found")
	}
	if diff := cmp.Diff(g, m['x']); diff != "" {
		t.Errorf("Lookup('x') difference (-got +want):\n%s", diff)
	}

	if _, ok := m.Lookup('y'); ok {
		t.Errorf("Lookup('y') found, want missing")
	}
}

func TestASCII(t *testing.T) {
	runes := ASCII()

	if got, want := len(runes), 95; got != want {
		t.Fatalf("len(ASCII()) = %d, want %d", got, want)
	}
	if runes[0] != ' ' || runes[len(runes)-1] != '~' {
		t.Errorf("ASCII() = %q..%q, want ' '..'~'", runes[0], runes[len(runes)-1])
	}
}

func TestFromFace(t *testing.T) {
	m := FromFace(basicfont.Face7x13, []rune{' ', 'A', '|'})

	if got, want := len(m), 3; got != want {
		t.Fatalf("len(FromFace()) = %d, want %d", got, want)
	}

	if diff := cmp.Diff(m[' '], Glyph{}); diff != "" {
		t.Errorf("space glyph difference (-got +want):\n%s", diff)
	}

	for _, r := range []rune{'A', '|'} {
		if m[r] == (Glyph{}) {
			t.Errorf("glyph %q is empty", r)
		}
	}
}

func TestDefault(t *testing.T) {
	m, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	for _, r := range []rune{'E', 'H', 'z'} {
		g, ok := m.Lookup(r)
		if !ok {
			t.Errorf("Default() is missing %q", r)
			continue
		}
		if g == (Glyph{}) {
			t.Errorf("glyph %q is empty", r)
		}
	}

	if g, ok := m.Lookup(' '); !ok || g != (Glyph{}) {
		t.Errorf("Lookup(' ') = %v, %v; want empty glyph", g, ok)
	}

	if _, ok := m.Lookup('é'); ok {
		t.Errorf("Default() unexpectedly contains non-ASCII rune")
	}

	again, _ := Default()
	if len(again) != len(m) {
		t.Errorf("Default() is not stable across calls")
	}
}
