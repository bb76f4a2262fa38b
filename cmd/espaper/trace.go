// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"time"

	"github.com/GermanBionicSystems/espaper/gdeh029a1"
)

// maxTraced is how many bytes of a data frame are printed.
const maxTraced = 16

// traceTransport logs the command stream passing through another transport.
type traceTransport struct {
	gdeh029a1.Transport
	l *log.Logger

	command bool
}

func (t *traceTransport) AssertReset() error {
	t.l.Printf("reset")
	return t.Transport.AssertReset()
}

func (t *traceTransport) SetCommandMode() error {
	t.command = true
	return t.Transport.SetCommandMode()
}

func (t *traceTransport) SetDataMode() error {
	t.command = false
	return t.Transport.SetDataMode()
}

func (t *traceTransport) WriteBytes(b []byte) error {
	switch {
	case t.command:
		t.l.Printf("command % X", b)
	case len(b) > maxTraced:
		t.l.Printf("  data  % X ... (%d bytes)", b[:maxTraced], len(b))
	default:
		t.l.Printf("  data  % X", b)
	}
	return t.Transport.WriteBytes(b)
}

func (t *traceTransport) Sleep(d time.Duration) {
	t.l.Printf("sleep %s", d)
	t.Transport.Sleep(d)
}

func (t *traceTransport) String() string {
	return "trace(" + stringOf(t.Transport) + ")"
}

// nopTransport accepts everything and is never busy. It stands in for the
// panel with -dry-run.
type nopTransport struct{}

func (nopTransport) AssertReset() error        { return nil }
func (nopTransport) ReleaseReset() error       { return nil }
func (nopTransport) SelectChip() error         { return nil }
func (nopTransport) DeselectChip() error       { return nil }
func (nopTransport) SetCommandMode() error     { return nil }
func (nopTransport) SetDataMode() error        { return nil }
func (nopTransport) WriteBytes(b []byte) error { return nil }
func (nopTransport) IsBusy() bool              { return false }
func (nopTransport) Sleep(d time.Duration)     {}
func (nopTransport) String() string            { return "dry-run" }

func stringOf(t gdeh029a1.Transport) string {
	if s, ok := t.(fmt.Stringer); ok {
		return s.String()
	}
	return "transport"
}

var _ gdeh029a1.Transport = &traceTransport{}
var _ gdeh029a1.Transport = nopTransport{}
