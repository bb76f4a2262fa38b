// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gdeh029a1

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Transport is the 4-wire serial link to the panel.
//
// Implementations are not required to be safe for concurrent use; a Dev
// owns its Transport.
type Transport interface {
	// AssertReset drives the reset line active (low).
	AssertReset() error
	// ReleaseReset drives the reset line inactive (high).
	ReleaseReset() error
	// SelectChip drives chip select active (low).
	SelectChip() error
	// DeselectChip drives chip select inactive (high).
	DeselectChip() error
	// SetCommandMode drives the data/command line low.
	SetCommandMode() error
	// SetDataMode drives the data/command line high.
	SetDataMode() error
	// WriteBytes clocks out b.
	WriteBytes(b []byte) error
	// IsBusy reports whether the busy line is active (high).
	IsBusy() bool
	// Sleep blocks for d.
	Sleep(d time.Duration)
}

// SPITransport implements Transport with periph SPI and GPIO pins.
type SPITransport struct {
	c conn.Conn

	dc   gpio.PinOut
	cs   gpio.PinOut
	rst  gpio.PinOut
	busy gpio.PinIn

	maxTxSize int
}

// NewSPITransport connects to the panel at 4MHz in SPI mode 0 and drives
// the control lines to their idle levels.
func NewSPITransport(p spi.Port, dc, cs, rst gpio.PinOut, busy gpio.PinIn) (*SPITransport, error) {
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	if err := busy.In(gpio.Float, gpio.NoEdge); err != nil {
		return nil, err
	}

	t := &SPITransport{
		c:    c,
		dc:   dc,
		cs:   cs,
		rst:  rst,
		busy: busy,
	}

	if l, ok := c.(conn.Limits); ok {
		t.maxTxSize = l.MaxTxSize()
	}

	// Data mode, chip deselected, reset released.
	for _, pin := range []gpio.PinOut{dc, cs, rst} {
		if err := pin.Out(gpio.High); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// AssertReset implements Transport.
func (t *SPITransport) AssertReset() error {
	return t.rst.Out(gpio.Low)
}

// ReleaseReset implements Transport.
func (t *SPITransport) ReleaseReset() error {
	return t.rst.Out(gpio.High)
}

// SelectChip implements Transport.
func (t *SPITransport) SelectChip() error {
	return t.cs.Out(gpio.Low)
}

// DeselectChip implements Transport.
func (t *SPITransport) DeselectChip() error {
	return t.cs.Out(gpio.High)
}

// SetCommandMode implements Transport.
func (t *SPITransport) SetCommandMode() error {
	return t.dc.Out(gpio.Low)
}

// SetDataMode implements Transport.
func (t *SPITransport) SetDataMode() error {
	return t.dc.Out(gpio.High)
}

// WriteBytes implements Transport. Writes larger than the bus transfer limit
// are split; chip select stays asserted in between.
func (t *SPITransport) WriteBytes(b []byte) error {
	for len(b) > 0 {
		n := len(b)
		if t.maxTxSize > 0 && n > t.maxTxSize {
			n = t.maxTxSize
		}
		if err := t.c.Tx(b[:n], nil); err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

// IsBusy implements Transport.
func (t *SPITransport) IsBusy() bool {
	return t.busy.Read() == gpio.High
}

// Sleep implements Transport.
func (t *SPITransport) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (t *SPITransport) String() string {
	return fmt.Sprintf("gdeh029a1.SPITransport{%s, dc: %s, cs: %s, rst: %s, busy: %s}", t.c, t.dc, t.cs, t.rst, t.busy)
}

var _ Transport = &SPITransport{}
