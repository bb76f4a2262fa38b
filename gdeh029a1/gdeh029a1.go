// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gdeh029a1

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/GermanBionicSystems/espaper/gdeh029a1/bitmap"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3/rpi"
)

// Commands
const (
	driverOutputControl            byte = 0x01
	boosterSoftStartControl        byte = 0x0C
	dataEntryModeSetting           byte = 0x11
	masterActivation               byte = 0x20
	displayUpdateControl2          byte = 0x22
	writeRAM                       byte = 0x24
	writeVcomRegister              byte = 0x2C
	writeLutRegister               byte = 0x32
	setDummyLinePeriod             byte = 0x3A
	setGateTime                    byte = 0x3B
	setRAMXAddressStartEndPosition byte = 0x44
	setRAMYAddressStartEndPosition byte = 0x45
	setRAMXAddressCounter          byte = 0x4E
	setRAMYAddressCounter          byte = 0x4F
	terminateFrameReadWrite        byte = 0xFF
)

// Native RAM geometry. The panel RAM is landscape addressed: 296 gate lines
// of 128 source pixels each.
const (
	panelWidth  = 296
	panelHeight = 128
)

const lutSize = 30

var (
	// ErrDeviceUnresponsive is returned when the busy line stays active for
	// longer than Opts.BusyTimeout.
	ErrDeviceUnresponsive = errors.New("gdeh029a1: device unresponsive")

	// ErrNotInitialized is returned when the panel is used before Init.
	ErrNotInitialized = errors.New("gdeh029a1: Init must be called first")
)

// Orientation selects the logical drawing orientation.
type Orientation uint8

const (
	// Landscape is 296x128 pixels.
	Landscape Orientation = iota
	// Portrait is 128x296 pixels with (0, 0) in the top right corner of the
	// landscape panel.
	Portrait
)

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Set sets the Orientation to a value represented by the string s. Set
// implements the flag.Value interface.
func (o *Orientation) Set(s string) error {
	switch s {
	case "landscape":
		*o = Landscape
	case "portrait":
		*o = Portrait
	default:
		return fmt.Errorf("unknown orientation %q: expected landscape or portrait", s)
	}
	return nil
}

// size returns the logical width and height.
func (o Orientation) size() (int, int) {
	if o == Portrait {
		return panelHeight, panelWidth
	}
	return panelWidth, panelHeight
}

func (o Orientation) layout() bitmap.Layout {
	if o == Portrait {
		return bitmap.HorizontalMajor
	}
	return bitmap.VerticalMajor
}

// RefreshMode selects the waveform loaded into the panel.
type RefreshMode uint8

const (
	// Full refreshes drive every pixel through a complete cycle.
	Full RefreshMode = iota
	// Partial refreshes are faster but leave ghosting behind.
	Partial
)

func (m RefreshMode) String() string {
	switch m {
	case Full:
		return "full"
	case Partial:
		return "partial"
	}
	return fmt.Sprintf("RefreshMode(%d)", uint8(m))
}

// Set sets the RefreshMode to a value represented by the string s. Set
// implements the flag.Value interface.
func (m *RefreshMode) Set(s string) error {
	switch s {
	case "full":
		*m = Full
	case "partial":
		*m = Partial
	default:
		return fmt.Errorf("unknown refresh mode %q: expected full or partial", s)
	}
	return nil
}

// LUT contains the waveform that is used to program the display.
type LUT []byte

// Opts defines the structure of the display configuration.
type Opts struct {
	Orientation Orientation
	Mode        RefreshMode

	// BusyTimeout bounds every wait for the busy line. Zero waits forever.
	BusyTimeout time.Duration

	FullUpdate    LUT
	PartialUpdate LUT
}

func (o *Opts) lut() LUT {
	if o.Mode == Partial {
		return o.PartialUpdate
	}
	return o.FullUpdate
}

// GDEH029A1 contains the display configuration for the GDEH029A1 panel in
// landscape orientation with full refreshes.
var GDEH029A1 = Opts{
	Orientation: Landscape,
	Mode:        Full,
	FullUpdate: LUT{
		0x50, 0xAA, 0x55, 0xAA, 0x11, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0xFF, 0xFF, 0x1F, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	PartialUpdate: LUT{
		0x10, 0x18, 0x18, 0x08, 0x18, 0x18,
		0x08, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x13, 0x14, 0x44, 0x12,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
}

// Dev defines the handler which is used to access the display.
type Dev struct {
	t Transport

	bounds      image.Rectangle
	buffer      *bitmap.Image
	initialized bool

	opts *Opts
}

// New creates new handler which is used to access the display through t.
// The hardware is not touched until Init.
func New(t Transport, opts *Opts) (*Dev, error) {
	switch opts.Orientation {
	case Landscape, Portrait:
	default:
		return nil, fmt.Errorf("gdeh029a1: unknown orientation %v", opts.Orientation)
	}

	switch opts.Mode {
	case Full, Partial:
	default:
		return nil, fmt.Errorf("gdeh029a1: unknown refresh mode %v", opts.Mode)
	}

	if n := len(opts.lut()); n != lutSize {
		return nil, fmt.Errorf("gdeh029a1: %s LUT has %d bytes, want %d", opts.Mode, n, lutSize)
	}

	width, height := opts.Orientation.size()

	buffer, err := bitmap.New(width, height, opts.Orientation.layout())
	if err != nil {
		return nil, err
	}

	return &Dev{
		t:      t,
		bounds: image.Rect(0, 0, width, height),
		buffer: buffer,
		opts:   opts,
	}, nil
}

// NewSPI creates new handler which is used to access the display over SPI.
func NewSPI(p spi.Port, dc, cs, rst gpio.PinOut, busy gpio.PinIn, opts *Opts) (*Dev, error) {
	t, err := NewSPITransport(p, dc, cs, rst, busy)
	if err != nil {
		return nil, err
	}
	return New(t, opts)
}

// NewHat creates new handler which is used to access the display. Default
// Waveshare HAT configuration is used.
func NewHat(p spi.Port, opts *Opts) (*Dev, error) {
	dc := rpi.P1_22
	cs := rpi.P1_24
	rst := rpi.P1_11
	busy := rpi.P1_18
	return NewSPI(p, dc, cs, rst, busy, opts)
}

func (d *Dev) errorHandler() *errorHandler {
	return &errorHandler{t: d.t, busyTimeout: d.opts.BusyTimeout}
}

// Reset the hardware.
func (d *Dev) Reset() error {
	eh := d.errorHandler()

	eh.assertReset()
	eh.delay(resetDelay)
	eh.releaseReset()
	eh.delay(resetDelay)

	return eh.err
}

// Init resets the panel and programs the orientation and the waveform
// selected by Opts.Mode.
func (d *Dev) Init() error {
	d.initialized = false

	if err := d.Reset(); err != nil {
		return err
	}

	eh := d.errorHandler()

	initDisplay(eh, d.opts.Orientation, d.opts.lut())

	if eh.err == nil {
		d.initialized = true
	}

	return eh.err
}

// Buffer returns the framebuffer. Changes become visible on the next
// Display.
func (d *Dev) Buffer() *bitmap.Image {
	return d.buffer
}

// WriteImage uploads the framebuffer to the panel RAM.
func (d *Dev) WriteImage() error {
	if !d.initialized {
		return ErrNotInitialized
	}

	eh := d.errorHandler()
	writeImage(eh, d.opts.Orientation, d.buffer.Pix)
	return eh.err
}

// Update redraws the panel from its RAM.
func (d *Dev) Update() error {
	if !d.initialized {
		return ErrNotInitialized
	}

	eh := d.errorHandler()
	updateDisplay(eh)
	return eh.err
}

// Display uploads the framebuffer and redraws the panel.
func (d *Dev) Display() error {
	if err := d.WriteImage(); err != nil {
		return err
	}
	return d.Update()
}

// FullRefresh clears ghosting left behind by partial refreshes by drawing
// a black screen followed by a white one. The framebuffer is left white.
func (d *Dev) FullRefresh() error {
	if !d.initialized {
		return ErrNotInitialized
	}

	eh := d.errorHandler()
	fullRefresh(eh, d.opts.Orientation, d.buffer)
	return eh.err
}

// Clear fills the framebuffer with color and displays it.
func (d *Dev) Clear(color color.Color) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	d.buffer.Fill(image1bit.BitModel.Convert(color).(image1bit.Bit))
	return d.Display()
}

// ColorModel returns a 1Bit color model.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the bounds for the configured orientation.
func (d *Dev) Bounds() image.Rectangle {
	return d.bounds
}

// Draw draws the given image into the framebuffer and displays it. The whole
// framebuffer is uploaded.
func (d *Dev) Draw(dstRect image.Rectangle, src image.Image, srcPts image.Point) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	draw.Src.Draw(d.buffer, dstRect.Intersect(d.bounds), src, srcPts)
	return d.Display()
}

// Halt clears the display.
func (d *Dev) Halt() error {
	return d.Clear(image1bit.On)
}

// String returns a string containing configuration information.
func (d *Dev) String() string {
	return fmt.Sprintf("gdeh029a1.Dev{%v, %s, %s, Width: %d, Height: %d}", d.t, d.opts.Orientation, d.opts.Mode, d.bounds.Dx(), d.bounds.Dy())
}

var _ display.Drawer = &Dev{}
