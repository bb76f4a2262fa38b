// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gdeh029a1

import (
	"encoding/binary"
	"time"

	"github.com/GermanBionicSystems/espaper/gdeh029a1/bitmap"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const (
	resetDelay       = 10 * time.Millisecond
	busyPollInterval = 10 * time.Millisecond
	fullRefreshPause = 300 * time.Millisecond
)

// Data entry modes. Portrait increments X and Y with the counter advancing
// along X. Landscape decrements X and Y with the counter advancing along Y.
const (
	dataEntryPortrait  byte = 0b011
	dataEntryLandscape byte = 0b100
)

// controller sends commands and data to the panel. Every transfer waits for
// the panel to become idle first.
type controller interface {
	sendCommand(byte)
	sendData([]byte)
	delay(time.Duration)
}

// memoryWindow holds the RAM window; X is in bytes, Y in gate lines. The
// address counters start at the window start.
type memoryWindow struct {
	xStart, xEnd uint8
	yStart, yEnd uint16
}

func windowFor(o Orientation) memoryWindow {
	w := memoryWindow{
		xEnd: panelHeight/8 - 1,
		yEnd: panelWidth - 1,
	}
	if o == Landscape {
		w.xStart, w.xEnd = w.xEnd, w.xStart
		w.yStart, w.yEnd = w.yEnd, w.yStart
	}
	return w
}

func initDisplay(ctrl controller, o Orientation, lut LUT) {
	gates := [3]byte{}
	binary.LittleEndian.PutUint16(gates[0:], panelWidth-1)

	ctrl.sendCommand(driverOutputControl)
	ctrl.sendData(gates[:])

	ctrl.sendCommand(boosterSoftStartControl)
	ctrl.sendData([]byte{0xD7, 0xD6, 0x9D})

	ctrl.sendCommand(writeVcomRegister)
	ctrl.sendData([]byte{0xA8})

	ctrl.sendCommand(setDummyLinePeriod)
	ctrl.sendData([]byte{0x1A})

	ctrl.sendCommand(setGateTime)
	ctrl.sendData([]byte{0x08})

	mode := dataEntryLandscape
	if o == Portrait {
		mode = dataEntryPortrait
	}
	ctrl.sendCommand(dataEntryModeSetting)
	ctrl.sendData([]byte{mode})

	ctrl.sendCommand(writeLutRegister)
	ctrl.sendData(lut)

	setMemoryArea(ctrl, o)
	setMemoryPointer(ctrl, o)
}

// setMemoryArea configures the RAM window covering the whole panel.
func setMemoryArea(ctrl controller, o Orientation) {
	w := windowFor(o)

	startEndY := [4]byte{}
	binary.LittleEndian.PutUint16(startEndY[0:], w.yStart)
	binary.LittleEndian.PutUint16(startEndY[2:], w.yEnd)

	ctrl.sendCommand(setRAMXAddressStartEndPosition)
	ctrl.sendData([]byte{w.xStart, w.xEnd})

	ctrl.sendCommand(setRAMYAddressStartEndPosition)
	ctrl.sendData(startEndY[:])
}

// setMemoryPointer moves the address counters to the window start.
func setMemoryPointer(ctrl controller, o Orientation) {
	w := windowFor(o)

	startY := [2]byte{}
	binary.LittleEndian.PutUint16(startY[:], w.yStart)

	ctrl.sendCommand(setRAMXAddressCounter)
	ctrl.sendData([]byte{w.xStart})

	ctrl.sendCommand(setRAMYAddressCounter)
	ctrl.sendData(startY[:])
}

// writeImage resets the window and counters and streams pix to RAM.
func writeImage(ctrl controller, o Orientation, pix []byte) {
	setMemoryArea(ctrl, o)
	setMemoryPointer(ctrl, o)

	ctrl.sendCommand(writeRAM)
	ctrl.sendData(pix)
}

// updateDisplay redraws the panel from RAM with the loaded waveform.
func updateDisplay(ctrl controller) {
	ctrl.sendCommand(displayUpdateControl2)
	ctrl.sendData([]byte{0xC4})

	ctrl.sendCommand(masterActivation)
	ctrl.sendCommand(terminateFrameReadWrite)
}

// fullRefresh drives the panel black and then white.
func fullRefresh(ctrl controller, o Orientation, buffer *bitmap.Image) {
	buffer.Fill(image1bit.Off)
	writeImage(ctrl, o, buffer.Pix)
	updateDisplay(ctrl)

	ctrl.delay(fullRefreshPause)

	buffer.Fill(image1bit.On)
	writeImage(ctrl, o, buffer.Pix)
	updateDisplay(ctrl)
}
