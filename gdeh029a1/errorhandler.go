// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gdeh029a1

import (
	"time"
)

// errorHandler is a wrapper for error management.
type errorHandler struct {
	t           Transport
	busyTimeout time.Duration
	err         error

	// selected is set while chip select is asserted.
	selected bool
}

func (eh *errorHandler) assertReset() {
	if eh.err != nil {
		return
	}
	eh.err = eh.t.AssertReset()
}

func (eh *errorHandler) releaseReset() {
	if eh.err != nil {
		return
	}
	eh.err = eh.t.ReleaseReset()
}

func (eh *errorHandler) selectChip() {
	if eh.err != nil {
		return
	}
	eh.err = eh.t.SelectChip()
	eh.selected = eh.err == nil
}

// deselectChip releases chip select whenever it is asserted, also after a
// failure within the frame. The first error is kept.
func (eh *errorHandler) deselectChip() {
	if !eh.selected {
		return
	}
	eh.selected = false
	if err := eh.t.DeselectChip(); eh.err == nil {
		eh.err = err
	}
}

func (eh *errorHandler) commandMode() {
	if eh.err != nil {
		return
	}
	eh.err = eh.t.SetCommandMode()
}

func (eh *errorHandler) dataMode() {
	if eh.err != nil {
		return
	}
	eh.err = eh.t.SetDataMode()
}

func (eh *errorHandler) writeBytes(b []byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.t.WriteBytes(b)
}

func (eh *errorHandler) delay(d time.Duration) {
	if eh.err != nil {
		return
	}
	eh.t.Sleep(d)
}

// waitUntilIdle polls the busy line. The wait is unbounded unless
// busyTimeout is set.
func (eh *errorHandler) waitUntilIdle() {
	if eh.err != nil {
		return
	}

	var waited time.Duration

	for eh.t.IsBusy() {
		if eh.busyTimeout > 0 && waited >= eh.busyTimeout {
			eh.err = ErrDeviceUnresponsive
			return
		}
		eh.t.Sleep(busyPollInterval)
		waited += busyPollInterval
	}
}

func (eh *errorHandler) sendCommand(cmd byte) {
	eh.waitUntilIdle()

	eh.selectChip()
	eh.commandMode()
	eh.writeBytes([]byte{cmd})
	eh.deselectChip()
}

func (eh *errorHandler) sendData(data []byte) {
	eh.waitUntilIdle()

	eh.selectChip()
	eh.dataMode()
	eh.writeBytes(data)
	eh.deselectChip()
}
