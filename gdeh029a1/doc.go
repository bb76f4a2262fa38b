// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gdeh029a1 controls the GoodDisplay GDEH029A1 2.9 inch e-paper
// panel, as found on the Waveshare 2.9 inch e-Paper module and the ThingPulse
// ESPaper board.
//
// The panel is 296x128 pixels. The driver keeps a packed framebuffer which is
// drawn into with package raster or through the display.Drawer interface and
// uploaded with Display.
//
// All operations block. Each command and data transfer first waits for the
// busy line to go idle, polling every 10ms. By default the wait is unbounded;
// set Opts.BusyTimeout to fail with ErrDeviceUnresponsive instead.
//
// In Partial refresh mode ghosting accumulates between updates. Call
// FullRefresh from time to time to clear it.
//
// Datasheet
//
// https://www.waveshare.com/w/upload/e/e6/2.9inch_e-Paper_Datasheet.pdf
package gdeh029a1
