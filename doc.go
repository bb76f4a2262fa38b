// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package espaper is a container for the GDEH029A1 e-paper driver, its
// packed framebuffer and rasterizer, and a terminal preview device.
//
// See package gdeh029a1 for the panel driver.
package espaper
