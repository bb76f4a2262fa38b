// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gdeh029a1_test

import (
	"log"
	"time"

	"github.com/GermanBionicSystems/espaper/gdeh029a1"
	"github.com/GermanBionicSystems/espaper/gdeh029a1/glyph"
	"github.com/GermanBionicSystems/espaper/gdeh029a1/raster"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI bus registry to find the first available SPI bus.
	b, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	opts := gdeh029a1.GDEH029A1
	opts.BusyTimeout = 5 * time.Second

	dev, err := gdeh029a1.NewHat(b, &opts)
	if err != nil {
		log.Fatalf("Failed to initialize driver: %v", err)
	}

	if err := dev.Init(); err != nil {
		log.Fatalf("Failed to initialize display: %v", err)
	}

	glyphs, err := glyph.Default()
	if err != nil {
		log.Fatal(err)
	}

	// Black shapes and text on the white buffer.
	r := raster.New(dev.Buffer(), glyphs)
	r.Rect(0, 0, 295, 127, image1bit.Off, false)
	r.Circle(240, 64, 40, image1bit.Off, true)
	r.Line(10, 120, 180, 70, image1bit.Off)
	if err := r.Text("Hello from periph!", 10, 10, image1bit.Off); err != nil {
		log.Fatal(err)
	}

	if err := dev.Display(); err != nil {
		log.Fatal(err)
	}
}

func Example_partial() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	b, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	opts := gdeh029a1.GDEH029A1
	opts.Mode = gdeh029a1.Partial

	dev, err := gdeh029a1.NewHat(b, &opts)
	if err != nil {
		log.Fatalf("Failed to initialize driver: %v", err)
	}

	if err := dev.Init(); err != nil {
		log.Fatalf("Failed to initialize display: %v", err)
	}

	// Partial updates leave ghosting behind; clean the panel once first.
	if err := dev.FullRefresh(); err != nil {
		log.Fatal(err)
	}

	r := raster.New(dev.Buffer(), nil)
	for i := 0; i < 10; i++ {
		r.Rect(10+i*20, 50, 25+i*20, 65, image1bit.Off, true)
		if err := dev.Display(); err != nil {
			log.Fatal(err)
		}
	}
}
