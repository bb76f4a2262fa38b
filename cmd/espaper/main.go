// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// espaper draws a demo frame on a GDEH029A1 2.9" e-paper panel.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/espaper/gdeh029a1"
	"github.com/GermanBionicSystems/espaper/termview"
)

func openPin(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", name)
	}
	return p, nil
}

func mainImpl() error {
	opts := gdeh029a1.GDEH029A1
	flag.Var(&opts.Orientation, "orientation", "landscape or portrait")
	flag.Var(&opts.Mode, "mode", "refresh waveform: full or partial")
	flag.DurationVar(&opts.BusyTimeout, "busy-timeout", 10*time.Second, "give up waiting on the busy line after this long; 0 waits forever")
	spiID := flag.String("spi", "", "SPI port to use")
	dcName := flag.String("dc", "GPIO25", "data/command pin")
	csName := flag.String("cs", "GPIO8", "chip select pin")
	rstName := flag.String("rst", "GPIO17", "reset pin")
	busyName := flag.String("busy", "GPIO24", "busy pin")
	sceneName := flag.String("scene", "grid", "frame to draw: "+strings.Join(sceneNames(), ", "))
	text := flag.String("text", "this is only a text", "text drawn by the scene")
	preview := flag.Bool("preview", false, "print the frame to the terminal")
	previewStep := flag.Int("preview-step", 2, "print every n-th pixel with -preview")
	trace := flag.Bool("trace", false, "log every command sent to the panel")
	dryRun := flag.Bool("dry-run", false, "do not touch the hardware")
	fullRefresh := flag.Bool("full-refresh", false, "flash the panel black and white before drawing")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	drawScene, ok := scenes[*sceneName]
	if !ok {
		return fmt.Errorf("unknown scene %q, want one of %s", *sceneName, strings.Join(sceneNames(), ", "))
	}

	var t gdeh029a1.Transport = nopTransport{}
	if !*dryRun {
		if _, err := host.Init(); err != nil {
			return err
		}

		p, err := spireg.Open(*spiID)
		if err != nil {
			return err
		}
		defer p.Close()

		var pins [4]gpio.PinIO
		for i, name := range []string{*dcName, *csName, *rstName, *busyName} {
			if pins[i], err = openPin(name); err != nil {
				return err
			}
		}

		if t, err = gdeh029a1.NewSPITransport(p, pins[0], pins[1], pins[2], pins[3]); err != nil {
			return err
		}
	}
	if *trace {
		t = &traceTransport{Transport: t, l: log.Default()}
	}

	dev, err := gdeh029a1.New(t, &opts)
	if err != nil {
		return err
	}
	log.Printf("using %s", dev)

	if err := dev.Init(); err != nil {
		return err
	}

	if *fullRefresh {
		if err := dev.FullRefresh(); err != nil {
			return err
		}
	}

	if err := drawScene(dev.Buffer(), *text); err != nil {
		return err
	}

	if *preview {
		b := dev.Bounds()
		v := termview.New(&termview.Opts{Width: b.Dx(), Height: b.Dy(), Step: *previewStep})
		if err := v.Draw(b, dev.Buffer(), image.Point{}); err != nil {
			return err
		}
		if err := v.Halt(); err != nil {
			return err
		}
	}

	return dev.Display()
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatalf("espaper: %v", err)
	}
}
