// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// lm75a reads and configures an LM75A temperature sensor.
//
// Each invocation runs one command:
//
//	read                      temperature, thresholds and configuration (default)
//	temp                      temperature in °C only
//	shutdown | wakeup         power mode
//	tos <°C> | thyst <°C>     OS trip and hysteresis thresholds
//	faults <1|2|4|6>          fault queue
//	polarity <low|high>       OS output polarity
//	mode <comparator|interrupt>
//	defaults                  restore the power up configuration
//	probe                     check that an LM75A answers
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/GermanBionicSystems/sensors/lm75a"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var (
	colorCold = color.NRGBA{0x00, 0xc0, 0x00, 0xff}
	colorWarm = color.NRGBA{0xe0, 0xc0, 0x00, 0xff}
	colorHot  = color.NRGBA{0xff, 0x00, 0x00, 0xff}
)

// output is where command results are printed.
type output struct {
	w       io.Writer
	palette *ansi256.Palette
}

func newOutput(mode string) (*output, error) {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	switch mode {
	case "auto":
	case "always":
		tty = true
	case "never":
		tty = false
	default:
		return nil, fmt.Errorf("invalid -color value %q", mode)
	}
	if !tty {
		return &output{w: colorable.NewNonColorable(os.Stdout)}, nil
	}
	return &output{w: colorable.NewColorableStdout(), palette: ansi256.Default}, nil
}

// status returns a colored block showing where c sits relative to the
// thresholds. Empty when colors are disabled.
func (o *output) status(c, hyst, tos float64) string {
	if o.palette == nil {
		return ""
	}
	col := colorCold
	switch {
	case c >= tos:
		col = colorHot
	case c >= hyst:
		col = colorWarm
	}
	return " " + o.palette.Block(col) + "\033[0m"
}

func (o *output) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(o.w, format, a...)
}

func run(dev *lm75a.Dev, out *output, args []string) error {
	cmd := "read"
	if len(args) != 0 {
		cmd = args[0]
		args = args[1:]
	}
	arg := func() (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("%s takes exactly one argument", cmd)
		}
		return args[0], nil
	}

	switch cmd {
	case "read":
		return read(dev, out)
	case "temp":
		c, err := dev.Temperature()
		if err != nil {
			return err
		}
		out.printf("%.3f\n", c)
		return nil
	case "shutdown":
		return dev.Shutdown()
	case "wakeup":
		return dev.Wakeup()
	case "tos", "thyst":
		s, err := arg()
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid temperature %q: %w", s, err)
		}
		if cmd == "tos" {
			return dev.SetOSTrip(v)
		}
		return dev.SetHysteresis(v)
	case "faults":
		s, err := arg()
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid fault count %q: %w", s, err)
		}
		q, err := lm75a.FaultQueueFromCount(n)
		if err != nil {
			return err
		}
		return dev.SetFaultQueue(q)
	case "polarity":
		s, err := arg()
		if err != nil {
			return err
		}
		switch strings.ToLower(s) {
		case "low":
			return dev.SetOSPolarity(lm75a.ActiveLow)
		case "high":
			return dev.SetOSPolarity(lm75a.ActiveHigh)
		}
		return fmt.Errorf("invalid polarity %q, must be low or high", s)
	case "mode":
		s, err := arg()
		if err != nil {
			return err
		}
		switch strings.ToLower(s) {
		case "comparator":
			return dev.SetDeviceMode(lm75a.Comparator)
		case "interrupt":
			return dev.SetDeviceMode(lm75a.Interrupt)
		}
		return fmt.Errorf("invalid mode %q, must be comparator or interrupt", s)
	case "defaults":
		return dev.RestoreDefaults()
	case "probe":
		ok, err := dev.IsConnected()
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("no LM75A found")
		}
		out.printf("%s: ok\n", dev)
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func read(dev *lm75a.Dev, out *output) error {
	c, err := dev.Temperature()
	if err != nil {
		return err
	}
	tos, err := dev.OSTrip()
	if err != nil {
		return err
	}
	hyst, err := dev.Hysteresis()
	if err != nil {
		return err
	}
	raw, err := dev.RawConfig()
	if err != nil {
		return err
	}
	out.printf("%s\n", dev)
	out.printf("Temperature: %8.3f°C %8.3f°F%s\n", c, c*1.8+32, out.status(c, hyst, tos))
	out.printf("Tos:         %8.3f°C\n", tos)
	out.printf("Thyst:       %8.3f°C\n", hyst)
	out.printf("Config:      0x%02x %s\n", raw, lm75a.DecodeConfig(raw))
	// Only TI parts implement the product ID register.
	if id, err := dev.ProductID(); err == nil {
		out.printf("Product ID:  %.1f\n", id)
	}
	return nil
}

func mainImpl() error {
	bus := flag.String("bus", "", "I²C bus to use")
	addr := flag.Uint("addr", uint(lm75a.DefaultAddress), "I²C address of the device")
	signed := flag.Bool("signed", false, "decode Tos and Thyst as signed values")
	colorMode := flag.String("color", "auto", "colored output: auto, always or never")
	flag.Parse()

	out, err := newOutput(*colorMode)
	if err != nil {
		return err
	}

	if _, err = host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(*bus)
	if err != nil {
		return err
	}
	defer b.Close()

	dev := lm75a.NewI2C(b, &lm75a.Opts{Addr: uint16(*addr), SignedThresholds: *signed})
	return run(dev, out, flag.Args())
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatalf("lm75a: %v", err)
	}
}
