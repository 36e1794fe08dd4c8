// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75a_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/sensors/lm75a"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	sensor := lm75a.NewI2C(bus, &lm75a.Opts{Addr: lm75a.PinAddress(0)})

	// Raise the OS output at 70°C, release it at 65°C.
	if err := sensor.SetOSTrip(70); err != nil {
		log.Fatal(err)
	}
	if err := sensor.SetHysteresis(65); err != nil {
		log.Fatal(err)
	}

	c, err := sensor.Temperature()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Temperature: %.3f°C\n", c)
}

func ExampleCompat() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	// Failed reads come back as 0; the next sample will tell.
	sensor := lm75a.NewI2C(bus, nil).Compat()
	fmt.Printf("%.3f°C %.3f°F\n", sensor.Temperature(), sensor.TemperatureFahrenheit())
}
