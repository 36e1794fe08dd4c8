// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75a

import "log"

// Compat exposes the device with plain return values. Bus failures are not
// reported: reads return 0 (or the value decoded from a 0 register) and
// writes return false. A valid reading of 0°C can't be told apart from a
// failure; use the Dev methods when that matters.
//
// The 16 bit reads log the failure with the standard logger.
type Compat struct {
	dev *Dev
}

// Compat returns the sentinel valued view of dev.
func (dev *Dev) Compat() Compat {
	return Compat{dev: dev}
}

// Shutdown puts the device in low power mode.
func (c Compat) Shutdown() bool {
	return c.dev.Shutdown() == nil
}

// Wakeup resumes temperature conversions.
func (c Compat) Wakeup() bool {
	return c.dev.Wakeup() == nil
}

// IsShutdown reports whether the device is in shutdown mode. Returns false
// on failure.
func (c Compat) IsShutdown() bool {
	return c.config().Shutdown
}

// Temperature returns the temperature in °C, or 0 on failure.
func (c Compat) Temperature() float64 {
	return c.word(c.dev.Temperature())
}

// TemperatureFahrenheit returns the temperature in °F. It is derived from
// Temperature, so a failure gives 32°F.
func (c Compat) TemperatureFahrenheit() float64 {
	return toFahrenheit(c.Temperature())
}

// Hysteresis returns Thyst in °C, or 0 on failure.
func (c Compat) Hysteresis() float64 {
	return c.word(c.dev.Hysteresis())
}

// OSTrip returns Tos in °C, or 0 on failure.
func (c Compat) OSTrip() float64 {
	return c.word(c.dev.OSTrip())
}

// FaultQueue returns the fault queue setting, Faults1 on failure.
func (c Compat) FaultQueue() FaultQueue {
	return c.config().FaultQueue
}

// OSPolarity returns the OS polarity, ActiveLow on failure.
func (c Compat) OSPolarity() OSPolarity {
	return c.config().Polarity
}

// DeviceMode returns the device mode, Comparator on failure.
func (c Compat) DeviceMode() DeviceMode {
	return c.config().Mode
}

// RawConfig returns the configuration register, 0 on failure.
func (c Compat) RawConfig() byte {
	b, _ := c.dev.RawConfig()
	return b
}

// ProductID returns the product revision, 0 on failure.
func (c Compat) ProductID() float64 {
	v, _ := c.dev.ProductID()
	return v
}

// SetHysteresis writes Thyst.
func (c Compat) SetHysteresis(celsius float64) bool {
	return c.dev.SetHysteresis(celsius) == nil
}

// SetOSTrip writes Tos.
func (c Compat) SetOSTrip(celsius float64) bool {
	return c.dev.SetOSTrip(celsius) == nil
}

// SetFaultQueue changes the fault queue setting.
func (c Compat) SetFaultQueue(q FaultQueue) bool {
	return c.dev.SetFaultQueue(q) == nil
}

// SetOSPolarity changes the OS polarity.
func (c Compat) SetOSPolarity(p OSPolarity) bool {
	return c.dev.SetOSPolarity(p) == nil
}

// SetDeviceMode changes the device mode.
func (c Compat) SetDeviceMode(m DeviceMode) bool {
	return c.dev.SetDeviceMode(m) == nil
}

// IsConnected reports whether an LM75A answers at the address.
func (c Compat) IsConnected() bool {
	ok, _ := c.dev.IsConnected()
	return ok
}

// config decodes a zero register on failure.
func (c Compat) config() Config {
	return DecodeConfig(c.RawConfig())
}

func (c Compat) word(v float64, err error) float64 {
	if err != nil {
		log.Print(err)
		return 0
	}
	return v
}
