// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75a

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// DefaultAddress is the bus address with A0-A2 tied low.
	DefaultAddress uint16 = 0x48
	// MinAddress and MaxAddress bound the addresses the pins can select.
	MinAddress uint16 = 0x48
	MaxAddress uint16 = 0x4f

	// Power up values of the threshold registers, in °C.
	DefaultOSTrip     = 80.0
	DefaultHysteresis = 75.0

	// connectedProbe is written to the configuration register by
	// IsConnected.
	connectedProbe byte = 0x0f

	// One count of the fixed point registers is 1/256°C, or exactly
	// 3906250nK.
	_COUNT physic.Temperature = physic.Kelvin / 256
	// NXP silicon uses the top 11 bits.
	_DEGREES_RESOLUTION physic.Temperature = 125 * physic.MilliKelvin
)

// PinAddress returns the bus address selected by the A2, A1 and A0 pins,
// passed as the low three bits of pins.
func PinAddress(pins uint8) uint16 {
	return MinAddress | uint16(pins&0x07)
}

// Opts represents configurable options for the LM75A.
type Opts struct {
	// Addr is the 7 bit bus address. Zero selects DefaultAddress. It is not
	// validated.
	Addr uint16
	// SignedThresholds decodes the hysteresis and trip registers as two's
	// complement, like the temperature register. It is off by default: the
	// registers are then read as unsigned, so thresholds below 0°C come back
	// as large positive values. Writes encode negative values either way.
	SignedThresholds bool
}

// Dev represents an LM75A sensor.
//
// Dev does not serialize access. Callers sharing the device or the bus
// between goroutines must lock around calls.
type Dev struct {
	d    *i2c.Dev
	opts Opts
}

// NewI2C returns a new LM75A sensor on the specified bus. If opts is nil the
// default address and options are used. No transaction is made.
func NewI2C(b i2c.Bus, opts *Opts) *Dev {
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.Addr == 0 {
		o.Addr = DefaultAddress
	}
	return &Dev{d: &i2c.Dev{Bus: b, Addr: o.Addr}, opts: o}
}

// Addr returns the bus address of the device.
func (dev *Dev) Addr() uint16 {
	return dev.d.Addr
}

func (dev *Dev) String() string {
	return fmt.Sprintf("lm75a{%s}", dev.d)
}

// Shutdown puts the device in low power mode. The temperature register keeps
// the last conversion.
func (dev *Dev) Shutdown() error {
	return dev.updateConfig("shutdown", func(c *Config) { c.Shutdown = true })
}

// Wakeup resumes temperature conversions.
func (dev *Dev) Wakeup() error {
	return dev.updateConfig("wakeup", func(c *Config) { c.Shutdown = false })
}

// IsShutdown reports whether the device is in shutdown mode.
func (dev *Dev) IsShutdown() (bool, error) {
	c, err := dev.Config()
	return c.Shutdown, err
}

// Temperature returns the last converted temperature in °C.
func (dev *Dev) Temperature() (float64, error) {
	r, err := dev.readWord("temperature", regTemperature)
	if err != nil {
		return 0, err
	}
	return decodeSigned(r[:]), nil
}

// TemperatureFahrenheit returns the last converted temperature in °F.
func (dev *Dev) TemperatureFahrenheit() (float64, error) {
	c, err := dev.Temperature()
	if err != nil {
		return 0, err
	}
	return toFahrenheit(c), nil
}

// Hysteresis returns the Thyst register in °C. Refer to
// Opts.SignedThresholds for negative values.
func (dev *Dev) Hysteresis() (float64, error) {
	return dev.readThreshold("hysteresis", regHysteresis)
}

// OSTrip returns the Tos register in °C. Refer to Opts.SignedThresholds for
// negative values.
func (dev *Dev) OSTrip() (float64, error) {
	return dev.readThreshold("os trip", regOSTrip)
}

// SetHysteresis writes the Thyst register. The value is not range checked.
func (dev *Dev) SetHysteresis(celsius float64) error {
	return dev.writeWord("set hysteresis", regHysteresis, encodeFixed(celsius))
}

// SetOSTrip writes the Tos register. The value is not range checked.
func (dev *Dev) SetOSTrip(celsius float64) error {
	return dev.writeWord("set os trip", regOSTrip, encodeFixed(celsius))
}

// FaultQueue returns the fault queue setting.
func (dev *Dev) FaultQueue() (FaultQueue, error) {
	c, err := dev.Config()
	return c.FaultQueue, err
}

// SetFaultQueue changes the fault queue setting, leaving the other
// configuration bits alone.
func (dev *Dev) SetFaultQueue(q FaultQueue) error {
	return dev.updateConfig("set fault queue", func(c *Config) { c.FaultQueue = q })
}

// OSPolarity returns the OS output polarity.
func (dev *Dev) OSPolarity() (OSPolarity, error) {
	c, err := dev.Config()
	return c.Polarity, err
}

// SetOSPolarity changes the OS output polarity, leaving the other
// configuration bits alone.
func (dev *Dev) SetOSPolarity(p OSPolarity) error {
	return dev.updateConfig("set os polarity", func(c *Config) { c.Polarity = p })
}

// DeviceMode returns the OS output mode.
func (dev *Dev) DeviceMode() (DeviceMode, error) {
	c, err := dev.Config()
	return c.Mode, err
}

// SetDeviceMode changes the OS output mode, leaving the other configuration
// bits alone.
func (dev *Dev) SetDeviceMode(m DeviceMode) error {
	return dev.updateConfig("set device mode", func(c *Config) { c.Mode = m })
}

// RawConfig returns the configuration register as is.
func (dev *Dev) RawConfig() (byte, error) {
	return dev.readByte("config", regConfig)
}

// Config returns the decoded configuration register.
func (dev *Dev) Config() (Config, error) {
	b, err := dev.RawConfig()
	if err != nil {
		return Config{}, err
	}
	return DecodeConfig(b), nil
}

// SetConfig writes the whole configuration register.
func (dev *Dev) SetConfig(c Config) error {
	return dev.writeByte("set config", regConfig, c.Encode())
}

// ProductID returns the revision held in the product ID register. Only
// meaningful on Texas Instruments devices.
func (dev *Dev) ProductID() (float64, error) {
	b, err := dev.readByte("product id", regProductID)
	if err != nil {
		return 0, err
	}
	return decodeProductID(b), nil
}

// IsConnected checks that an LM75A answers at the address by writing a test
// pattern to the configuration register and reading it back. The previous
// configuration is restored afterward, also when the check fails.
func (dev *Dev) IsConnected() (bool, error) {
	old, err := dev.readByte("probe", regConfig)
	if err != nil {
		return false, err
	}
	if err = dev.writeByte("probe", regConfig, connectedProbe); err != nil {
		return false, err
	}
	got, rerr := dev.readByte("probe", regConfig)
	if err = dev.writeByte("probe restore", regConfig, old); err != nil {
		return false, err
	}
	if rerr != nil {
		return false, rerr
	}
	return got == connectedProbe, nil
}

// RestoreDefaults writes the power up state: running, comparator mode, OS
// active low, one fault, Tos = 80°C and Thyst = 75°C. The reserved
// configuration bits are preserved.
func (dev *Dev) RestoreDefaults() error {
	if err := dev.updateConfig("restore defaults", func(c *Config) {
		*c = Config{Reserved: c.Reserved}
	}); err != nil {
		return err
	}
	if err := dev.SetOSTrip(DefaultOSTrip); err != nil {
		return err
	}
	return dev.SetHysteresis(DefaultHysteresis)
}

// Sense reads the temperature from the device and writes the value to the
// specified env variable. Pressure and humidity are not touched.
func (dev *Dev) Sense(env *physic.Env) error {
	r, err := dev.readWord("sense", regTemperature)
	if err != nil {
		return err
	}
	env.Temperature = countToTemperature(r)
	return nil
}

// Precision returns the sensor's precision. The 0.125°C step is the one of
// the NXP part; 9 bit devices step by 0.5°C.
func (dev *Dev) Precision(env *physic.Env) {
	env.Temperature = _DEGREES_RESOLUTION
	env.Pressure = 0
	env.Humidity = 0
}

// Halt puts the device in shutdown mode. Implements conn.Resource.
func (dev *Dev) Halt() error {
	return dev.Shutdown()
}

func (dev *Dev) readThreshold(op string, reg byte) (float64, error) {
	r, err := dev.readWord(op, reg)
	if err != nil {
		return 0, err
	}
	if dev.opts.SignedThresholds {
		return decodeSigned(r[:]), nil
	}
	return decodeUnsigned(r[:]), nil
}

// updateConfig does a read-modify-write of the configuration register. The
// write is skipped when nothing changes.
func (dev *Dev) updateConfig(op string, f func(c *Config)) error {
	b, err := dev.readByte(op, regConfig)
	if err != nil {
		return err
	}
	c := DecodeConfig(b)
	f(&c)
	if n := c.Encode(); n != b {
		return dev.writeByte(op, regConfig, n)
	}
	return nil
}

func (dev *Dev) readByte(op string, reg byte) (byte, error) {
	var r [1]byte
	if err := dev.d.Tx([]byte{reg}, r[:]); err != nil {
		return 0, dev.wrap(op, err)
	}
	return r[0], nil
}

func (dev *Dev) readWord(op string, reg byte) ([2]byte, error) {
	var r [2]byte
	if err := dev.d.Tx([]byte{reg}, r[:]); err != nil {
		return r, dev.wrap(op, err)
	}
	return r, nil
}

func (dev *Dev) writeByte(op string, reg, v byte) error {
	if err := dev.d.Tx([]byte{reg, v}, nil); err != nil {
		return dev.wrap(op, err)
	}
	return nil
}

func (dev *Dev) writeWord(op string, reg byte, v [2]byte) error {
	if err := dev.d.Tx([]byte{reg, v[0], v[1]}, nil); err != nil {
		return dev.wrap(op, err)
	}
	return nil
}

func (dev *Dev) wrap(op string, err error) error {
	return fmt.Errorf("lm75a: %s: %w", op, err)
}

// countToTemperature returns the exact temperature of the raw register
// bytes.
func countToTemperature(b [2]byte) physic.Temperature {
	count := int16(uint16(b[0])<<8 | uint16(b[1]))
	return physic.ZeroCelsius + physic.Temperature(count)*_COUNT
}

func toFahrenheit(celsius float64) float64 {
	return celsius*1.8 + 32
}

var _ conn.Resource = &Dev{}
