// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75a

import "fmt"

// FaultQueue is the number of consecutive faults needed before the OS output
// asserts.
type FaultQueue uint8

// OSPolarity is the active level of the OS output.
type OSPolarity uint8

// DeviceMode selects how the OS output behaves.
type DeviceMode uint8

const (
	Faults1 FaultQueue = iota
	Faults2
	Faults4
	Faults6

	// ActiveLow is the power up default.
	ActiveLow  OSPolarity = 0
	ActiveHigh OSPolarity = 1

	// Comparator asserts OS while the temperature is above Tos and releases
	// it once it drops below Thyst. This is the power up default.
	Comparator DeviceMode = 0
	// Interrupt asserts OS when crossing Tos or Thyst, until a register is
	// read.
	Interrupt DeviceMode = 1
)

const (
	// Addresses of registers to read/write.
	regTemperature byte = 0
	regConfig      byte = 1
	regHysteresis  byte = 2
	regOSTrip      byte = 3
	regProductID   byte = 7

	// Configuration register layout.
	cfgShutdownBit   = 0
	cfgModeBit       = 1
	cfgPolarityBit   = 2
	cfgFaultQueuePos = 3
	cfgReservedPos   = 5

	cfgFaultQueueMask byte = 0x03
	cfgReservedMask   byte = 0x07
)

// Count returns the number of faults this setting stands for.
func (q FaultQueue) Count() int {
	switch q {
	case Faults1:
		return 1
	case Faults2:
		return 2
	case Faults4:
		return 4
	case Faults6:
		return 6
	}
	return 0
}

func (q FaultQueue) String() string {
	n := q.Count()
	switch {
	case n == 0:
		return fmt.Sprintf("FaultQueue(%d)", uint8(q))
	case n == 1:
		return "1 fault"
	}
	return fmt.Sprintf("%d faults", n)
}

// FaultQueueFromCount returns the setting for 1, 2, 4 or 6 faults.
func FaultQueueFromCount(n int) (FaultQueue, error) {
	switch n {
	case 1:
		return Faults1, nil
	case 2:
		return Faults2, nil
	case 4:
		return Faults4, nil
	case 6:
		return Faults6, nil
	}
	return 0, fmt.Errorf("lm75a: invalid fault count %d, must be 1, 2, 4 or 6", n)
}

func (p OSPolarity) String() string {
	switch p {
	case ActiveLow:
		return "active low"
	case ActiveHigh:
		return "active high"
	}
	return fmt.Sprintf("OSPolarity(%d)", uint8(p))
}

func (m DeviceMode) String() string {
	switch m {
	case Comparator:
		return "comparator"
	case Interrupt:
		return "interrupt"
	}
	return fmt.Sprintf("DeviceMode(%d)", uint8(m))
}

// Config is the decoded configuration register.
type Config struct {
	Shutdown   bool
	Mode       DeviceMode
	Polarity   OSPolarity
	FaultQueue FaultQueue
	// Reserved holds bits 5-7. They are written back as read.
	Reserved uint8
}

// DecodeConfig splits a raw configuration register value into its fields.
func DecodeConfig(b byte) Config {
	return Config{
		Shutdown:   b&(1<<cfgShutdownBit) != 0,
		Mode:       DeviceMode(b >> cfgModeBit & 1),
		Polarity:   OSPolarity(b >> cfgPolarityBit & 1),
		FaultQueue: FaultQueue(b >> cfgFaultQueuePos & cfgFaultQueueMask),
		Reserved:   b >> cfgReservedPos & cfgReservedMask,
	}
}

// Encode returns the raw configuration register value.
func (c Config) Encode() byte {
	var b byte
	if c.Shutdown {
		b |= 1 << cfgShutdownBit
	}
	b |= byte(c.Mode&1) << cfgModeBit
	b |= byte(c.Polarity&1) << cfgPolarityBit
	b |= (byte(c.FaultQueue) & cfgFaultQueueMask) << cfgFaultQueuePos
	b |= (c.Reserved & cfgReservedMask) << cfgReservedPos
	return b
}

func (c Config) String() string {
	state := "running"
	if c.Shutdown {
		state = "shutdown"
	}
	return fmt.Sprintf("%s, %s mode, OS %s, %s", state, c.Mode, c.Polarity, c.FaultQueue)
}

// decodeSigned converts the ×256 fixed point register bytes, read as two's
// complement.
func decodeSigned(b []byte) float64 {
	return float64(int16(uint16(b[0])<<8|uint16(b[1]))) / 256.0
}

// decodeUnsigned converts the ×256 fixed point register bytes, read as an
// unsigned count.
func decodeUnsigned(b []byte) float64 {
	return float64(uint16(b[0])<<8|uint16(b[1])) / 256.0
}

// encodeFixed converts degrees Celsius to the register bytes. The fraction
// below 1/256°C is truncated. Values outside of the device range are not
// clamped.
func encodeFixed(celsius float64) [2]byte {
	v := uint16(int16(celsius * 256))
	return [2]byte{byte(v >> 8), byte(v)}
}

// decodeProductID decodes the TI product ID register. The high nibble is the
// integer part and the low nibble the tenths.
func decodeProductID(b byte) float64 {
	return float64(b>>4) + float64(b&0x0f)/10.0
}
