// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// lm75a provides a package for interfacing the LM75A I²C temperature sensor
// made by NXP and Texas Instruments. Other chips with the LM75 register map
// can be driven as well.
//
// Range: -55°C - 125°C
//
// Resolution: 0.125°C on NXP silicon (11 bits), 0.5°C on the standard
// 9 bit parts.
//
// The bus address is selected with the A0-A2 pins and spans 0x48 - 0x4F.
//
// On power up the device is running in comparator mode with OS active low,
// Tos = 80°C and Thyst = 75°C.
//
// The OS (overtemperature shutdown) output asserts according to the device
// mode, polarity and fault queue settings. This package only configures it;
// watching the pin is left to the application.
//
// The product ID register is only implemented by the Texas Instruments
// part. Other vendors return arbitrary data.
//
// Two call styles are available. The methods of Dev return an error with
// every value. Compat wraps a Dev and returns a plain value that degrades
// to zero on bus failures, for polling loops that resample on the next
// cycle.
//
// For detailed information, refer to the datasheets.
//
//	https://www.nxp.com/docs/en/data-sheet/LM75A.pdf
//	https://www.ti.com/lit/ds/symlink/lm75a.pdf
package lm75a
