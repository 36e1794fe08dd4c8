// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sensors is a container for sensor device drivers built on
// periph.io.
//
// The drivers live in sub-packages, one per chip family. See lm75a for the
// NXP/TI LM75A temperature sensor.
package sensors
