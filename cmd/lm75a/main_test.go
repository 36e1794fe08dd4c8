// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/sensors/lm75a"
	"github.com/maruel/ansi256"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

const addr = lm75a.DefaultAddress

func runPlayback(t *testing.T, args []string, ops ...i2ctest.IO) (string, error) {
	pb := &i2ctest.Playback{Ops: ops, DontPanic: true}
	var buf bytes.Buffer
	err := run(lm75a.NewI2C(pb, nil), &output{w: &buf}, args)
	if err == nil {
		if cerr := pb.Close(); cerr != nil {
			t.Error(cerr)
		}
	}
	return buf.String(), err
}

func TestRead(t *testing.T) {
	out, err := runPlayback(t, nil,
		i2ctest.IO{Addr: addr, W: []byte{0}, R: []byte{0x19, 0x80}},
		i2ctest.IO{Addr: addr, W: []byte{3}, R: []byte{0x50, 0x00}},
		i2ctest.IO{Addr: addr, W: []byte{2}, R: []byte{0x4b, 0x00}},
		i2ctest.IO{Addr: addr, W: []byte{1}, R: []byte{0x00}},
		i2ctest.IO{Addr: addr, W: []byte{7}, R: []byte{0x23}},
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Log(out)
	for _, want := range []string{"25.500°C", "77.900°F", "80.000°C", "75.000°C", "0x00 running", "Product ID:  2.3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("unexpected escape sequence without a palette")
	}
}

func TestCommands(t *testing.T) {
	tests := []struct {
		args []string
		ops  []i2ctest.IO
	}{
		{[]string{"shutdown"}, []i2ctest.IO{
			{Addr: addr, W: []byte{1}, R: []byte{0x00}},
			{Addr: addr, W: []byte{1, 0x01}},
		}},
		{[]string{"wakeup"}, []i2ctest.IO{
			{Addr: addr, W: []byte{1}, R: []byte{0x01}},
			{Addr: addr, W: []byte{1, 0x00}},
		}},
		{[]string{"tos", "70.5"}, []i2ctest.IO{{Addr: addr, W: []byte{3, 0x46, 0x80}}}},
		{[]string{"thyst", "-10"}, []i2ctest.IO{{Addr: addr, W: []byte{2, 0xf6, 0x00}}}},
		{[]string{"faults", "6"}, []i2ctest.IO{
			{Addr: addr, W: []byte{1}, R: []byte{0x00}},
			{Addr: addr, W: []byte{1, 0x18}},
		}},
		{[]string{"polarity", "high"}, []i2ctest.IO{
			{Addr: addr, W: []byte{1}, R: []byte{0x00}},
			{Addr: addr, W: []byte{1, 0x04}},
		}},
		{[]string{"mode", "interrupt"}, []i2ctest.IO{
			{Addr: addr, W: []byte{1}, R: []byte{0x00}},
			{Addr: addr, W: []byte{1, 0x02}},
		}},
		{[]string{"defaults"}, []i2ctest.IO{
			{Addr: addr, W: []byte{1}, R: []byte{0x1f}},
			{Addr: addr, W: []byte{1, 0x00}},
			{Addr: addr, W: []byte{3, 0x50, 0x00}},
			{Addr: addr, W: []byte{2, 0x4b, 0x00}},
		}},
		{[]string{"probe"}, []i2ctest.IO{
			{Addr: addr, W: []byte{1}, R: []byte{0x00}},
			{Addr: addr, W: []byte{1, 0x0f}},
			{Addr: addr, W: []byte{1}, R: []byte{0x0f}},
			{Addr: addr, W: []byte{1, 0x00}},
		}},
	}
	for _, test := range tests {
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			if _, err := runPlayback(t, test.args, test.ops...); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestTemp(t *testing.T) {
	out, err := runPlayback(t, []string{"temp"}, i2ctest.IO{Addr: addr, W: []byte{0}, R: []byte{0xc9, 0x00}})
	if err != nil {
		t.Fatal(err)
	}
	if out != "-55.000\n" {
		t.Errorf("temp printed %q", out)
	}
}

func TestInvalidArguments(t *testing.T) {
	for _, args := range [][]string{
		{"bogus"},
		{"tos"},
		{"tos", "hot"},
		{"faults", "3"},
		{"polarity", "sideways"},
		{"mode", "manual"},
	} {
		if _, err := runPlayback(t, args); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestStatus(t *testing.T) {
	o := &output{palette: ansi256.Default}
	cold := o.status(20, 75, 80)
	warm := o.status(77, 75, 80)
	hot := o.status(85, 75, 80)
	if !strings.HasSuffix(cold, "\033[0m") {
		t.Errorf("status %q does not reset the colors", cold)
	}
	if cold == hot || warm == hot || cold == warm {
		t.Errorf("status blocks are not distinct: %q %q %q", cold, warm, hot)
	}
	if s := (&output{}).status(85, 75, 80); s != "" {
		t.Errorf("status without palette = %q", s)
	}
}
