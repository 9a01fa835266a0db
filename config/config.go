// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads programmer settings from a Starlark file.
//
// Chip sizes (AT28C16, AT28C64, AT28C256) and display variants
// (COMMON_CATHODE, COMMON_ANODE) are predeclared. Example:
//
//	chip = AT28C16
//	display = COMMON_ANODE
//	pins = {
//	    "ser": "GPIO2", "srclk": "GPIO3", "rclk": "GPIO4", "we": "GPIO13",
//	    "io": ["GPIO%d" % n for n in range(5, 13)],
//	}
//	write_pulse_us = 1
//	poll_interval_us = 1
//	poll_limit = 10000
//
// Globals starting with '_' are private to the file.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/eeprog/display"
	"github.com/ezrec/eeprog/eeprom"
	"github.com/ezrec/eeprog/internal"
	"github.com/ezrec/eeprog/pinout"
)

// Config is the complete programmer configuration.
type Config struct {
	Eeprom  eeprom.Config   // Transport settings, without pins.
	Names   pinout.Names    // Host line of each pin role.
	Variant display.Variant // Display decoder variant.
}

// Default returns the Arduino shield wiring: SER on 2, SRCLK 3, RCLK 4, I/O 5..12, WE 13.
func Default() (cfg Config) {
	cfg.Eeprom = eeprom.DefaultConfig()
	cfg.Names = pinout.Names{
		Serial:      "GPIO2",
		ShiftClock:  "GPIO3",
		LatchClock:  "GPIO4",
		WriteEnable: "GPIO13",
	}
	for n := range cfg.Names.Data {
		cfg.Names.Data[n] = fmt.Sprintf("GPIO%d", 5+n)
	}
	cfg.Variant = display.COMMON_CATHODE

	return
}

// Predeclared returns the constants visible to configuration files.
func Predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	for key, value := range internal.IterSeq2Concat(eeprom.Defines(), display.Defines()) {
		pred[key] = starlark.MakeInt(value)
	}
	return
}

// Load reads a configuration file over the defaults. If src is nil,
// filename is read from disk.
func Load(filename string, src any) (cfg Config, err error) {
	cfg = Default()

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, Predeclared())
	if err != nil {
		return
	}

	ld := &loader{file: filename, cfg: &cfg}
	for _, key := range globals.Keys() {
		if strings.HasPrefix(key, "_") {
			continue
		}
		err = ld.set(key, globals[key])
		if err != nil {
			return
		}
	}

	return
}

type loader struct {
	file string
	cfg  *Config
}

func (ld *loader) fail(key string, err error) error {
	return &ErrConfig{File: ld.file, Key: key, Err: err}
}

func (ld *loader) set(key string, value starlark.Value) (err error) {
	switch key {
	case "chip":
		ld.cfg.Eeprom.Size, err = ld.int(key, value)
	case "display":
		ld.cfg.Variant, err = ld.variant(key, value)
	case "pins":
		err = ld.pins(key, value)
	case "write_enable_active_high":
		ld.cfg.Eeprom.WriteEnableActiveHigh, err = ld.bool(key, value)
	case "write_pulse_us":
		ld.cfg.Eeprom.WritePulse, err = ld.micros(key, value)
	case "poll_interval_us":
		ld.cfg.Eeprom.PollInterval, err = ld.micros(key, value)
	case "poll_limit":
		ld.cfg.Eeprom.PollLimit, err = ld.int(key, value)
		if err == nil && ld.cfg.Eeprom.PollLimit <= 0 {
			err = ld.fail(key, ErrKeyRange)
		}
	case "verbose":
		ld.cfg.Eeprom.Verbose, err = ld.bool(key, value)
	default:
		err = ld.fail(key, ErrKeyUnknown)
	}

	return
}

func (ld *loader) int(key string, value starlark.Value) (n int, err error) {
	n, err = starlark.AsInt32(value)
	if err != nil {
		err = ld.fail(key, ErrKeyType)
	}
	return
}

func (ld *loader) bool(key string, value starlark.Value) (b bool, err error) {
	st_bool, ok := value.(starlark.Bool)
	if !ok {
		err = ld.fail(key, ErrKeyType)
		return
	}
	b = bool(st_bool)
	return
}

func (ld *loader) string(key string, value starlark.Value) (s string, err error) {
	s, ok := starlark.AsString(value)
	if !ok {
		err = ld.fail(key, ErrKeyType)
	}
	return
}

func (ld *loader) micros(key string, value starlark.Value) (d time.Duration, err error) {
	us, err := ld.int(key, value)
	if err != nil {
		return
	}
	if us < 0 {
		err = ld.fail(key, ErrKeyRange)
		return
	}
	d = time.Duration(us) * time.Microsecond
	return
}

// variant accepts a predeclared constant or a variant name.
func (ld *loader) variant(key string, value starlark.Value) (v display.Variant, err error) {
	if name, ok := starlark.AsString(value); ok {
		v, err = display.ParseVariant(name)
		if err != nil {
			err = ld.fail(key, err)
		}
		return
	}

	n, err := ld.int(key, value)
	if err != nil {
		return
	}
	v = display.Variant(n)
	if !v.Valid() {
		err = ld.fail(key, display.ErrVariant(v.String()))
	}
	return
}

func (ld *loader) pins(key string, value starlark.Value) (err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		return ld.fail(key, ErrKeyType)
	}

	names := &ld.cfg.Names
	for _, item := range dict.Items() {
		var role string
		role, err = ld.string(key, item[0])
		if err != nil {
			return
		}

		subkey := key + "." + role
		switch role {
		case eeprom.PIN_SERIAL:
			names.Serial, err = ld.string(subkey, item[1])
		case eeprom.PIN_SHIFT_CLOCK:
			names.ShiftClock, err = ld.string(subkey, item[1])
		case eeprom.PIN_LATCH_CLOCK:
			names.LatchClock, err = ld.string(subkey, item[1])
		case eeprom.PIN_WRITE_ENABLE:
			names.WriteEnable, err = ld.string(subkey, item[1])
		case "io":
			err = ld.data(subkey, item[1])
		default:
			err = ld.fail(subkey, ErrKeyUnknown)
		}
		if err != nil {
			return
		}
	}

	return
}

func (ld *loader) data(key string, value starlark.Value) (err error) {
	seq, ok := value.(starlark.Indexable)
	if _, isString := value.(starlark.String); !ok || isString {
		return ld.fail(key, ErrKeyType)
	}
	if seq.Len() != len(ld.cfg.Names.Data) {
		return ld.fail(key, ErrKeyRange)
	}

	for n := range ld.cfg.Names.Data {
		ld.cfg.Names.Data[n], err = ld.string(key, seq.Index(n))
		if err != nil {
			return
		}
	}

	return
}
