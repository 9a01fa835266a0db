// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package pinout binds programmer pin roles to host GPIO lines.
package pinout

import (
	"errors"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/ezrec/eeprog/eeprom"
	"github.com/ezrec/eeprog/translate"
)

var f = translate.From

var (
	ErrPinUnknown = errors.New(f("gpio unknown"))
)

// Names of the host lines, as known to the periph.io registry.
type Names struct {
	Serial      string
	ShiftClock  string
	LatchClock  string
	Data        [8]string
	WriteEnable string
}

var initHost = sync.OnceValue(func() error {
	_, err := host.Init()
	return err
})

// Pin is a host GPIO line.
type Pin struct {
	gpio.PinIO
}

var _ eeprom.Pin = (*Pin)(nil)

func (p *Pin) Out(level bool) error {
	return p.PinIO.Out(gpio.Level(level))
}

func (p *Pin) In() error {
	return p.PinIO.In(gpio.PullNoChange, gpio.NoEdge)
}

func (p *Pin) Read() bool {
	return bool(p.PinIO.Read())
}

// Lookup returns the host line named name.
func Lookup(name string) (pin *Pin, err error) {
	err = initHost()
	if err != nil {
		return
	}

	io := gpioreg.ByName(name)
	if io == nil {
		err = &eeprom.ErrPin{Pin: name, Err: ErrPinUnknown}
		return
	}

	pin = &Pin{PinIO: io}
	return
}

// Open looks up every named line.
func Open(names Names) (pins eeprom.Pins, err error) {
	lookup := func(name string) (pin eeprom.Pin) {
		if err != nil {
			return
		}
		var p *Pin
		p, err = Lookup(name)
		if err == nil {
			pin = p
		}
		return
	}

	pins.Serial = lookup(names.Serial)
	pins.ShiftClock = lookup(names.ShiftClock)
	pins.LatchClock = lookup(names.LatchClock)
	pins.WriteEnable = lookup(names.WriteEnable)
	for n, name := range names.Data {
		pins.Data[n] = lookup(name)
	}

	return
}
