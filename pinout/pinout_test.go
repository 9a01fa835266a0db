// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package pinout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/ezrec/eeprog/eeprom"
)

func testNames(t *testing.T) (names Names) {
	initHost = func() error { return nil }

	num := 900
	register := func(name string) string {
		name = "EEPROG_TEST_" + name
		num++
		if gpioreg.ByName(name) == nil {
			err := gpioreg.Register(&gpiotest.Pin{N: name, Num: num, L: gpio.Low})
			if err != nil {
				t.Fatal(err)
			}
		}
		return name
	}

	names.Serial = register("SER")
	names.ShiftClock = register("SRCLK")
	names.LatchClock = register("RCLK")
	names.WriteEnable = register("WE")
	for n := range names.Data {
		names.Data[n] = register(fmt.Sprintf("IO%d", n))
	}

	return
}

func TestOpen(t *testing.T) {
	assert := assert.New(t)

	names := testNames(t)
	pins, err := Open(names)
	assert.NoError(err)

	cfg := eeprom.DefaultConfig()
	cfg.Pins = pins
	assert.NoError(cfg.Check())

	assert.NoError(pins.WriteEnable.Out(true))
	assert.True(pins.WriteEnable.Read())
	assert.NoError(pins.WriteEnable.Out(false))
	assert.False(pins.WriteEnable.Read())
	assert.NoError(pins.Data[3].In())
}

func TestOpenUnknown(t *testing.T) {
	assert := assert.New(t)

	names := testNames(t)
	names.Data[5] = "EEPROG_TEST_MISSING"

	_, err := Open(names)
	assert.ErrorIs(err, ErrPinUnknown)

	var perr *eeprom.ErrPin
	if assert.ErrorAs(err, &perr) {
		assert.Equal("EEPROG_TEST_MISSING", perr.Pin)
	}
}
