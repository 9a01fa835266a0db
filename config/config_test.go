// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/eeprog/display"
	"github.com/ezrec/eeprog/eeprom"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(eeprom.AT28C16_SIZE, cfg.Eeprom.Size)
	assert.Equal(display.COMMON_CATHODE, cfg.Variant)
	assert.Equal("GPIO2", cfg.Names.Serial)
	assert.Equal("GPIO3", cfg.Names.ShiftClock)
	assert.Equal("GPIO4", cfg.Names.LatchClock)
	assert.Equal("GPIO5", cfg.Names.Data[0])
	assert.Equal("GPIO12", cfg.Names.Data[7])
	assert.Equal("GPIO13", cfg.Names.WriteEnable)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	src := `
_first = 17
chip = AT28C64
display = COMMON_ANODE
pins = {
    "ser": "P1",
    "we": "P2",
    "io": ["D%d" % n for n in range(_first, _first + 8)],
}
write_enable_active_high = True
write_pulse_us = 2
poll_interval_us = 5
poll_limit = 250
verbose = True
`
	cfg, err := Load("test.star", src)
	assert.NoError(err)

	assert.Equal(eeprom.AT28C64_SIZE, cfg.Eeprom.Size)
	assert.Equal(display.COMMON_ANODE, cfg.Variant)
	assert.Equal("P1", cfg.Names.Serial)
	assert.Equal("GPIO3", cfg.Names.ShiftClock)
	assert.Equal("P2", cfg.Names.WriteEnable)
	assert.Equal("D17", cfg.Names.Data[0])
	assert.Equal("D24", cfg.Names.Data[7])
	assert.True(cfg.Eeprom.WriteEnableActiveHigh)
	assert.Equal(2*time.Microsecond, cfg.Eeprom.WritePulse)
	assert.Equal(5*time.Microsecond, cfg.Eeprom.PollInterval)
	assert.Equal(250, cfg.Eeprom.PollLimit)
	assert.True(cfg.Eeprom.Verbose)
}

func TestLoadVariantName(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("test.star", `display = "anode"`)
	assert.NoError(err)
	assert.Equal(display.COMMON_ANODE, cfg.Variant)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Src string
		Key string
		Err error
	}){
		{Src: `colour = 1`, Key: "colour", Err: ErrKeyUnknown},
		{Src: `chip = "big"`, Key: "chip", Err: ErrKeyType},
		{Src: `poll_limit = 0`, Key: "poll_limit", Err: ErrKeyRange},
		{Src: `write_pulse_us = -1`, Key: "write_pulse_us", Err: ErrKeyRange},
		{Src: `verbose = 1`, Key: "verbose", Err: ErrKeyType},
		{Src: `display = "plasma"`, Key: "display", Err: display.ErrVariant("plasma")},
		{Src: `display = 9`, Key: "display", Err: display.ErrVariant("Variant(9)")},
		{Src: `pins = ["GPIO1"]`, Key: "pins", Err: ErrKeyType},
		{Src: `pins = {"oe": "GPIO1"}`, Key: "pins.oe", Err: ErrKeyUnknown},
		{Src: `pins = {"io": ["A", "B"]}`, Key: "pins.io", Err: ErrKeyRange},
		{Src: `pins = {"io": "ABCDEFGH"}`, Key: "pins.io", Err: ErrKeyType},
		{Src: `pins = {"we": 13}`, Key: "pins.we", Err: ErrKeyType},
	}

	for _, entry := range table {
		_, err := Load("bad.star", entry.Src)
		assert.ErrorIs(err, entry.Err, entry.Src)

		var cerr *ErrConfig
		if assert.ErrorAs(err, &cerr, entry.Src) {
			assert.Equal("bad.star", cerr.File)
			assert.Equal(entry.Key, cerr.Key, entry.Src)
		}
	}
}

func TestLoadSyntax(t *testing.T) {
	assert := assert.New(t)

	_, err := Load("bad.star", `chip = `)
	assert.Error(err)

	_, err = Load("bad.star", `chip = UNDEFINED`)
	assert.Error(err)
}

func TestPredeclared(t *testing.T) {
	assert := assert.New(t)

	pred := Predeclared()
	assert.Contains(pred, "AT28C16")
	assert.Contains(pred, "AT28C256")
	assert.Contains(pred, "COMMON_ANODE")
	assert.Contains(pred, "COMMON_CATHODE")
}
