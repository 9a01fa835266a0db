// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package eeprom

import (
	"iter"
	"maps"
	"time"
)

const (
	AT28C16_SIZE  = 2048  // 2K x 8
	AT28C64_SIZE  = 8192  // 8K x 8
	AT28C256_SIZE = 32768 // 32K x 8

	ADDRESS_OE_DISABLE = uint16(0x8000) // Latched word bit for output enable inactive.
	ADDRESS_MASK       = 0x7fff         // Address bits below the output enable bit.

	WRITE_PULSE_DEFAULT   = time.Microsecond
	POLL_INTERVAL_DEFAULT = time.Microsecond
	POLL_LIMIT_DEFAULT    = 10000 // Well over the 1ms AT28C16 write cycle.

	ERASE_VALUE = uint8(0xff)
)

var _eeprom_defines = map[string]int{
	"AT28C16":  AT28C16_SIZE,
	"AT28C64":  AT28C64_SIZE,
	"AT28C256": AT28C256_SIZE,
}

// Defines returns an iterator over the chip size constants.
func Defines() iter.Seq2[string, int] {
	return maps.All(_eeprom_defines)
}

// Config of a Transport.
type Config struct {
	Pins Pins // Controller lines.
	Size int  // Chip size in bytes.

	WriteEnableActiveHigh bool // If set, write enable is active high.

	WritePulse   time.Duration // Write enable active time.
	PollInterval time.Duration // Time between data polls.
	PollLimit    int           // Data polls before a write times out.

	Sleep   func(d time.Duration) // Delay function, time.Sleep if nil.
	Verbose bool                  // If set, enables verbose logging.
}

// DefaultConfig returns the configuration for an AT28C16, without pins.
func DefaultConfig() Config {
	return Config{
		Size:         AT28C16_SIZE,
		WritePulse:   WRITE_PULSE_DEFAULT,
		PollInterval: POLL_INTERVAL_DEFAULT,
		PollLimit:    POLL_LIMIT_DEFAULT,
	}
}

// Check validates the configuration.
func (cfg *Config) Check() (err error) {
	if name, ok := cfg.Pins.missing(); ok {
		err = &ErrPin{Pin: name, Err: ErrPinMissing}
		return
	}

	// The output enable shares the latched word with the address.
	if cfg.Size <= 0 || cfg.Size > ADDRESS_MASK+1 {
		err = ErrChipSize
		return
	}

	return
}
