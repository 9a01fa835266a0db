// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package eeprom

// Pin is a single controller line.
type Pin interface {
	// Out switches the line to output and drives it to level.
	Out(level bool) error
	// In switches the line to a high impedance input.
	In() error
	// Read samples the line.
	Read() bool
}

// Pins assigns controller lines to their roles.
type Pins struct {
	Serial      Pin    // Shift register serial in.
	ShiftClock  Pin    // Shift register clock.
	LatchClock  Pin    // Storage register clock.
	Data        [8]Pin // Data bus, I/O 0 to I/O 7.
	WriteEnable Pin    // Chip write enable.
}

// Names of pin roles, as reported by ErrPin and ErrBus.
const (
	PIN_SERIAL       = "ser"
	PIN_SHIFT_CLOCK  = "srclk"
	PIN_LATCH_CLOCK  = "rclk"
	PIN_WRITE_ENABLE = "we"
)

var _data_pin_names = [8]string{"io0", "io1", "io2", "io3", "io4", "io5", "io6", "io7"}

// DataPinName returns the role name of data line n.
func DataPinName(n int) string {
	return _data_pin_names[n]
}

func (pins *Pins) missing() (name string, ok bool) {
	switch {
	case pins.Serial == nil:
		return PIN_SERIAL, true
	case pins.ShiftClock == nil:
		return PIN_SHIFT_CLOCK, true
	case pins.LatchClock == nil:
		return PIN_LATCH_CLOCK, true
	case pins.WriteEnable == nil:
		return PIN_WRITE_ENABLE, true
	}

	for n, pin := range pins.Data {
		if pin == nil {
			return DataPinName(n), true
		}
	}

	return
}
