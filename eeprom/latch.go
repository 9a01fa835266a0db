// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package eeprom

// AddressWord returns the 16-bit word latched onto the address bus.
func AddressWord(address uint16, outputEnable bool) (word uint16) {
	word = address
	if !outputEnable {
		word |= ADDRESS_OE_DISABLE
	}
	return
}

// setAddress latches address and the output enable onto the address bus.
// The caller settles the data bus direction.
func (t *Transport) setAddress(address uint16, outputEnable bool) {
	word := AddressWord(address, outputEnable)

	t.out(PIN_LATCH_CLOCK, t.Pins.LatchClock, false)
	t.out(PIN_SHIFT_CLOCK, t.Pins.ShiftClock, false)

	t.shiftOut(uint8(word >> 8))
	t.shiftOut(uint8(word))

	t.out(PIN_LATCH_CLOCK, t.Pins.LatchClock, true)
	t.out(PIN_LATCH_CLOCK, t.Pins.LatchClock, false)
}

// shiftOut sends a byte to the shift register, MSB first.
func (t *Transport) shiftOut(value uint8) {
	for n := 7; n >= 0; n-- {
		t.out(PIN_SERIAL, t.Pins.Serial, ((value>>n)&1) == 1)
		t.out(PIN_SHIFT_CLOCK, t.Pins.ShiftClock, true)
		t.out(PIN_SHIFT_CLOCK, t.Pins.ShiftClock, false)
	}
}
