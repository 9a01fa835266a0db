// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package eeprom

import (
	"log"
	"time"
)

// Transport reads and writes single bytes of the chip.
type Transport struct {
	Config

	err error // First pin failure of the current transaction.
}

// NewTransport checks the configuration and idles the control lines.
func NewTransport(cfg Config) (t *Transport, err error) {
	if cfg.PollLimit <= 0 {
		cfg.PollLimit = POLL_LIMIT_DEFAULT
	}

	err = cfg.Check()
	if err != nil {
		return
	}

	t = &Transport{Config: cfg}

	err = t.Reset()
	if err != nil {
		t = nil
		return
	}

	return
}

// Reset idles the write enable and clocks, and releases the data bus.
func (t *Transport) Reset() (err error) {
	if t.Verbose {
		log.Printf("eeprom: reset, size 0x%x", t.Size)
	}

	t.err = nil
	t.out(PIN_WRITE_ENABLE, t.Pins.WriteEnable, !t.WriteEnableActiveHigh)
	t.out(PIN_SERIAL, t.Pins.Serial, false)
	t.out(PIN_SHIFT_CLOCK, t.Pins.ShiftClock, false)
	t.out(PIN_LATCH_CLOCK, t.Pins.LatchClock, false)
	t.dataIn()

	return t.fault()
}

// Read returns the byte at address.
func (t *Transport) Read(address int) (value uint8, err error) {
	err = t.check(address)
	if err != nil {
		return
	}

	t.err = nil
	t.dataIn()
	t.setAddress(uint16(address), true)

	for n := 7; n >= 0; n-- {
		value <<= 1
		if t.Pins.Data[n].Read() {
			value |= 1
		}
	}

	err = t.fault()
	if err != nil {
		value = 0
	}

	return
}

// Write stores value at address, and waits for the chip to commit it.
func (t *Transport) Write(address int, value uint8) (err error) {
	err = t.check(address)
	if err != nil {
		return
	}

	t.err = nil
	t.setAddress(uint16(address), false)
	t.dataOut(value)

	t.out(PIN_WRITE_ENABLE, t.Pins.WriteEnable, t.WriteEnableActiveHigh)
	t.sleep(t.WritePulse)
	t.out(PIN_WRITE_ENABLE, t.Pins.WriteEnable, !t.WriteEnableActiveHigh)

	err = t.fault()
	if err != nil {
		return
	}

	return t.commit(address, value)
}

// commit polls I/O 7 until it shows bit 7 of the written value.
func (t *Transport) commit(address int, value uint8) (err error) {
	t.dataIn()
	t.setAddress(uint16(address), true)

	err = t.fault()
	if err != nil {
		return
	}

	want := (value & 0x80) != 0
	for polls := 1; polls <= t.PollLimit; polls++ {
		if t.Pins.Data[7].Read() == want {
			if t.Verbose {
				log.Printf("eeprom: 0x%03x <- 0x%02x (%d polls)", address, value, polls)
			}
			return
		}
		if polls < t.PollLimit {
			t.sleep(t.PollInterval)
		}
	}

	err = &ErrWrite{Address: address, Value: value, Polls: t.PollLimit, Err: ErrWriteTimeout}
	return
}

func (t *Transport) check(address int) (err error) {
	if address < 0 || address >= t.Size {
		err = &ErrAddress{Address: address, Size: t.Size}
	}
	return
}

// dataIn releases the data bus to the chip.
func (t *Transport) dataIn() {
	for n, pin := range t.Pins.Data {
		if t.err != nil {
			return
		}
		err := pin.In()
		if err != nil {
			t.err = &ErrBus{Pin: DataPinName(n), Err: err}
		}
	}
}

// dataOut drives value onto the data bus, I/O 0 first.
func (t *Transport) dataOut(value uint8) {
	for n, pin := range t.Pins.Data {
		t.out(DataPinName(n), pin, ((value>>n)&1) == 1)
	}
}

// out drives a pin, unless the transaction has already failed.
func (t *Transport) out(name string, pin Pin, level bool) {
	if t.err != nil {
		return
	}
	err := pin.Out(level)
	if err != nil {
		t.err = &ErrBus{Pin: name, Err: err}
	}
}

func (t *Transport) fault() (err error) {
	err = t.err
	t.err = nil
	return
}

func (t *Transport) sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	if t.Sleep != nil {
		t.Sleep(d)
		return
	}
	time.Sleep(d)
}
