// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package sim models an AT28C16 class EEPROM behind a pair of cascaded
// 74HC595 shift registers, at the level of individual controller pins.
package sim

import (
	"log"

	"github.com/ezrec/eeprog/eeprom"
)

const (
	BUSY_POLLS_DEFAULT = 3  // I/O 7 polls reporting the complement after a write.
	BUSY_FOREVER       = -1 // Write cycles that never complete.
)

type role int

const (
	roleSerial = role(iota)
	roleShiftClock
	roleLatchClock
	roleWriteEnable
	roleData
)

type line struct {
	output bool
	level  bool
}

// Chip is the simulated EEPROM and address latch.
type Chip struct {
	Memory    []uint8 // Chip contents.
	BusyPolls int     // Polls of I/O 7 that report an unfinished write.
	Writes    int     // Committed write cycles.
	Verbose   bool    // If set, enables verbose logging.

	serial      line
	shiftClock  line
	latchClock  line
	writeEnable line
	data        [8]line

	shift   uint16 // Shift register stage.
	latched uint16 // Storage register, driving the address bus.

	busy    int
	pending uint8
}

// NewChip returns an erased chip of size bytes.
func NewChip(size int) (chip *Chip) {
	chip = &Chip{
		Memory:    make([]uint8, size),
		BusyPolls: BUSY_POLLS_DEFAULT,
	}
	for n := range chip.Memory {
		chip.Memory[n] = eeprom.ERASE_VALUE
	}
	chip.writeEnable.level = true

	return
}

// Pins returns the controller lines wired to the chip.
func (chip *Chip) Pins() (pins eeprom.Pins) {
	pins.Serial = &pin{chip: chip, role: roleSerial}
	pins.ShiftClock = &pin{chip: chip, role: roleShiftClock}
	pins.LatchClock = &pin{chip: chip, role: roleLatchClock}
	pins.WriteEnable = &pin{chip: chip, role: roleWriteEnable}
	for n := range pins.Data {
		pins.Data[n] = &pin{chip: chip, role: roleData, index: n}
	}

	return
}

// Latched returns the word on the address bus.
func (chip *Chip) Latched() uint16 {
	return chip.latched
}

// Busy returns true while a write cycle is in progress.
func (chip *Chip) Busy() bool {
	return chip.busy != 0
}

func (chip *Chip) outputEnabled() bool {
	return (chip.latched & eeprom.ADDRESS_OE_DISABLE) == 0
}

func (chip *Chip) address() int {
	return int(chip.latched&eeprom.ADDRESS_MASK) % len(chip.Memory)
}

func (chip *Chip) line(r role, index int) *line {
	switch r {
	case roleSerial:
		return &chip.serial
	case roleShiftClock:
		return &chip.shiftClock
	case roleLatchClock:
		return &chip.latchClock
	case roleWriteEnable:
		return &chip.writeEnable
	default:
		return &chip.data[index]
	}
}

func (chip *Chip) drive(r role, index int, level bool) {
	ln := chip.line(r, index)
	rising := !ln.level && level
	ln.output = true
	ln.level = level

	if !rising {
		return
	}

	switch r {
	case roleShiftClock:
		chip.shift <<= 1
		if chip.serial.level {
			chip.shift |= 1
		}
	case roleLatchClock:
		chip.latched = chip.shift
	case roleWriteEnable:
		chip.commit()
	}
}

// commit ends the write enable pulse.
func (chip *Chip) commit() {
	if chip.outputEnabled() {
		return
	}

	var value uint8
	for n, ln := range chip.data {
		if !ln.output {
			return
		}
		if ln.level {
			value |= 1 << n
		}
	}

	addr := chip.address()
	chip.Memory[addr] = value
	chip.pending = value
	chip.busy = chip.BusyPolls
	chip.Writes++

	if chip.Verbose {
		log.Printf("sim: 0x%03x <- 0x%02x", addr, value)
	}
}

func (chip *Chip) release(r role, index int) {
	chip.line(r, index).output = false
}

func (chip *Chip) sample(r role, index int) bool {
	ln := chip.line(r, index)
	if r != roleData || ln.output {
		return ln.level
	}

	if !chip.outputEnabled() {
		return false
	}

	if index == 7 && chip.busy != 0 {
		if chip.busy > 0 {
			chip.busy--
		}
		return (chip.pending & 0x80) == 0
	}

	return ((chip.Memory[chip.address()] >> index) & 1) == 1
}

type pin struct {
	chip  *Chip
	role  role
	index int
}

var _ eeprom.Pin = (*pin)(nil)

func (p *pin) Out(level bool) error {
	p.chip.drive(p.role, p.index, level)
	return nil
}

func (p *pin) In() error {
	p.chip.release(p.role, p.index)
	return nil
}

func (p *pin) Read() bool {
	return p.chip.sample(p.role, p.index)
}
