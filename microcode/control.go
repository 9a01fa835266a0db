// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package microcode

import (
	"strings"
)

// ControlWord is a set of active control lines for one clock step.
type ControlWord uint16

// Control lines, HLT is the most significant bit.
const (
	HLT = ControlWord(1 << 15) // Halt clock.
	MI  = ControlWord(1 << 14) // Memory address register in.
	RI  = ControlWord(1 << 13) // RAM data in.
	RO  = ControlWord(1 << 12) // RAM data out.
	IO  = ControlWord(1 << 11) // Instruction register out.
	II  = ControlWord(1 << 10) // Instruction register in.
	AI  = ControlWord(1 << 9)  // A register in.
	AO  = ControlWord(1 << 8)  // A register out.
	EO  = ControlWord(1 << 7)  // ALU out.
	SU  = ControlWord(1 << 6)  // ALU subtract.
	BI  = ControlWord(1 << 5)  // B register in.
	OI  = ControlWord(1 << 4)  // Output register in.
	CE  = ControlWord(1 << 3)  // Program counter enable.
	CO  = ControlWord(1 << 2)  // Program counter out.
	JM  = ControlWord(1 << 1)  // Jump, program counter in.
	FI  = ControlWord(1 << 0)  // Flags register in.
)

var _control_names = [16]string{
	"FI", "JM", "CO", "CE", "OI", "BI", "SU", "EO",
	"AO", "AI", "II", "IO", "RO", "RI", "MI", "HLT",
}

// With returns the union of cw and lines.
func (cw ControlWord) With(lines ...ControlWord) ControlWord {
	for _, line := range lines {
		cw |= line
	}
	return cw
}

// Has returns true if every line in lines is active.
func (cw ControlWord) Has(lines ControlWord) bool {
	return (cw & lines) == lines
}

// Low returns the low byte of the control word.
func (cw ControlWord) Low() uint8 {
	return uint8(cw & 0xff)
}

// High returns the high byte of the control word.
func (cw ControlWord) High() uint8 {
	return uint8((cw >> 8) & 0xff)
}

// String returns the active lines, most significant first, joined by '|'.
func (cw ControlWord) String() string {
	if cw == 0 {
		return "0"
	}

	var names []string
	for n := 15; n >= 0; n-- {
		if (cw & (1 << n)) != 0 {
			names = append(names, _control_names[n])
		}
	}

	return strings.Join(names, "|")
}

// ControlLine returns the control line named name.
func ControlLine(name string) (cw ControlWord, ok bool) {
	for n, lineName := range _control_names {
		if lineName == name {
			return ControlWord(1 << n), true
		}
	}

	return
}
