// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package microcode generates the control ROM image of an 8-bit breadboard
// CPU with a 4-bit opcode, eight micro-steps per instruction, and
// Zero/Carry flags.
//
// Each 16-bit control word is split across two halves of the image. The
// address of a byte is:
//
//	bit  9-8: flags (Zero, Carry)
//	bit    7: byte select (0 = low byte, 1 = high byte)
//	bit  6-3: opcode
//	bit  2-0: step
package microcode

import (
	"fmt"
	"io"
)

const (
	SIZE    = 1024 // Image size in bytes.
	STEPS   = 8    // Micro-steps per opcode.
	OPCODES = 16   // Opcodes.
	FLAGS   = 4    // Flag states.

	FLAGS_SHIFT  = 8
	SELECT_SHIFT = 7
	OPCODE_SHIFT = 3

	FLAGS_MASK  = 0x3
	SELECT_MASK = 0x1
	OPCODE_MASK = 0xf
	STEP_MASK   = 0x7

	SELECT_LOW  = 0 // Byte select of the low control word byte.
	SELECT_HIGH = 1 // Byte select of the high control word byte.
)

// Flags is the state of the Zero and Carry flags.
type Flags int

//go:generate go tool stringer -linecomment -type=Flags
const (
	FLAGS_Z0C0 = Flags(0) // Z0C0
	FLAGS_Z0C1 = Flags(1) // Z0C1
	FLAGS_Z1C0 = Flags(2) // Z1C0
	FLAGS_Z1C1 = Flags(3) // Z1C1
)

// Zero returns true if the Zero flag is set.
func (fl Flags) Zero() bool {
	return (fl & 0b10) != 0
}

// Carry returns true if the Carry flag is set.
func (fl Flags) Carry() bool {
	return (fl & 0b01) != 0
}

// Opcode is an instruction opcode.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP = Opcode(0b0000) // nop
	OP_LDA = Opcode(0b0001) // lda
	OP_ADD = Opcode(0b0010) // add
	OP_SUB = Opcode(0b0011) // sub
	OP_STA = Opcode(0b0100) // sta
	OP_LDI = Opcode(0b0101) // ldi
	OP_JMP = Opcode(0b0110) // jmp
	OP_JC  = Opcode(0b0111) // jc
	OP_JZ  = Opcode(0b1000) // jz
	OP_9   = Opcode(0b1001) // op9
	OP_A   = Opcode(0b1010) // opa
	OP_B   = Opcode(0b1011) // opb
	OP_C   = Opcode(0b1100) // opc
	OP_D   = Opcode(0b1101) // opd
	OP_OUT = Opcode(0b1110) // out
	OP_HLT = Opcode(0b1111) // hlt
)

// Fetch cycle, common to all opcodes.
const (
	FETCH_0 = CO | MI
	FETCH_1 = RO | II | CE
)

var _base = [OPCODES][STEPS]ControlWord{
	OP_NOP: {FETCH_0, FETCH_1},
	OP_LDA: {FETCH_0, FETCH_1, IO | MI, RO | AI},
	OP_ADD: {FETCH_0, FETCH_1, IO | MI, RO | BI, EO | AI | FI},
	OP_SUB: {FETCH_0, FETCH_1, IO | MI, RO | BI, EO | AI | SU | FI},
	OP_STA: {FETCH_0, FETCH_1, IO | MI, AO | RI},
	OP_LDI: {FETCH_0, FETCH_1, IO | AI},
	OP_JMP: {FETCH_0, FETCH_1, IO | JM},
	OP_JC:  {FETCH_0, FETCH_1},
	OP_JZ:  {FETCH_0, FETCH_1},
	OP_9:   {FETCH_0, FETCH_1},
	OP_A:   {FETCH_0, FETCH_1},
	OP_B:   {FETCH_0, FETCH_1},
	OP_C:   {FETCH_0, FETCH_1},
	OP_D:   {FETCH_0, FETCH_1},
	OP_OUT: {FETCH_0, FETCH_1, AO | OI},
	OP_HLT: {FETCH_0, FETCH_1, HLT},
}

// JUMP is the step 2 control word of a taken conditional jump.
const JUMP = IO | JM

// Word returns the control word of an opcode step under a flag state.
func Word(flags Flags, op Opcode, step int) (cw ControlWord) {
	op &= OPCODE_MASK
	step &= STEP_MASK

	cw = _base[op][step]

	if step == 2 {
		switch {
		case op == OP_JC && flags.Carry():
			cw = JUMP
		case op == OP_JZ && flags.Zero():
			cw = JUMP
		}
	}

	return
}

// Address returns the image address of one byte of a control word.
func Address(flags Flags, byteSelect int, op Opcode, step int) uint16 {
	return (uint16(flags&FLAGS_MASK) << FLAGS_SHIFT) |
		(uint16(byteSelect&SELECT_MASK) << SELECT_SHIFT) |
		(uint16(op&OPCODE_MASK) << OPCODE_SHIFT) |
		uint16(step&STEP_MASK)
}

// Decode splits an image address into its fields.
func Decode(address uint16) (flags Flags, byteSelect int, op Opcode, step int) {
	flags = Flags((address >> FLAGS_SHIFT) & FLAGS_MASK)
	byteSelect = int((address >> SELECT_SHIFT) & SELECT_MASK)
	op = Opcode((address >> OPCODE_SHIFT) & OPCODE_MASK)
	step = int(address & STEP_MASK)
	return
}

// Byte returns the image byte at address.
func Byte(address uint16) uint8 {
	flags, byteSelect, op, step := Decode(address)

	cw := Word(flags, op, step)
	if byteSelect == SELECT_HIGH {
		return cw.High()
	}

	return cw.Low()
}

// Generate returns the microcode image.
func Generate() (image [SIZE]uint8) {
	for addr := range image {
		image[addr] = Byte(uint16(addr))
	}

	return
}

// Listing writes the microprogram of every flag state, one opcode per line.
func Listing(w io.Writer) (err error) {
	for flags := range Flags(FLAGS) {
		_, err = fmt.Fprintf(w, "%v:\n", flags)
		if err != nil {
			return
		}
		for op := range Opcode(OPCODES) {
			_, err = fmt.Fprintf(w, "  %x %-3v", int(op), op)
			if err != nil {
				return
			}
			for step := range STEPS {
				cw := Word(flags, op, step)
				if cw == 0 {
					break
				}
				_, err = fmt.Fprintf(w, " %v", cw)
				if err != nil {
					return
				}
			}
			_, err = fmt.Fprintln(w)
			if err != nil {
				return
			}
		}
	}

	return
}
