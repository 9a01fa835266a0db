// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package programmer builds ROM images and streams them to the chip.
package programmer

import (
	"context"
	"io"
	"log"

	"github.com/ezrec/eeprog/display"
	"github.com/ezrec/eeprog/eeprom"
	"github.com/ezrec/eeprog/microcode"
)

// Mode selects the image to program.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_DISPLAY   = Mode(0) // display
	MODE_MICROCODE = Mode(1) // microcode
	MODE_ERASE     = Mode(2) // erase
)

var _modes = []Mode{MODE_DISPLAY, MODE_MICROCODE, MODE_ERASE}

// ParseMode returns the mode named by its String() form.
func ParseMode(name string) (mode Mode, err error) {
	for _, mode = range _modes {
		if mode.String() == name {
			return
		}
	}

	err = ErrMode(name)
	return
}

// Programmer state. Transport + image settings.
type Programmer struct {
	Verbose   bool              // If set, enables verbose logging.
	Transport *eeprom.Transport // Reference to the chip transport.
	Variant   display.Variant   // Display decoder variant.
}

// NewProgrammer creates a new programmer on a transport.
func NewProgrammer(t *eeprom.Transport) (prog *Programmer) {
	prog = &Programmer{
		Transport: t,
		Variant:   display.COMMON_CATHODE,
	}

	return
}

// BuildImage returns the image of a mode, for a chip of size bytes.
func BuildImage(mode Mode, variant display.Variant, size int) (image []uint8, err error) {
	switch mode {
	case MODE_DISPLAY:
		rom := display.Generate(variant)
		image = rom[:]
	case MODE_MICROCODE:
		rom := microcode.Generate()
		image = rom[:]
	case MODE_ERASE:
		image = eeprom.Erased(size)
	default:
		err = ErrMode(mode.String())
	}

	return
}

// Image returns the image of a mode.
func (prog *Programmer) Image(mode Mode) (image []uint8, err error) {
	return BuildImage(mode, prog.Variant, prog.Transport.Size)
}

// Program writes image to the chip, then reads it back.
func (prog *Programmer) Program(ctx context.Context, image []uint8) (err error) {
	t := prog.Transport

	if prog.Verbose {
		log.Printf("programmer: writing 0x%x bytes", len(image))
	}

	err = eeprom.WriteImage(ctx, t, image)
	if err != nil {
		err = &ErrStage{Stage: STAGE_WRITE, Err: err}
		return
	}

	if prog.Verbose {
		log.Printf("programmer: verifying 0x%x bytes", len(image))
	}

	err = eeprom.Verify(ctx, t, image)
	if err != nil {
		err = &ErrStage{Stage: STAGE_VERIFY, Err: err}
		return
	}

	return
}

// Run programs the image of a mode.
func (prog *Programmer) Run(ctx context.Context, mode Mode) (err error) {
	image, err := prog.Image(mode)
	if err != nil {
		return
	}

	return prog.Program(ctx, image)
}

// Dump writes the chip contents as hexadecimal rows.
func (prog *Programmer) Dump(ctx context.Context, w io.Writer) (err error) {
	err = eeprom.Dump(ctx, w, prog.Transport)
	if err != nil {
		err = &ErrStage{Stage: STAGE_DUMP, Err: err}
	}

	return
}
