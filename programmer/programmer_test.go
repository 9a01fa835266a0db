// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package programmer

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/eeprog/display"
	"github.com/ezrec/eeprog/eeprom"
	"github.com/ezrec/eeprog/microcode"
	"github.com/ezrec/eeprog/sim"
)

func newProgrammer(t *testing.T, chip *sim.Chip) *Programmer {
	cfg := eeprom.DefaultConfig()
	cfg.Pins = chip.Pins()
	cfg.Size = len(chip.Memory)
	cfg.Sleep = func(time.Duration) {}

	tr, err := eeprom.NewTransport(cfg)
	if err != nil {
		t.Fatal(err)
	}

	return NewProgrammer(tr)
}

func TestProgrammer(t *testing.T) {
	assert := assert.New(t)

	prog := newProgrammer(t, sim.NewChip(eeprom.AT28C16_SIZE))

	assert.False(prog.Verbose)
	assert.Equal(display.COMMON_CATHODE, prog.Variant)
	assert.NotNil(prog.Transport)
}

func TestParseMode(t *testing.T) {
	assert := assert.New(t)

	for _, mode := range _modes {
		got, err := ParseMode(mode.String())
		assert.NoError(err)
		assert.Equal(mode, got)
	}

	_, err := ParseMode("flash")
	assert.Equal(ErrMode("flash"), err)
}

func TestImage(t *testing.T) {
	assert := assert.New(t)

	prog := newProgrammer(t, sim.NewChip(eeprom.AT28C16_SIZE))
	prog.Variant = display.COMMON_ANODE

	image, err := prog.Image(MODE_DISPLAY)
	assert.NoError(err)
	rom := display.Generate(display.COMMON_ANODE)
	assert.Equal(rom[:], image)

	image, err = prog.Image(MODE_MICROCODE)
	assert.NoError(err)
	assert.Len(image, microcode.SIZE)

	image, err = prog.Image(MODE_ERASE)
	assert.NoError(err)
	assert.Len(image, eeprom.AT28C16_SIZE)
	assert.Equal(eeprom.ERASE_VALUE, image[0x7ff])

	_, err = prog.Image(Mode(9))
	assert.Equal(ErrMode("Mode(9)"), err)
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Mode Mode
		Size int
	}){
		{Mode: MODE_DISPLAY, Size: display.SIZE},
		{Mode: MODE_MICROCODE, Size: microcode.SIZE},
		{Mode: MODE_ERASE, Size: eeprom.AT28C16_SIZE},
	}

	for _, entry := range table {
		chip := sim.NewChip(eeprom.AT28C16_SIZE)
		prog := newProgrammer(t, chip)
		prog.Verbose = true

		err := prog.Run(context.Background(), entry.Mode)
		assert.NoError(err, entry.Mode)
		assert.Equal(entry.Size, chip.Writes, entry.Mode)

		image, _ := prog.Image(entry.Mode)
		assert.Equal(image, chip.Memory[:entry.Size], entry.Mode)
	}
}

func TestRunTimeout(t *testing.T) {
	assert := assert.New(t)

	chip := sim.NewChip(eeprom.AT28C16_SIZE)
	chip.BusyPolls = sim.BUSY_FOREVER
	prog := newProgrammer(t, chip)
	prog.Transport.PollLimit = 3

	err := prog.Run(context.Background(), MODE_MICROCODE)
	assert.ErrorIs(err, eeprom.ErrWriteTimeout)

	var serr *ErrStage
	if assert.ErrorAs(err, &serr) {
		assert.Equal(STAGE_WRITE, serr.Stage)
	}
	assert.Equal(1, chip.Writes)
}

func TestDump(t *testing.T) {
	assert := assert.New(t)

	chip := sim.NewChip(eeprom.AT28C16_SIZE)
	prog := newProgrammer(t, chip)

	err := prog.Run(context.Background(), MODE_MICROCODE)
	assert.NoError(err)

	out := &bytes.Buffer{}
	err = prog.Dump(context.Background(), out)
	assert.NoError(err)

	lines := strings.Split(out.String(), "\n")
	assert.Equal("000:  04 08 00 00 00 00 00 00   04 08 00 00 00 00 00 00", lines[0])
	assert.Equal("400:  ff ff ff ff ff ff ff ff   ff ff ff ff ff ff ff ff", lines[0x40])
}
