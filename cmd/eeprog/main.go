// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/eeprog/config"
	"github.com/ezrec/eeprog/eeprom"
	"github.com/ezrec/eeprog/microcode"
	"github.com/ezrec/eeprog/pinout"
	"github.com/ezrec/eeprog/programmer"
	"github.com/ezrec/eeprog/sim"
	"github.com/ezrec/eeprog/translate"
)

var f = translate.From

var (
	ErrArgsUnknown   = errors.New(f("unknown arguments"))
	ErrArgsExclusive = errors.New(f("-m and -f are exclusive"))
	ErrSaveNothing   = errors.New(f("-s needs -m or -f"))
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[0], os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

// run programs the chip as requested by args, writing listings and dumps to stdout.
func run(ctx context.Context, name string, args []string, stdout io.Writer) (err error) {
	var configFile string
	var mode string
	var imageFile string
	var save string
	var dump bool
	var listing bool
	var simulate bool
	var verbose bool

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringVar(&configFile, "c", "", ".star configuration file")
	flags.StringVar(&mode, "m", "", "Image to program: display, microcode or erase")
	flags.StringVar(&imageFile, "f", "", "Raw image file to program")
	flags.StringVar(&save, "s", "", "Save image to file, do not program")
	flags.BoolVar(&dump, "d", true, "Dump chip contents")
	flags.BoolVar(&listing, "l", false, "List the microprogram")
	flags.BoolVar(&simulate, "n", false, "Program a simulated chip")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		return ErrArgsUnknown
	}

	if len(mode) != 0 && len(imageFile) != 0 {
		return ErrArgsExclusive
	}

	cfg := config.Default()
	if len(configFile) != 0 {
		cfg, err = config.Load(configFile, nil)
		if err != nil {
			return
		}
	}
	cfg.Eeprom.Verbose = cfg.Eeprom.Verbose || verbose

	if listing {
		err = microcode.Listing(stdout)
		if err != nil {
			return
		}
		// Listing alone does not touch the chip.
		if len(mode) == 0 && len(imageFile) == 0 {
			return
		}
	}

	var m programmer.Mode
	if len(mode) != 0 {
		m, err = programmer.ParseMode(mode)
		if err != nil {
			return
		}
	}

	var image []uint8
	if len(imageFile) != 0 {
		image, err = os.ReadFile(imageFile)
		if err != nil {
			return
		}
	}

	if len(save) != 0 {
		if len(mode) != 0 {
			image, err = programmer.BuildImage(m, cfg.Variant, cfg.Eeprom.Size)
			if err != nil {
				return
			}
		}
		if image == nil {
			return ErrSaveNothing
		}
		return os.WriteFile(save, image, 0o644)
	}

	if image == nil && len(mode) == 0 && !dump {
		return
	}

	if simulate {
		chip := sim.NewChip(cfg.Eeprom.Size)
		chip.Verbose = cfg.Eeprom.Verbose
		cfg.Eeprom.Pins = chip.Pins()
	} else {
		cfg.Eeprom.Pins, err = pinout.Open(cfg.Names)
		if err != nil {
			return
		}
	}

	t, err := eeprom.NewTransport(cfg.Eeprom)
	if err != nil {
		return
	}

	prog := programmer.NewProgrammer(t)
	prog.Variant = cfg.Variant
	prog.Verbose = cfg.Eeprom.Verbose

	switch {
	case len(mode) != 0:
		log.Printf("Writing EEPROM (%v)...", m)
		err = prog.Run(ctx, m)
	case image != nil:
		log.Printf("Writing EEPROM...")
		err = prog.Program(ctx, image)
	}
	if err != nil {
		return
	}

	if dump {
		log.Printf("Reading EEPROM...")
		err = prog.Dump(ctx, stdout)
	}

	return
}
