// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package eeprom

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ezrec/eeprog/internal"
)

const (
	DUMP_ROW_SIZE = 16 // Bytes per dump row.
	DUMP_GROUP    = 8  // Bytes per dump row group.

	progressMask = 0xff
)

// WriteImage writes image to the chip, starting at address 0.
func WriteImage(ctx context.Context, t *Transport, image []uint8) (err error) {
	if len(image) > t.Size {
		err = &ErrAddress{Address: len(image) - 1, Size: t.Size}
		return
	}

	for addr, value := range internal.IterBytes(image) {
		err = ctx.Err()
		if err != nil {
			return
		}

		if t.Verbose && (addr&progressMask) == 0 {
			log.Printf("eeprom: writing 0x%03x..0x%03x", addr, min(addr+progressMask, len(image)-1))
		}

		err = t.Write(addr, value)
		if err != nil {
			return
		}
	}

	return
}

// Erased returns an erased image of size bytes.
func Erased(size int) (image []uint8) {
	image = make([]uint8, size)
	for n := range image {
		image[n] = ERASE_VALUE
	}
	return
}

// Erase fills the whole chip with ERASE_VALUE.
func Erase(ctx context.Context, t *Transport) (err error) {
	return WriteImage(ctx, t, Erased(t.Size))
}

// Verify reads back the chip and compares it with image.
func Verify(ctx context.Context, t *Transport, image []uint8) (err error) {
	for addr, want := range internal.IterBytes(image) {
		err = ctx.Err()
		if err != nil {
			return
		}

		var got uint8
		got, err = t.Read(addr)
		if err != nil {
			return
		}

		if got != want {
			err = &ErrVerify{Address: addr, Want: want, Got: got}
			return
		}
	}

	return
}

// Dump writes the whole chip as hexadecimal rows of DUMP_ROW_SIZE bytes.
func Dump(ctx context.Context, w io.Writer, t *Transport) (err error) {
	var row [DUMP_ROW_SIZE]uint8

	for addr := 0; addr < t.Size; addr += DUMP_ROW_SIZE {
		err = ctx.Err()
		if err != nil {
			return
		}

		count := min(DUMP_ROW_SIZE, t.Size-addr)
		for offset := range count {
			row[offset], err = t.Read(addr + offset)
			if err != nil {
				return
			}
		}

		_, err = fmt.Fprintln(w, DumpRow(addr, row[:count]))
		if err != nil {
			return
		}
	}

	return
}

// DumpRow formats one dump row.
func DumpRow(addr int, data []uint8) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%03x:", addr)
	for n, value := range data {
		switch {
		case n == 0:
			sb.WriteString(" ")
		case n%DUMP_GROUP == 0:
			sb.WriteString("  ")
		}
		sb.WriteString(" ")
		fmt.Fprintf(&sb, "%02x", value)
	}

	return sb.String()
}
