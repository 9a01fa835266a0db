// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package display generates the ROM image of a four digit, 7-segment
// decimal display decoder for an 8-bit output register.
//
// The image holds two 1K regions, unsigned then two's complement signed.
// Each region holds four 256 byte blocks, one per digit position, indexed by
// the value on display.
package display

import (
	"iter"
	"maps"
)

const (
	SIZE = 2048 // Image size in bytes.

	SIGNED_MASK = 0x400 // Address bit selecting the signed region.
	DIGIT_MASK  = 0x300 // Address bits selecting the digit position.
	DIGIT_SHIFT = 8
	VALUE_MASK  = 0x0ff // Address bits holding the value on display.

	SIGN_NEGATIVE = uint8(1) // Sign block byte for negative values.
)

// Digit is a digit position.
type Digit int

const (
	DIGIT_UNITS     = Digit(0) // units
	DIGIT_TENS      = Digit(1) // tens
	DIGIT_HUNDREDS  = Digit(2) // hundreds
	DIGIT_THOUSANDS = Digit(3) // thousands
)

// Variant is the segment polarity of the display.
type Variant int

//go:generate go tool stringer -linecomment -type=Variant
const (
	COMMON_CATHODE = Variant(0) // cathode
	COMMON_ANODE   = Variant(1) // anode
)

// Segment bits, as wired to the decoder outputs.
const (
	SEG_G = uint8(1 << iota)
	SEG_F
	SEG_E
	SEG_D
	SEG_C
	SEG_B
	SEG_A
	SEG_DP
)

var _cathode = [16]uint8{
	0x7e, 0x30, 0x6d, 0x79, 0x33, 0x5b, 0x5f, 0x70,
	0x7f, 0x7b, 0x77, 0x1f, 0x4e, 0x3d, 0x4f, 0x47,
}

var _anode = [16]uint8{
	0x81, 0xcf, 0x92, 0x86, 0xcc, 0xa4, 0xa0, 0x8f,
	0x80, 0x84, 0x88, 0xe0, 0xb1, 0xc2, 0xb0, 0xb8,
}

var _display_defines = map[string]int{
	"COMMON_CATHODE": int(COMMON_CATHODE),
	"COMMON_ANODE":   int(COMMON_ANODE),
}

// Defines returns an iterator over the variant constants.
func Defines() iter.Seq2[string, int] {
	return maps.All(_display_defines)
}

// ParseVariant returns the variant named by its String() form.
func ParseVariant(name string) (v Variant, err error) {
	for _, v = range []Variant{COMMON_CATHODE, COMMON_ANODE} {
		if v.String() == name {
			return
		}
	}

	err = ErrVariant(name)
	return
}

// Valid returns true for known variants.
func (v Variant) Valid() bool {
	return v == COMMON_CATHODE || v == COMMON_ANODE
}

// Decode returns the segment pattern of a hexadecimal nibble.
func (v Variant) Decode(nibble uint8) uint8 {
	if v == COMMON_ANODE {
		return _anode[nibble&0xf]
	}
	return _cathode[nibble&0xf]
}

// Digits returns the decimal digits of value, units first, and whether it is negative.
func Digits(value int) (digits [3]uint8, negative bool) {
	negative = value < 0
	if negative {
		value = -value
	}

	digits[DIGIT_UNITS] = uint8(value % 10)
	digits[DIGIT_TENS] = uint8((value / 10) % 10)
	digits[DIGIT_HUNDREDS] = uint8(value / 100)

	return
}

// Byte returns the image byte at address.
func Byte(v Variant, address uint16) uint8 {
	digit := Digit((address & DIGIT_MASK) >> DIGIT_SHIFT)
	raw := uint8(address & VALUE_MASK)

	value := int(raw)
	if (address & SIGNED_MASK) != 0 {
		value = int(int8(raw))
	}

	digits, negative := Digits(value)

	if digit == DIGIT_THOUSANDS {
		if negative {
			return SIGN_NEGATIVE
		}
		return 0
	}

	return v.Decode(digits[digit])
}

// Generate returns the display decoder image.
func Generate(v Variant) (image [SIZE]uint8) {
	for addr := range image {
		image[addr] = Byte(v, uint16(addr))
	}

	return
}
