// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package display

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// digitOf extracts a decimal digit from the printed form of value.
func digitOf(value int, position int) uint8 {
	if value < 0 {
		value = -value
	}
	text := fmt.Sprintf("%03d", value)
	return text[len(text)-1-position] - '0'
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SEG_A|SEG_B|SEG_C|SEG_D|SEG_E|SEG_F, COMMON_CATHODE.Decode(0))
	assert.Equal(SEG_B|SEG_C, COMMON_CATHODE.Decode(1))
	assert.Equal(SEG_A|SEG_B|SEG_C|SEG_D|SEG_E|SEG_F|SEG_G, COMMON_CATHODE.Decode(8))

	for nibble := range uint8(16) {
		assert.Equal(^COMMON_CATHODE.Decode(nibble), COMMON_ANODE.Decode(nibble), nibble)
		assert.Zero(COMMON_CATHODE.Decode(nibble) & SEG_DP)
	}
}

func TestGenerateUnsigned(t *testing.T) {
	assert := assert.New(t)

	for _, v := range []Variant{COMMON_CATHODE, COMMON_ANODE} {
		image := Generate(v)
		for addr := range 0x400 {
			value := addr & 0xff
			var want uint8
			switch Digit(addr >> 8) {
			case DIGIT_UNITS, DIGIT_TENS, DIGIT_HUNDREDS:
				want = v.Decode(digitOf(value, addr>>8))
			case DIGIT_THOUSANDS:
				want = 0
			}
			assert.Equal(want, image[addr], "%v 0x%03x", v, addr)
		}
	}
}

func TestGenerateSigned(t *testing.T) {
	assert := assert.New(t)

	image := Generate(COMMON_CATHODE)
	for value := -128; value < 128; value++ {
		addr := 0x400 | int(uint8(int8(value)))

		assert.Equal(COMMON_CATHODE.Decode(digitOf(value, 0)), image[addr+0x000], value)
		assert.Equal(COMMON_CATHODE.Decode(digitOf(value, 1)), image[addr+0x100], value)
		assert.Equal(COMMON_CATHODE.Decode(digitOf(value, 2)), image[addr+0x200], value)
		if value < 0 {
			assert.Equal(SIGN_NEGATIVE, image[addr+0x300], value)
		} else {
			assert.Zero(image[addr+0x300], value)
		}
	}
}

func TestGenerateScenarios(t *testing.T) {
	assert := assert.New(t)

	image := Generate(COMMON_CATHODE)

	assert.Equal(COMMON_CATHODE.Decode(0), image[0x000])
	assert.Equal(COMMON_CATHODE.Decode(0), image[0x100])
	assert.Equal(uint8(0), image[0x309])
	assert.Equal(COMMON_CATHODE.Decode(5), image[0x0ff])
	assert.Equal(COMMON_CATHODE.Decode(2), image[0x2ff])

	// -5 is 0xfb
	assert.Equal(COMMON_CATHODE.Decode(5), image[0x4fb])
	assert.Equal(COMMON_CATHODE.Decode(0), image[0x5fb])
	assert.Equal(uint8(1), image[0x7fb])

	// -128 is 0x80
	assert.Equal(COMMON_CATHODE.Decode(8), image[0x480])
	assert.Equal(COMMON_CATHODE.Decode(2), image[0x580])
	assert.Equal(COMMON_CATHODE.Decode(1), image[0x680])
}

func TestGenerateDeterministic(t *testing.T) {
	assert := assert.New(t)

	first := Generate(COMMON_ANODE)
	image := first
	image[0] ^= 0xff

	assert.Equal(first, Generate(COMMON_ANODE))
	assert.NotEqual(first, image)
}

func TestParseVariant(t *testing.T) {
	assert := assert.New(t)

	v, err := ParseVariant("anode")
	assert.NoError(err)
	assert.Equal(COMMON_ANODE, v)

	v, err = ParseVariant("cathode")
	assert.NoError(err)
	assert.Equal(COMMON_CATHODE, v)

	_, err = ParseVariant("plasma")
	assert.Equal(ErrVariant("plasma"), err)

	assert.True(COMMON_ANODE.Valid())
	assert.False(Variant(7).Valid())
	assert.Equal("Variant(7)", Variant(7).String())
}
