// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package eeprom

import (
	"errors"

	"github.com/ezrec/eeprog/translate"
)

var f = translate.From

var (
	// Transport errors
	ErrInvalidAddress = errors.New(f("invalid address"))
	ErrWriteTimeout   = errors.New(f("write timeout"))
	ErrBusFault       = errors.New(f("bus fault"))

	// Configuration errors
	ErrChipSize   = errors.New(f("chip size unsupported"))
	ErrPinMissing = errors.New(f("pin missing"))
)

// ErrAddress is an address outside of the chip.
type ErrAddress struct {
	Address int
	Size    int
}

func (err *ErrAddress) Error() string {
	return f("address 0x%x outside of 0x000..0x%x", err.Address, err.Size-1)
}

func (err *ErrAddress) Unwrap() error {
	return ErrInvalidAddress
}

// ErrWrite is a write that the chip never committed.
type ErrWrite struct {
	Address int
	Value   uint8
	Polls   int
	Err     error
}

func (err *ErrWrite) Error() string {
	return f("write 0x%02x to 0x%03x after %d polls: %v", err.Value, err.Address, err.Polls, err.Err)
}

func (err *ErrWrite) Unwrap() error {
	return err.Err
}

// ErrPin is a misconfigured pin role.
type ErrPin struct {
	Pin string
	Err error
}

func (err *ErrPin) Error() string {
	return f("pin %v: %v", err.Pin, err.Err)
}

func (err *ErrPin) Unwrap() error {
	return err.Err
}

// ErrBus is a failure of the pin driver during a transaction.
type ErrBus struct {
	Pin string
	Err error
}

func (err *ErrBus) Error() string {
	return f("bus fault on %v: %v", err.Pin, err.Err)
}

func (err *ErrBus) Unwrap() []error {
	return []error{ErrBusFault, err.Err}
}

// ErrVerify is a read back that does not match the image.
type ErrVerify struct {
	Address int
	Want    uint8
	Got     uint8
}

func (err *ErrVerify) Error() string {
	return f("verify 0x%03x: wanted 0x%02x, got 0x%02x", err.Address, err.Want, err.Got)
}

func (err *ErrVerify) Unwrap() error {
	return ErrBusFault
}
