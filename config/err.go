// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package config

import (
	"errors"

	"github.com/ezrec/eeprog/translate"
)

var f = translate.From

var (
	ErrKeyUnknown = errors.New(f("unknown setting"))
	ErrKeyType    = errors.New(f("wrong type"))
	ErrKeyRange   = errors.New(f("out of range"))
)

// ErrConfig is a bad setting in a configuration file.
type ErrConfig struct {
	File string
	Key  string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v: %v", err.File, err.Key, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
