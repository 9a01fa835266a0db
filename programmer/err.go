// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package programmer

import (
	"github.com/ezrec/eeprog/translate"
)

var f = translate.From

const (
	STAGE_WRITE  = "write"
	STAGE_VERIFY = "verify"
	STAGE_DUMP   = "dump"
)

// ErrStage indicates the programming stage of an error.
type ErrStage struct {
	Stage string
	Err   error
}

func (err *ErrStage) Error() string {
	return f("%v: %v", err.Stage, err.Err)
}

func (err *ErrStage) Unwrap() error {
	return err.Err
}

// ErrMode is an unknown programming mode.
type ErrMode string

func (err ErrMode) Error() string {
	return f("mode '%v' unknown", string(err))
}
