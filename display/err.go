// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package display

import (
	"github.com/ezrec/eeprog/translate"
)

var f = translate.From

// ErrVariant is an unknown display variant name.
type ErrVariant string

func (err ErrVariant) Error() string {
	return f("display variant '%v' unknown", string(err))
}
