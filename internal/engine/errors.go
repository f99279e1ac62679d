package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter reports a simulation parameter outside its documented
// domain. All validation happens before any sampling; a run never fails
// partway through.
var ErrInvalidParameter = errors.New("invalid parameter")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
