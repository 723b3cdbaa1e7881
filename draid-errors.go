package draid

import (
	"errors"
	"fmt"
)

var (
	//ErrInvalidLayout marks a rejected layout configuration, e.g. nspares no less
	//than ndevs, non-positive group number, or groups that do not divide the
	//non-spare devices evenly. Construction never proceeds past it.
	ErrInvalidLayout = errors.New("draid: invalid layout")

	//ErrInsufficientSpares means a row ran out of usable spare slots while
	//reassigning broken drives. It is a caller precondition violation, never a
	//transient condition, hence not retried.
	ErrInsufficientSpares = errors.New("draid: insufficient spares")

	errInvalidStatistic  = errors.New("draid: unknown statistic")
	errInvalidFaultCount = errors.New("draid: fault count must be 1 or 2")
	errDuplicateFault    = errors.New("draid: duplicate device in fault set")
	errEmptyPlan         = errors.New("draid: search plan holds no candidates")
)

func invalidLayoutf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidLayout, fmt.Sprintf(format, args...))
}
