package pathtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath is matched by every *InvalidPathError.
	ErrInvalidPath = errors.New("invalid path")
	// ErrNotScalar is returned by ParseScalar for values that are not scalars.
	ErrNotScalar = errors.New("value is not a scalar")
)

// InvalidPathError reports an entry whose path has no segments.
type InvalidPathError struct {
	// Index is the position of the entry in the slice passed to Build.
	Index int
	// Value is the value the entry tried to assign.
	Value Scalar
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("entry %d (value %q): empty path", e.Index, e.Value.String())
}

// Is makes errors.Is(err, ErrInvalidPath) hold.
func (e *InvalidPathError) Is(target error) bool {
	return target == ErrInvalidPath
}
