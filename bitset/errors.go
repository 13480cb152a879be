package bitset

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by the indexed-boolean surface's checked
// operations, and by the string constructor, when a position is outside
// the set's valid range. Recoverable by the caller.
var ErrOutOfRange = errors.New("bitset: position out of range")

// ErrInvalidArgument is returned by the string constructor when the
// input window contains a byte other than the configured zero/one
// character.
var ErrInvalidArgument = errors.New("bitset: invalid argument")

func outOfRangeErr(op string, i, n int) error {
	return fmt.Errorf("bitset: %s(%d): %w (length %d)", op, i, ErrOutOfRange, n)
}

func invalidByteErr(pos int, got byte) error {
	return fmt.Errorf("bitset: unexpected byte %q at position %d: %w", got, pos, ErrInvalidArgument)
}

func lengthMismatchErr(got, want int) error {
	return fmt.Errorf("bitset: read %d bytes, want %d: %w", got, want, ErrInvalidArgument)
}
