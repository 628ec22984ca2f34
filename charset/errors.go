package charset

import (
	"errors"
	"fmt"
)

// Errors for contract violations of callers. New silently drops invalid
// boundaries; NewStrict and CheckCodepoint report them.
var (
	// ErrInvalidBoundary is returned for a boundary outside [LowerBound, UpperBound].
	ErrInvalidBoundary = errors.New("invalid boundary")

	// ErrInvalidCodepoint is returned for a code point outside [LowerBound, UpperBound).
	ErrInvalidCodepoint = errors.New("invalid code point")
)

// CheckCodepoint returns an error wrapping ErrInvalidCodepoint if cp is not a
// valid input character, i.e. if it is outside [LowerBound, UpperBound).
// Includes will never report such a code point as member of a set.
func CheckCodepoint(cp rune) error {
	if cp < LowerBound || cp >= UpperBound {
		return fmt.Errorf("%w: %#x", ErrInvalidCodepoint, cp)
	}
	return nil
}

func checkBoundary(b rune) error {
	if b < LowerBound || b > UpperBound {
		return fmt.Errorf("%w: %#x", ErrInvalidBoundary, b)
	}
	return nil
}
