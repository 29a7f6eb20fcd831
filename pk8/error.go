package pk8

import (
	"fmt"

	"pkm-forge/pk8/playout"
)

type (
	// ErrMalformedInput signals a decode buffer shorter than one record.
	ErrMalformedInput struct {
		Length int
	}
	// ErrOutOfRange signals a value that does not fit its bit width; only
	// the strict encoding path reports it, the permissive path truncates.
	ErrOutOfRange struct {
		Field string
		Value uint32
		Bits  uint
	}
)

func (r ErrMalformedInput) Error() string {
	return fmt.Sprintf(
		"malformed input: expected at least %d bytes, got %d",
		playout.RecordSize, r.Length,
	)
}

func (r ErrOutOfRange) Error() string {
	return fmt.Sprintf(
		`value "%d" of field "%s" does not fit within %d bits`,
		r.Value, r.Field, r.Bits,
	)
}
