package token

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrNumberOutOfRange = errors.New("number out of range")
)

// PositionError reports a scanning failure at a byte offset of the input.
type PositionError struct {
	Pos     int
	Char    rune
	Literal string
	Err     error
}

func (e *PositionError) Error() string {
	if e.Literal != "" {
		return fmt.Sprintf("%s: %s at position %d", e.Err, e.Literal, e.Pos)
	}
	return fmt.Sprintf("%s %q at position %d", e.Err, e.Char, e.Pos)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}
