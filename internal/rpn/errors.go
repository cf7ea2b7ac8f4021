package rpn

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/encalc/internal/token"
)

// Kind classifies why an expression could not be evaluated.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidCharacter
	KindMissingLeftParen
	KindMissingRightParen
	KindDivisionByZero
	KindNumericOverflow
	KindMalformedExpression
)

var (
	ErrInvalidCharacter    = token.ErrInvalidCharacter
	ErrMissingLeftParen    = errors.New("missing left parenthesis")
	ErrMissingRightParen   = errors.New("missing right parenthesis")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrNumericOverflow     = errors.New("numeric overflow")
	ErrMalformedExpression = errors.New("malformed expression")
)

var kindNames = map[Kind]string{
	KindUnknown:             "unknown",
	KindInvalidCharacter:    "invalid_character",
	KindMissingLeftParen:    "missing_left_paren",
	KindMissingRightParen:   "missing_right_paren",
	KindDivisionByZero:      "division_by_zero",
	KindNumericOverflow:     "numeric_overflow",
	KindMalformedExpression: "malformed_expression",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a wire name such as "division_by_zero".
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if k != KindUnknown && name == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown error kind: %q", s)
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidCharacter:
		return ErrInvalidCharacter
	case KindMissingLeftParen:
		return ErrMissingLeftParen
	case KindMissingRightParen:
		return ErrMissingRightParen
	case KindDivisionByZero:
		return ErrDivisionByZero
	case KindNumericOverflow:
		return ErrNumericOverflow
	default:
		return ErrMalformedExpression
	}
}

// Error is returned for every expression that cannot be evaluated. It unwraps
// to the sentinel of its Kind, so errors.Is(err, ErrDivisionByZero) works.
// Pos is the byte offset of the offending character, or -1 when the failure
// is not tied to one.
type Error struct {
	Kind Kind
	Pos  int
	Char rune
	Err  error
}

func newError(kind Kind, pos int) *Error {
	return &Error{Kind: kind, Pos: pos, Err: kind.sentinel()}
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindInvalidCharacter:
		return fmt.Sprintf("%s %q at position %d", e.Err, e.Char, e.Pos)
	case e.Pos >= 0:
		return fmt.Sprintf("%s at position %d", e.Err, e.Pos)
	default:
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the Kind from err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func fromScanError(err error) error {
	var pe *token.PositionError
	if !errors.As(err, &pe) {
		return err
	}

	if errors.Is(pe, token.ErrNumberOutOfRange) {
		return newError(KindNumericOverflow, pe.Pos)
	}
	e := newError(KindInvalidCharacter, pe.Pos)
	e.Char = pe.Char
	return e
}
