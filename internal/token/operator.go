package token

import (
	"fmt"
	"strings"
)

// Operator is the closed set of operators and grouping symbols of the
// encoding. The zero value is not a valid operator.
//
// Encoding:
//
//	a = Add, b = Subtract, c = Multiply, d = Divide, e = LeftParen, f = RightParen
type Operator int

const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
	LeftParen
	RightParen
)

// FromChar maps an encoding letter to its operator.
func FromChar(ch byte) (Operator, error) {
	switch ch {
	case 'a':
		return Add, nil
	case 'b':
		return Subtract, nil
	case 'c':
		return Multiply, nil
	case 'd':
		return Divide, nil
	case 'e':
		return LeftParen, nil
	case 'f':
		return RightParen, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrInvalidCharacter, ch)
	}
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "ADD"
	case Subtract:
		return "SUBTRACT"
	case Multiply:
		return "MULTIPLY"
	case Divide:
		return "DIVIDE"
	case LeftParen:
		return "LEFT_PAREN"
	case RightParen:
		return "RIGHT_PAREN"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the conventional arithmetic symbol for the operator.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	default:
		return "?"
	}
}

// Code returns the encoding letter, or 0 for an invalid operator.
func (o Operator) Code() byte {
	if o < Add || o > RightParen {
		return 0
	}
	return 'a' + byte(o-Add)
}

// IsArithmetic reports whether the operator takes two operands.
func (o Operator) IsArithmetic() bool {
	return o == Add || o == Subtract || o == Multiply || o == Divide
}

func (o Operator) MarshalText() ([]byte, error) {
	if o.Code() == 0 {
		return nil, fmt.Errorf("invalid operator: %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText accepts either the operator name (case-insensitive) or its
// encoding letter.
func (o *Operator) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) == 1 {
		op, err := FromChar(s[0])
		if err != nil {
			return err
		}
		*o = op
		return nil
	}

	for op := Add; op <= RightParen; op++ {
		if strings.EqualFold(op.String(), s) {
			*o = op
			return nil
		}
	}
	return fmt.Errorf("invalid operator: %q", s)
}
