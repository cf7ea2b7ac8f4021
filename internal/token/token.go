package token

import "strconv"

type Type int

const (
	EOF Type = iota
	NUMBER
	OPERATOR
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case OPERATOR:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// Token is either a numeric literal or an operator. Pos is the byte offset of
// the token's first character in the scanned input.
type Token struct {
	Type   Type
	Number int32
	Op     Operator
	Pos    int
}

func NewNumber(n int32, pos int) Token {
	return Token{Type: NUMBER, Number: n, Pos: pos}
}

func NewOperator(op Operator, pos int) Token {
	return Token{Type: OPERATOR, Op: op, Pos: pos}
}

func (t Token) IsNumber() bool {
	return t.Type == NUMBER
}

func (t Token) IsOperator() bool {
	return t.Type == OPERATOR
}

// String renders numbers in decimal and operators by their symbol.
func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return strconv.FormatInt(int64(t.Number), 10)
	case OPERATOR:
		return t.Op.Symbol()
	default:
		return t.Type.String()
	}
}

// Encoded renders the token the way it appears in the letter encoding.
func (t Token) Encoded() string {
	if t.Type == OPERATOR {
		return string(t.Op.Code())
	}
	return t.String()
}
