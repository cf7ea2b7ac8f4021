package token

import (
	"strconv"
	"unicode/utf8"
)

// Tokenizer interface defines the method for tokenizing input strings.
type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}

// EncodedTokenizer scans the letter-encoded arithmetic notation. Digit runs
// become NUMBER tokens, letters a-f become OPERATOR tokens. Nothing else,
// whitespace included, is accepted.
type EncodedTokenizer struct {
	input string
	pos   int
}

func NewEncodedTokenizer() *EncodedTokenizer {
	return &EncodedTokenizer{}
}

// Reset points the tokenizer at a new input.
func (t *EncodedTokenizer) Reset(input string) {
	t.input = input
	t.pos = 0
}

// Next returns the next token, or an EOF token once the input is exhausted.
// Digit runs are maximal, so a NUMBER is never followed by another NUMBER.
func (t *EncodedTokenizer) Next() (Token, error) {
	if t.pos >= len(t.input) {
		return Token{Type: EOF, Pos: t.pos}, nil
	}

	ch := t.input[t.pos]
	if isDigit(ch) {
		return t.readNumber()
	}

	op, err := FromChar(ch)
	if err != nil {
		r, _ := utf8.DecodeRuneInString(t.input[t.pos:])
		return Token{}, &PositionError{Pos: t.pos, Char: r, Err: ErrInvalidCharacter}
	}

	tok := NewOperator(op, t.pos)
	t.pos++
	return tok, nil
}

// Tokenize converts the input string into a slice of tokens terminated by EOF.
// Example: Input: `3ae4c66fb32`
func (t *EncodedTokenizer) Tokenize(input string) ([]Token, error) {
	t.Reset(input)

	tokens := make([]Token, 0, len(input)+1)
	for {
		tok, err := t.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

func (t *EncodedTokenizer) readNumber() (Token, error) {
	start := t.pos
	for t.pos < len(t.input) && isDigit(t.input[t.pos]) {
		t.pos++
	}

	literal := t.input[start:t.pos]
	n, err := strconv.ParseInt(literal, 10, 32)
	if err != nil {
		return Token{}, &PositionError{Pos: start, Literal: literal, Err: ErrNumberOutOfRange}
	}
	return NewNumber(int32(n), start), nil
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
