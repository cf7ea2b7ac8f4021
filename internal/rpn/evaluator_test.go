package rpn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/encalc/internal/token"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		postfix  []token.Token
		expected int32
	}{
		{name: "nil sequence", postfix: nil, expected: 0},
		{name: "single number", postfix: []token.Token{num(7, 0)}, expected: 7},
		{
			name:     "right operand is most recent",
			postfix:  []token.Token{num(10, 0), num(4, 3), op(token.Subtract, 2)},
			expected: 6,
		},
		{
			name:     "division operand order",
			postfix:  []token.Token{num(9, 0), num(2, 2), op(token.Divide, 1)},
			expected: 4,
		},
		{
			name: "chained",
			postfix: []token.Token{
				num(3, 0), num(4, 0), num(66, 0), op(token.Multiply, 0), op(token.Add, 0),
				num(32, 0), op(token.Subtract, 0),
			},
			expected: 235,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Evaluate(tt.postfix)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEvaluate_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		postfix []token.Token
	}{
		{name: "operator only", postfix: []token.Token{op(token.Add, 0)}},
		{name: "missing operand", postfix: []token.Token{num(1, 0), op(token.Multiply, 1)}},
		{name: "leftover operands", postfix: []token.Token{num(1, 0), num(2, 1)}},
		{name: "parenthesis in postfix", postfix: []token.Token{num(1, 0), num(2, 1), op(token.LeftParen, 2)}},
		{name: "eof token", postfix: []token.Token{{Type: token.EOF}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.postfix)
			assert.ErrorIs(t, err, ErrMalformedExpression)
		})
	}
}

func TestApply(t *testing.T) {
	r, err := apply(token.Divide, -7, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(-3), r)

	_, err = apply(token.Divide, 1, 0, 3)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, 3, err.(*Error).Pos)

	_, err = apply(token.Subtract, -2147483648, 1, 0)
	assert.ErrorIs(t, err, ErrNumericOverflow)

	_, err = apply(token.Divide, -2147483648, -1, 0)
	assert.ErrorIs(t, err, ErrNumericOverflow)
}
