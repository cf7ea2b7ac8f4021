package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromChar(t *testing.T) {
	tests := []struct {
		ch       byte
		expected Operator
		symbol   string
	}{
		{'a', Add, "+"},
		{'b', Subtract, "-"},
		{'c', Multiply, "*"},
		{'d', Divide, "/"},
		{'e', LeftParen, "("},
		{'f', RightParen, ")"},
	}

	for _, tt := range tests {
		t.Run(string(tt.ch), func(t *testing.T) {
			op, err := FromChar(tt.ch)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, op)
			assert.Equal(t, tt.symbol, op.Symbol())
			assert.Equal(t, tt.ch, op.Code())
		})
	}
}

func TestFromChar_Invalid(t *testing.T) {
	for _, ch := range []byte{'g', 'z', 'A', '+', ' ', '0', 0} {
		_, err := FromChar(ch)
		assert.ErrorIs(t, err, ErrInvalidCharacter, "char %q", ch)
	}
}

func TestOperator_IsArithmetic(t *testing.T) {
	assert.True(t, Add.IsArithmetic())
	assert.True(t, Subtract.IsArithmetic())
	assert.True(t, Multiply.IsArithmetic())
	assert.True(t, Divide.IsArithmetic())
	assert.False(t, LeftParen.IsArithmetic())
	assert.False(t, RightParen.IsArithmetic())
	assert.False(t, Operator(0).IsArithmetic())
}

func TestOperator_ZeroValue(t *testing.T) {
	var op Operator
	assert.Equal(t, "UNKNOWN", op.String())
	assert.Equal(t, byte(0), op.Code())

	_, err := op.MarshalText()
	assert.Error(t, err)
}

func TestOperator_TextRoundTrip(t *testing.T) {
	text, err := Multiply.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "MULTIPLY", string(text))

	var op Operator
	require.NoError(t, op.UnmarshalText([]byte("left_paren")))
	assert.Equal(t, LeftParen, op)

	require.NoError(t, op.UnmarshalText([]byte("d")))
	assert.Equal(t, Divide, op)

	assert.Error(t, op.UnmarshalText([]byte("modulo")))
	assert.Error(t, op.UnmarshalText([]byte("g")))
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "42", NewNumber(42, 0).String())
	assert.Equal(t, "-7", NewNumber(-7, 0).String())
	assert.Equal(t, "*", NewOperator(Multiply, 0).String())
	assert.Equal(t, "c", NewOperator(Multiply, 0).Encoded())
	assert.Equal(t, "42", NewNumber(42, 0).Encoded())
	assert.Equal(t, "EOF", Token{Type: EOF}.String())
}
