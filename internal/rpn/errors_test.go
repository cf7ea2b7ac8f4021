package rpn

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "invalid_character", KindInvalidCharacter.String())
	assert.Equal(t, "missing_left_paren", KindMissingLeftParen.String())
	assert.Equal(t, "missing_right_paren", KindMissingRightParen.String())
	assert.Equal(t, "division_by_zero", KindDivisionByZero.String())
	assert.Equal(t, "numeric_overflow", KindNumericOverflow.String())
	assert.Equal(t, "malformed_expression", KindMalformedExpression.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestParseKind(t *testing.T) {
	for k := KindInvalidCharacter; k <= KindMalformedExpression; k++ {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseKind("unknown")
	assert.Error(t, err)
	_, err = ParseKind("overflow")
	assert.Error(t, err)
}

func TestKind_TextRoundTrip(t *testing.T) {
	text, err := KindDivisionByZero.MarshalText()
	require.NoError(t, err)

	var k Kind
	require.NoError(t, k.UnmarshalText(text))
	assert.Equal(t, KindDivisionByZero, k)
}

func TestError_SurvivesFmtWrapping(t *testing.T) {
	_, original := Parse("1d0")
	wrapped := fmt.Errorf("evaluate batch item 3: %w", original)

	assert.ErrorIs(t, wrapped, ErrDivisionByZero)
	assert.Equal(t, KindDivisionByZero, KindOf(wrapped))

	var e *Error
	require.True(t, errors.As(wrapped, &e))
	assert.Equal(t, 1, e.Pos)
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestError_MessageWithoutPosition(t *testing.T) {
	err := newError(KindMalformedExpression, -1)
	assert.Equal(t, "malformed expression", err.Error())

	err = newError(KindMissingRightParen, 4)
	assert.Equal(t, "missing right parenthesis at position 4", err.Error())
}
