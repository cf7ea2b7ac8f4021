package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

func TestFromEngineError(t *testing.T) {
	_, err := rpn.Parse("1d0")

	body, ok := FromEngineError(fmt.Errorf("item 0: %w", err))
	require.True(t, ok)
	assert.Equal(t, "division_by_zero", body.Kind)
	assert.Equal(t, "division by zero at position 1", body.Error)
	require.NotNil(t, body.Position)
	assert.Equal(t, 1, *body.Position)
}

func TestFromEngineError_NoPosition(t *testing.T) {
	_, err := rpn.Parse("1e2f")

	body, ok := FromEngineError(err)
	require.True(t, ok)
	assert.Equal(t, "malformed_expression", body.Kind)
	assert.Nil(t, body.Position)

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"malformed expression","kind":"malformed_expression"}`, string(raw))
}

func TestFromEngineError_ForeignError(t *testing.T) {
	_, ok := FromEngineError(errors.New("boom"))
	assert.False(t, ok)
}

func TestEvalRequest_MissingVersusEmpty(t *testing.T) {
	var missing EvalRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &missing))
	assert.Nil(t, missing.Expression)

	var empty EvalRequest
	require.NoError(t, json.Unmarshal([]byte(`{"expression":""}`), &empty))
	require.NotNil(t, empty.Expression)
	assert.Equal(t, "", *empty.Expression)
}

func TestNewEvalResponse(t *testing.T) {
	ev, err := rpn.Run("3a2c4")
	require.NoError(t, err)

	resp := NewEvalResponse(ev)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, int32(20), resp.Result)
	assert.Equal(t, "3 2 + 4 *", resp.Postfix)
}
