package dto

import (
	"errors"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

// EvalRequest is the body of POST /v1/eval. Expression is a pointer so that a
// missing field can be told apart from an empty expression, which is valid.
type EvalRequest struct {
	Expression *string `json:"expression" example:"3ae4c66fb32"`
}

type EvalResponse struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression" example:"3ae4c66fb32"`
	Result     int32     `json:"result" example:"235"`
	Postfix    string    `json:"postfix" example:"3 4 66 * + 32 -"`
}

func NewEvalResponse(ev *rpn.Evaluation) EvalResponse {
	return EvalResponse{
		ID:         uuid.New(),
		Expression: ev.Expression,
		Result:     ev.Result,
		Postfix:    rpn.FormatPostfix(ev.Postfix),
	}
}

type BatchEvalRequest struct {
	Expressions []string `json:"expressions"`
}

// BatchItem carries either Result and Postfix or Error.
type BatchItem struct {
	Expression string     `json:"expression"`
	Result     *int32     `json:"result,omitempty"`
	Postfix    string     `json:"postfix,omitempty"`
	Error      *ErrorBody `json:"error,omitempty"`
}

type BatchEvalResponse struct {
	ID      uuid.UUID   `json:"id"`
	Results []BatchItem `json:"results"`
	Failed  int         `json:"failed"`
}

type RPNResponse struct {
	Expression string `json:"expression" example:"3a2c4"`
	Postfix    string `json:"postfix" example:"3 2 + 4 *"`
	Encoded    string `json:"encoded" example:"3 2 a 4 c"`
}

// ErrorBody describes an expression the engine rejected.
type ErrorBody struct {
	Error    string `json:"error" example:"division by zero at position 1"`
	Kind     string `json:"kind" example:"division_by_zero"`
	Position *int   `json:"position,omitempty" example:"1"`
}

// FromEngineError converts an engine error into its wire form. It reports
// false if err did not come from the engine.
func FromEngineError(err error) (ErrorBody, bool) {
	var e *rpn.Error
	if !errors.As(err, &e) {
		return ErrorBody{}, false
	}

	body := ErrorBody{Error: e.Error(), Kind: e.Kind.String()}
	if e.Pos >= 0 {
		pos := e.Pos
		body.Position = &pos
	}
	return body, true
}
