package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/encalc/internal/apperr"
	"github.com/DjordjeVuckovic/encalc/internal/dto"
	"github.com/DjordjeVuckovic/encalc/internal/metrics"
	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

const (
	defaultMaxExpressionLength = 4096
	defaultMaxBatchSize        = 100
)

type EvalRouter struct {
	e *echo.Echo

	recorder      *metrics.Recorder
	maxExprLength int
	maxBatchSize  int
}

type EvalRouterOption func(*EvalRouter)

func WithRecorder(r *metrics.Recorder) EvalRouterOption {
	return func(er *EvalRouter) {
		er.recorder = r
	}
}

func WithMaxExpressionLength(n int) EvalRouterOption {
	return func(er *EvalRouter) {
		if n > 0 {
			er.maxExprLength = n
		}
	}
}

func WithMaxBatchSize(n int) EvalRouterOption {
	return func(er *EvalRouter) {
		if n > 0 {
			er.maxBatchSize = n
		}
	}
}

func NewEvalRouter(e *echo.Echo, opts ...EvalRouterOption) *EvalRouter {
	r := &EvalRouter{
		e:             e,
		maxExprLength: defaultMaxExpressionLength,
		maxBatchSize:  defaultMaxBatchSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *EvalRouter) Bind() {
	v1 := r.e.Group("/v1")
	v1.GET("/eval", r.evalQueryHandler)
	v1.POST("/eval", r.evalBodyHandler)
	v1.POST("/eval/batch", r.batchHandler)
	v1.GET("/rpn", r.rpnHandler)
}

// evalQueryHandler godoc
// @Summary Evaluate an expression
// @Description Evaluates a letter-encoded expression such as 3ae4c66fb32
// @Tags eval
// @Produce json
// @Param expr query string true "Encoded expression"
// @Success 200 {object} dto.EvalResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} dto.ErrorBody
// @Router /v1/eval [get]
func (r *EvalRouter) evalQueryHandler(c echo.Context) error {
	expr, err := r.queryExpression(c)
	if err != nil {
		return err
	}
	return r.eval(c, expr)
}

// evalBodyHandler godoc
// @Summary Evaluate an expression
// @Description Evaluates the expression in the request body
// @Tags eval
// @Accept json
// @Produce json
// @Param request body dto.EvalRequest true "Expression"
// @Success 200 {object} dto.EvalResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} dto.ErrorBody
// @Router /v1/eval [post]
func (r *EvalRouter) evalBodyHandler(c echo.Context) error {
	var req dto.EvalRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Expression == nil {
		return apperr.NewValidation("expression is required")
	}
	if err := r.checkLength(*req.Expression); err != nil {
		return err
	}
	return r.eval(c, *req.Expression)
}

// batchHandler godoc
// @Summary Evaluate a batch of expressions
// @Description Evaluates several expressions; rejected expressions are reported per item
// @Tags eval
// @Accept json
// @Produce json
// @Param request body dto.BatchEvalRequest true "Expressions"
// @Success 200 {object} dto.BatchEvalResponse
// @Failure 400 {object} map[string]string
// @Router /v1/eval/batch [post]
func (r *EvalRouter) batchHandler(c echo.Context) error {
	var req dto.BatchEvalRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if len(req.Expressions) == 0 {
		return apperr.NewValidation("expressions must not be empty")
	}
	if len(req.Expressions) > r.maxBatchSize {
		return apperr.NewValidation(fmt.Sprintf("batch exceeds %d expressions", r.maxBatchSize))
	}
	for i, expr := range req.Expressions {
		if err := r.checkLength(expr); err != nil {
			return apperr.NewValidationWrap(fmt.Sprintf("expression %d", i), err)
		}
	}
	r.recorder.ObserveBatch(len(req.Expressions))

	resp := dto.BatchEvalResponse{
		ID:      uuid.New(),
		Results: make([]dto.BatchItem, 0, len(req.Expressions)),
	}
	for _, expr := range req.Expressions {
		start := time.Now()
		ev, err := rpn.Run(expr)
		r.recorder.Observe(metrics.SourceBatch, err, time.Since(start))

		item := dto.BatchItem{Expression: expr}
		if err != nil {
			body, ok := dto.FromEngineError(err)
			if !ok {
				return err
			}
			item.Error = &body
			resp.Failed++
		} else {
			result := ev.Result
			item.Result = &result
			item.Postfix = rpn.FormatPostfix(ev.Postfix)
		}
		resp.Results = append(resp.Results, item)
	}

	return c.JSON(http.StatusOK, resp)
}

// rpnHandler godoc
// @Summary Convert an expression to postfix
// @Description Returns the postfix form of an expression without evaluating it
// @Tags rpn
// @Produce json
// @Param expr query string true "Encoded expression"
// @Success 200 {object} dto.RPNResponse
// @Failure 422 {object} dto.ErrorBody
// @Router /v1/rpn [get]
func (r *EvalRouter) rpnHandler(c echo.Context) error {
	expr, err := r.queryExpression(c)
	if err != nil {
		return err
	}

	start := time.Now()
	postfix, err := rpn.Convert(expr)
	r.recorder.Observe(metrics.SourceRPN, err, time.Since(start))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.RPNResponse{
		Expression: expr,
		Postfix:    rpn.FormatPostfix(postfix),
		Encoded:    rpn.FormatEncoded(postfix),
	})
}

func (r *EvalRouter) eval(c echo.Context, expr string) error {
	start := time.Now()
	ev, err := rpn.Run(expr)
	r.recorder.Observe(metrics.SourceSingle, err, time.Since(start))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewEvalResponse(ev))
}

// queryExpression reads ?expr=. The parameter must be present but may be
// empty, which evaluates to 0.
func (r *EvalRouter) queryExpression(c echo.Context) (string, error) {
	if !c.QueryParams().Has("expr") {
		return "", apperr.NewValidation("expr query parameter is required")
	}
	expr := c.QueryParam("expr")
	if err := r.checkLength(expr); err != nil {
		return "", err
	}
	return expr, nil
}

func (r *EvalRouter) checkLength(expr string) error {
	if len(expr) > r.maxExprLength {
		return apperr.NewValidation(fmt.Sprintf("expression exceeds %d characters", r.maxExprLength))
	}
	return nil
}
