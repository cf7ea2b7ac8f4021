package rpn

import (
	"math"

	"github.com/DjordjeVuckovic/encalc/internal/token"
)

// Evaluate reduces a postfix sequence to a single value. An empty sequence
// evaluates to 0.
func Evaluate(postfix []token.Token) (int32, error) {
	if len(postfix) == 0 {
		return 0, nil
	}

	operands := make([]int32, 0, len(postfix)/2+1)

	for _, tok := range postfix {
		if tok.IsNumber() {
			operands = append(operands, tok.Number)
			continue
		}

		if !tok.IsOperator() || !tok.Op.IsArithmetic() || len(operands) < 2 {
			return 0, newError(KindMalformedExpression, tok.Pos)
		}

		n2 := operands[len(operands)-1]
		n1 := operands[len(operands)-2]
		operands = operands[:len(operands)-2]

		result, err := apply(tok.Op, n1, n2, tok.Pos)
		if err != nil {
			return 0, err
		}
		operands = append(operands, result)
	}

	if len(operands) != 1 {
		return 0, newError(KindMalformedExpression, -1)
	}
	return operands[0], nil
}

// apply computes n1 op n2 in 64 bits and rejects results outside int32.
// Division truncates toward zero.
func apply(op token.Operator, n1, n2 int32, pos int) (int32, error) {
	a, b := int64(n1), int64(n2)

	var r int64
	switch op {
	case token.Add:
		r = a + b
	case token.Subtract:
		r = a - b
	case token.Multiply:
		r = a * b
	case token.Divide:
		if b == 0 {
			return 0, newError(KindDivisionByZero, pos)
		}
		r = a / b
	default:
		return 0, newError(KindMalformedExpression, pos)
	}

	if r < math.MinInt32 || r > math.MaxInt32 {
		return 0, newError(KindNumericOverflow, pos)
	}
	return int32(r), nil
}
