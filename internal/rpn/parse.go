package rpn

import (
	"strings"

	"github.com/DjordjeVuckovic/encalc/internal/token"
)

// Parse evaluates an encoded expression such as "3ae4c66fb32" (3 + (4 * 66) - 32).
// The empty string evaluates to 0. Every failure is an *Error.
func Parse(input string) (int32, error) {
	postfix, err := Convert(input)
	if err != nil {
		return 0, err
	}
	return Evaluate(postfix)
}

// Evaluation is the outcome of a successful Run.
type Evaluation struct {
	Expression string
	Result     int32
	Postfix    []token.Token
}

// Run evaluates input and keeps the intermediate postfix sequence.
func Run(input string) (*Evaluation, error) {
	postfix, err := Convert(input)
	if err != nil {
		return nil, err
	}

	result, err := Evaluate(postfix)
	if err != nil {
		return nil, err
	}

	return &Evaluation{
		Expression: input,
		Result:     result,
		Postfix:    postfix,
	}, nil
}

// FormatPostfix renders a postfix sequence with arithmetic symbols: "3 2 + 4 *".
func FormatPostfix(postfix []token.Token) string {
	parts := make([]string, len(postfix))
	for i, tok := range postfix {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

// FormatEncoded renders a postfix sequence in the letter encoding: "3 2 a 4 c".
func FormatEncoded(postfix []token.Token) string {
	parts := make([]string, len(postfix))
	for i, tok := range postfix {
		parts[i] = tok.Encoded()
	}
	return strings.Join(parts, " ")
}
