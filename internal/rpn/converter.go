package rpn

import "github.com/DjordjeVuckovic/encalc/internal/token"

// Convert reorders the encoded infix expression into postfix order using the
// shunting-yard algorithm. Scanning and reordering happen in one pass: tokens
// are pulled from the tokenizer as the operator stack is worked.
//
// The four arithmetic operators share one precedence level and associate to
// the left, so an incoming operator pops everything down to the nearest left
// parenthesis. Parentheses never reach the output.
func Convert(input string) ([]token.Token, error) {
	tokenizer := token.NewEncodedTokenizer()
	tokenizer.Reset(input)

	output := make([]token.Token, 0, len(input))
	var operators []token.Token

	// popUntilLeftParen moves operators to the output until a left parenthesis
	// (left on the stack) or the bottom of the stack is reached.
	popUntilLeftParen := func() {
		for len(operators) > 0 {
			top := operators[len(operators)-1]
			if top.Op == token.LeftParen {
				return
			}
			output = append(output, top)
			operators = operators[:len(operators)-1]
		}
	}

	for {
		tok, err := tokenizer.Next()
		if err != nil {
			return nil, fromScanError(err)
		}
		if tok.Type == token.EOF {
			break
		}

		if tok.IsNumber() {
			output = append(output, tok)
			continue
		}

		switch tok.Op {
		case token.LeftParen:
			operators = append(operators, tok)
		case token.RightParen:
			popUntilLeftParen()
			if len(operators) == 0 {
				return nil, newError(KindMissingLeftParen, tok.Pos)
			}
			operators = operators[:len(operators)-1]
		default:
			popUntilLeftParen()
			operators = append(operators, tok)
		}
	}

	for len(operators) > 0 {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if top.Op == token.LeftParen {
			return nil, newError(KindMissingRightParen, top.Pos)
		}
		output = append(output, top)
	}

	return output, nil
}
