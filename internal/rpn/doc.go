// Package rpn evaluates arithmetic expressions written in the letter encoding
// (a=+, b=-, c=*, d=/, e=(, f=)).
//
// Evaluation runs in two stages: Convert turns the infix input into postfix
// order with the shunting-yard algorithm, and Evaluate reduces the postfix
// sequence on an operand stack. All four operators have equal precedence and
// are applied left to right; only parentheses change grouping, so "3a2c4" is
// (3+2)*4 = 20.
//
// Values are int32. Literals or intermediate results outside that range fail
// with ErrNumericOverflow rather than wrapping. Parse is a pure function and is
// safe for concurrent use.
package rpn
