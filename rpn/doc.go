// Package rpn reorders infix tokens into Reverse Polish Notation.
//
// Convert implements a restricted shunting-yard algorithm: operands go
// straight to the output, operators wait on a stack until an operator of
// equal or lower priority arrives or the input ends.
//
//	toks := lexer.Tokenize("a+b*c")
//	out := rpn.Convert(toks)  // [a, b, c, *, +]
//
// Operators of equal priority are emitted left to right, so "a-b-c"
// becomes "ab-c-". There is no parenthesis support.
//
// # Malformed input
//
// Convert does not validate the infix grammar. Empty input, leading or
// trailing operators, and consecutive operators are processed with the
// same stack mechanics and never panic, but the result is not a valid
// RPN expression.
package rpn
