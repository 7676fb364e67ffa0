package rpn

import "github.com/randalmurphal/rpnkit/token"

// Convert returns tokens reordered from infix into postfix order.
// The input slice is not modified.
func Convert(tokens []token.Token) []token.Token {
	var stack operatorStack
	out := make([]token.Token, 0, len(tokens))

	for _, tok := range tokens {
		op, ok := tok.Operator()
		if !ok {
			out = append(out, tok)
			continue
		}

		if stack.empty() || op.Priority() > stack.top().Priority() {
			stack.push(op)
			continue
		}

		// Flush everything that binds at least as tightly; equal priority
		// leaves first so same-level operators apply left to right.
		for !stack.empty() && stack.top().Priority() >= op.Priority() {
			out = append(out, token.NewOperator(stack.pop()))
		}
		stack.push(op)
	}

	for !stack.empty() {
		out = append(out, token.NewOperator(stack.pop()))
	}

	return out
}

// Counts returns the number of operand and operator tokens.
func Counts(tokens []token.Token) (operands, operators int) {
	for _, tok := range tokens {
		if tok.IsOperator() {
			operators++
		} else {
			operands++
		}
	}
	return operands, operators
}
