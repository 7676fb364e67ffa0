package rpn

import "github.com/randalmurphal/rpnkit/token"

// operatorStack holds operators waiting to be emitted.
// The top of the stack is the last element.
type operatorStack []token.Operator

func (s *operatorStack) push(op token.Operator) {
	*s = append(*s, op)
}

// pop removes and returns the top operator. The stack must not be empty.
func (s *operatorStack) pop() token.Operator {
	old := *s
	top := old[len(old)-1]
	*s = old[:len(old)-1]
	return top
}

// top returns the top operator without removing it. The stack must not be empty.
func (s operatorStack) top() token.Operator {
	return s[len(s)-1]
}

func (s operatorStack) empty() bool {
	return len(s) == 0
}
