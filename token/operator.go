package token

import (
	"fmt"
	"strconv"
)

// Operator identifies one of the four binary arithmetic operators.
type Operator int

const (
	// Add is the "+" operator.
	Add Operator = iota

	// Subtract is the "-" operator.
	Subtract

	// Multiply is the "*" operator.
	Multiply

	// Divide is the "/" operator.
	Divide
)

// Priority is the binding strength of an operator. Higher binds tighter.
type Priority int

const (
	// AddPriority is shared by Add and Subtract.
	AddPriority Priority = iota

	// MultPriority is shared by Multiply and Divide.
	MultPriority
)

// Operator symbols as they appear in infix input and rendered output.
const (
	AddSymbol      = "+"
	SubtractSymbol = "-"
	MultiplySymbol = "*"
	DivideSymbol   = "/"
)

// operators lists every valid Operator in declaration order.
var operators = []Operator{Add, Subtract, Multiply, Divide}

// Operators returns all valid operators in declaration order.
// The returned slice is a copy.
func Operators() []Operator {
	return append([]Operator(nil), operators...)
}

// Valid reports whether o is one of the four known operators.
func (o Operator) Valid() bool {
	return o >= Add && o <= Divide
}

// Priority returns the operator's binding strength.
func (o Operator) Priority() Priority {
	switch o {
	case Multiply, Divide:
		return MultPriority
	default:
		return AddPriority
	}
}

// Symbol returns the operator's single-character symbol.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return AddSymbol
	case Subtract:
		return SubtractSymbol
	case Multiply:
		return MultiplySymbol
	case Divide:
		return DivideSymbol
	}
	return ""
}

// String returns the operator symbol, or Operator(n) for unknown values.
func (o Operator) String() string {
	if s := o.Symbol(); s != "" {
		return s
	}
	return "Operator(" + strconv.Itoa(int(o)) + ")"
}

// ParseOperator maps an exact operator symbol to its Operator.
// The second result is false for any other string.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case AddSymbol:
		return Add, true
	case SubtractSymbol:
		return Subtract, true
	case MultiplySymbol:
		return Multiply, true
	case DivideSymbol:
		return Divide, true
	}
	return 0, false
}

// MarshalText encodes the operator as its symbol.
func (o Operator) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("marshal operator: unknown operator %d", int(o))
	}
	return []byte(o.Symbol()), nil
}

// UnmarshalText decodes an operator from its symbol.
func (o *Operator) UnmarshalText(text []byte) error {
	op, ok := ParseOperator(string(text))
	if !ok {
		return fmt.Errorf("unmarshal operator: unknown symbol %q", text)
	}
	*o = op
	return nil
}
