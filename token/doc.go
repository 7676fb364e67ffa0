// Package token defines the values that flow through an infix-to-RPN
// conversion: operands, operators, and their priorities.
//
// # Operators
//
// Four binary operators are recognized. Multiply and Divide bind tighter
// than Add and Subtract:
//
//	token.Add.Priority()      // 0
//	token.Multiply.Priority() // 1
//	token.Divide.Symbol()     // "/"
//
// # Tokens
//
// A Token is either an operand or an operator. Tokens are immutable values
// and can be copied freely:
//
//	a := token.NewOperand("a")
//	plus := token.NewOperator(token.Add)
//	a.String() + plus.String() // "a+"
//
// Operand names are opaque. Any string that is not exactly one of the four
// operator symbols is a valid operand name, including digits, spaces, and
// multi-byte characters.
package token
