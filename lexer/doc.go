// Package lexer turns raw infix input into classified tokens.
//
// Tokenizing happens in two steps. Split breaks the input into one string
// per character, keeping every character including whitespace. Classify
// then maps each string to a token: the exact symbols "+", "-", "*" and "/"
// become operators and everything else becomes an operand.
//
//	parts := lexer.Split("a+b")     // ["a", "+", "b"]
//	toks := lexer.Classify(parts)   // [a, +, b]
//	toks = lexer.Tokenize("a + b")  // [a, " ", +, " ", b]
//
// Neither step can fail.
package lexer
