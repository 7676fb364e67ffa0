package lexer

import (
	"unicode/utf8"

	"github.com/randalmurphal/rpnkit/token"
)

// Split returns one string per character of input, in order.
// Characters are Unicode code points; a byte that is not valid UTF-8 is
// returned on its own, so joining the result always reproduces input.
func Split(input string) []string {
	parts := make([]string, 0, utf8.RuneCountInString(input))
	for i := 0; i < len(input); {
		_, size := utf8.DecodeRuneInString(input[i:])
		parts = append(parts, input[i:i+size])
		i += size
	}
	return parts
}

// Classify maps each string to a token. Exact operator symbols become
// operator tokens; any other string becomes an operand carrying it verbatim.
func Classify(parts []string) []token.Token {
	tokens := make([]token.Token, 0, len(parts))
	for _, s := range parts {
		if op, ok := token.ParseOperator(s); ok {
			tokens = append(tokens, token.NewOperator(op))
			continue
		}
		tokens = append(tokens, token.NewOperand(s))
	}
	return tokens
}

// Tokenize splits and classifies input in one call.
func Tokenize(input string) []token.Token {
	return Classify(Split(input))
}
