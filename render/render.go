package render

import (
	"strings"

	"github.com/randalmurphal/rpnkit/token"
)

// String concatenates the canonical form of every token, in order.
func String(tokens []token.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.String())
	}
	return b.String()
}

// Spaced joins the canonical token forms with single spaces.
func Spaced(tokens []token.Token) string {
	return strings.Join(Strings(tokens), " ")
}

// Strings returns the canonical form of each token.
func Strings(tokens []token.Token) []string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return parts
}
