// Package render turns token sequences back into text.
//
// String is the canonical renderer: it concatenates each token's string
// form with no separator.
//
//	render.String(rpn.Convert(lexer.Tokenize("a+b*c"))) // "abc*+"
//
// # Formats
//
// Additional output formats are looked up by name:
//
//   - compact: same as String ("abc*+")
//   - spaced: tokens separated by single spaces ("a b c * +")
//   - json: a JSON array of token strings (["a","b","c","*","+"])
//   - yaml: a YAML sequence of token strings
//
// Custom formats can be registered:
//
//	render.Register("csv", func(toks []token.Token) (string, error) {
//	    ...
//	})
//	out, err := render.Format("csv", toks)
package render
