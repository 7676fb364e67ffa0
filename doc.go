// Package rpnkit converts infix arithmetic expressions into Reverse Polish
// Notation.
//
// Each subpackage handles one stage and can be used on its own:
//
//   - token: operands, operators, and operator priorities
//   - lexer: split input into characters and classify them
//   - rpn: reorder tokens into postfix order (shunting-yard)
//   - render: turn tokens back into text, with named output formats
//   - notation: run every stage and keep the intermediate results
//   - config: settings from defaults, YAML/TOML/JSON files, and environment
//   - batch: read and tail files of expressions
//
// # Quick Start
//
//	import "github.com/randalmurphal/rpnkit/notation"
//	res := notation.Convert("a+b*c")
//	fmt.Println(res.Output) // abc*+
//
// Stage by stage:
//
//	toks := lexer.Tokenize("a-b-c")
//	postfix := rpn.Convert(toks)
//	fmt.Println(render.String(postfix)) // ab-c-
//
// Operands are single characters and the operators are + - * /.
// Parentheses are not supported.
package rpnkit
