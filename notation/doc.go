// Package notation runs the full infix-to-RPN pipeline and records each
// stage along the way.
//
//	res := notation.Convert("a+b*c")
//	res.Parts  // ["a", "+", "b", "*", "c"]
//	res.RPN    // [a, b, c, *, +]
//	res.Output // "abc*+"
//
// A Converter renders the output with a named format from package render:
//
//	c, err := notation.NewConverter(render.FormatSpaced)
//	res, err := c.Convert("a+b*c") // res.Output == "a b c * +"
package notation
