package notation

import (
	"fmt"
	"log/slog"

	"github.com/randalmurphal/rpnkit/lexer"
	"github.com/randalmurphal/rpnkit/render"
	"github.com/randalmurphal/rpnkit/rpn"
	"github.com/randalmurphal/rpnkit/token"
)

// Result holds every stage of one conversion.
type Result struct {
	// Input is the raw infix expression.
	Input string `json:"input" yaml:"input"`

	// Parts is the input split into single characters.
	Parts []string `json:"parts" yaml:"parts"`

	// Tokens is Parts classified into operands and operators.
	Tokens []token.Token `json:"tokens" yaml:"tokens"`

	// RPN is Tokens reordered into postfix order.
	RPN []token.Token `json:"rpn" yaml:"rpn"`

	// Output is RPN rendered with the converter's format.
	Output string `json:"output" yaml:"output"`

	// Format names the format used for Output.
	Format string `json:"format" yaml:"format"`

	Operands  int `json:"operands" yaml:"operands"`
	Operators int `json:"operators" yaml:"operators"`
}

// Converter runs the pipeline and renders with a fixed format.
type Converter struct {
	format    string
	formatter render.Formatter
}

// NewConverter creates a converter for the named output format.
// An empty name selects render.DefaultFormat.
func NewConverter(format string) (*Converter, error) {
	if format == "" {
		format = render.DefaultFormat
	}
	f, err := render.Lookup(format)
	if err != nil {
		return nil, err
	}
	return &Converter{format: format, formatter: f}, nil
}

// Format returns the output format name.
func (c *Converter) Format() string {
	return c.format
}

// Convert runs every stage on input.
func (c *Converter) Convert(input string) (Result, error) {
	parts := lexer.Split(input)
	tokens := lexer.Classify(parts)
	postfix := rpn.Convert(tokens)

	out, err := c.formatter(postfix)
	if err != nil {
		return Result{}, fmt.Errorf("render %s: %w", c.format, err)
	}

	operands, operators := rpn.Counts(postfix)
	slog.Debug("converted expression",
		slog.String("input", input),
		slog.String("output", out),
		slog.String("format", c.format),
		slog.Int("operands", operands),
		slog.Int("operators", operators))

	return Result{
		Input:     input,
		Parts:     parts,
		Tokens:    tokens,
		RPN:       postfix,
		Output:    out,
		Format:    c.format,
		Operands:  operands,
		Operators: operators,
	}, nil
}

// ConvertAll converts each input in order, stopping at the first error.
func (c *Converter) ConvertAll(inputs []string) ([]Result, error) {
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		res, err := c.Convert(in)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// compact backs the package-level functions. Its formatter never fails.
var compact = &Converter{
	format:    render.FormatCompact,
	formatter: renderCompact,
}

func renderCompact(tokens []token.Token) (string, error) {
	return render.String(tokens), nil
}

// Convert runs the pipeline with the compact format.
func Convert(input string) Result {
	res, _ := compact.Convert(input)
	return res
}

// ConvertAll runs Convert on each input.
func ConvertAll(inputs []string) []Result {
	results, _ := compact.ConvertAll(inputs)
	return results
}
