package render

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/rpnkit/token"
)

func rpnTokens() []token.Token {
	return []token.Token{
		token.NewOperand("a"),
		token.NewOperand("b"),
		token.NewOperand("c"),
		token.NewOperator(token.Multiply),
		token.NewOperator(token.Add),
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name   string
		tokens []token.Token
		want   string
	}{
		{name: "nil", tokens: nil, want: ""},
		{name: "single operand", tokens: []token.Token{token.NewOperand("a")}, want: "a"},
		{name: "rpn sequence", tokens: rpnTokens(), want: "abc*+"},
		{
			name: "all operators",
			tokens: []token.Token{
				token.NewOperator(token.Add),
				token.NewOperator(token.Subtract),
				token.NewOperator(token.Multiply),
				token.NewOperator(token.Divide),
			},
			want: "+-*/",
		},
		{
			name:   "multi-character operand names",
			tokens: []token.Token{token.NewOperand("x1"), token.NewOperand(" "), token.NewOperand("日")},
			want:   "x1 日",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.tokens); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpaced(t *testing.T) {
	assert.Equal(t, "a b c * +", Spaced(rpnTokens()))
	assert.Equal(t, "", Spaced(nil))
}

func TestFormat_BuiltIns(t *testing.T) {
	out, err := Format(FormatCompact, rpnTokens())
	require.NoError(t, err)
	assert.Equal(t, "abc*+", out)

	out, err = Format(FormatSpaced, rpnTokens())
	require.NoError(t, err)
	assert.Equal(t, "a b c * +", out)

	out, err = Format(FormatJSON, rpnTokens())
	require.NoError(t, err)
	var fromJSON []string
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, []string{"a", "b", "c", "*", "+"}, fromJSON)

	out, err = Format(FormatYAML, rpnTokens())
	require.NoError(t, err)
	var fromYAML []string
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, []string{"a", "b", "c", "*", "+"}, fromYAML)
}

func TestFormat_JSONEmpty(t *testing.T) {
	out, err := Format(FormatJSON, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestFormat_Unknown(t *testing.T) {
	_, err := Format("nope", rpnTokens())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Contains(t, err.Error(), "nope")
}

func TestRegister(t *testing.T) {
	if !IsRegistered("test-upper") {
		Register("test-upper", func(tokens []token.Token) (string, error) {
			return "<" + String(tokens) + ">", nil
		})
	}

	assert.True(t, IsRegistered("test-upper"))
	assert.Contains(t, Available(), "test-upper")

	out, err := Format("test-upper", rpnTokens())
	require.NoError(t, err)
	assert.Equal(t, "<abc*+>", out)

	assert.Panics(t, func() {
		Register("test-upper", func([]token.Token) (string, error) { return "", nil })
	})
}

func TestAvailable_Sorted(t *testing.T) {
	names := Available()
	for _, want := range []string{FormatCompact, FormatJSON, FormatSpaced, FormatYAML} {
		assert.Contains(t, names, want)
	}
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
