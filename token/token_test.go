package token

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOperator_Priority(t *testing.T) {
	tests := []struct {
		op   Operator
		want Priority
	}{
		{Add, AddPriority},
		{Subtract, AddPriority},
		{Multiply, MultPriority},
		{Divide, MultPriority},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := tt.op.Priority(); got != tt.want {
				t.Errorf("Priority() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOperator_PriorityOrdering(t *testing.T) {
	assert.Equal(t, Add.Priority(), Subtract.Priority())
	assert.Equal(t, Multiply.Priority(), Divide.Priority())
	assert.Greater(t, Multiply.Priority(), Add.Priority())
	assert.Greater(t, Divide.Priority(), Subtract.Priority())
}

func TestOperator_Symbol(t *testing.T) {
	assert.Equal(t, "+", Add.Symbol())
	assert.Equal(t, "-", Subtract.Symbol())
	assert.Equal(t, "*", Multiply.Symbol())
	assert.Equal(t, "/", Divide.Symbol())
	assert.Equal(t, "", Operator(42).Symbol())
	assert.Equal(t, "Operator(42)", Operator(42).String())
	assert.False(t, Operator(42).Valid())
}

func TestParseOperator(t *testing.T) {
	for _, op := range Operators() {
		got, ok := ParseOperator(op.Symbol())
		require.True(t, ok, "symbol %q", op.Symbol())
		assert.Equal(t, op, got)
	}

	for _, s := range []string{"", "a", "++", " +", "x", "^", "("} {
		_, ok := ParseOperator(s)
		assert.False(t, ok, "ParseOperator(%q) should fail", s)
	}
}

func TestOperators_ReturnsCopy(t *testing.T) {
	ops := Operators()
	ops[0] = Divide
	assert.Equal(t, Add, Operators()[0])
}

func TestToken_Variants(t *testing.T) {
	a := NewOperand("a")
	assert.True(t, a.IsOperand())
	assert.False(t, a.IsOperator())
	assert.Equal(t, OperandKind, a.Kind())
	assert.Equal(t, "a", a.Name())
	assert.Equal(t, "a", a.String())
	_, ok := a.Operator()
	assert.False(t, ok)

	mul := NewOperator(Multiply)
	assert.True(t, mul.IsOperator())
	assert.Equal(t, OperatorKind, mul.Kind())
	assert.Equal(t, "", mul.Name())
	assert.Equal(t, "*", mul.String())
	op, ok := mul.Operator()
	assert.True(t, ok)
	assert.Equal(t, Multiply, op)
}

func TestToken_OperandIsOpaque(t *testing.T) {
	for _, name := range []string{"", " ", "7", "é", "日", "+"} {
		tok := NewOperand(name)
		assert.True(t, tok.IsOperand())
		assert.Equal(t, name, tok.String())
	}
}

func TestToken_ZeroValueIsOperand(t *testing.T) {
	var tok Token
	assert.True(t, tok.IsOperand())
	assert.Equal(t, "", tok.String())
	assert.Equal(t, "operand", tok.Kind().String())
}

func TestToken_JSON(t *testing.T) {
	in := []Token{NewOperand("a"), NewOperator(Divide), NewOperand("+")}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"kind":"operand","value":"a"},
		{"kind":"operator","value":"/"},
		{"kind":"operand","value":"+"}
	]`, string(data))

	var out []Token
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestToken_YAML(t *testing.T) {
	in := []Token{NewOperand("a"), NewOperator(Add), NewOperand("+"), NewOperator(Multiply)}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out []Token
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestToken_UnmarshalYAML_Invalid(t *testing.T) {
	var tok Token
	assert.Error(t, yaml.Unmarshal([]byte("kind: operator\nvalue: \"^\"\n"), &tok))
	assert.Error(t, yaml.Unmarshal([]byte("kind: paren\nvalue: \"(\"\n"), &tok))
	assert.Error(t, yaml.Unmarshal([]byte("[a, b]\n"), &tok))
}

func TestToken_UnmarshalJSON_Invalid(t *testing.T) {
	var tok Token
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"operator","value":"^"}`), &tok))
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"paren","value":"("}`), &tok))
}

func TestOperator_Text(t *testing.T) {
	data, err := Subtract.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-", string(data))

	var op Operator
	require.NoError(t, op.UnmarshalText([]byte("*")))
	assert.Equal(t, Multiply, op)

	assert.Error(t, op.UnmarshalText([]byte("%")))
	_, err = Operator(9).MarshalText()
	assert.Error(t, err)
}
