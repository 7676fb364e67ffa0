package token

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// wireToken is the serialized form of a Token.
type wireToken struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

func (t Token) wire() wireToken {
	return wireToken{Kind: t.kind.String(), Value: t.String()}
}

func (w wireToken) token() (Token, error) {
	switch w.Kind {
	case "operand":
		return NewOperand(w.Value), nil
	case "operator":
		op, ok := ParseOperator(w.Value)
		if !ok {
			return Token{}, fmt.Errorf("unknown operator symbol %q", w.Value)
		}
		return NewOperator(op), nil
	}
	return Token{}, fmt.Errorf("unknown token kind %q", w.Kind)
}

// MarshalJSON encodes the token as {"kind": ..., "value": ...}.
func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.wire())
}

// UnmarshalJSON decodes a token written by MarshalJSON.
func (t *Token) UnmarshalJSON(data []byte) error {
	var w wireToken
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	tok, err := w.token()
	if err != nil {
		return fmt.Errorf("unmarshal token: %w", err)
	}
	*t = tok
	return nil
}

// MarshalYAML encodes the token as a kind/value mapping.
func (t Token) MarshalYAML() (any, error) {
	return t.wire(), nil
}

// UnmarshalYAML decodes a token written by MarshalYAML.
func (t *Token) UnmarshalYAML(node *yaml.Node) error {
	var w wireToken
	if err := node.Decode(&w); err != nil {
		return err
	}
	tok, err := w.token()
	if err != nil {
		return fmt.Errorf("unmarshal token: %w", err)
	}
	*t = tok
	return nil
}
