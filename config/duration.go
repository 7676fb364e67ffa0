package config

import (
	"time"

	"github.com/invopop/jsonschema"
)

// Duration is a time.Duration written as a string such as "250ms" in
// config files.
type Duration time.Duration

// MarshalText encodes the duration in time.Duration.String form.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// JSONSchema describes Duration as a duration string.
func (Duration) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: "Go duration string",
		Examples:    []any{"100ms", "2s"},
	}
}
