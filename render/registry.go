package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/rpnkit/token"
)

// Formatter renders a token sequence.
type Formatter func(tokens []token.Token) (string, error)

// Built-in format names.
const (
	FormatCompact = "compact"
	FormatSpaced  = "spaced"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
)

// DefaultFormat is used when no format is configured.
const DefaultFormat = FormatCompact

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Formatter)
)

func init() {
	Register(FormatCompact, func(tokens []token.Token) (string, error) {
		return String(tokens), nil
	})
	Register(FormatSpaced, func(tokens []token.Token) (string, error) {
		return Spaced(tokens), nil
	})
	Register(FormatJSON, formatJSON)
	Register(FormatYAML, formatYAML)
}

// Register adds a named formatter.
// Panics if a formatter with the same name is already registered.
func Register(name string, f Formatter) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("format %q already registered", name))
	}
	registry[name] = f
}

// Lookup returns the formatter registered under name.
// Returns ErrUnknownFormat if there is none.
func Lookup(name string) (Formatter, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	return f, nil
}

// Format renders tokens with the named formatter.
func Format(name string, tokens []token.Token) (string, error) {
	f, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return f(tokens)
}

// Available returns the registered format names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a format name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

func formatJSON(tokens []token.Token) (string, error) {
	data, err := json.Marshal(Strings(tokens))
	if err != nil {
		return "", fmt.Errorf("marshal json: %w", err)
	}
	return string(data), nil
}

func formatYAML(tokens []token.Token) (string, error) {
	data, err := yaml.Marshal(Strings(tokens))
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
