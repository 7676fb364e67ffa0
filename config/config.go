package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/rpnkit/render"
)

// Config holds settings for converting and printing expressions.
type Config struct {
	// Format is the output format name registered in package render.
	// Default: "compact".
	Format string `json:"format" yaml:"format" toml:"format" jsonschema:"description=Output format name (compact/spaced/json/yaml or a registered custom format)"`

	// Stages prints every pipeline stage instead of only the output.
	Stages bool `json:"stages" yaml:"stages" toml:"stages"`

	// LogLevel is one of debug, info, warn, error.
	// Default: "warn".
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`

	// CommentPrefix marks lines to skip in expression files.
	// Empty disables comment handling. Default: "#".
	CommentPrefix string `json:"comment_prefix" yaml:"comment_prefix" toml:"comment_prefix"`

	// PollInterval is used when watching a file without filesystem
	// notifications. Default: 100ms.
	PollInterval Duration `json:"poll_interval" yaml:"poll_interval" toml:"poll_interval"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Format:        render.DefaultFormat,
		LogLevel:      "warn",
		CommentPrefix: "#",
		PollInterval:  Duration(100 * time.Millisecond),
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use the RPNKIT_ prefix and take precedence over
// existing values. Unparseable values are ignored.
//
// Supported variables:
//   - RPNKIT_FORMAT: Output format
//   - RPNKIT_STAGES: Print all stages (bool)
//   - RPNKIT_LOG_LEVEL: Log level
//   - RPNKIT_COMMENT_PREFIX: Comment prefix for expression files
//   - RPNKIT_POLL_INTERVAL: Poll interval (e.g., "250ms")
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("RPNKIT_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("RPNKIT_STAGES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Stages = b
		}
	}
	if v := os.Getenv("RPNKIT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("RPNKIT_COMMENT_PREFIX"); ok {
		c.CommentPrefix = v
	}
	if v := os.Getenv("RPNKIT_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.PollInterval = Duration(d)
		}
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// LoadFile reads a config file on top of DefaultConfig.
// The decoder is chosen by extension: .yaml/.yml, .toml, or .json.
// Unknown keys are rejected.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// A document with no content decodes as io.EOF; keep the defaults.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("parse toml config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("parse toml config %s: unknown key %q", path, undecoded[0].String())
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse json config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	slog.Debug("loaded config", slog.String("path", path), slog.String("format", cfg.Format))
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !render.IsRegistered(c.Format) {
		return fmt.Errorf("%w: unknown format %q (available: %s)",
			ErrInvalidConfig, c.Format, strings.Join(render.Available(), ", "))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("%w: poll_interval must be >= 0, got %v", ErrInvalidConfig, time.Duration(c.PollInterval))
	}
	return nil
}

// WithFormat returns a copy of the config with the specified format.
func (c Config) WithFormat(format string) Config {
	c.Format = format
	return c
}

// WithStages returns a copy of the config with stage printing set.
func (c Config) WithStages(stages bool) Config {
	c.Stages = stages
	return c
}

// WithLogLevel returns a copy of the config with the specified log level.
func (c Config) WithLogLevel(level string) Config {
	c.LogLevel = level
	return c
}

// Level returns LogLevel as a slog.Level, falling back to warn.
func (c Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// Interval returns PollInterval as a time.Duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.PollInterval)
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
}

// Schema returns the JSON Schema for config files.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect(&Config{})
	s.Title = "rpnkit configuration"
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
