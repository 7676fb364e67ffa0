// Package config holds settings for the rpnkit command and library helpers.
//
// Configuration is layered. DefaultConfig supplies defaults, LoadFile reads
// a YAML, TOML, or JSON file on top of them, and LoadFromEnv applies
// RPNKIT_* environment variables last:
//
//	cfg, err := config.LoadFile("rpnkit.yaml")
//	cfg.LoadFromEnv()
//	if err := cfg.Validate(); err != nil {
//	    ...
//	}
//
// Schema returns a JSON Schema describing the file format.
package config
