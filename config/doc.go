// Package config loads DataChain configuration from defaults, an optional
// YAML file, and environment variable overrides, in that order of
// precedence (later wins).
package config
