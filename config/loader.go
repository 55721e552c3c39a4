package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader builds a Config from defaults, an optional YAML file, and
// environment variable overrides.
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("datachain.yaml").
//	    WithEnvPrefix("DATACHAIN").
//	    Load()
type Loader struct {
	configPath string
	envPrefix  string
}

// NewLoader creates a Loader with no file and the DATACHAIN env prefix.
func NewLoader() *Loader {
	return &Loader{envPrefix: "DATACHAIN"}
}

// WithConfigPath sets the YAML file to load. An empty path skips the file
// stage; a non-empty path that does not exist is an error.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithEnvPrefix sets the prefix for environment overrides, e.g.
// DATACHAIN_LOG_LEVEL for Log.Level under the prefix DATACHAIN.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// Load resolves the configuration: defaults, then the YAML file, then
// environment overrides, then validation.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	if l.configPath != "" {
		data, err := os.ReadFile(l.configPath)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", l.configPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", l.configPath, err)
		}
	}

	if err := applyEnv(reflect.ValueOf(cfg).Elem(), l.envPrefix); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv walks the struct and overrides any field whose env-tagged
// variable is set. Nested structs extend the prefix with an underscore.
func applyEnv(v reflect.Value, prefix string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("env")
		if tag == "" {
			continue
		}
		key := prefix + "_" + tag
		field := v.Field(i)

		if field.Kind() == reflect.Struct {
			if err := applyEnv(field, key); err != nil {
				return err
			}
			continue
		}

		raw, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		if err := setField(field, raw); err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
	}
	return nil
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("parsing bool %q: %w", raw, err)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("parsing int %q: %w", raw, err)
		}
		field.SetInt(n)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}
