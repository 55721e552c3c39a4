package config

import "fmt"

// Config is the complete DataChain configuration.
type Config struct {
	// Log configures the zap logger.
	Log LogConfig `yaml:"log" env:"LOG"`
	// Metrics configures the Prometheus collector.
	Metrics MetricsConfig `yaml:"metrics" env:"METRICS"`
	// Registry configures the converter registry instance.
	Registry RegistryConfig `yaml:"registry" env:"REGISTRY"`
	// Converters configures the built-in converters.
	Converters ConvertersConfig `yaml:"converters" env:"CONVERTERS"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" env:"LEVEL"`
	// Format is json or console.
	Format string `yaml:"format" env:"FORMAT"`
}

// MetricsConfig configures metrics collection.
type MetricsConfig struct {
	// Enabled wires a Prometheus collector into the registry.
	Enabled bool `yaml:"enabled" env:"ENABLED"`
	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace" env:"NAMESPACE"`
}

// RegistryConfig configures the registry instance.
type RegistryConfig struct {
	// Name is the registry's identifying name in logs and metrics.
	Name string `yaml:"name" env:"NAME"`
}

// ConvertersConfig configures the built-in converters.
type ConvertersConfig struct {
	CSV  CSVConfig  `yaml:"csv" env:"CSV"`
	Text TextConfig `yaml:"text" env:"TEXT"`
}

// CSVConfig configures the CSV converter.
type CSVConfig struct {
	// Delimiter is the single-character field separator.
	Delimiter string `yaml:"delimiter" env:"DELIMITER"`
	// NoHeader treats the first row as data.
	NoHeader bool `yaml:"no_header" env:"NO_HEADER"`
}

// TextConfig configures the text converter.
type TextConfig struct {
	// PerLine emits one document per line instead of per paragraph.
	PerLine bool `yaml:"per_line" env:"PER_LINE"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "datachain",
		},
		Registry: RegistryConfig{
			Name: "converters",
		},
		Converters: ConvertersConfig{
			CSV: CSVConfig{
				Delimiter: ",",
			},
		},
	}
}

// Validate checks the configuration for values the rest of the system
// cannot work with.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: invalid log format %q", c.Log.Format)
	}
	if len([]rune(c.Converters.CSV.Delimiter)) != 1 {
		return fmt.Errorf("config: csv delimiter must be a single character, got %q", c.Converters.CSV.Delimiter)
	}
	return nil
}
