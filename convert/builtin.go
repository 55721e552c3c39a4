package convert

import (
	"go.uber.org/zap"

	"github.com/xlab-open/datachain/registry"
)

// Builtin returns a registry named "converters" pre-populated with the
// built-in converters, each registered decorator-style with a description,
// format tags, and media-type metadata. Extra registry options (for example
// registry.WithInstrumentation) are passed through.
func Builtin(logger *zap.Logger, opts ...registry.Option) *registry.Registry {
	return BuiltinNamed("converters", logger, opts...)
}

// BuiltinNamed is Builtin with an explicit registry name.
func BuiltinNamed(name string, logger *zap.Logger, opts ...registry.Option) *registry.Registry {
	r := registry.New(name,
		append([]registry.Option{registry.WithLogger(logger)}, opts...)...)

	r.Decorator("csv",
		registry.WithDescription("comma separated values to canonical documents"),
		registry.WithTags("format", "csv"),
		registry.WithMetadata(map[string]any{"media_type": "text/csv"}),
	)(NewCSVConverter)

	r.Decorator("json",
		registry.WithDescription("JSON to canonical documents"),
		registry.WithTags("format", "json"),
		registry.WithMetadata(map[string]any{"media_type": "application/json"}),
	)(NewJSONConverter)

	r.Decorator("yaml",
		registry.WithDescription("YAML to canonical documents"),
		registry.WithTags("format", "yaml"),
		registry.WithMetadata(map[string]any{"media_type": "application/yaml"}),
	)(NewYAMLConverter)

	r.Decorator("text",
		registry.WithDescription("plain text to canonical documents"),
		registry.WithTags("format", "text"),
		registry.WithMetadata(map[string]any{"media_type": "text/plain"}),
	)(NewTextConverter)

	return r
}
