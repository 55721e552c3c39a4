// Package convert provides pluggable format converters built on top of the
// registry: each converter turns raw bytes of one input format (CSV, JSON,
// YAML, plain text) into a canonical JSON array of Documents.
//
// Built-in converters are registered with tags and descriptions so they can
// be discovered through the registry's query surface:
//
//	reg := convert.Builtin(logger)
//	reg.ListByTag("format")          // => [csv json yaml text]
//	c, err := convert.Create(reg, "csv", convert.WithDelimiter(';'))
//	out, err := c.Convert(ctx, raw)
package convert
