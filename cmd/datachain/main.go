// Command datachain is the DataChain CLI: it exposes the converter registry
// for discovery (list, search, tag, info) and runs conversions from the
// command line.
//
// Usage:
//
//	datachain list                          # all registered converters
//	datachain search <query>                # case-insensitive metadata search
//	datachain tag <tag>                     # converters carrying a tag
//	datachain info <name>                   # full registration record
//	datachain convert <name> <input> [out]  # run a conversion
//	datachain version                       # build information
//
// Every subcommand accepts --config pointing at a YAML configuration file;
// DATACHAIN_* environment variables override it.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xlab-open/datachain/config"
	"github.com/xlab-open/datachain/convert"
	"github.com/xlab-open/datachain/internal/metrics"
	"github.com/xlab-open/datachain/registry"
)

// Build information, injected via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(os.Args[2:])
	case "search":
		err = runSearch(os.Args[2:])
	case "tag":
		err = runTag(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	case "version":
		printVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup parses common flags, loads configuration, and builds the logger and
// the converter registry. It returns the positional arguments left over
// after flag parsing.
func setup(name string, args []string, positional int) (*config.Config, *registry.Registry, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML configuration file")
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	rest := fs.Args()
	if len(rest) < positional {
		return nil, nil, nil, fmt.Errorf("%s: expected %d argument(s), got %d", name, positional, len(rest))
	}

	cfg, err := config.NewLoader().WithConfigPath(*configPath).Load()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := buildLogger(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}

	var opts []registry.Option
	if cfg.Metrics.Enabled {
		opts = append(opts, registry.WithInstrumentation(
			metrics.NewCollector(cfg.Metrics.Namespace, logger)))
	}
	reg := convert.BuiltinNamed(cfg.Registry.Name, logger, opts...)
	return cfg, reg, rest, nil
}

func buildLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func runList(args []string) error {
	_, reg, _, err := setup("list", args, 0)
	if err != nil {
		return err
	}
	printNames(reg, reg.ListAll())
	return nil
}

func runSearch(args []string) error {
	_, reg, rest, err := setup("search", args, 1)
	if err != nil {
		return err
	}
	printNames(reg, reg.Search(rest[0]))
	return nil
}

func runTag(args []string) error {
	_, reg, rest, err := setup("tag", args, 1)
	if err != nil {
		return err
	}
	printNames(reg, reg.ListByTag(rest[0]))
	return nil
}

func runInfo(args []string) error {
	_, reg, rest, err := setup("info", args, 1)
	if err != nil {
		return err
	}
	rec, err := reg.GetRecord(rest[0])
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runConvert(args []string) error {
	cfg, reg, rest, err := setup("convert", args, 2)
	if err != nil {
		return err
	}
	name, inputPath := rest[0], rest[1]

	c, err := convert.Create(reg, name, converterArgs(cfg, name)...)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	out, err := c.Convert(context.Background(), data)
	if err != nil {
		return err
	}

	if len(rest) >= 3 {
		return os.WriteFile(rest[2], out, 0o644)
	}
	fmt.Println(string(out))
	return nil
}

// converterArgs turns the configuration for a named built-in converter into
// constructor arguments forwarded through the registry.
func converterArgs(cfg *config.Config, name string) []any {
	var args []any
	switch name {
	case "csv":
		if d := []rune(cfg.Converters.CSV.Delimiter); len(d) == 1 && d[0] != ',' {
			args = append(args, convert.WithDelimiter(d[0]))
		}
		if cfg.Converters.CSV.NoHeader {
			args = append(args, convert.WithoutHeader())
		}
	case "text":
		if cfg.Converters.Text.PerLine {
			args = append(args, convert.WithLineDocuments())
		}
	}
	return args
}

func printNames(reg *registry.Registry, names []string) {
	for _, name := range names {
		rec, err := reg.GetRecord(name)
		if err != nil {
			continue
		}
		line := name
		if rec.Description != "" {
			line += "  -  " + rec.Description
		}
		if len(rec.Tags) > 0 {
			line += "  [" + strings.Join(rec.Tags, ", ") + "]"
		}
		fmt.Println(line)
	}
}

func printVersion() {
	fmt.Printf("datachain %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
}

func printUsage() {
	fmt.Println(`datachain - multi-modal data transformation CLI

Usage:
  datachain list                          List registered converters
  datachain search <query>                Search converters by name, description, or tags
  datachain tag <tag>                     List converters carrying a tag
  datachain info <name>                   Show a converter's registration record
  datachain convert <name> <input> [out]  Convert a file (stdout if no output path)
  datachain version                       Show build information
  datachain help                          Show this help

Flags (all subcommands):
  --config <path>   YAML configuration file (DATACHAIN_* env vars override)`)
}
