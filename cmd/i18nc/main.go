// Command i18nc compiles per-locale translation sources into generated Go
// artifacts: an API file exposing the runtime operations and a tables file
// carrying the key universe and the per-locale string tables.
//
// Usage:
//
//	i18nc --config i18n.yaml --out internal/translations
//
// The project configuration names the locale documents, the default
// locale, the runtime buffer size, and the allocation-region preference;
// source paths are resolved relative to the configuration file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/alaltitov/esphome-i18n/pkg/catalog"
	"github.com/alaltitov/esphome-i18n/pkg/codegen"
	"github.com/alaltitov/esphome-i18n/pkg/logger"
)

const version = "0.3.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("i18nc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.StringP("config", "c", "i18n.yaml", "project configuration file")
	outDir := fs.StringP("out", "o", "translations", "output directory for generated artifacts")
	pkgName := fs.String("package", codegen.DefaultPackage, "package name of the generated artifacts")
	check := fs.Bool("check", false, "validate sources and report, emit nothing")
	verbose := fs.BoolP("verbose", "v", false, "enable debug logging")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "i18nc %s\n", version)
		return 0
	}

	log := logger.New(stderr, *verbose)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	// Source paths resolve relative to the configuration file, so the
	// project can be compiled from any working directory.
	sourceRoot := filepath.Dir(*configPath)
	log.Debug("compiling catalog",
		"config", *configPath,
		"sources", len(cfg.Sources),
		"default_locale", cfg.DefaultLocale,
		"buffer_size", cfg.BufferSize,
		"use_psram", cfg.UsePSRAM,
	)

	cat, err := catalog.CompileFS(os.DirFS(sourceRoot), cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *check {
		log.Info("catalog is complete",
			"locales", len(cat.Locales()),
			"keys", cat.KeyCount(),
		)
		return 0
	}

	changed, err := codegen.Generator{PackageName: *pkgName}.Write(*outDir, cat)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	log.Info("translations compiled",
		"locales", len(cat.Locales()),
		"keys", cat.KeyCount(),
		"out", *outDir,
		"changed", changed,
	)
	return 0
}

func loadConfig(path string) (catalog.Config, error) {
	var cfg catalog.Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
