package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/alaltitov/esphome-i18n/pkg/flatten"
)

// LoadSources reads and flattens one locale document per path. The locale
// identifier is the file's base name without extension and must parse as a
// BCP 47 tag. Supported formats by extension: .yaml/.yml, .json/.jsonc
// (comments and trailing commas tolerated), .toml.
//
// Documents are parsed concurrently; the first failure aborts the load.
func LoadSources(fsys fs.FS, paths []string) (map[string]map[string]string, error) {
	if len(paths) == 0 {
		return nil, ErrNoSources
	}

	type loaded struct {
		locale string
		flat   map[string]string
	}

	results := make([]loaded, len(paths))
	var g errgroup.Group

	for i, p := range paths {
		g.Go(func() error {
			locale, err := localeFromPath(p)
			if err != nil {
				return err
			}

			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return fmt.Errorf("catalog: reading source %q: %w", p, err)
			}

			tree, err := parseSource(p, data)
			if err != nil {
				return err
			}

			results[i] = loaded{locale: locale, flat: flatten.Flatten(tree)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sources := make(map[string]map[string]string, len(results))
	for _, r := range results {
		if _, exists := sources[r.locale]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocale, r.locale)
		}
		sources[r.locale] = r.flat
	}
	return sources, nil
}

// localeFromPath derives the locale identifier from the document's base
// name, e.g. "locales/de-DE.yaml" yields "de-DE".
func localeFromPath(p string) (string, error) {
	base := path.Base(p)
	locale := strings.TrimSuffix(base, path.Ext(base))
	if locale == "" {
		return "", fmt.Errorf("%w: %q has no base name", ErrInvalidLocale, p)
	}
	if _, err := language.Parse(locale); err != nil {
		return "", fmt.Errorf("%w: %q (from %q): %v", ErrInvalidLocale, locale, p, err)
	}
	return locale, nil
}

func parseSource(p string, data []byte) (map[string]any, error) {
	var tree map[string]any

	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("catalog: parsing %q: %w", p, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &tree); err != nil {
			return nil, fmt.Errorf("catalog: parsing %q: %w", p, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("catalog: parsing %q: %w", p, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	// An empty document is a valid (if useless) locale.
	if tree == nil {
		tree = map[string]any{}
	}
	return tree, nil
}
