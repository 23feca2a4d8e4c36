package catalog

import (
	"fmt"
	"io/fs"
	"sort"
)

// Compile builds a Catalog from flattened per-locale sources and a
// validated configuration. The key universe is the sorted union of every
// locale's keys; every locale must cover the full universe or compilation
// fails with an aggregated MissingKeysError. The config's Sources field is
// not consulted here; pass the already-loaded maps (see LoadSources and
// CompileFS).
func Compile(sources map[string]map[string]string, cfg Config) (*Catalog, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocale
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	if cfg.BufferSize < MinBufferSize || cfg.BufferSize > MaxBufferSize {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrBufferSizeRange, cfg.BufferSize, MinBufferSize, MaxBufferSize)
	}

	locales := make([]string, 0, len(sources))
	for loc := range sources {
		locales = append(locales, loc)
	}
	sort.Strings(locales)

	if _, ok := sources[cfg.DefaultLocale]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefaultLocale, cfg.DefaultLocale)
	}

	universe := buildUniverse(sources)

	if err := validateCompleteness(universe, sources, locales); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(universe))
	for i, key := range universe {
		index[key] = i
	}

	tables := make(map[string][]string, len(locales))
	for _, loc := range locales {
		table := make([]string, len(universe))
		for i, key := range universe {
			table[i] = sources[loc][key]
		}
		tables[loc] = table
	}

	return &Catalog{
		universe:       universe,
		index:          index,
		tables:         tables,
		locales:        locales,
		defaultLocale:  cfg.DefaultLocale,
		bufferSize:     cfg.BufferSize,
		preferExternal: cfg.UsePSRAM,
	}, nil
}

// CompileFS validates cfg, loads its source documents from fsys, and
// compiles them. This is the entry point the CLI uses.
func CompileFS(fsys fs.FS, cfg Config) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sources, err := LoadSources(fsys, cfg.Sources)
	if err != nil {
		return nil, err
	}
	return Compile(sources, cfg)
}

// buildUniverse returns the sorted, duplicate-free union of all locales'
// key sets. The result is frozen into the Catalog; later stages never
// alter it.
func buildUniverse(sources map[string]map[string]string) []string {
	seen := make(map[string]struct{})
	for _, flat := range sources {
		for key := range flat {
			seen[key] = struct{}{}
		}
	}
	universe := make([]string, 0, len(seen))
	for key := range seen {
		universe = append(universe, key)
	}
	sort.Strings(universe)
	return universe
}

// validateCompleteness collects every (locale, missing key) violation
// before failing, so a single fix-and-recompile cycle resolves everything
// reported.
func validateCompleteness(universe []string, sources map[string]map[string]string, locales []string) error {
	missing := make(map[string][]string)
	for _, loc := range locales {
		flat := sources[loc]
		for _, key := range universe {
			if _, ok := flat[key]; !ok {
				missing[loc] = append(missing[loc], key)
			}
		}
	}
	if len(missing) > 0 {
		return &MissingKeysError{Missing: missing}
	}
	return nil
}
