package catalog

import "sort"

// Catalog is the immutable result of a successful compilation: the sorted
// key universe, one value table per locale aligned index-for-index with the
// universe, and the runtime metadata (default locale, buffer capacity,
// allocation-region preference).
//
// A Catalog is never mutated after Compile returns; it may be shared across
// any number of readers without synchronization.
type Catalog struct {
	universe       []string
	index          map[string]int
	tables         map[string][]string
	locales        []string
	defaultLocale  string
	bufferSize     int
	preferExternal bool
}

// Precompiled reconstructs a Catalog from generated artifacts. The input is
// trusted to satisfy the compile-time invariants already enforced by
// Compile (sorted duplicate-free universe, tables aligned 1:1 with it,
// default locale present); use Compile for anything that has not been
// through the pipeline.
func Precompiled(universe []string, tables map[string][]string, defaultLocale string, bufferSize int, preferExternal bool) *Catalog {
	index := make(map[string]int, len(universe))
	for i, key := range universe {
		index[key] = i
	}
	locales := make([]string, 0, len(tables))
	for loc := range tables {
		locales = append(locales, loc)
	}
	sort.Strings(locales)

	return &Catalog{
		universe:       universe,
		index:          index,
		tables:         tables,
		locales:        locales,
		defaultLocale:  defaultLocale,
		bufferSize:     bufferSize,
		preferExternal: preferExternal,
	}
}

// Keys returns the key universe in its frozen sorted order. The returned
// slice is shared; callers must not modify it.
func (c *Catalog) Keys() []string {
	return c.universe
}

// KeyCount reports the number of distinct translation keys.
func (c *Catalog) KeyCount() int {
	return len(c.universe)
}

// Index resolves a key to its position in the universe.
func (c *Catalog) Index(key string) (int, bool) {
	i, ok := c.index[key]
	return i, ok
}

// Locales returns the compiled locale identifiers in sorted order. The
// returned slice is shared; callers must not modify it.
func (c *Catalog) Locales() []string {
	return c.locales
}

// DefaultLocale returns the compile-time default locale identifier.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Table returns the value table for a locale, aligned with Keys.
func (c *Catalog) Table(locale string) ([]string, bool) {
	t, ok := c.tables[locale]
	return t, ok
}

// BufferSize returns the configured runtime buffer capacity in bytes.
func (c *Catalog) BufferSize() int {
	return c.bufferSize
}

// PreferExternal reports whether the runtime buffer should be acquired
// from the external allocation region first.
func (c *Catalog) PreferExternal() bool {
	return c.preferExternal
}
