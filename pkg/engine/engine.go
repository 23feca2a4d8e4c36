package engine

import (
	"github.com/alaltitov/esphome-i18n/pkg/catalog"
)

// Engine holds the mutable runtime state for translation lookups: the
// active locale and the shared translation buffer. The compiled catalog it
// reads is immutable and shared.
type Engine struct {
	cat *catalog.Catalog

	active string

	// preferred is consulted first when the catalog prefers the external
	// region; fallback is always available.
	preferred Region
	fallback  Region

	// buf is nil while unallocated; bufRegion remembers the owner so
	// CleanupBuffer returns the memory to the right pool.
	buf       []byte
	bufRegion Region
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithRegions overrides the allocation regions. The preferred region is
// only consulted when the catalog's region preference is set; the fallback
// region serves every other acquisition.
func WithRegions(preferred, fallback Region) Option {
	return func(e *Engine) {
		if preferred != nil {
			e.preferred = preferred
		}
		if fallback != nil {
			e.fallback = fallback
		}
	}
}

// New creates an Engine for the given catalog. The active locale starts at
// the catalog's default locale; the buffer is acquired lazily on the first
// Translate call (or eagerly via InitBuffer).
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat:       cat,
		active:    cat.DefaultLocale(),
		preferred: NewHeapRegion("psram"),
		fallback:  NewHeapRegion("ram"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the compiled catalog the engine resolves against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// SetLocale stores the active locale identifier without validating that it
// was compiled; an unknown identifier is resolved against the default
// locale at lookup time. An empty identifier is ignored.
func (e *Engine) SetLocale(locale string) {
	if locale == "" {
		return
	}
	e.active = locale
}

// Locale returns the currently active locale identifier.
func (e *Engine) Locale() string {
	return e.active
}

// Resolve returns the value table for a locale: an exact match against the
// compiled locales, else the default locale's table. It never fails.
func (e *Engine) Resolve(locale string) []string {
	if table, ok := e.cat.Table(locale); ok {
		return table
	}
	table, _ := e.cat.Table(e.cat.DefaultLocale())
	return table
}

// Translate resolves key under the active locale and writes the value into
// the shared buffer, truncated to capacity-1 bytes. Unknown keys echo back
// verbatim, as does any lookup while the buffer could not be acquired from
// either region. The returned slice aliases the buffer and is invalidated
// by the next Translate call.
func (e *Engine) Translate(key string) []byte {
	if e.buf == nil {
		e.InitBuffer()
	}
	if e.buf == nil {
		// Both regions failed; degrade to echoing the key.
		return []byte(key)
	}

	value := key
	if idx, ok := e.cat.Index(key); ok {
		value = e.Resolve(e.active)[idx]
	}

	n := copy(e.buf[:len(e.buf)-1], value)
	e.buf[n] = 0
	return e.buf[:n]
}

// TranslateString is Translate with the result copied out of the shared
// buffer, safe to retain.
func (e *Engine) TranslateString(key string) string {
	return string(e.Translate(key))
}
