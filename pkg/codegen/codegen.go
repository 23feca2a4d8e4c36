package codegen

import (
	"errors"
	"fmt"
	"go/format"
	"strings"

	"github.com/alaltitov/esphome-i18n/pkg/catalog"
	"github.com/alaltitov/esphome-i18n/pkg/symbol"
)

// Generated file names inside the output directory.
const (
	DeclarationsFile   = "translations_api.go"
	ImplementationFile = "translations_tables.go"
)

// DefaultPackage names the generated package when none is configured.
const DefaultPackage = "translations"

const modulePath = "github.com/alaltitov/esphome-i18n"

// header is the standard generated-code marker, recognized by tooling.
const header = "// Code generated by i18nc. DO NOT EDIT.\n\n"

// ErrNilCatalog is returned when a Generator is invoked without a catalog.
var ErrNilCatalog = errors.New("codegen: catalog is nil")

// Generator emits the two runtime artifacts for a compiled catalog.
type Generator struct {
	// PackageName of the generated files. Defaults to DefaultPackage.
	PackageName string
}

func (g Generator) packageName() string {
	if g.PackageName == "" {
		return DefaultPackage
	}
	return g.PackageName
}

// Declarations renders the API artifact: the runtime operations, the key
// count constant, and the default locale constant.
func (g Generator) Declarations(cat *catalog.Catalog) ([]byte, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s\n\n", g.packageName())
	fmt.Fprintf(&b, "import (\n\t%q\n\t%q\n)\n\n", modulePath+"/pkg/catalog", modulePath+"/pkg/engine")

	fmt.Fprintf(&b, "// KeyCount is the number of distinct translation keys.\nconst KeyCount = %d\n\n", cat.KeyCount())
	fmt.Fprintf(&b, "// DefaultLocale is the compile-time default locale identifier.\nconst DefaultLocale = %q\n\n", cat.DefaultLocale())

	b.WriteString(`var eng = engine.New(compiledCatalog())

// Tr returns the translation for key under the active locale. Unknown keys
// echo back verbatim. The result is copied out of the shared translation
// buffer and safe to retain.
func Tr(key string) string {
	return eng.TranslateString(key)
}

// SetLocale switches the active locale. An empty identifier is ignored;
// an unknown one resolves to the default locale at lookup time.
func SetLocale(locale string) {
	eng.SetLocale(locale)
}

// GetLocale returns the active locale identifier.
func GetLocale() string {
	return eng.Locale()
}

// InitBuffer eagerly acquires the translation buffer. Translate acquires
// it lazily, so calling this is optional; it is safe to call redundantly.
func InitBuffer() {
	eng.InitBuffer()
}

// CleanupBuffer releases the translation buffer. Safe to call redundantly;
// the next lookup re-acquires.
func CleanupBuffer() {
	eng.CleanupBuffer()
}

// Catalog exposes the compiled catalog for embedders that construct their
// own engine (e.g. with custom allocation regions).
func Catalog() *catalog.Catalog {
	return eng.Catalog()
}
`)

	return gofmt(b.String())
}

// Implementation renders the tables artifact: the key universe, symbol
// constants for every key index, and one value table per locale aligned
// index-for-index with the universe.
func (g Generator) Implementation(cat *catalog.Catalog) ([]byte, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s\n\n", g.packageName())
	fmt.Fprintf(&b, "import %q\n\n", modulePath+"/pkg/catalog")

	keys := cat.Keys()

	b.WriteString("// Key universe, sorted; index i denotes the same translation slot in\n// every locale table.\nvar keys = []string{\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "\t%q,\n", key)
	}
	b.WriteString("}\n\n")

	if len(keys) > 0 {
		b.WriteString("// Universe indexes by key, for readability only; lookups go through the\n// catalog index.\nconst (\n")
		for i, name := range symbolConstants(keys) {
			fmt.Fprintf(&b, "\t%s = %d\n", name, i)
		}
		b.WriteString(")\n\n")
	}

	for _, locale := range cat.Locales() {
		table, _ := cat.Table(locale)
		fmt.Fprintf(&b, "// Locale: %s\nvar %s = []string{\n", locale, tableVar(locale))
		for _, value := range table {
			fmt.Fprintf(&b, "\t%q,\n", value)
		}
		b.WriteString("}\n\n")
	}

	b.WriteString("func compiledCatalog() *catalog.Catalog {\n\treturn catalog.Precompiled(keys, map[string][]string{\n")
	for _, locale := range cat.Locales() {
		fmt.Fprintf(&b, "\t\t%q: %s,\n", locale, tableVar(locale))
	}
	fmt.Fprintf(&b, "\t}, %q, %d, %t)\n}\n", cat.DefaultLocale(), cat.BufferSize(), cat.PreferExternal())

	return gofmt(b.String())
}

// symbolConstants maps every universe key to a unique KEY_* constant name,
// disambiguating symbol collisions with a numeric suffix.
func symbolConstants(keys []string) []string {
	names := make([]string, len(keys))
	taken := make(map[string]bool, len(keys))
	for i, key := range keys {
		base := "KEY_" + symbol.FromKey(key)
		name := base
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}

// tableVar names the per-locale table variable, e.g. "tableDE_AT" for
// locale "de-AT".
func tableVar(locale string) string {
	return "table" + symbol.FromKey(locale)
}

func gofmt(src string) ([]byte, error) {
	out, err := format.Source([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("codegen: formatting generated source: %w", err)
	}
	return out, nil
}
