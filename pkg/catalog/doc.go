// Package catalog compiles per-locale translation sources into immutable,
// index-aligned string tables.
//
// The pipeline loads one hierarchical document per locale (YAML, JSON with
// comments, or TOML; the locale identifier is the file's base name),
// flattens each into dot-joined keys, unions the keys of every locale into
// one sorted key universe, validates that every locale covers the full
// universe, and freezes the result into a Catalog. Index i in the universe
// denotes the same translation slot in every locale's table.
//
//	fsys := os.DirFS("locales")
//	cat, err := catalog.CompileFS(fsys, catalog.Config{
//		Sources:       []string{"en.yaml", "fr.yaml"},
//		DefaultLocale: "en",
//	})
//
// Compilation is all-or-nothing: a missing source file, a default locale
// that was never compiled, or any locale lacking keys from the universe
// fails the whole compile. Completeness violations are aggregated into a
// single MissingKeysError naming every offending locale and its missing
// keys, so one fix cycle resolves everything reported.
//
// A Catalog is immutable after compilation and safe for unsynchronized
// concurrent reads.
package catalog
