package codegen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alaltitov/esphome-i18n/pkg/catalog"
)

// Write renders both artifacts into dir, creating it if needed. Files are
// only rewritten when their content differs from what is on disk. It
// reports whether anything changed.
func (g Generator) Write(dir string, cat *catalog.Catalog) (bool, error) {
	decl, err := g.Declarations(cat)
	if err != nil {
		return false, err
	}
	impl, err := g.Implementation(cat)
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("codegen: creating %q: %w", dir, err)
	}

	changed := false
	for name, data := range map[string][]byte{
		DeclarationsFile:   decl,
		ImplementationFile: impl,
	} {
		wrote, err := writeFileIfChanged(filepath.Join(dir, name), data)
		if err != nil {
			return changed, err
		}
		changed = changed || wrote
	}
	return changed, nil
}

func writeFileIfChanged(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("codegen: writing %q: %w", path, err)
	}
	return true, nil
}
