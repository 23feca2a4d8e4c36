package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNoSources            = errors.New("catalog: at least one source document is required")
	ErrDuplicateLocale      = errors.New("catalog: duplicate locale identifier")
	ErrInvalidLocale        = errors.New("catalog: invalid locale identifier")
	ErrUnsupportedFormat    = errors.New("catalog: unsupported source format")
	ErrUnknownDefaultLocale = errors.New("catalog: default locale not found in sources")
	ErrBufferSizeRange      = errors.New("catalog: buffer size out of range")
)

// MissingKeysError aggregates every completeness violation found during
// compilation: for each offending locale, the universe keys it lacks.
// Compilation never fails on the first violation alone.
type MissingKeysError struct {
	// Missing maps a locale identifier to its sorted missing keys.
	Missing map[string][]string
}

func (e *MissingKeysError) Error() string {
	locales := make([]string, 0, len(e.Missing))
	for loc := range e.Missing {
		locales = append(locales, loc)
	}
	sort.Strings(locales)

	var b strings.Builder
	b.WriteString("catalog: missing translations:")
	for _, loc := range locales {
		fmt.Fprintf(&b, "\n  %s: %s", loc, strings.Join(e.Missing[loc], ", "))
	}
	return b.String()
}
