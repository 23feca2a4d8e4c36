package symbol

import "strings"

// Sentinel replaces tokens that collapse to nothing, e.g. a key made
// entirely of punctuation.
const Sentinel = "KEY"

const separator = '_'

// FromKey converts a translation key path into an identifier-safe token:
// runs of non-alphanumeric characters collapse to a single underscore,
// leading and trailing underscores are trimmed, and the result is
// upper-cased. A token that would start with a digit gains a leading
// underscore.
func FromKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))

	pendingSep := false
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
			r -= 'a' - 'A'
			fallthrough
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte(separator)
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}

	s := b.String()
	if s == "" {
		return Sentinel
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = string(separator) + s
	}
	return s
}
