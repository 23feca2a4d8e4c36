package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alaltitov/esphome-i18n/pkg/symbol"
)

func TestFromKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple key",
			input:    "greeting",
			expected: "GREETING",
		},
		{
			name:     "dotted path",
			input:    "weather.cloudy",
			expected: "WEATHER_CLOUDY",
		},
		{
			name:     "mixed separators collapse",
			input:    "menu..items--save",
			expected: "MENU_ITEMS_SAVE",
		},
		{
			name:     "leading and trailing punctuation trimmed",
			input:    ".settings.",
			expected: "SETTINGS",
		},
		{
			name:     "digits preserved",
			input:    "error.404",
			expected: "ERROR_404",
		},
		{
			name:     "leading digit prefixed",
			input:    "2fa.enabled",
			expected: "_2FA_ENABLED",
		},
		{
			name:     "already upper case",
			input:    "ALERT",
			expected: "ALERT",
		},
		{
			name:     "only punctuation falls back to sentinel",
			input:    "--..--",
			expected: "KEY",
		},
		{
			name:     "empty key falls back to sentinel",
			input:    "",
			expected: "KEY",
		},
		{
			name:     "unicode treated as separator",
			input:    "café.menu",
			expected: "CAF_MENU",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, symbol.FromKey(tc.input))
		})
	}
}

func TestFromKeyCollisionsTolerated(t *testing.T) {
	t.Parallel()

	// Distinct keys may legitimately share a token; disambiguation is the
	// caller's concern.
	require.Equal(t, symbol.FromKey("a.b"), symbol.FromKey("a_b"))
	require.Equal(t, symbol.FromKey("a.b"), symbol.FromKey("A B"))
}
