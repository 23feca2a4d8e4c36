package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alaltitov/esphome-i18n/pkg/catalog"
	"github.com/alaltitov/esphome-i18n/pkg/engine"
)

func compileTestCatalog(t *testing.T, cfg catalog.Config) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Compile(map[string]map[string]string{
		"en": {"greeting": "Hi", "weather.cloudy": "Cloudy"},
		"fr": {"greeting": "Bonjour", "weather.cloudy": "Nuageux"},
	}, cfg)
	require.NoError(t, err)
	return cat
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	t.Run("resolves default locale", func(t *testing.T) {
		t.Parallel()
		eng := engine.New(compileTestCatalog(t, catalog.Config{DefaultLocale: "en"}))
		require.Equal(t, "Hi", eng.TranslateString("greeting"))
		require.Equal(t, "Cloudy", eng.TranslateString("weather.cloudy"))
	})

	t.Run("locale switch law", func(t *testing.T) {
		t.Parallel()
		eng := engine.New(compileTestCatalog(t, catalog.Config{DefaultLocale: "en"}))

		require.Equal(t, "Hi", eng.TranslateString("greeting"))

		eng.SetLocale("fr")
		require.Equal(t, "fr", eng.Locale())
		require.Equal(t, "Bonjour", eng.TranslateString("greeting"))
		require.Equal(t, "Bonjour", eng.TranslateString("greeting"))

		eng.SetLocale("en")
		require.Equal(t, "Hi", eng.TranslateString("greeting"))
	})

	t.Run("unknown key echoes verbatim", func(t *testing.T) {
		t.Parallel()
		eng := engine.New(compileTestCatalog(t, catalog.Config{DefaultLocale: "en"}))
		require.Equal(t, "missing.key", eng.TranslateString("missing.key"))
		require.Equal(t, "", eng.TranslateString(""))
	})

	t.Run("unknown locale resolves against default", func(t *testing.T) {
		t.Parallel()
		eng := engine.New(compileTestCatalog(t, catalog.Config{DefaultLocale: "en"}))
		eng.SetLocale("de")
		require.Equal(t, "de", eng.Locale())
		require.Equal(t, "Hi", eng.TranslateString("greeting"))
	})

	t.Run("empty locale id ignored", func(t *testing.T) {
		t.Parallel()
		eng := engine.New(compileTestCatalog(t, catalog.Config{DefaultLocale: "en"}))
		eng.SetLocale("fr")
		eng.SetLocale("")
		require.Equal(t, "fr", eng.Locale())
		require.Equal(t, "Bonjour", eng.TranslateString("greeting"))
	})

	t.Run("result aliases shared buffer", func(t *testing.T) {
		t.Parallel()
		eng := engine.New(compileTestCatalog(t, catalog.Config{DefaultLocale: "en"}))

		first := eng.Translate("greeting")
		require.Equal(t, "Hi", string(first))

		// Next call overwrites the same backing array.
		second := eng.Translate("weather.cloudy")
		require.Equal(t, "Cloudy", string(second))
		assert.NotEqual(t, "Hi", string(first))
	})
}

func TestTranslateTruncation(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 500)
	cat, err := catalog.Compile(map[string]map[string]string{
		"en": {"long": long, "short": "ok"},
	}, catalog.Config{DefaultLocale: "en", BufferSize: catalog.MinBufferSize})
	require.NoError(t, err)
	eng := engine.New(cat)

	got := eng.TranslateString("long")
	require.Len(t, got, catalog.MinBufferSize-1)
	require.Equal(t, long[:catalog.MinBufferSize-1], got)

	// Values that fit are untouched.
	require.Equal(t, "ok", eng.TranslateString("short"))

	// Unknown keys truncate the same way.
	longKey := strings.Repeat("k", 200)
	require.Equal(t, longKey[:catalog.MinBufferSize-1], eng.TranslateString(longKey))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	cat := compileTestCatalog(t, catalog.Config{DefaultLocale: "en"})
	eng := engine.New(cat)

	enTable, ok := cat.Table("en")
	require.True(t, ok)
	frTable, ok := cat.Table("fr")
	require.True(t, ok)

	require.Equal(t, frTable, eng.Resolve("fr"))
	require.Equal(t, enTable, eng.Resolve("en"))
	require.Equal(t, enTable, eng.Resolve("nl"))
	require.Equal(t, enTable, eng.Resolve(""))
}
