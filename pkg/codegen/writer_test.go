package codegen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alaltitov/esphome-i18n/pkg/codegen"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	t.Run("writes both artifacts", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		g := codegen.Generator{}
		cat := compileTestCatalog(t)

		changed, err := g.Write(dir, cat)
		require.NoError(t, err)
		require.True(t, changed)

		decl, err := os.ReadFile(filepath.Join(dir, codegen.DeclarationsFile))
		require.NoError(t, err)
		impl, err := os.ReadFile(filepath.Join(dir, codegen.ImplementationFile))
		require.NoError(t, err)

		wantDecl, err := g.Declarations(cat)
		require.NoError(t, err)
		wantImpl, err := g.Implementation(cat)
		require.NoError(t, err)
		require.Equal(t, wantDecl, decl)
		require.Equal(t, wantImpl, impl)
	})

	t.Run("unchanged content is not rewritten", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		g := codegen.Generator{}
		cat := compileTestCatalog(t)

		changed, err := g.Write(dir, cat)
		require.NoError(t, err)
		require.True(t, changed)

		changed, err = g.Write(dir, cat)
		require.NoError(t, err)
		require.False(t, changed)
	})

	t.Run("stale artifact is refreshed", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		g := codegen.Generator{}
		cat := compileTestCatalog(t)

		_, err := g.Write(dir, cat)
		require.NoError(t, err)

		stale := filepath.Join(dir, codegen.ImplementationFile)
		require.NoError(t, os.WriteFile(stale, []byte("// stale\n"), 0o644))

		changed, err := g.Write(dir, cat)
		require.NoError(t, err)
		require.True(t, changed)

		impl, err := os.ReadFile(stale)
		require.NoError(t, err)
		require.NotEqual(t, "// stale\n", string(impl))
	})

	t.Run("creates output directory", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "generated", "i18n")
		_, err := codegen.Generator{}.Write(dir, compileTestCatalog(t))
		require.NoError(t, err)
		require.DirExists(t, dir)
	})
}
