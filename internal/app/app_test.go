package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, cfg *Config, out io.Writer) *App {
	t.Helper()
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return NewApp(out, io.Discard, cfg)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestRun_DryRunWithSpec(t *testing.T) {
	t.Parallel()

	specPath := filepath.Join(t.TempDir(), "build.hcl")
	writeFile(t, specPath, `
		build {
			mode  = "onefile"
			entry = "app.py"
		}
	`)

	out := &bytes.Buffer{}
	a := newTestApp(t, &Config{SpecPath: specPath, DryRun: true, Compiler: "nuitka"}, out)

	require.NoError(t, a.Run(context.Background()))

	printed := out.String()
	assert.Contains(t, printed, "Dry run. Would run:")
	assert.Contains(t, printed, "nuitka --onefile")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(printed), "app.py"))
}

func TestRun_DryRunDefaultConfiguration(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	a := newTestApp(t, &Config{DryRun: true, Compiler: "nuitka"}, out)

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "--standalone")
	assert.Contains(t, out.String(), "main.py")
}

func TestRun_DryRunPassthrough(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	a := newTestApp(t, &Config{
		DryRun:      true,
		Compiler:    "nuitka",
		Passthrough: []string{"--module", "lib.py"},
	}, out)

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "nuitka --module lib.py")
}

func TestRun_ExportScript(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	specPath := filepath.Join(dir, "build.yaml")
	writeFile(t, specPath, "build:\n  mode: module\n")
	scriptPath := filepath.Join(dir, "build.sh")

	a := newTestApp(t, &Config{SpecPath: specPath, ExportPath: scriptPath, Compiler: "nuitka"}, &bytes.Buffer{})
	require.NoError(t, a.Run(context.Background()))

	data, err := os.ReadFile(scriptPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "--module")
}

func TestRun_ResolvesSpecDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "build.toml"), "[build]\nmode = \"standalone\"\n")

	out := &bytes.Buffer{}
	a := newTestApp(t, &Config{SpecPath: dir, DryRun: true, Compiler: "nuitka"}, out)

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "--standalone")
}

func TestRun_UnsupportedSpecFormat(t *testing.T) {
	t.Parallel()

	specPath := filepath.Join(t.TempDir(), "build.json")
	writeFile(t, specPath, "{}")

	a := newTestApp(t, &Config{SpecPath: specPath, DryRun: true}, &bytes.Buffer{})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported spec format")
}

func TestRun_MissingSpecPath(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &Config{SpecPath: filepath.Join(t.TempDir(), "gone.hcl"), DryRun: true}, &bytes.Buffer{})
	require.Error(t, a.Run(context.Background()))
}

func TestCompilerPrefix_OverrideSplitsOnWhitespace(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &Config{Compiler: "python -m nuitka"}, &bytes.Buffer{})
	assert.Equal(t, []string{"python", "-m", "nuitka"}, a.compilerPrefix())
}
