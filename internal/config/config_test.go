package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/nbuild/internal/platform"
)

func TestDefaultFor_PopulatesEveryGroup(t *testing.T) {
	t.Parallel()

	cfg := DefaultFor(platform.Linux)

	for _, f := range cfg.Fields() {
		require.NotNil(t, f.Value, "group %q must be populated in the default configuration", f.Name)
	}
	assert.Equal(t, ModeStandalone, cfg.Mode)
	assert.Equal(t, Path("main.py"), cfg.Entry)
	assert.Equal(t, Yes, cfg.Optimization.LTO)
	assert.Equal(t, 4, cfg.Parallel.Jobs)
	assert.Equal(t, []string{"no_site"}, cfg.Python.Flags)
}

func TestDefaultFor_SelectsExactlyOneBundlingVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host platform.OS
	}{
		{platform.Windows},
		{platform.MacOS},
		{platform.Linux},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.host), func(t *testing.T) {
			t.Parallel()
			b := DefaultFor(tt.host).Bundling

			populated := 0
			if b.Windows != nil {
				populated++
				assert.Equal(t, platform.Windows, b.OS)
			}
			if b.MacOS != nil {
				populated++
				assert.Equal(t, platform.MacOS, b.OS)
			}
			if b.Linux != nil {
				populated++
				assert.Equal(t, platform.Linux, b.OS)
			}
			assert.Equal(t, 1, populated)
		})
	}
}

func TestClean_NeutralizesManualFieldsWithoutMutating(t *testing.T) {
	t.Parallel()

	cfg := DefaultFor(platform.Linux)
	cfg.Mode = ModeOnefile
	cfg.ModeFlag = "onefile"
	cfg.PostCompile.Run = true

	cleaned := cfg.Clean()

	assert.Empty(t, cleaned.Mode)
	assert.Empty(t, cleaned.ModeFlag)
	assert.False(t, cleaned.PostCompile.Run)

	// The original stays valid for inspection after serialization.
	assert.Equal(t, ModeOnefile, cfg.Mode)
	assert.Equal(t, "onefile", cfg.ModeFlag)
	assert.True(t, cfg.PostCompile.Run)
}

func TestExtras_Args(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Extras{}.Args())
	assert.Equal(t, []string{"--custom-flag", "--other=val"}, Extras{Raw: "--custom-flag --other=val"}.Args())
	assert.Equal(t, []string{"--a b"}, Extras{List: []string{"--a b"}}.Args())

	// The list wins when both shapes are set.
	both := Extras{Raw: "--raw", List: []string{"--list"}}
	assert.Equal(t, []string{"--list"}, both.Args())
}

func TestField_CLIName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "output-dir", Field{Name: "output_dir", Flag: "output-dir"}.CLIName())
	assert.Equal(t, "show-memory", Field{Name: "show_memory"}.CLIName())
}

func TestPath_Slash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "src/main.py", Path("src/main.py").Slash())
	assert.Equal(t, "src/main.py", Path(`src\main.py`).Slash())
}

func TestParseBuildMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseBuildMode("onefile")
	require.NoError(t, err)
	assert.Equal(t, ModeOnefile, mode)

	_, err = ParseBuildMode("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestParseChoices_RejectUnknownValues(t *testing.T) {
	t.Parallel()

	_, err := ParseBackend("tcc")
	require.Error(t, err)

	_, err = ParseTristate("maybe")
	require.Error(t, err)

	_, err = ParseConsoleMode("fullscreen")
	require.Error(t, err)

	_, err = ParseCacheKind("everything")
	require.Error(t, err)
}
