package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fastset/internal/config"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Look: config.LookConfig{UseKeys: true},
		Format: config.FormatConfig{
			Option:        "${name}",
			OptionCurrent: "> ${name}",
		},
		Color: config.ColorConfig{
			"name":  {"default", "white"},
			"value": {"cyan", "lightcyan"},
		},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Options: config.OptionsConfig{Watch: true},
	}
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
format:
  option: "${name} ${value}"
  option_current: "* ${name} ${value}"
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, "${name} ${value}", target.Format.Option)
	assert.Equal(t, "* ${name} ${value}", target.Format.OptionCurrent)

	// Other sections should be unchanged.
	assert.True(t, target.Look.UseKeys)
	assert.Equal(t, "info", target.Logging.Level)
	assert.True(t, target.Options.Watch)
}

func TestShallowMergeYAML_SectionReplacesMap(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
color:
  type: [red, lightred]
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, config.ColorConfig{"type": {"red", "lightred"}}, target.Color)
}

func TestShallowMergeYAML_PartialSectionZeroesMissingKeys(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
options:
  file: /etc/fastset/options.yaml
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, "/etc/fastset/options.yaml", target.Options.File)
	assert.False(t, target.Options.Watch)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	original := *target
	overlay := writeOverlay(t, `
weechat:
  plugins: true
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)
	assert.Equal(t, original.Format, target.Format)
	assert.Equal(t, original.Logging, target.Logging)
}

func TestShallowMergeYAML_EmptyOverlayFile(t *testing.T) {
	for _, content := range []string{"", "# just comments\n"} {
		target := newDefaultTarget()
		original := *target

		err := config.ShallowMergeYAML(target, writeOverlay(t, content))
		require.NoError(t, err)

		assert.Equal(t, original.Look, target.Look)
		assert.Equal(t, original.Format, target.Format)
		assert.Equal(t, original.Logging, target.Logging)
	}
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("corrupted yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "{{{{not valid yaml at all"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("wrong section type", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "look: [1, 2]\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "look"`)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "x"))
	})
}
