package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyprbind/domain"
)

const sampleConfig = `# ======= Window Management =======
bindd = $mainMod, Q, Close window, killactive,
bind = $mainMod, F, fullscreen,

# ======= Applications =======
bindd = $mainMod, Return, Open terminal, exec, kitty

# random comment
not a binding line

submap = resize
binde = broken line that is dropped
bind = , h, resizeactive, -20 0
bind = , l, resizeactive, 20 0
submap = reset

bind = $mainMod, R, submap, resize
`

func TestParseStringCategories(t *testing.T) {
	cfg := ParseString(sampleConfig)

	require.Contains(t, cfg.Categories, "Window Management")
	require.Contains(t, cfg.Categories, "Applications")
	assert.Len(t, cfg.Categories["Window Management"].Bindings, 2)

	apps := cfg.Categories["Applications"].Bindings
	require.NotEmpty(t, apps)
	assert.Equal(t, "Open terminal", apps[0].Description)
	assert.Equal(t, "kitty", apps[0].Params)
}

func TestParseStringTracksSubmaps(t *testing.T) {
	cfg := ParseString(sampleConfig)

	require.Contains(t, cfg.Submaps, "resize")
	assert.Len(t, cfg.Submaps["resize"], 2)
	for _, b := range cfg.Submaps["resize"] {
		assert.Equal(t, "resize", b.Submap)
	}

	// The binding entering the submap is declared after the reset marker and
	// stays in the root scope
	entry, ok := cfg.FindConflict(domain.Binding{Modifiers: []string{"$mainMod"}, Key: "R"})
	require.True(t, ok)
	assert.Empty(t, entry.Submap)
}

func TestParseStringDropsMalformedLines(t *testing.T) {
	cfg := ParseString(sampleConfig)

	for _, b := range cfg.AllBindings() {
		assert.True(t, b.Type.IsValid())
	}
	assert.Equal(t, 6, cfg.BindingCount())
}

func TestParseStringRecordsLineNumbers(t *testing.T) {
	cfg := ParseString("bind = $mainMod, Q, killactive,\n\nbind = $mainMod, W, exec, firefox\n")

	b, ok := cfg.FindConflict(domain.Binding{Modifiers: []string{"$mainMod"}, Key: "W"})
	require.True(t, ok)
	assert.Equal(t, 3, b.LineNumber)
}

func TestParseStringRetainsOriginalContent(t *testing.T) {
	cfg := ParseString(sampleConfig)
	assert.Equal(t, sampleConfig, cfg.OriginalContent)
}

func TestParseFileMissingYieldsEmptyConfig(t *testing.T) {
	cfg, err := ParseFile(filepath.Join(t.TempDir(), "keybinds.conf"))

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.BindingCount())
	assert.Empty(t, cfg.Categories)
}

func TestParseFileLoadsVariables(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "keybinds.conf")

	require.NoError(t, os.WriteFile(configPath,
		[]byte("bind = $mainMod, Q, killactive,\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "variables.conf"),
		[]byte("$mainMod = SUPER\n$terminal = kitty\n"), 0644))

	cfg, err := ParseFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "SUPER", cfg.Variables["$mainMod"])
	assert.Equal(t, "kitty", cfg.Variables["$terminal"])
	assert.Equal(t, 1, cfg.BindingCount())
	assert.Equal(t, configPath, cfg.FilePath)
}
