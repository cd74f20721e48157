package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Contains(t, names, DefaultTheme)
	assert.IsIncreasing(t, names)
}

func TestUseTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	require.NoError(t, UseTheme("gruvbox"))
	assert.Equal(t, themes["gruvbox"].Primary, ColorPrimary)

	require.Error(t, UseTheme("neon"))
	assert.Equal(t, themes["gruvbox"].Primary, ColorPrimary, "unknown theme leaves palette untouched")
}

func TestGlamourStyle(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	cfg := GlamourStyle()
	require.NotNil(t, cfg.H2.Color)
	assert.Equal(t, "#7aa2f7", *cfg.H2.Color)

	assert.False(t, isLight(themes[DefaultTheme].Background))
	assert.True(t, isLight(themes["paper"].Background))
}

func TestFileIcon(t *testing.T) {
	assert.Equal(t, IconFileImage, FileIcon("image/png"))
	assert.Equal(t, IconFilePDF, FileIcon("application/pdf"))
	assert.Equal(t, IconFileText, FileIcon("text/plain"))
	assert.Equal(t, IconFileDefault, FileIcon("application/octet-stream"))
}
