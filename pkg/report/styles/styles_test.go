package styles

import (
	"testing"

	"github.com/arthur-debert/csvmv/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStylesLoaded(t *testing.T) {
	for _, name := range []string{"Renamed", "NotFound", "Failed", "Error", "Muted"} {
		assert.True(t, Has(name), "style %s should be registered", name)
	}

	assert.True(t, GetStyle("Error").GetBold())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}, GetStyle("Failed").GetForeground())
}

func TestForStatus(t *testing.T) {
	assert.Equal(t, GetStyle("Renamed").GetForeground(), ForStatus(types.StatusRenamed).GetForeground())
	assert.Equal(t, GetStyle("NotFound").GetForeground(), ForStatus(types.StatusNotFound).GetForeground())
	assert.Equal(t, GetStyle("Failed").GetForeground(), ForStatus(types.StatusFailed).GetForeground())
	assert.Equal(t, "x", ForStatus(types.RenameStatus("other")).Render("x"))
}

func TestGetStyle_Unknown(t *testing.T) {
	style := GetStyle("DoesNotExist")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoad(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Load(defaultStyles)) })

	err := Load([]byte(`
colors:
  accent: {light: "#000000", dark: "#FFFFFF"}
styles:
  Accent: {foreground: accent, italic: true, underline: true}
`))
	require.NoError(t, err)

	accent := GetStyle("Accent")
	assert.True(t, accent.GetItalic())
	assert.True(t, accent.GetUnderline())
	assert.False(t, Has("Renamed"), "load replaces the registry")
}

func TestLoad_Errors(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Load(defaultStyles)) })

	assert.Error(t, Load([]byte("styles: [unclosed")))
	assert.ErrorContains(t, Load([]byte("styles:\n  Bad: {foreground: nope}\n")), `unknown color "nope"`)
	assert.True(t, Has("Renamed"), "a failed load keeps the previous styles")
}
