// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"fmt"
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style

	// Page chrome.
	HeaderTitleStyle    lipgloss.Style
	HeaderSubtitleStyle lipgloss.Style
	CardStyle           lipgloss.Style
	HelpStyle           lipgloss.Style

	// Status banners.
	BannerSuccessStyle lipgloss.Style
	BannerErrorStyle   lipgloss.Style
	BannerPendingStyle lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormRequiredStyle     lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style

	// Option chips used by select and checkbox fields.
	OptionStyle         lipgloss.Style
	OptionSelectedStyle lipgloss.Style

	// Staged attachment rows.
	AttachmentStyle         lipgloss.Style
	AttachmentSelectedStyle lipgloss.Style
	AttachmentMetaStyle     lipgloss.Style

	// Help overlay.
	HelpDialogStyle        lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpKeyStyle           lipgloss.Style

	// JSON output.
	JSONKeyStyle     lipgloss.Style
	JSONStringStyle  lipgloss.Style
	JSONNumberStyle  lipgloss.Style
	JSONLiteralStyle lipgloss.Style
	JSONPunctStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	HeaderTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	HeaderSubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(1, 2)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	BannerSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorSuccess).
		Bold(true).
		Padding(0, 1)
	BannerErrorStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorError).
		Bold(true).
		Padding(0, 1)
	BannerPendingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormRequiredStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	OptionStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	OptionSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	AttachmentStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	AttachmentSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	AttachmentMetaStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	HelpDialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Background(ColorBackground).
		Padding(1, 2)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	JSONKeyStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	JSONStringStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	JSONNumberStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	JSONLiteralStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	JSONPunctStyle = lipgloss.NewStyle().Foreground(ColorMuted)
}

// UseTheme activates the named built-in theme.
func UseTheme(name string) error {
	p, ok := GetPalette(name)
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	SetTheme(p)
	return nil
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
