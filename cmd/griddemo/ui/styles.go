// Package ui provides the visual styling for griddemo console output.
// Styling only touches headings and status lines; grid values are always
// printed plain so the fixed column width holds.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	LightPrimary = lipgloss.Color("#101F38") // Dark Blue
	LightAccent  = lipgloss.Color("#8BC34A") // Lime Green
	LightMuted   = lipgloss.Color("#5c6b80")

	DarkPrimary = lipgloss.Color("#8BC34A") // Lime Green (flipped)
	DarkAccent  = lipgloss.Color("#f2f2f2")
	DarkMuted   = lipgloss.Color("#9aa5b5")

	Destructive = lipgloss.Color("#e53935") // Red
)

// Theme holds the current color scheme
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	IsDark  bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{Primary: LightPrimary, Accent: LightAccent, Muted: LightMuted}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{Primary: DarkPrimary, Accent: DarkAccent, Muted: DarkMuted, IsDark: true}
}

// DetectTheme picks the dark theme when COLORFGBG reports a dark background
// or GRIDDEMO_DARK_MODE=1, otherwise light.
func DetectTheme() Theme {
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}
	if os.Getenv("GRIDDEMO_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled components used by the CLI.
type Styles struct {
	Theme   Theme
	enabled bool

	Title   lipgloss.Style
	Heading lipgloss.Style
	Result  lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates styles for theme. With enabled false every Render
// helper returns its input unchanged.
func NewStyles(theme Theme, enabled bool) Styles {
	return Styles{
		Theme:   theme,
		enabled: enabled,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true),

		Heading: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Result: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),
	}
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// RenderTitle styles the demo banner.
func (s Styles) RenderTitle(text string) string { return s.render(s.Title, text) }

// RenderHeading styles grid headers and layer labels. It matches the
// signature grid.WithHeadingStyle expects.
func (s Styles) RenderHeading(text string) string { return s.render(s.Heading, text) }

// RenderResult styles minimum lines.
func (s Styles) RenderResult(text string) string { return s.render(s.Result, text) }

// RenderError styles error lines.
func (s Styles) RenderError(text string) string { return s.render(s.Error, text) }
