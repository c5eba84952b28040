package ui

import (
	"strings"
	"testing"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Error("expected dark theme for background 0")
	}

	t.Setenv("COLORFGBG", "0;15")
	t.Setenv("GRIDDEMO_DARK_MODE", "")
	if DetectTheme().IsDark {
		t.Error("expected light theme for background 15")
	}

	t.Setenv("COLORFGBG", "")
	t.Setenv("GRIDDEMO_DARK_MODE", "1")
	if !DetectTheme().IsDark {
		t.Error("expected dark theme when GRIDDEMO_DARK_MODE=1")
	}
}

func TestStyles_Disabled(t *testing.T) {
	s := NewStyles(LightTheme(), false)
	for _, render := range []func(string) string{s.RenderTitle, s.RenderHeading, s.RenderResult, s.RenderError} {
		if got := render("Layer 0:"); got != "Layer 0:" {
			t.Errorf("disabled styles must not change text, got %q", got)
		}
	}
}

func TestStyles_EnabledKeepsText(t *testing.T) {
	s := NewStyles(DarkTheme(), true)
	if got := s.RenderHeading("Layer 1:"); !strings.Contains(got, "Layer 1:") {
		t.Errorf("styled heading lost its text: %q", got)
	}
}
