package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestApplyThemeLight(t *testing.T) {
	origMuted, origBright := mutedGray, brightWhite
	origTips, origIdle, origStatus, origPanel, origSelected :=
		tipsStyle, idleToolStyle, statusBarStyle, panelStyle, selectedStyle
	t.Cleanup(func() {
		mutedGray, brightWhite = origMuted, origBright
		tipsStyle, idleToolStyle, statusBarStyle, panelStyle, selectedStyle =
			origTips, origIdle, origStatus, origPanel, origSelected
	})

	applyTheme("light")

	if mutedGray != lipgloss.Color("#4B5563") {
		t.Errorf("mutedGray = %v", mutedGray)
	}
	if brightWhite != lipgloss.Color("#111827") {
		t.Errorf("brightWhite = %v", brightWhite)
	}
	if tipsStyle.GetForeground() != mutedGray {
		t.Error("tipsStyle not rebuilt for the light palette")
	}
	if selectedStyle.GetForeground() != brightWhite {
		t.Error("selectedStyle not rebuilt for the light palette")
	}
}

func TestApplyThemeDarkIsDefault(t *testing.T) {
	origMuted := mutedGray

	applyTheme("dark")
	if mutedGray != origMuted {
		t.Error("dark theme should leave the default palette alone")
	}
}
