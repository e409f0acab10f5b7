package state

import (
	"github.com/charmbracelet/lipgloss"
)

// Font is the terminal rendition of a typeface: the text attributes a cell can carry
type Font struct {
	Bold      bool `toml:"bold" mapstructure:"bold"`
	Italic    bool `toml:"italic" mapstructure:"italic"`
	Underline bool `toml:"underline" mapstructure:"underline"`
	Faint     bool `toml:"faint" mapstructure:"faint"`
}

// Apply copies the font attributes onto a lipgloss style
func (f Font) Apply(style lipgloss.Style) lipgloss.Style {
	return style.
		Bold(f.Bold).
		Italic(f.Italic).
		Underline(f.Underline).
		Faint(f.Faint)
}

// Appearance is the visual state of a single segment
type Appearance struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Font       Font
	Selected   bool
}

// SelectionState is the single source of truth for which segment is active
type SelectionState struct {
	SelectedIndex int
	SegmentCount  int
}

// Valid reports whether index addresses an existing segment
func (s SelectionState) Valid(index int) bool {
	return index >= 0 && index < s.SegmentCount
}
