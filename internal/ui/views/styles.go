package views

import (
	"github.com/charmbracelet/lipgloss"

	"segctl/internal/ui/state"
)

// StyleConfig is an immutable snapshot of the segment styling. Setters on the
// control replace it wholesale and trigger a full restyle.
type StyleConfig struct {
	SelectedTextColor         lipgloss.Color
	UnselectedTextColor       lipgloss.Color
	SelectedBackgroundColor   lipgloss.Color
	UnselectedBackgroundColor lipgloss.Color
	SelectedFont              state.Font
	UnselectedFont            state.Font
	BorderColor               lipgloss.Color
}

// DefaultStyleConfig returns white-on-black bold for the selected segment and
// black-on-white for the rest
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		SelectedTextColor:         lipgloss.Color("15"), // white
		UnselectedTextColor:       lipgloss.Color("0"),  // black
		SelectedBackgroundColor:   lipgloss.Color("0"),
		UnselectedBackgroundColor: lipgloss.Color("15"),
		SelectedFont:              state.Font{Bold: true},
		UnselectedFont:            state.Font{},
		BorderColor:               lipgloss.Color("250"), // light gray
	}
}

// Appearance returns the appearance a segment gets in the given selection state
func (c StyleConfig) Appearance(selected bool) state.Appearance {
	if selected {
		return state.Appearance{
			Foreground: c.SelectedTextColor,
			Background: c.SelectedBackgroundColor,
			Font:       c.SelectedFont,
			Selected:   true,
		}
	}
	return state.Appearance{
		Foreground: c.UnselectedTextColor,
		Background: c.UnselectedBackgroundColor,
		Font:       c.UnselectedFont,
	}
}

// Apply styles every segment as unselected except the one at selectedIndex.
// An index outside the set leaves every segment unselected.
func Apply(segments []*state.Segment, selectedIndex int, cfg StyleConfig) {
	for i, seg := range segments {
		seg.Appearance = cfg.Appearance(i == selectedIndex)
	}
}

// Styles contains the chrome styles used by hosts around the control
type Styles struct {
	Title  lipgloss.Style
	Dim    lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
	Main   lipgloss.Style
	LogBox lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1).
			MarginBottom(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		LogBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
	}
}
