package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"segctl/internal/ui/input"
)

// errNoProgram is returned when a pager is requested before the program is attached
var errNoProgram = errors.New("program not set")

// appKeyMap holds the host bindings next to the control's own
type appKeyMap struct {
	control input.KeyMap

	Help    key.Binding
	Log     key.Binding
	Slider  key.Binding
	Borders key.Binding
	Save    key.Binding
	Quit    key.Binding
}

func newAppKeyMap(control input.KeyMap) appKeyMap {
	return appKeyMap{
		control: control,
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Log: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "notification log"),
		),
		Slider: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle slider"),
		),
		Borders: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle borders"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save config"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k appKeyMap) ShortHelp() []key.Binding {
	return append(k.control.ShortHelp(), k.Help, k.Quit)
}

// FullHelp implements help.KeyMap
func (k appKeyMap) FullHelp() [][]key.Binding {
	return append(k.control.FullHelp(),
		[]key.Binding{k.Slider, k.Borders, k.Save},
		[]key.Binding{k.Log, k.Help, k.Quit},
	)
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(keys appKeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	var help strings.Builder

	help.WriteString(titleStyle.Render("segdemo Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Segments"))
	help.WriteString("\n")
	writeBindings(&help, keys.control.Prev, keys.control.Next, keys.control.First, keys.control.Last, keys.control.Jump)
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Left-click a segment to select it"))
	help.WriteString("\n\n")

	help.WriteString(sectionStyle.Render("Appearance"))
	help.WriteString("\n")
	writeBindings(&help, keys.Slider, keys.Borders)
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	writeBindings(&help, keys.Save, keys.Log, keys.Help, keys.Quit)

	return strings.TrimRight(help.String(), "\n")
}

func writeBindings(b *strings.Builder, bindings ...key.Binding) {
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(10)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	for _, binding := range bindings {
		h := binding.Help()
		fmt.Fprintf(b, "  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc))
	}
}

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show shows content using ov pager
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// pagerCmd runs the pager off the update loop and reports when it closes
func (p *PagerOps) pagerCmd(title, content string) tea.Cmd {
	return func() tea.Msg {
		return pagerClosedMsg{title: title, err: p.Show(content)}
	}
}
