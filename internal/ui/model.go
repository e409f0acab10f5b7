package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pkt.systems/pslog"

	"segctl/internal/config"
	"segctl/internal/eventbus"
	"segctl/internal/logx"
	"segctl/internal/ui/views"
)

const (
	// controlTop is the first screen row below the title
	controlTop = 2
	// maxNotifications bounds the lines shown under the control
	maxNotifications = 8
)

// Model is the demo host: one segmented control, a notification log fed
// from the event bus and a help line
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	control   *Control
	log       pslog.Logger

	// UI-specific state
	width         int
	height        int
	help          help.Model
	keys          appKeyMap
	styles        *views.Styles
	status        string
	notifications []string
	origin        config.FrameDescription

	pager *PagerOps
}

// NewModel creates the demo model. The control is built from the config's
// description and reports to bus.
func NewModel(bus eventbus.EventBus, cfg *config.Config, svc config.ConfigService, log pslog.Logger) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log = logx.OrDiscard(log)

	desc := cfg.Control
	origin := desc.Frame
	desc.Frame.Y += controlTop

	control, err := NewFromDescription(desc,
		WithLogger(log),
		WithBus(bus),
		WithFocus(true),
		WithAutoWidth(cfg.UISettings.AutoWidth),
	)
	if err != nil {
		return nil, fmt.Errorf("build control: %w", err)
	}

	m := &Model{
		bus:       bus,
		config:    cfg,
		configSvc: svc,
		control:   control,
		log:       log.With("component", "demo"),
		help:      help.New(),
		keys:      newAppKeyMap(control.KeyMap()),
		styles:    views.NewStyles(),
		origin:    origin,
		pager:     NewPagerOps(nil),
	}
	m.help.ShowAll = false
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Control returns the hosted control
func (m *Model) Control() *Control {
	return m.control
}

// Notifications returns the notification log, oldest first
func (m *Model) Notifications() []string {
	return append([]string(nil), m.notifications...)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.control.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, m.control.Update(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.quitCmd()
		case key.Matches(msg, m.keys.Help):
			return m, m.pager.pagerCmd("help", NewHelpRenderer().RenderHelpContent(m.keys))
		case key.Matches(msg, m.keys.Log):
			return m, m.pager.pagerCmd("log", m.renderLog())
		case key.Matches(msg, m.keys.Slider):
			hidden := !m.control.Description().Slider.Hidden
			m.control.SetHideSlider(hidden)
			m.status = fmt.Sprintf("slider hidden: %t", hidden)
			return m, nil
		case key.Matches(msg, m.keys.Borders):
			show := !m.control.Description().ShowBorders
			m.control.SetShowBorders(show)
			m.status = fmt.Sprintf("borders shown: %t", show)
			return m, nil
		case key.Matches(msg, m.keys.Save):
			m.saveConfig()
			return m, nil
		}
		return m, m.control.Update(msg)

	case ValueChangedMsg:
		m.status = fmt.Sprintf("Selected: %s", msg.Text)
		m.log.Info("value changed", "index", msg.Index, "text", msg.Text)
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("%s pager: %v", msg.title, msg.err)
			m.log.Warn("pager failed", "pager", msg.title, "err", msg.err)
		}
		return m, nil

	case quitMsg:
		if msg.saveConfig {
			m.saveConfig()
		}
		return m, tea.Quit
	}

	return m, m.control.Update(msg)
}

func (m *Model) quitCmd() tea.Cmd {
	save := m.config.UISettings.AutosaveOnExit
	return func() tea.Msg {
		return quitMsg{saveConfig: save}
	}
}

// handleEvent turns domain events into notification lines
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.SelectionIndexChangedEvent:
		m.notify(fmt.Sprintf("Selected index: %d", e.Index))
	case eventbus.SelectionTextChangedEvent:
		m.notify(fmt.Sprintf("Button text: %s", e.Text))
	case eventbus.TitlesChangedEvent:
		m.notify(fmt.Sprintf("Titles: %s", strings.Join(e.Titles, ", ")))
	case eventbus.ConfigSavedEvent:
		m.notify(fmt.Sprintf("Config saved to %s", e.Path))
	case eventbus.ConfigLoadedEvent:
		m.notify(fmt.Sprintf("Config loaded from %s", e.Path))
	case eventbus.ErrorEvent:
		m.notify(fmt.Sprintf("Error: %s", e.Message))
	}
}

func (m *Model) notify(line string) {
	m.log.Info(line)
	m.notifications = append(m.notifications, line)
}

func (m *Model) saveConfig() {
	if m.configSvc == nil {
		m.status = "no config file"
		return
	}
	cfg := *m.config
	cfg.Control = m.Description()
	if err := m.configSvc.Save(&cfg); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		m.log.Error("config save failed", "err", err)
		return
	}
	*m.config = cfg
	m.status = "config saved"
}

// Description returns the control's description in config coordinates
func (m *Model) Description() config.ControlDescription {
	desc := m.control.Description()
	desc.Frame.Y -= controlTop
	if m.config.UISettings.AutoWidth {
		desc.Frame.Width = m.origin.Width
	}
	return desc
}

func (m *Model) renderLog() string {
	if len(m.notifications) == 0 {
		return "No notifications yet\n"
	}
	return strings.Join(m.notifications, "\n") + "\n"
}

// View renders the UI
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("segdemo"))
	b.WriteString("\n")

	frame := m.control.Frame()
	b.WriteString(strings.Repeat("\n", max(frame.Y-controlTop, 0)))
	indent := strings.Repeat(" ", max(frame.X, 0))
	for _, line := range strings.Split(m.control.View(), "\n") {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	if len(m.notifications) > 0 {
		start := len(m.notifications) - maxNotifications
		if start < 0 {
			start = 0
		}
		b.WriteString(m.styles.LogBox.Render(strings.Join(m.notifications[start:], "\n")))
		b.WriteString("\n")
	}

	if m.config.UISettings.ShowHelp {
		b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	}

	return lipgloss.NewStyle().MaxWidth(max(m.width, frame.X+frame.Width)).Render(b.String())
}
