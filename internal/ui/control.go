package ui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pkt.systems/pslog"

	"segctl/internal/config"
	"segctl/internal/domain"
	"segctl/internal/eventbus"
	"segctl/internal/logx"
	"segctl/internal/ui/adapters"
	"segctl/internal/ui/coordinator"
	"segctl/internal/ui/input"
	"segctl/internal/ui/logic"
	"segctl/internal/ui/services/selection"
	"segctl/internal/ui/state"
	"segctl/internal/ui/views"
)

// Errors returned by the control's setters
var (
	ErrNoTitles        = selection.ErrNoTitles
	ErrIndexOutOfRange = selection.ErrIndexOutOfRange
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Frame places a control on screen, in terminal cells
type Frame struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Option configures a control at construction
type Option func(*Control)

// WithLogger sets the logger rejected operations are reported to
func WithLogger(log pslog.Logger) Option {
	return func(c *Control) {
		c.log = log
	}
}

// WithName names the control in logs, events and messages
func WithName(name string) Option {
	return func(c *Control) {
		c.name = name
	}
}

// WithBus publishes selection and value-changed events on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(c *Control) {
		c.bus = bus
	}
}

// WithAutoWidth makes the control follow the terminal width
func WithAutoWidth(enabled bool) Option {
	return func(c *Control) {
		c.autoWidth = enabled
	}
}

// WithFocus makes the control react to keys from the start
func WithFocus(focused bool) Option {
	return func(c *Control) {
		c.focused = focused
	}
}

// WithClock replaces the time source driving the indicator animation
func WithClock(now func() time.Time) Option {
	return func(c *Control) {
		if now != nil {
			c.now = now
		}
	}
}

// WithKeyMap replaces the keyboard bindings
func WithKeyMap(keys input.KeyMap) Option {
	return func(c *Control) {
		c.keys = &keys
	}
}

// Control is a row of equally wide labeled segments, exactly one of which is
// selected, with an indicator sliding under the selection
type Control struct {
	id        int
	name      string
	frame     Frame
	coord     *coordinator.Coordinator
	observer  selection.Observer
	bus       eventbus.EventBus
	log       pslog.Logger
	keys      *input.KeyMap
	autoWidth bool
	focused   bool
	now       func() time.Time

	// ticking is the transition a frame chain is running for
	ticking int
	// changed collects user picks during one Update
	changed []ValueChangedMsg
}

// New creates a control occupying frame, showing the default titles
func New(frame Frame, opts ...Option) *Control {
	c := &Control{
		id:  nextID(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.setup(frame)
	return c
}

// NewFromDescription creates a control from a declarative description. Zero
// fonts, slider height and duration are taken literally; empty colors and
// titles keep the defaults. Start from config.DefaultDescription to override
// a few fields only.
func NewFromDescription(desc config.ControlDescription, opts ...Option) (*Control, error) {
	if desc.Name != "" {
		opts = append([]Option{WithName(desc.Name)}, opts...)
	}
	c := New(Frame{
		X:      desc.Frame.X,
		Y:      desc.Frame.Y,
		Width:  desc.Frame.Width,
		Height: desc.Frame.Height,
	}, opts...)
	if err := c.apply(desc); err != nil {
		return nil, err
	}
	return c, nil
}

// setup is the initialization every constructor shares
func (c *Control) setup(frame Frame) {
	c.log = logx.WithControl(c.log, c.name)
	c.coord = coordinator.NewCoordinator(c.log)
	c.coord.Indicator.SetClock(c.now)
	if c.keys != nil {
		c.coord.Tracker.SetKeyMap(*c.keys)
	}
	c.coord.Tracker.OnValueChanged = c.valueChanged

	if err := c.coord.SetTitles(config.DefaultTitles()); err != nil {
		c.log.Error("default titles rejected", "err", err)
	}
	c.SetFrame(frame)
	c.attachObservers()
}

func (c *Control) apply(desc config.ControlDescription) error {
	if len(desc.Titles) > 0 {
		if err := c.SetTitles(desc.Titles); err != nil {
			return err
		}
	}

	style := c.coord.Selection.Style()
	setColor(&style.SelectedTextColor, desc.SelectedTextColor)
	setColor(&style.UnselectedTextColor, desc.UnselectedTextColor)
	setColor(&style.SelectedBackgroundColor, desc.SelectedBackgroundColor)
	setColor(&style.UnselectedBackgroundColor, desc.UnselectedBackgroundColor)
	setColor(&style.BorderColor, desc.BorderColor)
	style.SelectedFont = desc.SelectedFont
	style.UnselectedFont = desc.UnselectedFont
	c.coord.Selection.SetStyle(style)
	c.coord.SetShowBorders(desc.ShowBorders)

	c.SetSliderHeight(desc.Slider.Height)
	if desc.Slider.Color != "" {
		c.SetSliderColor(lipgloss.Color(desc.Slider.Color))
	}
	c.SetSliderAnimationDuration(desc.Slider.Duration())
	c.SetHideSlider(desc.Slider.Hidden)

	if desc.Selected != 0 {
		if err := c.coord.Selection.Select(desc.Selected); err != nil {
			return err
		}
		c.coord.Selection.Snap()
	}
	return nil
}

func setColor(dst *lipgloss.Color, value string) {
	if value != "" {
		*dst = lipgloss.Color(value)
	}
}

// Description captures the control's current configuration
func (c *Control) Description() config.ControlDescription {
	style := c.coord.Selection.Style()
	geo := c.coord.Indicator.Geometry()
	return config.ControlDescription{
		Name:                      c.name,
		Titles:                    c.Titles(),
		Selected:                  c.SelectedIndex(),
		SelectedTextColor:         string(style.SelectedTextColor),
		UnselectedTextColor:       string(style.UnselectedTextColor),
		SelectedBackgroundColor:   string(style.SelectedBackgroundColor),
		UnselectedBackgroundColor: string(style.UnselectedBackgroundColor),
		SelectedFont:              style.SelectedFont,
		UnselectedFont:            style.UnselectedFont,
		BorderColor:               string(style.BorderColor),
		ShowBorders:               c.coord.ShowBorders(),
		Slider: config.SliderDescription{
			Height:     int(geo.Height),
			Color:      string(c.coord.Indicator.Color()),
			Hidden:     !geo.Visible,
			DurationMS: int(geo.Duration / time.Millisecond),
		},
		Frame: config.FrameDescription{
			X:      c.frame.X,
			Y:      c.frame.Y,
			Width:  c.frame.Width,
			Height: c.frame.Height,
		},
	}
}

// Init implements tea.Model
func (c *Control) Init() tea.Cmd {
	return c.Animate()
}

// Update handles terminal resizes, pointer and key input and animation frames
func (c *Control) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !c.autoWidth {
			return nil
		}
		frame := c.frame
		frame.Width = msg.Width - frame.X
		c.SetFrame(frame)
		return nil

	case tea.MouseMsg:
		c.coord.Tracker.HandleMouse(msg, c.frame.X, c.frame.Y)
		return c.flushChanges()

	case tea.KeyMsg:
		if !c.focused {
			return nil
		}
		c.coord.Tracker.HandleKey(msg)
		return c.flushChanges()

	case frameMsg:
		return c.advance(msg)
	}
	return nil
}

// View renders the control
func (c *Control) View() string {
	return c.coord.Render()
}

// Animate returns the command driving a transition started outside Update,
// e.g. by Select. It returns nil when nothing needs driving.
func (c *Control) Animate() tea.Cmd {
	id := c.coord.Indicator.TransitionID()
	if id == 0 || id == c.ticking {
		return nil
	}
	c.ticking = id
	return c.tick(id)
}

func (c *Control) tick(transition int) tea.Cmd {
	control := c.id
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{control: control, transition: transition, at: t}
	})
}

func (c *Control) advance(msg frameMsg) tea.Cmd {
	if msg.control != c.id || msg.transition != c.coord.Indicator.TransitionID() {
		return nil
	}
	if c.coord.Indicator.Advance(c.now()) {
		return c.tick(msg.transition)
	}
	c.ticking = 0
	return nil
}

func (c *Control) valueChanged(index int) {
	c.changed = append(c.changed, ValueChangedMsg{
		Control: c.name,
		Index:   index,
		Text:    c.coord.Selection.SelectedText(),
	})
}

func (c *Control) flushChanges() tea.Cmd {
	if len(c.changed) == 0 {
		return nil
	}
	changed := c.changed
	c.changed = nil

	cmds := make([]tea.Cmd, 0, len(changed)+1)
	for _, msg := range changed {
		if c.bus != nil {
			c.bus.Publish(domain.ValueChangedEvent{Selection: domain.Selection{
				Control: msg.Control,
				Index:   msg.Index,
				Text:    msg.Text,
			}})
		}
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	cmds = append(cmds, c.Animate())
	return tea.Batch(cmds...)
}

func (c *Control) attachObservers() {
	var chain adapters.Chain
	if c.observer != nil {
		chain = append(chain, c.observer)
	}
	if c.bus != nil {
		chain = append(chain, adapters.NewBusObserver(c.bus, c.name))
	}
	if len(chain) == 0 {
		c.coord.Selection.SetObserver(nil)
		return
	}
	c.coord.Selection.SetObserver(chain)
}

// SetObserver registers the observer notified on every selection; nil
// unregisters it. The control does not own the observer.
func (c *Control) SetObserver(o selection.Observer) {
	c.observer = o
	c.attachObservers()
}

// SetTitles replaces the segments and selects the first one
func (c *Control) SetTitles(titles []string) error {
	if err := c.coord.SetTitles(titles); err != nil {
		return err
	}
	c.ticking = 0
	if c.bus != nil {
		c.bus.Publish(domain.TitlesChangedEvent{Control: c.name, Titles: c.Titles()})
	}
	return nil
}

// Select selects the segment at index and notifies the observer. The
// indicator animation is driven by the command from Animate.
func (c *Control) Select(index int) error {
	return c.coord.Selection.Select(index)
}

// SetSelectedIndex is Select
func (c *Control) SetSelectedIndex(index int) error {
	return c.Select(index)
}

// SelectedIndex returns the selected index
func (c *Control) SelectedIndex() int {
	return c.coord.Selection.CurrentIndex()
}

// SelectedText returns the label of the selected segment
func (c *Control) SelectedText() string {
	return c.coord.Selection.SelectedText()
}

// Titles returns the segment labels
func (c *Control) Titles() []string {
	return c.coord.Selection.Titles()
}

func (c *Control) updateStyle(fn func(*views.StyleConfig)) {
	style := c.coord.Selection.Style()
	fn(&style)
	c.coord.Selection.SetStyle(style)
}

func (c *Control) SetSelectedTextColor(color lipgloss.Color) {
	c.updateStyle(func(s *views.StyleConfig) { s.SelectedTextColor = color })
}

func (c *Control) SetUnselectedTextColor(color lipgloss.Color) {
	c.updateStyle(func(s *views.StyleConfig) { s.UnselectedTextColor = color })
}

func (c *Control) SetSelectedBackgroundColor(color lipgloss.Color) {
	c.updateStyle(func(s *views.StyleConfig) { s.SelectedBackgroundColor = color })
}

func (c *Control) SetUnselectedBackgroundColor(color lipgloss.Color) {
	c.updateStyle(func(s *views.StyleConfig) { s.UnselectedBackgroundColor = color })
}

func (c *Control) SetSelectedFont(font state.Font) {
	c.updateStyle(func(s *views.StyleConfig) { s.SelectedFont = font })
}

func (c *Control) SetUnselectedFont(font state.Font) {
	c.updateStyle(func(s *views.StyleConfig) { s.UnselectedFont = font })
}

// SetBorderColor changes the hairline color
func (c *Control) SetBorderColor(color lipgloss.Color) {
	c.updateStyle(func(s *views.StyleConfig) { s.BorderColor = color })
}

// SetShowBorders toggles the hairlines
func (c *Control) SetShowBorders(show bool) {
	c.coord.SetShowBorders(show)
}

// Style returns the current style snapshot
func (c *Control) Style() views.StyleConfig {
	return c.coord.Selection.Style()
}

// SetSliderHeight sets the indicator thickness in rows
func (c *Control) SetSliderHeight(rows int) {
	c.coord.Indicator.SetHeight(float64(rows))
}

func (c *Control) SetSliderColor(color lipgloss.Color) {
	c.coord.Indicator.SetColor(color)
}

// SetHideSlider detaches the indicator, or reattaches it under the selection
func (c *Control) SetHideSlider(hidden bool) {
	c.coord.Indicator.SetHidden(hidden)
	c.ticking = 0
	if !hidden {
		c.coord.Selection.Snap()
	}
}

// SetSliderAnimationDuration applies to animations started afterwards
func (c *Control) SetSliderAnimationDuration(d time.Duration) {
	c.coord.Indicator.SetDuration(d)
}

// IndicatorOffset returns the indicator's current x offset
func (c *Control) IndicatorOffset() float64 {
	return c.coord.Indicator.Geometry().XOffset
}

// Animating reports whether the indicator is moving
func (c *Control) Animating() bool {
	return c.coord.Indicator.Animating()
}

// SetFrame moves or resizes the control. The layout is recomputed and the
// indicator snaps under the selection.
func (c *Control) SetFrame(frame Frame) {
	if frame.Width < 0 {
		frame.Width = 0
	}
	if frame.Height < 0 {
		frame.Height = 0
	}
	c.frame = frame
	c.ticking = 0
	c.coord.SetBounds(float64(frame.Width), float64(frame.Height))
}

// Frame returns the control's placement
func (c *Control) Frame() Frame {
	return c.frame
}

// Layout returns the segment bounds in effect
func (c *Control) Layout() logic.LayoutSpec {
	return c.coord.Layout()
}

// Name returns the control's name
func (c *Control) Name() string {
	return c.name
}

// Focus makes the control react to keys
func (c *Control) Focus() {
	c.focused = true
}

// Blur stops the control reacting to keys
func (c *Control) Blur() {
	c.focused = false
}

// Focused reports whether the control reacts to keys
func (c *Control) Focused() bool {
	return c.focused
}

// KeyMap returns the keyboard bindings, for help views
func (c *Control) KeyMap() input.KeyMap {
	return c.coord.Tracker.KeyMap()
}
