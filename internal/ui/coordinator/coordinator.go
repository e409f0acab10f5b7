package coordinator

import (
	"pkt.systems/pslog"

	"segctl/internal/logx"
	"segctl/internal/ui/input"
	"segctl/internal/ui/logic"
	"segctl/internal/ui/services/indicator"
	"segctl/internal/ui/services/selection"
	"segctl/internal/ui/views"
)

// Coordinator manages the services of one control and keeps the layout they
// share in step with titles and bounds
type Coordinator struct {
	// Services
	Indicator *indicator.Service
	Selection *selection.Service
	Tracker   *input.Tracker
	Renderer  *views.Renderer

	layout      logic.LayoutSpec
	width       float64
	height      float64
	showBorders bool
	log         pslog.Logger
}

// NewCoordinator creates a coordinator with all services and no segments
func NewCoordinator(log pslog.Logger) *Coordinator {
	log = logx.OrDiscard(log)
	ind := indicator.NewService()
	sel := selection.NewService(ind, log)

	c := &Coordinator{
		Indicator:   ind,
		Selection:   sel,
		Renderer:    views.NewRenderer(),
		showBorders: true,
		log:         log,
	}

	// Wire up service dependencies
	c.Tracker = input.NewTracker(sel)
	return c
}

// SetTitles rebuilds the segments and their layout
func (c *Coordinator) SetTitles(titles []string) error {
	if err := c.Selection.SetTitles(titles); err != nil {
		return err
	}
	c.relayout()
	return nil
}

// SetBounds changes the container size. The layout is recomputed and the
// indicator snaps to the selection.
func (c *Coordinator) SetBounds(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width, c.height = width, height
	c.Selection.Resize(width)
	c.relayout()
}

// Bounds returns the container size
func (c *Coordinator) Bounds() (width, height float64) {
	return c.width, c.height
}

// Layout returns the layout in effect
func (c *Coordinator) Layout() logic.LayoutSpec {
	return c.layout
}

// SetShowBorders toggles the hairline decoration
func (c *Coordinator) SetShowBorders(show bool) {
	c.showBorders = show
}

// ShowBorders reports whether hairlines are drawn
func (c *Coordinator) ShowBorders() bool {
	return c.showBorders
}

// relayout recomputes the layout for the current segments and bounds. A stale
// result is never applied.
func (c *Coordinator) relayout() {
	count := c.Selection.State().SegmentCount
	spec := logic.ComputeLayout(count, c.width, c.height)
	c.log.Debug("layout computed", "count", count, "width", c.width, "height", c.height)
	c.layout = spec
	c.Tracker.SetLayout(spec)
}

// ViewState assembles what the renderer needs
func (c *Coordinator) ViewState() views.ViewState {
	geo := c.Indicator.Geometry()
	style := c.Selection.Style()
	return views.ViewState{
		Layout:   c.layout,
		Segments: c.Selection.Segments(),
		Indicator: views.IndicatorView{
			XOffset: geo.XOffset,
			Width:   geo.Width,
			Rows:    int(geo.Height),
			Color:   c.Indicator.Color(),
			Visible: geo.Visible,
		},
		BorderColor: style.BorderColor,
		ShowBorders: c.showBorders,
	}
}

// Render draws the control
func (c *Coordinator) Render() string {
	return c.Renderer.Render(c.ViewState())
}
