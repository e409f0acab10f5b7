package views

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"segctl/internal/ui/logic"
	"segctl/internal/ui/state"
)

const (
	borderGlyph    = "─"
	indicatorGlyph = "━"
	ellipsis       = "…"
)

// IndicatorView is what the renderer needs to draw the sliding indicator
type IndicatorView struct {
	XOffset float64
	Width   float64
	Rows    int
	Color   lipgloss.Color
	Visible bool
}

// ViewState contains everything needed to render the control
type ViewState struct {
	Layout      logic.LayoutSpec
	Segments    []*state.Segment
	Indicator   IndicatorView
	BorderColor lipgloss.Color
	ShowBorders bool
}

// Renderer draws a control from its view state
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// cell is one rendered terminal cell
type cell struct {
	glyph string
	style lipgloss.Style
}

// Render produces the control's rows joined by newlines. A layout computed for
// a different number of segments renders nothing.
func (r *Renderer) Render(vs ViewState) string {
	width := int(vs.Layout.ContainerWidth)
	height := int(vs.Layout.ContainerHeight)
	if width <= 0 || height <= 0 || len(vs.Segments) == 0 {
		return ""
	}
	if len(vs.Layout.Slots) != len(vs.Segments) {
		return ""
	}

	labelRow := (height - 1) / 2
	borderRows := r.borderRows(vs, height)

	indicatorFirst, indicatorCount := 0, 0
	if vs.Indicator.Visible && vs.Indicator.Rows > 0 {
		indicatorFirst, indicatorCount = logic.CellSpan(vs.Indicator.XOffset, vs.Indicator.Width)
	}
	indicatorTop := height - vs.Indicator.Rows

	var b strings.Builder
	for row := 0; row < height; row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		for i, slot := range vs.Layout.Slots {
			seg := vs.Segments[i]
			first, n := logic.CellSpan(slot.Rect.X, slot.Rect.W)
			if n <= 0 {
				continue
			}
			base := seg.Appearance.Font.Apply(lipgloss.NewStyle().
				Foreground(seg.Appearance.Foreground).
				Background(seg.Appearance.Background))

			if row == labelRow {
				b.WriteString(renderLabel(seg.Text, n, base))
				continue
			}

			cells := make([]cell, n)
			for c := 0; c < n; c++ {
				col := first + c
				switch {
				case indicatorCount > 0 && row >= indicatorTop && col >= indicatorFirst && col < indicatorFirst+indicatorCount:
					cells[c] = cell{glyph: indicatorGlyph, style: lipgloss.NewStyle().
						Foreground(vs.Indicator.Color).
						Background(seg.Appearance.Background)}
				case borderRows[row]:
					cells[c] = cell{glyph: borderGlyph, style: lipgloss.NewStyle().
						Foreground(vs.BorderColor).
						Background(seg.Appearance.Background)}
				default:
					cells[c] = cell{glyph: " ", style: lipgloss.NewStyle().
						Background(seg.Appearance.Background)}
				}
			}
			b.WriteString(renderRuns(cells))
		}
	}
	return b.String()
}

// borderRows marks the rows covered by the decorative hairlines
func (r *Renderer) borderRows(vs ViewState, height int) []bool {
	rows := make([]bool, height)
	if !vs.ShowBorders {
		return rows
	}
	for _, border := range logic.Borders(vs.Layout) {
		first, n := logic.CellSpan(border.Y, border.H)
		for row := first; row < first+n; row++ {
			if row >= 0 && row < height {
				rows[row] = true
			}
		}
	}
	return rows
}

// renderLabel centers text in width columns on a single row, truncating with
// an ellipsis
func renderLabel(text string, width int, style lipgloss.Style) string {
	text = sanitizeLabel(text)
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, ellipsis)
	}
	return style.Width(width).MaxWidth(width).MaxHeight(1).Align(lipgloss.Center).Render(text)
}

// sanitizeLabel turns tabs and line breaks into single spaces and drops other
// control runes, which have no column width of their own
func sanitizeLabel(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, text)
}

// renderRuns renders consecutive cells sharing a glyph style as one span
func renderRuns(cells []cell) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && cells[i].glyph == cells[start].glyph && sameStyle(cells[i].style, cells[start].style) {
			continue
		}
		b.WriteString(cells[start].style.Render(strings.Repeat(cells[start].glyph, i-start)))
		start = i
	}
	return b.String()
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground() && a.GetBackground() == b.GetBackground()
}
