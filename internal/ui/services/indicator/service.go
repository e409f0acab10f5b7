package indicator

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Service owns the sliding indicator's geometry and its transitions
type Service struct {
	geometry     Geometry
	color        lipgloss.Color
	segmentWidth float64 // cached until Reset; 0 means not computed
	active       *transition
	seq          int
	now          func() time.Time
}

// NewService creates a visible indicator one row high
func NewService() *Service {
	return &Service{
		geometry: Geometry{
			Height:   1,
			Duration: DefaultDuration,
			Visible:  true,
		},
		color: lipgloss.Color("9"), // red
		now:   time.Now,
	}
}

// SetClock replaces the time source used to start transitions
func (s *Service) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// Geometry returns the current geometry
func (s *Service) Geometry() Geometry {
	return s.geometry
}

// Color returns the indicator color
func (s *Service) Color() lipgloss.Color {
	return s.color
}

// SetColor changes the indicator color
func (s *Service) SetColor(color lipgloss.Color) {
	s.color = color
}

// SetHeight changes the indicator thickness in rows
func (s *Service) SetHeight(rows float64) {
	if rows < 0 {
		rows = 0
	}
	s.geometry.Height = rows
}

// SetDuration changes the length of transitions started from now on
func (s *Service) SetDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.geometry.Duration = d
}

// SetHidden detaches or reattaches the indicator. Detaching drops any
// transition in flight; the caller repositions after reattaching.
func (s *Service) SetHidden(hidden bool) {
	s.geometry.Visible = !hidden
	if hidden {
		s.active = nil
	}
}

// Hidden reports whether the indicator is detached
func (s *Service) Hidden() bool {
	return !s.geometry.Visible
}

// Reset invalidates the cached segment width. Call it when the titles or the
// control bounds change.
func (s *Service) Reset() {
	s.segmentWidth = 0
	s.active = nil
}

// SegmentWidth returns the cached segment width, 0 before the first reposition
func (s *Service) SegmentWidth() float64 {
	return s.segmentWidth
}

// TargetOffset returns the x offset of the segment at index
func TargetOffset(index int, segmentWidth float64) float64 {
	return segmentWidth * float64(index)
}

// Reposition moves the indicator under the segment at index. With animated set
// it starts a transition from the current offset and reports true; the host
// then drives it with Advance. A reposition during a transition retargets it.
func (s *Service) Reposition(index, count int, containerWidth float64, animated bool) bool {
	if !s.geometry.Visible || count <= 0 {
		return false
	}
	if s.segmentWidth == 0 {
		s.segmentWidth = containerWidth / float64(count)
	}
	s.geometry.Width = s.segmentWidth

	target := TargetOffset(index, s.segmentWidth)
	if !animated || s.geometry.Duration <= 0 {
		s.active = nil
		s.geometry.XOffset = target
		return false
	}

	s.seq++
	s.active = &transition{
		id:       s.seq,
		from:     s.geometry.XOffset,
		to:       target,
		start:    s.now(),
		duration: s.geometry.Duration,
	}
	return true
}

// Animating reports whether a transition is in flight
func (s *Service) Animating() bool {
	return s.active != nil
}

// TransitionID identifies the transition in flight, 0 when idle
func (s *Service) TransitionID() int {
	if s.active == nil {
		return 0
	}
	return s.active.id
}

// Target returns the offset the indicator is moving to
func (s *Service) Target() float64 {
	if s.active == nil {
		return s.geometry.XOffset
	}
	return s.active.to
}

// Advance moves the indicator along the transition to its position at now.
// It reports whether the transition is still running.
func (s *Service) Advance(now time.Time) bool {
	if s.active == nil {
		return false
	}
	t := s.active
	p := t.progress(now)
	s.geometry.XOffset = t.from + (t.to-t.from)*p
	if p >= 1 {
		s.geometry.XOffset = t.to
		s.active = nil
		return false
	}
	return true
}
