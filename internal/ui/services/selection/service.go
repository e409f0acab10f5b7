package selection

import (
	"fmt"

	"pkt.systems/pslog"

	"segctl/internal/logx"
	"segctl/internal/ui/services/indicator"
	"segctl/internal/ui/state"
	"segctl/internal/ui/views"
)

// Service owns the selected index and keeps segment styling, the indicator
// and the observer consistent with it
type Service struct {
	segments  *state.SegmentSet
	state     state.SelectionState
	style     views.StyleConfig
	indicator *indicator.Service
	observer  Observer
	width     float64
	log       pslog.Logger
}

// NewService creates a selection service with no segments
func NewService(ind *indicator.Service, log pslog.Logger) *Service {
	if ind == nil {
		ind = indicator.NewService()
	}
	return &Service{
		segments:  state.NewSegmentSet(),
		style:     views.DefaultStyleConfig(),
		indicator: ind,
		log:       logx.OrDiscard(log),
	}
}

// SetObserver registers the observer; nil unregisters it. The service does
// not own the observer.
func (s *Service) SetObserver(o Observer) {
	s.observer = o
}

// SetTitles rebuilds the segments and resets the selection to the first one.
// The indicator is placed without animation.
func (s *Service) SetTitles(titles []string) error {
	if err := s.segments.Rebuild(titles); err != nil {
		s.log.Warn("titles rejected", "err", err)
		return err
	}

	s.state = state.SelectionState{
		SelectedIndex: 0,
		SegmentCount:  s.segments.Len(),
	}
	s.indicator.Reset()
	s.restyle()
	s.reposition(false)

	s.log.Debug("titles set", "count", s.state.SegmentCount)
	return nil
}

// Select makes the segment at index the selected one, restyles every segment,
// animates the indicator and notifies the observer. Selecting the current
// index again repeats all of those side effects.
func (s *Service) Select(index int) error {
	if !s.state.Valid(index) {
		err := fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, s.state.SegmentCount)
		s.log.Warn("selection rejected", "index", index, "count", s.state.SegmentCount)
		return err
	}

	s.state.SelectedIndex = index
	s.restyle()
	s.reposition(true)
	s.notify()
	return nil
}

// CurrentIndex returns the selected index
func (s *Service) CurrentIndex() int {
	return s.state.SelectedIndex
}

// SelectedText returns the label of the selected segment, empty when there
// are no segments
func (s *Service) SelectedText() string {
	seg, ok := s.segments.At(s.state.SelectedIndex)
	if !ok {
		return ""
	}
	return seg.Text
}

// State returns a copy of the selection state
func (s *Service) State() state.SelectionState {
	return s.state
}

// Segments returns the segments in titles order
func (s *Service) Segments() []*state.Segment {
	return s.segments.All()
}

// Titles returns the segment labels
func (s *Service) Titles() []string {
	return s.segments.Titles()
}

// Style returns the current style snapshot
func (s *Service) Style() views.StyleConfig {
	return s.style
}

// SetStyle replaces the style snapshot and restyles every segment
func (s *Service) SetStyle(cfg views.StyleConfig) {
	s.style = cfg
	s.restyle()
}

// Indicator returns the indicator the service drives
func (s *Service) Indicator() *indicator.Service {
	return s.indicator
}

// Width returns the container width the indicator is placed against
func (s *Service) Width() float64 {
	return s.width
}

// Resize records a new container width, invalidates the indicator's cached
// segment width and places it without animation
func (s *Service) Resize(width float64) {
	s.width = width
	s.indicator.Reset()
	s.reposition(false)
}

// Snap places the indicator under the selection without animation
func (s *Service) Snap() {
	s.reposition(false)
}

func (s *Service) restyle() {
	views.Apply(s.segments.All(), s.state.SelectedIndex, s.style)
}

func (s *Service) reposition(animated bool) {
	s.indicator.Reposition(s.state.SelectedIndex, s.state.SegmentCount, s.width, animated)
}

func (s *Service) notify() {
	if s.observer == nil {
		return
	}
	s.observer.SelectedIndex(s.state.SelectedIndex)
	s.observer.SelectedText(s.SelectedText())
}
