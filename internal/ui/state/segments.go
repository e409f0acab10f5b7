package state

import (
	"errors"
)

// ErrNoTitles is returned when a segment set is built from an empty title list
var ErrNoTitles = errors.New("at least one title required")

// Segment is one selectable labeled region of the control
type Segment struct {
	Text       string
	Index      int
	Appearance Appearance
}

// SegmentSet owns the ordered segments derived from a titles list
type SegmentSet struct {
	segments []*Segment
}

// NewSegmentSet creates an empty segment set
func NewSegmentSet() *SegmentSet {
	return &SegmentSet{
		segments: make([]*Segment, 0),
	}
}

// Rebuild discards every segment and creates one per title, in order.
// An empty list leaves the set untouched.
func (s *SegmentSet) Rebuild(titles []string) error {
	if len(titles) == 0 {
		return ErrNoTitles
	}

	segments := make([]*Segment, 0, len(titles))
	for i, title := range titles {
		segments = append(segments, &Segment{
			Text:  title,
			Index: i,
		})
	}
	s.segments = segments
	return nil
}

// Len returns the number of segments
func (s *SegmentSet) Len() int {
	return len(s.segments)
}

// At returns the segment at index
func (s *SegmentSet) At(index int) (*Segment, bool) {
	if index < 0 || index >= len(s.segments) {
		return nil, false
	}
	return s.segments[index], true
}

// All returns the segments in titles order
func (s *SegmentSet) All() []*Segment {
	return s.segments
}

// Titles returns a copy of the segment labels
func (s *SegmentSet) Titles() []string {
	titles := make([]string, len(s.segments))
	for i, seg := range s.segments {
		titles[i] = seg.Text
	}
	return titles
}
