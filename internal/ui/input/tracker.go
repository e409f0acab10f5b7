package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"segctl/internal/ui/logic"
)

// Selector receives the candidate selections the tracker resolves
type Selector interface {
	Select(index int) error
	CurrentIndex() int
}

// Tracker maps pointer locations and keys to segment indices and forwards
// them to a Selector
type Tracker struct {
	layout   logic.LayoutSpec
	selector Selector
	keys     KeyMap

	// OnValueChanged is called after every user-initiated selection
	OnValueChanged func(index int)
}

// NewTracker creates a tracker forwarding to selector
func NewTracker(selector Selector) *Tracker {
	return &Tracker{
		selector: selector,
		keys:     DefaultKeyMap(),
	}
}

// SetLayout replaces the segment bounds used for hit testing
func (t *Tracker) SetLayout(spec logic.LayoutSpec) {
	t.layout = spec
}

// SetKeyMap replaces the keyboard bindings
func (t *Tracker) SetKeyMap(keys KeyMap) {
	t.keys = keys
}

// KeyMap returns the keyboard bindings
func (t *Tracker) KeyMap() KeyMap {
	return t.keys
}

// ResolveSegment returns the first slot whose bounds contain p
func ResolveSegment(spec logic.LayoutSpec, p logic.Point) (int, bool) {
	for _, slot := range spec.Slots {
		if slot.Rect.Contains(p) {
			return slot.Index, true
		}
	}
	return -1, false
}

// Resolve hit-tests p against the current layout
func (t *Tracker) Resolve(p logic.Point) (int, bool) {
	return ResolveSegment(t.layout, p)
}

// BeginTracking handles the initial contact at p. A hit selects the segment
// and raises value-changed. It always returns false: the tracker never claims
// the gesture beyond the initial contact.
func (t *Tracker) BeginTracking(p logic.Point) bool {
	if index, ok := t.Resolve(p); ok {
		t.commit(index)
	}
	return false
}

// HandleMouse tracks left-button presses. originX and originY locate the
// control's top-left cell on screen. Motion and release are ignored.
func (t *Tracker) HandleMouse(msg tea.MouseMsg, originX, originY int) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	t.BeginTracking(logic.CellCenter(msg.X-originX, msg.Y-originY))
}

// HandleKey maps a key to a segment and selects it. It reports whether the
// key is one of the tracker's bindings.
func (t *Tracker) HandleKey(msg tea.KeyMsg) bool {
	count := len(t.layout.Slots)
	current := t.selector.CurrentIndex()

	var target int
	switch {
	case key.Matches(msg, t.keys.Prev):
		target = logic.NextIndex(logic.DirectionLeft, current, count)
	case key.Matches(msg, t.keys.Next):
		target = logic.NextIndex(logic.DirectionRight, current, count)
	case key.Matches(msg, t.keys.First):
		target = logic.NextIndex(logic.DirectionHome, current, count)
	case key.Matches(msg, t.keys.Last):
		target = logic.NextIndex(logic.DirectionEnd, current, count)
	case key.Matches(msg, t.keys.Jump):
		target = int(msg.String()[0] - '1')
		if target >= count {
			return true
		}
	default:
		return false
	}

	if target >= 0 {
		t.commit(target)
	}
	return true
}

func (t *Tracker) commit(index int) {
	if err := t.selector.Select(index); err != nil {
		return
	}
	if t.OnValueChanged != nil {
		t.OnValueChanged(index)
	}
}
