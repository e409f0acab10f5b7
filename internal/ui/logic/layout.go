package logic

// AnchorTarget names what an edge of a slot is pinned to
type AnchorTarget int

const (
	AnchorContainer AnchorTarget = iota
	AnchorSegment
)

// Anchor pins one edge of a slot to the container or to a neighbouring segment
type Anchor struct {
	Target AnchorTarget
	Index  int // neighbour index when Target is AnchorSegment
}

// Slot is the placement of one segment
type Slot struct {
	Index    int
	Rect     Rect
	Leading  Anchor
	Trailing Anchor
	// WidthOf is the segment whose width this slot matches; -1 for the first slot
	WidthOf int
}

// LayoutSpec is the computed placement of every segment for one container size
type LayoutSpec struct {
	ContainerWidth  float64
	ContainerHeight float64
	Slots           []Slot
}

// HairlineThickness is the height of the decorative top and bottom borders, in rows
const HairlineThickness = 1.0

// ComputeLayout places count equal-width segments edge to edge across the
// container, each spanning its full height.
func ComputeLayout(count int, containerWidth, containerHeight float64) LayoutSpec {
	spec := LayoutSpec{
		ContainerWidth:  containerWidth,
		ContainerHeight: containerHeight,
	}
	if count <= 0 || containerWidth < 0 {
		return spec
	}

	width := containerWidth / float64(count)
	spec.Slots = make([]Slot, count)
	for i := 0; i < count; i++ {
		slot := Slot{
			Index:    i,
			Rect:     Rect{X: width * float64(i), Y: 0, W: width, H: containerHeight},
			Leading:  Anchor{Target: AnchorContainer},
			Trailing: Anchor{Target: AnchorContainer},
			WidthOf:  0,
		}
		if i > 0 {
			slot.Leading = Anchor{Target: AnchorSegment, Index: i - 1}
		} else {
			slot.WidthOf = -1
		}
		if i < count-1 {
			slot.Trailing = Anchor{Target: AnchorSegment, Index: i + 1}
		}
		spec.Slots[i] = slot
	}
	return spec
}

// Valid reports whether the spec was computed for the given segment count and
// container size. A stale spec must not be applied.
func (s LayoutSpec) Valid(count int, containerWidth, containerHeight float64) bool {
	if count < 0 {
		return false
	}
	return len(s.Slots) == count &&
		s.ContainerWidth == containerWidth &&
		s.ContainerHeight == containerHeight
}

// SegmentWidth returns the shared width of every slot
func (s LayoutSpec) SegmentWidth() float64 {
	if len(s.Slots) == 0 {
		return 0
	}
	return s.Slots[0].Rect.W
}

// Container returns the bounds the spec was computed for
func (s LayoutSpec) Container() Rect {
	return Rect{W: s.ContainerWidth, H: s.ContainerHeight}
}

// Borders returns the top and bottom hairlines, clipped to the container.
// Hairlines that clip away entirely are omitted.
func Borders(spec LayoutSpec) []Rect {
	container := spec.Container()
	if container.Empty() {
		return nil
	}

	top := Rect{X: 0, Y: 0, W: spec.ContainerWidth, H: HairlineThickness}.Intersect(container)
	bottom := Rect{
		X: 0,
		Y: spec.ContainerHeight - HairlineThickness,
		W: spec.ContainerWidth,
		H: HairlineThickness,
	}.Intersect(container)

	borders := make([]Rect, 0, 2)
	if !top.Empty() {
		borders = append(borders, top)
	}
	if !bottom.Empty() && bottom != top {
		borders = append(borders, bottom)
	}
	return borders
}
