package logic

// Direction represents keyboard movement between segments
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionHome  Direction = "home"
	DirectionEnd   Direction = "end"
)

// NextIndex returns the segment reached by moving from current in direction.
// Movement stops at either end. It returns -1 when there are no segments.
func NextIndex(direction Direction, current, count int) int {
	if count <= 0 {
		return -1
	}
	target := current
	switch direction {
	case DirectionLeft:
		target = current - 1
	case DirectionRight:
		target = current + 1
	case DirectionHome:
		target = 0
	case DirectionEnd:
		target = count - 1
	}
	return ClampIndex(target, count)
}

// ClampIndex limits index to [0, count-1]
func ClampIndex(index, count int) int {
	if index < 0 {
		return 0
	}
	if index > count-1 {
		return count - 1
	}
	return index
}
