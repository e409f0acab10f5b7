package indicator

import (
	"time"
)

// DefaultDuration is the default length of an indicator transition
const DefaultDuration = 250 * time.Millisecond

// Geometry is the indicator's placement inside the control
type Geometry struct {
	Width    float64
	Height   float64 // rows, anchored to the bottom edge
	XOffset  float64
	Duration time.Duration
	Visible  bool
}

// transition is an in-flight move of the indicator between two offsets
type transition struct {
	id       int
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
}

// progress returns the eased completion of the transition at now, in [0, 1]
func (t *transition) progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	elapsed := now.Sub(t.start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= t.duration {
		return 1
	}
	return easeInOutCubic(float64(elapsed) / float64(t.duration))
}

func easeInOutCubic(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	f := -2*x + 2
	return 1 - f*f*f/2
}
