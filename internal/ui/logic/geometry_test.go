package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 0, W: 10, H: 2}
	assert.True(t, r.Contains(Point{X: 10, Y: 0}))
	assert.True(t, r.Contains(Point{X: 19.99, Y: 1.99}))
	assert.False(t, r.Contains(Point{X: 20, Y: 1}))
	assert.False(t, r.Contains(Point{X: 15, Y: 2}))
	assert.False(t, r.Contains(Point{X: 9.99, Y: 1}))
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.Equal(t, Rect{X: 5, Y: 5, W: 5, H: 5}, a.Intersect(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.True(t, a.Intersect(Rect{X: 20, Y: 0, W: 1, H: 1}).Empty())
}

func TestCellSpanMatchesContains(t *testing.T) {
	for _, width := range []float64{7, 10, 13, 80, 99} {
		for count := 1; count <= 7; count++ {
			spec := ComputeLayout(count, width, 1)
			covered := 0
			for _, slot := range spec.Slots {
				first, n := CellSpan(slot.Rect.X, slot.Rect.W)
				covered += n
				for col := first; col < first+n; col++ {
					assert.True(t, slot.Rect.Contains(CellCenter(col, 0)),
						"width %v count %d: column %d rendered in slot %d but not hit there", width, count, col, slot.Index)
				}
			}
			assert.Equal(t, int(width), covered, "every column belongs to exactly one slot")
		}
	}
}

func TestCellSpanRoundsToNearestEdges(t *testing.T) {
	first, n := CellSpan(0, 33.3333)
	assert.Equal(t, 0, first)
	assert.Equal(t, 33, n)

	first, n = CellSpan(33.3333, 33.3333)
	assert.Equal(t, 33, first)
	assert.Equal(t, 34, n)

	first, n = CellSpan(5, 0)
	assert.Equal(t, 5, first)
	assert.Equal(t, 0, n)
}
