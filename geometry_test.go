package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRectContainsPt(t *testing.T) {
	r := NewRectangle(10, 20, 30, 50)
	assert.True(t, r.ContainsPt(Pt{10, 20}))
	assert.True(t, r.ContainsPt(Pt{10, 25}))
	assert.True(t, r.ContainsPt(Pt{15, 25}))
	assert.True(t, r.ContainsPt(Pt{30, 50}))
	assert.False(t, r.ContainsPt(Pt{9, 20}))
	assert.False(t, r.ContainsPt(Pt{10, 19}))
	assert.False(t, r.ContainsPt(Pt{31, 50}))
	assert.False(t, r.ContainsPt(Pt{30, 51}))
	assert.False(t, r.ContainsPt(Pt{31, 51}))
}

func TestRectIntersects(t *testing.T) {
	var r1, r2 Rectangle
	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(10, 20, 30, 50)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(15, 25, 35, 55)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(5, 5, 15, 25)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	// One contains the other.
	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(15, 25, 20, 30)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	// A cross shape, no corner of one is inside the other.
	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(15, 10, 25, 60)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	// Touching along an edge counts.
	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(30, 20, 60, 50)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(0, 0, 300, 20)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	// Touching in a corner counts.
	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(30, 50, 60, 60)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(31, 20, 60, 50)
	assert.False(t, r1.Intersects(r2))
	assert.False(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(100, 200, 300, 500)
	assert.False(t, r1.Intersects(r2))
	assert.False(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(0, 2, 3, 5)
	assert.False(t, r1.Intersects(r2))
	assert.False(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(0, 0, 300, 19)
	assert.False(t, r1.Intersects(r2))
	assert.False(t, r2.Intersects(r1))
}

func TestRectIntersectsRects(t *testing.T) {
	r := NewRectangle(10, 20, 30, 50)
	assert.False(t, RectIntersectsRects(r, nil))
	assert.False(t, RectIntersectsRects(r, []Rectangle{
		NewRectangle(100, 100, 110, 110),
		NewRectangle(0, 0, 5, 5)}))
	assert.True(t, RectIntersectsRects(r, []Rectangle{
		NewRectangle(100, 100, 110, 110),
		NewRectangle(25, 45, 35, 55)}))
}

func TestRectAccessors(t *testing.T) {
	r := RectAt(Pt{385, 285}, Pt{30, 30})
	assert.Equal(t, int64(30), r.Width())
	assert.Equal(t, int64(30), r.Height())
	assert.Equal(t, int64(285), r.Top())
	assert.Equal(t, int64(315), r.Bottom())
	assert.Equal(t, int64(385), r.Left())
	assert.Equal(t, int64(415), r.Right())
	assert.Equal(t, Pt{400, 300}, r.Center())

	// Odd sizes round the center towards the top-left.
	r = RectAt(Pt{0, 0}, Pt{5, 7})
	assert.Equal(t, Pt{2, 3}, r.Center())
}

func TestRectMovesKeepSize(t *testing.T) {
	r := RectAt(Pt{10, 20}, Pt{10, 100})

	r.Translate(Pt{-5, 7})
	assert.Equal(t, RectAt(Pt{5, 27}, Pt{10, 100}), r)

	r.SetPos(Pt{50, 250})
	assert.Equal(t, RectAt(Pt{50, 250}, Pt{10, 100}), r)

	r.SetCenter(Pt{400, 300})
	assert.Equal(t, Pt{400, 300}, r.Center())
	assert.Equal(t, Pt{10, 100}, r.Size())
}

func TestNewRectangleOrdersCorners(t *testing.T) {
	assert.Equal(t, NewRectangle(10, 20, 30, 50), NewRectangle(30, 50, 10, 20))
	assert.Equal(t, NewRectangle(10, 20, 30, 50), NewRectangle(10, 50, 30, 20))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, int64(0), Clamp(-5, 0, 500))
	assert.Equal(t, int64(500), Clamp(505, 0, 500))
	assert.Equal(t, int64(250), Clamp(250, 0, 500))
}

func BenchmarkRectIntersects(b *testing.B) {
	ball := RectAt(Pt{385, 285}, Pt{30, 30})
	paddles := []Rectangle{
		RectAt(Pt{50, 250}, Pt{10, 100}),
		RectAt(Pt{740, 250}, Pt{10, 100}),
	}
	for b.Loop() {
		RectIntersectsRects(ball, paddles)
	}
}
