package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func centeredBall(velocity Pt) Ball {
	var b Ball
	b.Bounds = RectAt(Pt{385, 285}, Pt{BallSize, BallSize})
	b.Velocity = velocity
	return b
}

func TestNewBall(t *testing.T) {
	r := NewRand(0)
	b := NewBall(DefaultDimensions, &r)
	assert.Equal(t, RectAt(Pt{385, 285}, Pt{30, 30}), b.Bounds)
	assert.Contains(t, []int64{3, -3}, b.Velocity.X)
	assert.Contains(t, []int64{3, -3}, b.Velocity.Y)
}

func TestBall_Move(t *testing.T) {
	b := centeredBall(Pt{3, -3})
	b.Move(600)
	assert.Equal(t, RectAt(Pt{388, 282}, Pt{30, 30}), b.Bounds)
	assert.Equal(t, Pt{3, -3}, b.Velocity)
}

func TestBall_BouncesOffTopAndBottom(t *testing.T) {
	// Reaching the top exactly reflects.
	var b Ball
	b.Bounds = RectAt(Pt{100, 3}, Pt{30, 30})
	b.Velocity = Pt{3, -3}
	b.Move(600)
	assert.Equal(t, int64(0), b.Bounds.Top())
	assert.Equal(t, Pt{3, 3}, b.Velocity)

	// Going past the top reflects but doesn't correct the position.
	b.Bounds = RectAt(Pt{100, 2}, Pt{30, 30})
	b.Velocity = Pt{3, -3}
	b.Move(600)
	assert.Equal(t, int64(-1), b.Bounds.Top())
	assert.Equal(t, Pt{3, 3}, b.Velocity)

	// Reaching the bottom exactly reflects.
	b.Bounds = RectAt(Pt{100, 567}, Pt{30, 30})
	b.Velocity = Pt{-3, 3}
	b.Move(600)
	assert.Equal(t, int64(600), b.Bounds.Bottom())
	assert.Equal(t, Pt{-3, -3}, b.Velocity)

	// One pixel away from the wall after the move doesn't reflect.
	b.Bounds = RectAt(Pt{100, 566}, Pt{30, 30})
	b.Velocity = Pt{-3, 3}
	b.Move(600)
	assert.Equal(t, int64(599), b.Bounds.Bottom())
	assert.Equal(t, Pt{-3, 3}, b.Velocity)
}

func TestBall_Reset(t *testing.T) {
	r := NewRand(0)
	seen := map[Pt]bool{}
	for range 200 {
		b := centeredBall(Pt{-15, 11})
		b.Bounds.SetPos(Pt{r.RInt(-100, 900), r.RInt(-100, 700)})
		b.Reset(DefaultDimensions, &r)
		require.Equal(t, RectAt(Pt{385, 285}, Pt{30, 30}), b.Bounds)
		require.Equal(t, int64(3), Abs(b.Velocity.X))
		require.Equal(t, int64(3), Abs(b.Velocity.Y))

		// Resetting twice in a row keeps the ball in the center.
		b.Reset(DefaultDimensions, &r)
		require.Equal(t, Pt{400, 300}, b.Bounds.Center())
		require.Equal(t, int64(3), Abs(b.Velocity.X))
		require.Equal(t, int64(3), Abs(b.Velocity.Y))
		seen[b.Velocity] = true
	}
	// All four diagonals come up.
	assert.Len(t, seen, 4)
}

func TestBall_ResetIsDeterministic(t *testing.T) {
	r1 := NewRand(77)
	r2 := NewRand(77)
	for range 50 {
		b1 := centeredBall(Pt{})
		b2 := centeredBall(Pt{})
		b1.Reset(DefaultDimensions, &r1)
		b2.Reset(DefaultDimensions, &r2)
		require.Equal(t, b1, b2)
	}
}

func TestBall_SetVelocityCapsSpeed(t *testing.T) {
	b := centeredBall(Pt{})
	b.SetVelocity(Pt{20, -40})
	assert.Equal(t, Pt{15, -15}, b.Velocity)
	b.SetVelocity(Pt{-7, 15})
	assert.Equal(t, Pt{-7, 15}, b.Velocity)
}

