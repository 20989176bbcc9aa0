package main

const BallSize = int64(30)

// BallStartSpeed is the magnitude of each velocity component after a reset.
const BallStartSpeed = int64(3)

// BallMaxSpeed caps the magnitude of each velocity component.
const BallMaxSpeed = int64(15)

type Ball struct {
	Bounds   Rectangle
	Velocity Pt
}

func NewBall(d Dimensions, r *Rand) (b Ball) {
	b.Bounds = RectAt(Pt{}, Pt{BallSize, BallSize})
	b.Reset(d, r)
	return
}

// Move advances the ball by one frame and reflects it vertically if it
// reached the top or the bottom of the screen. The position is not corrected,
// so the ball may stick out of the screen by less than one step for a frame.
func (b *Ball) Move(screenHeight int64) {
	b.Bounds.Translate(b.Velocity)
	if b.Bounds.Top() <= 0 || b.Bounds.Bottom() >= screenHeight {
		b.Velocity.Y = -b.Velocity.Y
	}
}

// Reset puts the ball in the center of the screen and gives it a new random
// diagonal direction. The direction may point towards either side, including
// the side that just scored.
func (b *Ball) Reset(d Dimensions, r *Rand) {
	b.Bounds.SetCenter(d.Center())
	b.Velocity.X = r.RSign(BallStartSpeed)
	b.Velocity.Y = r.RSign(BallStartSpeed)
}

func (b *Ball) SetVelocity(v Pt) {
	b.Velocity.X = Clamp(v.X, -BallMaxSpeed, BallMaxSpeed)
	b.Velocity.Y = Clamp(v.Y, -BallMaxSpeed, BallMaxSpeed)
}

func (b *Ball) ReflectHorizontally() {
	b.Velocity.X = -b.Velocity.X
}
