package main

const PaddleWidth = int64(10)
const PaddleHeight = int64(100)
const PaddleSpeed = int64(5)

// PaddleMargin is the horizontal distance between a side wall and the paddle
// guarding it.
const PaddleMargin = int64(50)

type Direction int64

const (
	Up Direction = iota
	Down
)

// Paddle only ever moves vertically. Its bounds always stay between the top
// and the bottom of the screen.
type Paddle struct {
	Bounds Rectangle
	Speed  int64
}

func NewPaddle(pos Pt) (p Paddle) {
	p.Bounds = RectAt(pos, Pt{PaddleWidth, PaddleHeight})
	p.Speed = PaddleSpeed
	return
}

func (p *Paddle) Move(dir Direction, screenHeight int64) {
	y := p.Bounds.Min.Y
	if dir == Up {
		y -= p.Speed
	} else {
		y += p.Speed
	}
	y = Clamp(y, 0, screenHeight-p.Bounds.Height())
	p.Bounds.SetPos(Pt{p.Bounds.Min.X, y})
}
