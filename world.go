package main

import (
	"fmt"
	"image/color"
	"strconv"
)

// SimulationVersion identifies the rules implemented by World. A playthrough
// can only be replayed by a World with the same SimulationVersion. It must
// change every time a change in World makes an old playthrough play out
// differently.
const SimulationVersion = 1

// World rules
// - The player paddle guards the left wall, the opponent paddle guards the
// right wall. Paddles only move vertically and never leave the screen.
// - The opponent follows the ball: every frame it moves towards the ball's
// vertical center. It never stands still.
// - The ball bounces off the top and bottom walls and off the paddles.
// - When the ball reaches a side wall, the other side gets a point and the
// ball restarts from the center in a random diagonal direction.
// - The match has no end. It runs until the player quits.

type Dimensions struct {
	Width  int64 `yaml:"Width"`
	Height int64 `yaml:"Height"`
}

var DefaultDimensions = Dimensions{Width: 800, Height: 600}

func (d Dimensions) Center() Pt {
	return Pt{d.Width / 2, d.Height / 2}
}

type MatchState int64

const (
	Running MatchState = iota
	Terminated
)

const (
	PlayerSide   = 0
	OpponentSide = 1
)

type PlayerInput struct {
	Up   bool
	Down bool
	Quit bool
}

type World struct {
	Dimensions
	Rand     Rand
	Player   Paddle
	Opponent Paddle
	Ball     Ball
	Score    [2]int64
	State    MatchState
	FrameIdx int64
}

func NewWorld(seed int64, d Dimensions, s Scenario) (w World) {
	if d.Width <= 0 || d.Height <= 0 {
		Check(fmt.Errorf("invalid dimensions: %dx%d", d.Width, d.Height))
	}
	w.Dimensions = d
	w.Rand = NewRand(seed)
	paddleY := d.Height/2 - PaddleHeight/2
	w.Player = NewPaddle(Pt{PaddleMargin, paddleY})
	w.Opponent = NewPaddle(Pt{d.Width - PaddleMargin - PaddleWidth, paddleY})
	w.Ball = NewBall(d, &w.Rand)
	w.State = Running
	s.Apply(&w)
	return
}

func NewWorldFromPlaythrough(p Playthrough) World {
	if p.SimulationVersion != SimulationVersion {
		Check(fmt.Errorf("can't replay a playthrough generated with "+
			"SimulationVersion %d, we are at SimulationVersion %d",
			p.SimulationVersion, SimulationVersion))
	}
	return NewWorld(p.Seed, p.Dimensions, p.Scenario)
}

func (w *World) Step(input PlayerInput) {
	if w.State == Terminated {
		return
	}
	if input.Quit {
		w.State = Terminated
		return
	}

	if input.Up {
		w.Player.Move(Up, w.Height)
	}
	if input.Down {
		w.Player.Move(Down, w.Height)
	}

	w.StepOpponent()
	w.Ball.Move(w.Height)

	// A single check for both paddles, so the ball is reflected at most once
	// per frame.
	if w.Ball.Bounds.Intersects(w.Player.Bounds) ||
		w.Ball.Bounds.Intersects(w.Opponent.Bounds) {
		w.Ball.ReflectHorizontally()
	}

	// Scoring is checked after the reflection, against the same position.
	if w.Ball.Bounds.Left() <= 0 {
		w.Score[OpponentSide]++
		w.Ball.Reset(w.Dimensions, &w.Rand)
	} else if w.Ball.Bounds.Right() >= w.Width {
		w.Score[PlayerSide]++
		w.Ball.Reset(w.Dimensions, &w.Rand)
	}

	w.FrameIdx++
	w.AssertInvariants()
}

// StepOpponent moves the opponent towards the ball. It only looks at where
// the ball is now, it doesn't try to predict where the ball will go.
func (w *World) StepOpponent() {
	if w.Ball.Bounds.Center().Y < w.Opponent.Bounds.Center().Y {
		w.Opponent.Move(Up, w.Height)
	} else {
		w.Opponent.Move(Down, w.Height)
	}
}

func (w *World) AssertInvariants() {
	for _, p := range []Paddle{w.Player, w.Opponent} {
		Assert(p.Bounds.Top() >= 0)
		Assert(p.Bounds.Bottom() <= w.Height)
	}
	Assert(Abs(w.Ball.Velocity.X) <= BallMaxSpeed)
	Assert(Abs(w.Ball.Velocity.Y) <= BallMaxSpeed)
	Assert(w.Score[PlayerSide] >= 0 && w.Score[OpponentSide] >= 0)
}

var ForegroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var BackgroundColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// ScoreTextY is the vertical position of the score banner.
const ScoreTextY = int64(10)

// Render describes the current frame to r: the background, both paddles, the
// ball and the two scores, always in this order.
func (w *World) Render(r Renderer) {
	r.Clear(BackgroundColor)
	r.FillRect(w.Player.Bounds, ForegroundColor)
	r.FillRect(w.Opponent.Bounds, ForegroundColor)
	r.FillRect(w.Ball.Bounds, ForegroundColor)
	r.DrawText(strconv.FormatInt(w.Score[PlayerSide], 10),
		Pt{w.Width / 4, ScoreTextY}, ForegroundColor)
	r.DrawText(strconv.FormatInt(w.Score[OpponentSide], 10),
		Pt{3 * w.Width / 4, ScoreTextY}, ForegroundColor)
}
