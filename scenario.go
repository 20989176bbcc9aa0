package main

// Scenario presets a freshly created World. It is meant for reproducing
// specific situations by hand (LoadTest in the config) and in tests. Every
// field is optional, a nil field leaves the World as NewWorld made it.
type Scenario struct {
	Player       *Pt       `yaml:"Player"`
	Opponent     *Pt       `yaml:"Opponent"`
	Ball         *Pt       `yaml:"Ball"`
	BallVelocity *Pt       `yaml:"BallVelocity"`
	Score        *[2]int64 `yaml:"Score"`
}

// Apply positions paddles by their top-left corner and the ball by its
// center. Paddle positions are clamped to the screen.
func (s *Scenario) Apply(w *World) {
	if s.Player != nil {
		w.Player.Bounds.SetPos(Pt{s.Player.X,
			Clamp(s.Player.Y, 0, w.Height-w.Player.Bounds.Height())})
	}
	if s.Opponent != nil {
		w.Opponent.Bounds.SetPos(Pt{s.Opponent.X,
			Clamp(s.Opponent.Y, 0, w.Height-w.Opponent.Bounds.Height())})
	}
	if s.Ball != nil {
		w.Ball.Bounds.SetCenter(*s.Ball)
	}
	if s.BallVelocity != nil {
		w.Ball.SetVelocity(*s.BallVelocity)
	}
	if s.Score != nil {
		w.Score[PlayerSide] = Max(0, s.Score[PlayerSide])
		w.Score[OpponentSide] = Max(0, s.Score[OpponentSide])
	}
}

func LoadScenario(fsys FS, filename string) (s Scenario) {
	LoadYAML(fsys, filename, &s)
	return
}
