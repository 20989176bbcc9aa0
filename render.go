package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"image/color"
)

// Renderer receives the draw requests for one frame. Presenting the frame
// and waiting for the next one is not its job, ebitengine does that after
// Draw() returns.
type Renderer interface {
	Clear(c color.Color)
	FillRect(r Rectangle, c color.Color)
	DrawText(s string, pos Pt, c color.Color)
}

// ScreenRenderer draws on an ebitengine image. Coordinates are relative to
// the top-left corner of the image, even if the image is a sub-image.
type ScreenRenderer struct {
	Screen *ebiten.Image
	Face   font.Face
}

func (s *ScreenRenderer) Clear(c color.Color) {
	s.Screen.Fill(c)
}

func (s *ScreenRenderer) FillRect(r Rectangle, c color.Color) {
	origin := s.Screen.Bounds().Min
	vector.DrawFilledRect(s.Screen,
		float32(int64(origin.X)+r.Min.X),
		float32(int64(origin.Y)+r.Min.Y),
		float32(r.Width()),
		float32(r.Height()),
		c,
		false)
}

// DrawText draws s so that the top-left corner of its bounds is at pos.
// text.Draw expects the position of the baseline, which is why the bounds of
// the string are needed.
func (s *ScreenRenderer) DrawText(str string, pos Pt, c color.Color) {
	bounds := text.BoundString(s.Face, str)
	origin := s.Screen.Bounds().Min
	x := origin.X + int(pos.X) - bounds.Min.X
	y := origin.Y + int(pos.Y) - bounds.Min.Y
	text.Draw(s.Screen, str, s.Face, x, y, c)
}
