package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"image/color"
)

var debugBackgroundColor = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
var debugBarColor = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
var debugCursorColor = color.NRGBA{R: 251, G: 150, B: 32, A: 255}

func (g *Gui) Draw(screen *ebiten.Image) {
	defer g.HandlePanic()

	g.renderer.Screen = SubImage(screen, g.PlayArea())
	g.world.Render(&g.renderer)

	if g.enableDebugAreas {
		g.DrawDebugControls(SubImage(screen, g.DebugArea()))
	}
}

func (g *Gui) DrawDebugControls(screen *ebiten.Image) {
	r := ScreenRenderer{Screen: screen, Face: g.defaultFont}
	r.Clear(debugBackgroundColor)

	// Remember the regions in screen coordinates so that Update() can react
	// when they are clicked.
	origin := Pt{int64(screen.Bounds().Min.X), int64(screen.Bounds().Min.Y)}
	height := int64(screen.Bounds().Dy())
	width := int64(screen.Bounds().Dx())

	// Play/pause button. Two bars mean pause, one block means play.
	button := RectAt(Pt{}, Pt{height, height})
	if g.playbackPaused {
		r.FillRect(RectAt(Pt{height / 4, height / 4}, Pt{height / 2, height / 2}),
			ForegroundColor)
	} else {
		r.FillRect(RectAt(Pt{height / 4, height / 4}, Pt{height / 6, height / 2}),
			ForegroundColor)
		r.FillRect(RectAt(Pt{height * 7 / 12, height / 4}, Pt{height / 6, height / 2}),
			ForegroundColor)
	}
	g.buttonPlaybackPlay = button
	g.buttonPlaybackPlay.Translate(origin)

	// Play bar.
	barXMargin := int64(10)
	barX := height + barXMargin
	barWidth := width - barX - barXMargin
	bar := RectAt(Pt{barX, height / 3}, Pt{barWidth, height / 3})
	r.FillRect(bar, debugBarColor)
	g.buttonPlaybackBar = bar
	g.buttonPlaybackBar.Translate(origin)

	// Playback bar cursor.
	nFrames := max(int64(len(g.playthrough.History)), 1)
	cursorWidth := int64(6)
	cursorX := barX + g.frameIdx*barWidth/nFrames - cursorWidth/2
	r.FillRect(RectAt(Pt{cursorX, 0}, Pt{cursorWidth, height}), debugCursorColor)

	r.DrawText(fmt.Sprintf("%d/%d", g.frameIdx, nFrames),
		Pt{barX, 0}, ForegroundColor)
}
