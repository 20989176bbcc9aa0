package main

import "github.com/hajimehoshi/ebiten/v2"

// Visual areas
// ------------
//
// - The play area: the space the World is aware of. Its size is the size of
// the World, 800 x 600 by default.
// - The debug area: a strip under the play area with the playback controls.
// It is only displayed in Playback and DebugCrash.
// - The screen: the play area plus the debug area, if it is displayed.
// ebitengine scales the screen to fit the window and keeps the aspect ratio.

const DebugHeight = int64(60)

func (g *Gui) PlayArea() Rectangle {
	return RectAt(Pt{}, Pt{g.world.Width, g.world.Height})
}

func (g *Gui) DebugArea() Rectangle {
	return RectAt(Pt{0, g.world.Height}, Pt{g.world.Width, DebugHeight})
}

func (g *Gui) ScreenSize() Pt {
	size := Pt{g.world.Width, g.world.Height}
	if g.enableDebugAreas {
		size.Y += DebugHeight
	}
	return size
}

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// The screen bitmap always has the same size, no matter the window.
	// Cursor positions are reported by ebitengine in the coordinates of this
	// bitmap, so Update() can compare them directly with the button areas.
	size := g.ScreenSize()
	return int(size.X), int(size.Y)
}

func (g *Gui) UpdateWindowSize() {
	size := g.ScreenSize()
	ebiten.SetWindowSize(int(size.X), int(size.Y))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowTitle("Minipong")
}
