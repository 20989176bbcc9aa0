package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"slices"
)

func (g *Gui) Update() error {
	defer g.HandlePanic()

	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.devModeEnabled && g.folderWatcher.FolderContentsChanged() {
		// Something in data/ changed. Reload it and start over, this makes
		// it quick to tweak a scenario and see the result.
		g.LoadGuiData()
		if g.state == PlayScreen {
			g.StartMatch()
		}
	}

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	if g.quitRequested {
		return ebiten.Termination
	}
	return nil
}

func (g *Gui) UpdatePlayScreen() {
	input := ReadPlayerInput(g.pressedKeys, ebiten.IsWindowBeingClosed())

	// Save the input in the playthrough before stepping the World. If a bug
	// in the World causes it to crash, we want the input that caused the bug
	// to be part of the saved playthrough.
	g.playthrough.History = append(g.playthrough.History, input)

	g.world.Step(input)
	g.frameIdx++

	if g.world.State == Terminated {
		g.Quit()
	}
}

// QuitRequested handles quitting for the modes that don't feed the keyboard
// to the World.
func (g *Gui) QuitRequested() bool {
	return ebiten.IsWindowBeingClosed() || g.JustPressed(ebiten.KeyEscape)
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func CursorPos() Pt {
	x, y := ebiten.CursorPosition()
	return Pt{int64(x), int64(y)}
}

func (g *Gui) JustClicked(button Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0) {
		return false
	}
	return button.ContainsPt(CursorPos())
}

func (g *Gui) LeftClickPressedOn(button Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButton0) {
		return false
	}
	return button.ContainsPt(CursorPos())
}

// ReplayUntil rewinds the world and replays the playthrough until the World
// is at frame targetFrameIdx.
func (g *Gui) ReplayUntil(targetFrameIdx int64) {
	g.world = NewWorldFromPlaythrough(g.playthrough)
	for i := range targetFrameIdx {
		g.world.Step(g.playthrough.History[i])
	}
	g.frameIdx = targetFrameIdx
}

// PlaybackTargetFrame decides which frame the playback should show next,
// based on the frame currently shown and on what the user asked for.
func PlaybackTargetFrame(frameIdx int64, nFrames int64, skip int64) int64 {
	return Clamp(frameIdx+skip, 0, max(nFrames-1, 0))
}

func (g *Gui) UpdatePlayback() {
	if g.QuitRequested() {
		g.Quit()
		return
	}

	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	userRequestedPlaybackPause := g.JustPressed(ebiten.KeySpace) ||
		g.JustClicked(g.buttonPlaybackPlay)
	if userRequestedPlaybackPause {
		g.playbackPaused = !g.playbackPaused
	}

	skip := int64(0)
	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		skip -= g.FrameSkipShiftArrow
	}
	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		skip += g.FrameSkipShiftArrow
	}
	if g.Pressed(ebiten.KeyLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			skip -= g.FrameSkipArrow
		} else {
			// While playing, one frame back is undone by the frame played
			// below, so go back two.
			skip -= g.FrameSkipArrow * 2
		}
	}
	if g.Pressed(ebiten.KeyRight) && !g.Pressed(ebiten.KeyShift) {
		skip += g.FrameSkipArrow
	}
	targetFrameIdx := PlaybackTargetFrame(g.frameIdx, nFrames, skip)

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOn(g.buttonPlaybackBar) {
		dx := CursorPos().X - g.buttonPlaybackBar.Min.X
		targetFrameIdx = PlaybackTargetFrame(
			dx*nFrames/max(g.buttonPlaybackBar.Width(), 1), nFrames, 0)
	}

	if targetFrameIdx != g.frameIdx {
		g.ReplayUntil(targetFrameIdx)
	}

	if !g.playbackPaused && g.frameIdx < nFrames-1 {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}
}

func (g *Gui) UpdateDebugCrash() {
	if g.QuitRequested() {
		g.Quit()
		return
	}

	nFrames := int64(len(g.playthrough.History))

	// Go to the next frame.
	goToNextFrame := g.JustPressed(ebiten.KeyD) || g.JustPressed(ebiten.KeyRight)
	if goToNextFrame && g.frameIdx < nFrames {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}

	// Go to the previous frame. I have no better way to go to the previous
	// frame than redoing all the frames from the beginning.
	goToPreviousFrame := g.JustPressed(ebiten.KeyA) || g.JustPressed(ebiten.KeyLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		g.ReplayUntil(g.frameIdx - 1)
	}
}
