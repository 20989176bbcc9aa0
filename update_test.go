package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPlaybackTargetFrame(t *testing.T) {
	assert.Equal(t, int64(5), PlaybackTargetFrame(5, 100, 0))
	assert.Equal(t, int64(15), PlaybackTargetFrame(5, 100, 10))
	assert.Equal(t, int64(0), PlaybackTargetFrame(5, 100, -10))
	assert.Equal(t, int64(99), PlaybackTargetFrame(95, 100, 10))
	assert.Equal(t, int64(0), PlaybackTargetFrame(0, 0, 1))
}

func TestReplayUntil(t *testing.T) {
	var g Gui
	g.playthrough = RandomPlaythrough(9, 500)

	// Replaying to a frame gives the same World as stepping to it.
	w := NewWorldFromPlaythrough(g.playthrough)
	for i := range 300 {
		w.Step(g.playthrough.History[i])
	}
	g.ReplayUntil(300)
	assert.Equal(t, int64(300), g.frameIdx)
	assert.Equal(t, w, g.world)

	// Going back works the same way.
	g.ReplayUntil(0)
	assert.Equal(t, NewWorldFromPlaythrough(g.playthrough), g.world)
}

func TestGuiAreas(t *testing.T) {
	var g Gui
	g.world = NewWorld(0, DefaultDimensions, Scenario{})
	assert.Equal(t, Pt{800, 600}, g.ScreenSize())
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	g.enableDebugAreas = true
	assert.Equal(t, Pt{800, 600 + DebugHeight}, g.ScreenSize())
	assert.Equal(t, NewRectangle(0, 600, 800, 600+DebugHeight), g.DebugArea())
	assert.Equal(t, NewRectangle(0, 0, 800, 600), g.PlayArea())
}
