package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"slices"
)

// ReadPlayerInput turns the state of the keyboard and of the window into the
// input for one frame of the World. Up and down may both be pressed at the
// same time, the World applies both.
func ReadPlayerInput(pressedKeys []ebiten.Key, windowClosing bool) (input PlayerInput) {
	input.Up = slices.Contains(pressedKeys, ebiten.KeyArrowUp)
	input.Down = slices.Contains(pressedKeys, ebiten.KeyArrowDown)
	input.Quit = windowClosing || slices.Contains(pressedKeys, ebiten.KeyEscape)
	return
}
