package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"image"
)

func ToImageRect(r Rectangle) image.Rectangle {
	return image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image in a sub-image.
	// I think of sub-images in local coordinates, so translate here and let
	// the drawing code add Bounds().Min back.
	minPt := screen.Bounds().Min
	ir := ToImageRect(r)
	ir.Min = ir.Min.Add(minPt)
	ir.Max = ir.Max.Add(minPt)
	return screen.SubImage(ir).(*ebiten.Image)
}
