package main

import (
	"embed"
	"fmt"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"io/fs"
)

// FS groups together the filesystem interfaces that are common between
// embed.FS and what os.DirFS() returns. Config and scenarios are read through
// it, so they load the same whether data/ is embedded or on disk.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}

// ScoreFontSize is the size of the score digits, in pixels.
const ScoreFontSize = 36

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This avoids crashes due to reading files while they are still being
	// written. When reading from the embedded filesystem there is nothing to
	// wait for, so crash as soon as possible.
	previousVal := CheckCrashes
	if _, embedded := g.FSys.(*embed.FS); !embedded {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		g.Config = Config{}
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}
		if g.LoadTest {
			// Make sure the scenario parses before any match uses it.
			LoadScenario(g.FSys, g.TestFile)
		}

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	if g.Screen == (Dimensions{}) {
		g.Screen = DefaultDimensions
	}
	if g.Screen.Width <= 0 || g.Screen.Height <= 0 {
		Check(fmt.Errorf("invalid screen size in config: %dx%d",
			g.Screen.Width, g.Screen.Height))
	}
	if g.RecordToFile && g.RecordingFile == "" {
		Check(fmt.Errorf("RecordToFile is set but RecordingFile is empty"))
	}

	if g.defaultFont == nil {
		g.defaultFont = NewScoreFont()
		g.renderer.Face = g.defaultFont
	}
}

func NewScoreFont() font.Face {
	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	face, err := opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    ScoreFontSize,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
	return face
}
