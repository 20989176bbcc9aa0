package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"log/slog"
	"os"
	"time"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play. It is meant as a unique label for the functionality that a player
// is presented with.
// ReleaseVersion must change when SimulationVersion or InputVersion change.
// It also changes when nothing in the simulation changes, for example when
// uploads are enabled or disabled, asserts are enabled or disabled or the
// graphics change.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	Playback
	DebugCrash
)

type Gui struct {
	Config
	world               World
	FSys                FS
	defaultFont         font.Face
	renderer            ScreenRenderer
	playthrough         Playthrough
	frameIdx            int64
	state               GameState
	folderWatcher       FolderWatcher
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	FrameSkipShiftArrow int64
	FrameSkipArrow      int64
	enableDebugAreas    bool
	buttonPlaybackPlay  Rectangle
	buttonPlaybackBar   Rectangle
	username            string
	uploadChannel       chan *Playthrough
	uploadDone          chan struct{}
	quitRequested       bool
	devModeEnabled      bool
}

type Config struct {
	StartState    string     `yaml:"StartState"`
	PlaybackFile  string     `yaml:"PlaybackFile"`
	RecordToFile  bool       `yaml:"RecordToFile"`
	RecordingFile string     `yaml:"RecordingFile"`
	LoadTest      bool       `yaml:"LoadTest"`
	TestFile      string     `yaml:"TestFile"`
	Screen        Dimensions `yaml:"Screen"`
	// Seed is used for the random generator of the World. 0 means a new seed
	// is chosen for every match.
	Seed int64 `yaml:"Seed"`
}

func main() {
	var g Gui
	g.username = getUsername()
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Initialize the watcher's timestamps so that the first check after
		// startup doesn't restart the match.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	switch g.StartState {
	case "Playback":
		g.state = Playback
		g.enableDebugAreas = true
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
		g.world = NewWorldFromPlaythrough(g.playthrough)
		slog.Info("playing back", "file", g.PlaybackFile,
			"frames", len(g.playthrough.History))
	case "DebugCrash":
		g.state = DebugCrash
		g.enableDebugAreas = true
		// Don't crash when we are debugging the crash. This is useful if the
		// crash was caused by one of my asserts. I can have world.Step()
		// with the bug execute and see the results.
		CheckCrashes = false
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
		g.world = NewWorldFromPlaythrough(g.playthrough)

		// The last input caused the crash, so run the whole playthrough
		// except the last input. This gives me a chance to see the state of
		// the world before the bug is triggered.
		g.frameIdx = max(int64(len(g.playthrough.History))-1, 0)
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	case "Play":
		g.state = PlayScreen
		// A channel size of 10 means the channel will buffer 10 playthroughs
		// before it is full and it blocks.
		g.uploadChannel = make(chan *Playthrough, 10)
		g.uploadDone = make(chan struct{})
		go UploadPlaythroughs(g.username, g.uploadChannel, g.uploadDone)
		g.StartMatch()
	default:
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.UpdateWindowSize()
	ebiten.SetTPS(60)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(&g); err != nil {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

// StartMatch creates a new World and a new playthrough for it, based on the
// current config.
func (g *Gui) StartMatch() {
	seed := g.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var scenario Scenario
	if g.LoadTest {
		scenario = LoadScenario(g.FSys, g.TestFile)
	}
	g.playthrough = NewPlaythrough(seed, g.Screen, scenario)
	g.world = NewWorldFromPlaythrough(g.playthrough)
	g.frameIdx = 0
	if g.uploadChannel != nil {
		g.uploadChannel <- g.playthrough.Clone()
	}
	slog.Info("match started", "release", ReleaseVersion, "seed", seed,
		"id", g.playthrough.Id, "user", g.username)
}

// Quit ends the match. A playthrough of a played match is saved and uploaded
// before the game closes. Playbacks are not.
func (g *Gui) Quit() {
	g.quitRequested = true
	slog.Info("quit", "frames", g.frameIdx,
		"player", g.world.Score[PlayerSide],
		"opponent", g.world.Score[OpponentSide])
	if g.state != PlayScreen {
		return
	}
	if g.RecordToFile {
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}
	g.uploadChannel <- g.playthrough.Clone()
	close(g.uploadChannel)
	<-g.uploadDone
}

// HandlePanic saves the playthrough that led to a crash so that it can be
// replayed with StartState: DebugCrash. It must be deferred directly.
func (g *Gui) HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	if g.state == PlayScreen {
		WriteFile("crash.minipong", g.playthrough.Serialize())
		slog.Error("crashed, playthrough saved", "file", "crash.minipong",
			"frames", len(g.playthrough.History))
	}
	panic(r)
}
