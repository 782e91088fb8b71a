package scenes

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/movingsquare/assets"
	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is what the game loop drives.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// findRun reads the info file of the named run.
func findRun(name string) (fs.FS, leveldata.Info, error) {
	fsys, err := assets.Levels()
	if err != nil {
		return nil, leveldata.Info{}, err
	}
	info, err := leveldata.ReadInfo(fsys, name)
	if err != nil {
		return nil, leveldata.Info{}, fmt.Errorf("run %s: %w", name, err)
	}
	return fsys, info, nil
}

// listRuns returns every run that can be played, logging failures.
func listRuns() (fs.FS, []leveldata.Info) {
	fsys, err := assets.Levels()
	if err != nil {
		log.Printf("[LOADER] %v", err)
		return nil, nil
	}
	runs, err := leveldata.ListRuns(fsys, ".")
	if err != nil {
		log.Printf("[LOADER] %v", err)
		return fsys, nil
	}
	return fsys, runs
}

// NewRunScene starts the named run, falling back to the menu when it cannot
// be read.
func NewRunScene(sc SceneChanger, name string) Scene {
	fsys, run, err := findRun(name)
	if err != nil {
		log.Printf("[LOADER] Warning: %v", err)
		return NewMenuScene(sc)
	}
	return NewPlatformerScene(sc, fsys, run)
}
