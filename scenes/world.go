package scenes

import (
	"image/color"
	"io/fs"
	"log"
	"sync"

	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/automoto/movingsquare/systems"
	"github.com/automoto/movingsquare/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// PlatformerScene plays one run from its first level to the summary.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	fsys         fs.FS
	run          leveldata.Info
	once         sync.Once
}

// NewPlatformerScene creates a game scene for run, reading levels from fsys
func NewPlatformerScene(sc SceneChanger, fsys fs.FS, run leveldata.Info) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, fsys: fsys, run: run}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ps.sceneChanger)
	}
	createReplayScene := func() interface{} {
		return NewPlatformerScene(ps.sceneChanger, ps.fsys, ps.run)
	}

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdatePause(ps.sceneChanger, createMenuScene))
	ecs.AddSystem(systems.UpdateDebugToggle)
	ecs.AddSystem(systems.UpdateLevelRequests)

	// Gameplay systems, skipped while paused or once the run is finished
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerInput))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCoins))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDoor))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTimer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTweens))

	ecs.AddSystem(systems.NewUpdateSummary(ps.sceneChanger, createReplayScene, createMenuScene))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Default, systems.DrawSummary)

	ps.ecs = ecs

	factory.CreateSpace(ps.ecs, factory.ScreenFrame(), cfg.Levels.SpaceCellSize)

	// The player must exist before the first level request is drained.
	center := math.Vec2{X: float64(cfg.C.Width) / 2, Y: float64(cfg.C.Height) / 2}
	factory.CreatePlayer(ps.ecs, center)

	factory.CreateLevel(ps.ecs, ps.fsys, ps.run)
	log.Printf("[SESSION] Starting run %s (%d levels)", ps.run.Name, ps.run.Amount)
}
