package scenes

import (
	"image/color"
	"io/fs"
	"sync"

	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/automoto/movingsquare/systems"
	"github.com/automoto/movingsquare/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSelectScene lets the player pick a run.
type LevelSelectScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	selectUI     *ui.LevelSelectUI
	fsys         fs.FS
	once         sync.Once

	selected     *leveldata.Info
	shouldGoBack bool
}

func NewLevelSelectScene(sc SceneChanger) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc}
}

func (s *LevelSelectScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.selectUI.Update()

	if s.selected != nil {
		// Flush the select sound before this world is dropped.
		systems.UpdateAudio(s.ecsWorld)
		s.sceneChanger.ChangeScene(NewPlatformerScene(s.sceneChanger, s.fsys, *s.selected))
		return
	}

	if s.shouldGoBack || systems.MenuBackPressed(s.ecsWorld) {
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger))
	}
}

func (s *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 25, 50, 255})

	if s.ecsWorld == nil {
		return
	}

	s.selectUI.Draw(screen)
}

func (s *LevelSelectScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())
	s.ecsWorld.AddSystem(systems.UpdateAudio)
	s.ecsWorld.AddSystem(systems.UpdateInput)

	fsys, runs := listRuns()
	s.fsys = fsys
	s.selectUI = ui.NewLevelSelectUI(
		runs,
		func(run leveldata.Info) {
			systems.PlaySFX(s.ecsWorld, cfg.SoundMenuSelect)
			s.selected = &run
		},
		func() { s.shouldGoBack = true },
	)
}
