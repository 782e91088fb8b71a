package systems

import (
	"os"

	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates the main menu system. Play starts the default run
// and Levels opens the run picker.
func NewUpdateMenu(sceneChanger SceneChanger, createPlayScene func() interface{}, createLevelsScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)

		if MenuBackPressed(e) {
			os.Exit(0)
		}
		if !navigateMenu(e, &menu.SelectedIndex, len(menu.VisibleOptions)) {
			return
		}

		switch menu.VisibleOptions[menu.SelectedIndex] {
		case components.MainMenuPlay:
			sceneChanger.ChangeScene(createPlayScene())
		case components.MainMenuLevels:
			sceneChanger.ChangeScene(createLevelsScene())
		case components.MainMenuExit:
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	fillScreen(screen, cfg.Menu.BackgroundColor)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	titleFont := fonts.Title.Get()
	title := cfg.Menu.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	labels := make([]string, len(menu.VisibleOptions))
	for i, option := range menu.VisibleOptions {
		labels[i] = cfg.Menu.MenuOptions[option]
	}
	list := menuList{
		options:  labels,
		y:        cfg.Menu.MenuStartY + cfg.Menu.MenuItemHeight,
		step:     cfg.Menu.MenuItemHeight + cfg.Menu.MenuItemGap,
		normal:   cfg.Menu.TextColorNormal,
		selected: cfg.Menu.TextColorSelected,
	}
	list.draw(screen, fonts.Bold.Get(), menu.SelectedIndex)

	hint := controlsHint(getOrCreateInput(e).LastInputMethod, false)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-12, cfg.Menu.TextColorNormal)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			VisibleOptions: []components.MainMenuOption{
				components.MainMenuPlay,
				components.MainMenuLevels,
				components.MainMenuExit,
			},
		})
	}
	return components.Menu.Get(entry)
}
