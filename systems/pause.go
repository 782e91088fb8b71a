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

// NewUpdatePause creates an UpdatePause system that can leave to the main menu.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func NewUpdatePause(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		// The summary screen owns input once a run is finished
		if IsSummaryActive(e) {
			return
		}

		pause := GetOrCreatePause(e)
		if GetAction(getOrCreateInput(e), cfg.ActionPause).JustPressed {
			pause.IsPaused = !pause.IsPaused
			pause.SelectedOption = components.MenuResume
			return
		}
		if !pause.IsPaused {
			return
		}

		selected := int(pause.SelectedOption)
		chosen := navigateMenu(e, &selected, len(cfg.Pause.MenuOptions))
		pause.SelectedOption = components.PauseMenuOption(selected)
		if !chosen {
			return
		}

		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuMainMenu:
			sceneChanger.ChangeScene(createMenuScene())
		case components.MenuExit:
			os.Exit(0)
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}
	fillScreen(screen, cfg.Pause.OverlayColor)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	options := cfg.Pause.MenuOptions
	step := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	list := menuList{
		options:  options,
		y:        (height-float64(len(options))*step)/2 + cfg.Pause.MenuItemHeight,
		step:     step,
		normal:   cfg.Pause.TextColorNormal,
		selected: cfg.Pause.TextColorSelected,
	}
	list.draw(screen, fonts.Bold.Get(), int(pause.SelectedOption))

	hint := controlsHint(getOrCreateInput(ecs).LastInputMethod, true)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-12, cfg.Pause.TextColorNormal)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}

// WithSummaryCheck wraps a system to skip execution once the run is finished
func WithSummaryCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsSummaryActive(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks skips system while paused or once the run is finished.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithSummaryCheck(system))
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
