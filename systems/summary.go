package systems

import (
	"fmt"

	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/fonts"
	"github.com/automoto/movingsquare/shared/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// OpenSummary shows the end-of-run screen and records the completion time.
func OpenSummary(e *ecs.ECS, result session.Summary) {
	summary := GetOrCreateSummary(e)
	best, isNew := RecordCompletion(result.Run, result.Ticks, result.Coins)

	*summary = components.SummaryData{
		Active:         true,
		Result:         result,
		BestTicks:      best,
		NewBest:        isNew,
		SelectedOption: components.SummaryReplay,
	}
}

// IsSummaryActive reports whether the run has finished
func IsSummaryActive(e *ecs.ECS) bool {
	entry, ok := components.Summary.First(e.World)
	return ok && components.Summary.Get(entry).Active
}

// NewUpdateSummary creates an UpdateSummary system with scene transition capability
func NewUpdateSummary(sceneChanger SceneChanger, createReplayScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if !IsSummaryActive(e) {
			return
		}
		summary := GetOrCreateSummary(e)

		selected := int(summary.SelectedOption)
		chosen := navigateMenu(e, &selected, len(cfg.Summary.MenuOptions))
		summary.SelectedOption = components.SummaryMenuOption(selected)
		if !chosen {
			return
		}

		switch summary.SelectedOption {
		case components.SummaryReplay:
			sceneChanger.ChangeScene(createReplayScene())
		case components.SummaryMainMenu:
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// SummaryLines returns the result lines shown on the summary screen
func SummaryLines(summary *components.SummaryData) []string {
	best := session.Summary{Ticks: summary.BestTicks}.Elapsed()
	bestLine := fmt.Sprintf("Best: %.2fs", best.Seconds())
	if summary.NewBest {
		bestLine += "  New best!"
	}
	return []string{
		fmt.Sprintf("Time: %.2fs", summary.Result.Elapsed().Seconds()),
		fmt.Sprintf("Coins: %d", summary.Result.Coins),
		bestLine,
	}
}

// DrawSummary renders the end-of-run overlay
func DrawSummary(e *ecs.ECS, screen *ebiten.Image) {
	if !IsSummaryActive(e) {
		return
	}
	summary := GetOrCreateSummary(e)

	fillScreen(screen, cfg.Summary.OverlayColor)
	width := float64(screen.Bounds().Dx())

	titleFont := fonts.Title.Get()
	title := cfg.Summary.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.Summary.TitleY), cfg.Summary.TitleColor)

	lineFont := fonts.Bold.Get()
	for i, line := range SummaryLines(summary) {
		y := cfg.Summary.LinesStartY + float64(i)*cfg.Summary.LineHeight
		text.Draw(screen, line, lineFont, centerTextX(line, lineFont, width), int(y), cfg.Summary.TextColor)
	}

	list := menuList{
		options:  cfg.Summary.MenuOptions,
		y:        cfg.Summary.MenuStartY,
		step:     cfg.Summary.MenuItemHeight,
		normal:   cfg.Summary.TextColor,
		selected: cfg.Summary.TextColorSelected,
	}
	list.draw(screen, lineFont, int(summary.SelectedOption))
}

// GetOrCreateSummary returns the singleton Summary component, creating if needed
func GetOrCreateSummary(e *ecs.ECS) *components.SummaryData {
	entry, ok := components.Summary.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Summary))
	}
	return components.Summary.Get(entry)
}
