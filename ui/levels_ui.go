package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelSelectUI lists the discovered runs with one button each.
type LevelSelectUI struct {
	UI *ebitenui.UI

	OnSelect func(run leveldata.Info)
	OnGoBack func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewLevelSelectUI(runs []leveldata.Info, onSelect func(run leveldata.Info), onGoBack func()) *LevelSelectUI {
	ui := &LevelSelectUI{
		OnSelect: onSelect,
		OnGoBack: onGoBack,
	}
	ui.loadFonts()
	ui.buildUI(runs)
	return ui
}

func (ui *LevelSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 22}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 16}
}

// RunLabel is the button text for a run.
func RunLabel(run leveldata.Info) string {
	label := fmt.Sprintf("%s (%d levels)", run.Name, run.Amount)
	if run.Author != "" {
		label += " by " + run.Author
	}
	return label
}

func (ui *LevelSelectUI) buildUI(runs []leveldata.Info) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 25, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("LEVELS", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 140, 0, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	if len(runs) == 0 {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text("No runs found", &ui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{255, 200, 100, 255},
			}),
		))
	}

	for _, run := range runs {
		contentContainer.AddChild(ui.newButton(RunLabel(run), 360, func() {
			if ui.OnSelect != nil {
				ui.OnSelect(run)
			}
		}))
	}

	contentContainer.AddChild(ui.newButton("Back", 120, func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack()
		}
	}))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *LevelSelectUI) newButton(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 36)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 180, 50, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *LevelSelectUI) Update() {
	ui.UI.Update()
}

func (ui *LevelSelectUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
