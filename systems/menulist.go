package systems

import (
	"image/color"

	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// menuList is a vertical column of centered options. y is the baseline of
// the first option.
type menuList struct {
	options  []string
	y        float64
	step     float64
	normal   color.RGBA
	selected color.RGBA
}

func (m menuList) draw(screen *ebiten.Image, face font.Face, selected int) {
	width := float64(screen.Bounds().Dx())
	for i, option := range m.options {
		c := m.normal
		if i == selected {
			c = m.selected
		}
		y := m.y + float64(i)*m.step
		text.Draw(screen, option, face, centerTextX(option, face, width), int(y), c)
	}
}

// navigateMenu moves *selected up or down with wrap-around and reports
// whether the current option was chosen this frame.
func navigateMenu(e *ecs.ECS, selected *int, n int) bool {
	if n == 0 {
		return false
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		*selected = (*selected - 1 + n) % n
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		*selected = (*selected + 1) % n
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		return true
	}
	return false
}

// controlsHint names the navigation buttons of the last used device. The
// resume button is appended when withResume is set.
func controlsHint(method components.InputMethod, withResume bool) string {
	var hint, resume string
	switch method {
	case components.InputPlayStation:
		hint, resume = "Left Stick/D-Pad: Navigate   Cross: Select", "Options"
	case components.InputXbox:
		hint, resume = "Left Stick/D-Pad: Navigate   A: Select", "Start"
	default:
		hint, resume = "Arrows: Navigate   Enter: Select", "Esc"
	}
	if withResume {
		hint += "   " + resume + ": Resume"
	}
	return hint
}

func fillScreen(screen *ebiten.Image, c color.RGBA) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}
