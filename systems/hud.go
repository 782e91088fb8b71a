package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/fonts"
	"github.com/automoto/movingsquare/shared/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the coin score and the run stopwatch in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetSession(ecs)
	if s == nil {
		return
	}
	hud := GetOrCreateHUD(ecs)

	face := fonts.Bold.Get()
	margin := int(cfg.HUD.Margin)
	lineHeight := face.Metrics().Height.Ceil()

	scoreColor := lerpColor(cfg.HUD.TextColor, cfg.HUD.PulseColor, hud.PulseValue)
	text.Draw(screen, "Coins "+s.Score.String(), face, margin, margin+lineHeight, scoreColor)

	elapsed := session.Summary{Ticks: s.Ticks}.Elapsed()
	clock := fmt.Sprintf("%.2fs", elapsed.Seconds())
	text.Draw(screen, clock, face, margin, margin+2*lineHeight, cfg.HUD.TextColor)

	level := fmt.Sprintf("%s %d/%d", s.Run.Name, s.Run.Index+1, s.Run.Count)
	width := float64(screen.Bounds().Dx())
	levelX := int(width) - margin - text.BoundString(face, level).Dx()
	text.Draw(screen, level, face, levelX, margin+lineHeight, cfg.HUD.TextColor)
}

// TriggerScorePulse restarts the score label highlight.
func TriggerScorePulse(ecs *ecs.ECS) {
	hud := GetOrCreateHUD(ecs)
	hud.Pulse = gween.New(cfg.HUD.PulseScale, 0, cfg.HUD.PulseDuration, ease.OutQuad)
	hud.PulseValue = cfg.HUD.PulseScale
}

func updateScorePulse(ecs *ecs.ECS, dt float32) {
	hud := GetOrCreateHUD(ecs)
	if hud.Pulse == nil {
		return
	}
	value, done := hud.Pulse.Update(dt)
	hud.PulseValue = value
	if done {
		hud.Pulse = nil
		hud.PulseValue = 0
	}
}

// lerpColor blends from a to b by t in [0, 1].
func lerpColor(a, b color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return a
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// GetOrCreateHUD returns the singleton HUD component, creating if needed
func GetOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.HUD))
	}
	return components.HUD.Get(entry)
}
