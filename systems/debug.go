package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/fonts"
	"github.com/automoto/movingsquare/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugToggle flips the collider overlay on F1.
func UpdateDebugToggle(ecs *ecs.ECS) {
	debug := GetOrCreateDebug(ecs)
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		debug.ShowColliders = !debug.ShowColliders
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).ShowColliders {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		origin := components.SpaceFrame.Get(spaceEntry).Frame.Origin
		height := float64(cfg.C.Height)

		for _, obj := range space.Objects() {
			// resolv rectangles are stored y-up like the world
			x := obj.X + origin.X
			y := height - (obj.Y + origin.Y + obj.H)

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvCoin) {
				c = color.RGBA{255, 255, 0, 255}
			} else if obj.HasTags(tags.ResolvDoor) {
				c = color.RGBA{255, 0, 0, 255}
			}

			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	body := components.Body.Get(player)
	lines := []string{
		fmt.Sprintf("pos %.1f, %.1f", body.Pos.X, body.Pos.Y),
		fmt.Sprintf("speed %.2f, %.2f", body.Speed.X, body.Speed.Y),
		fmt.Sprintf("contacts %v lock %v counter %d", body.Contacts, body.JumpLock, body.GravityCounter),
	}
	if s := GetSession(ecs); s != nil {
		lines = append(lines, fmt.Sprintf("phase %s", s.Phase))
	}
	if entry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(entry); level.Loaded {
			lines = append(lines, fmt.Sprintf("level %s (%d objects)", level.Path, level.Objects))
		}
	}

	face := fonts.Small.Get()
	y := screen.Bounds().Dy() - 12*len(lines)
	for i, line := range lines {
		text.Draw(screen, line, face, int(cfg.HUD.Margin), y+12*i, cfg.White)
	}
}

// GetOrCreateDebug returns the singleton Debug component, seeded from the -debug flag
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{
			ShowColliders: cfg.Debug.ShowColliders,
		})
	}
	return components.Debug.Get(entry)
}
