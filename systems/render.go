package systems

import (
	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font"
)

// screenRect converts a centered y-up world box to a screen rectangle.
func screenRect(pos, size math.Vec2) (x, y, w, h float32) {
	left := pos.X - size.X/2
	top := float64(cfg.C.Height) - (pos.Y + size.Y/2)
	return float32(left), float32(top), float32(size.X), float32(size.Y)
}

// DrawLevel renders the background, obstacles, coins and doors.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Objects.BackgroundColor)

	tags.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		box := components.Box.Get(e)
		x, y, w, h := screenRect(box.Pos, box.Size)
		vector.FillRect(screen, x, y, w, h, cfg.Objects.ObstacleColor, false)
	})

	components.Door.Each(ecs.World, func(e *donburi.Entry) {
		box := components.Box.Get(e)
		c := cfg.Objects.DoorLockedColor
		if components.Door.Get(e).Open {
			c = cfg.Objects.DoorOpenColor
		}
		x, y, w, h := screenRect(box.Pos, box.Size)
		vector.FillRect(screen, x, y, w, h, c, false)
	})

	components.Coin.Each(ecs.World, func(e *donburi.Entry) {
		box := components.Box.Get(e)
		coin := components.Coin.Get(e)
		x, y, w, h := screenRect(box.Pos, box.Size)
		// Offset is up in world space
		vector.FillCircle(screen, x+w/2, y+h/2-coin.Offset, w/2, cfg.Objects.CoinColor, true)
	})
}

// DrawPlayer renders the player square.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		x, y, w, h := screenRect(body.Pos, body.Size)
		vector.FillRect(screen, x, y, w, h, cfg.Player.Color, false)
	})
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
