package factory

import (
	"github.com/automoto/movingsquare/archetypes"
	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/shared/motion"
	"github.com/automoto/movingsquare/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := math.Vec2{X: cfg.Player.Size, Y: cfg.Player.Size}
	components.Body.SetValue(player, motion.Body{Pos: pos, Size: size})

	// The probe is inflated so obstacles within the contact tolerance share
	// a cell with it.
	margin := cfg.Levels.ProbeMargin
	w, h := size.X+2*margin, size.Y+2*margin
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, player, obj)
	SyncProbe(ecs, player)

	return player
}

// SyncProbe moves the player's broadphase object to match its body.
func SyncProbe(ecs *ecs.ECS, player *donburi.Entry) {
	body := components.Body.Get(player)
	obj := components.Object.Get(player)
	origin := spaceOrigin(ecs)
	margin := cfg.Levels.ProbeMargin
	obj.X = body.Left() - origin.X - margin
	obj.Y = body.Bottom() - origin.Y - margin
	obj.Update()
}

// MovePlayer places the player at a spawn point with its motion state
// cleared.
func MovePlayer(ecs *ecs.ECS, player *donburi.Entry, pos math.Vec2) {
	body := components.Body.Get(player)
	*body = motion.Body{Pos: pos, Size: body.Size}
	components.Intents.Get(player).Pending = nil
	SyncProbe(ecs, player)
}
