package factory

import (
	"github.com/automoto/movingsquare/archetypes"
	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// boxObject builds the broadphase rectangle for a centered box. resolv
// only needs consistent axes, so the y-up world is used as is, shifted to
// the space origin.
func boxObject(ecs *ecs.ECS, pos, size math.Vec2, tag string) *resolv.Object {
	origin := spaceOrigin(ecs)
	x := pos.X - size.X/2 - origin.X
	y := pos.Y - size.Y/2 - origin.Y
	obj := resolv.NewObject(x, y, size.X, size.Y, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, size.X, size.Y))
	return obj
}

func CreateObstacle(ecs *ecs.ECS, pos, size math.Vec2) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)
	components.Box.SetValue(obstacle, components.BoxData{Pos: pos, Size: size})
	addToSpace(ecs, obstacle, boxObject(ecs, pos, size, tags.ResolvSolid))
	return obstacle
}

func CreateCoin(ecs *ecs.ECS, pos, size math.Vec2) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)
	components.Box.SetValue(coin, components.BoxData{Pos: pos, Size: size})
	addToSpace(ecs, coin, boxObject(ecs, pos, size, tags.ResolvCoin))

	// The bob is visual only; pickups use the box.
	half := cfg.Objects.CoinBobSeconds / 2
	height := cfg.Objects.CoinBobHeight
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, height, half, ease.InOutSine),
		gween.New(height, 0, half, ease.InOutSine),
	)
	components.Coin.SetValue(coin, components.CoinData{Bob: seq})

	return coin
}

func CreateDoor(ecs *ecs.ECS, pos, size math.Vec2) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)
	components.Box.SetValue(door, components.BoxData{Pos: pos, Size: size})
	addToSpace(ecs, door, boxObject(ecs, pos, size, tags.ResolvDoor))
	return door
}
