package archetypes

import (
	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Intents,
		components.Object,
	)
	Obstacle = newArchetype(
		tags.LevelObject,
		tags.Obstacle,
		components.Box,
		components.Object,
	)
	Coin = newArchetype(
		tags.LevelObject,
		tags.Coin,
		components.Box,
		components.Coin,
		components.Object,
	)
	Door = newArchetype(
		tags.LevelObject,
		tags.Door,
		components.Box,
		components.Door,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
		components.SpaceFrame,
	)
	Level = newArchetype(
		components.Level,
		components.LevelRequests,
	)
	Session = newArchetype(
		components.Session,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
