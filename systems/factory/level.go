package factory

import (
	"io/fs"
	"log"

	"github.com/automoto/movingsquare/archetypes"
	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/automoto/movingsquare/shared/session"
	"github.com/automoto/movingsquare/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel sets up the level and session singletons for a run and queues
// its first level.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, run leveldata.Info) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{FS: fsys})

	sessionEntry := archetypes.Session.Spawn(ecs)
	s := session.New(run.Name, run.Dir, run.Amount)
	components.Session.Set(sessionEntry, s)

	requests := components.LevelRequests.Get(level)
	requests.Pending = append(requests.Pending, s.Start())

	return level
}

// SpawnLevel replaces the current level objects with lvl and moves the
// player to its spawn. The broadphase is resized to cover the level. The
// load is aborted when there is no player.
func SpawnLevel(ecs *ecs.ECS, lvl *leveldata.Level) bool {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		log.Printf("[LOADER] No player entity, not loading %s", lvl.Path)
		return false
	}

	DespawnLevel(ecs)
	ResizeSpace(ecs, lvl.Bounds(ScreenFrame(), cfg.Levels.ProbeMargin+1))

	for _, o := range lvl.Objects {
		switch o.Kind {
		case leveldata.KindObstacle:
			CreateObstacle(ecs, o.Pos, o.Size)
		case leveldata.KindCoin:
			CreateCoin(ecs, o.Pos, o.Size)
		case leveldata.KindDoor:
			CreateDoor(ecs, o.Pos, o.Size)
		}
	}

	if spawn, ok := lvl.Spawn(); ok {
		MovePlayer(ecs, player, spawn)
	} else {
		log.Printf("[LOADER] Warning: %s has no PLAYER_POS", lvl.Path)
	}

	return true
}

// DespawnLevel removes every level object and its broadphase object.
func DespawnLevel(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.LevelObject.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})

	for _, e := range toRemove {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			obj := components.Object.Get(e)
			if obj != nil && obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
		ecs.World.Remove(e.Entity())
	}
}
