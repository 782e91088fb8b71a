package systems

import (
	"log"

	"github.com/automoto/movingsquare/components"
	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/automoto/movingsquare/shared/session"
	"github.com/automoto/movingsquare/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// QueueLevelRequest schedules a level load for the start of the next tick.
func QueueLevelRequest(ecs *ecs.ECS, req session.Request) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		log.Printf("[LOADER] No level entity, dropping request for %s", req.Path)
		return
	}
	requests := components.LevelRequests.Get(entry)
	requests.Pending = append(requests.Pending, req)
}

// UpdateLevelRequests loads the most recently requested level. It runs
// before gameplay so the old level is gone before anything touches the new one.
func UpdateLevelRequests(ecs *ecs.ECS) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	requests := components.LevelRequests.Get(entry)
	if len(requests.Pending) == 0 {
		return
	}
	req := requests.Pending[len(requests.Pending)-1]
	requests.Pending = requests.Pending[:0]

	level := components.Level.Get(entry)
	lvl := leveldata.Load(level.FS, req.Path)
	if !factory.SpawnLevel(ecs, lvl) {
		return
	}

	level.Path = lvl.Path
	level.Loaded = true
	level.Objects = len(lvl.Objects)

	if s := GetSession(ecs); s != nil {
		s.LevelLoaded(req.Index, lvl.CoinCount())
	}
	log.Printf("[LOADER] Spawned level %d (%d objects)", req.Index, len(lvl.Objects))
}
