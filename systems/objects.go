package systems

import (
	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/shared/session"
	"github.com/automoto/movingsquare/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCoins collects every coin the player overlaps.
func UpdateCoins(ecs *ecs.ECS) {
	s := GetSession(ecs)
	if s == nil {
		return
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	for _, coin := range touching(player, tags.ResolvCoin) {
		removeLevelObject(ecs, coin)
		s.CollectCoin()
		PlaySFX(ecs, cfg.SoundCoin)
		TriggerScorePulse(ecs)
	}
}

// UpdateDoor fires the win transition when the player touches an open door.
func UpdateDoor(ecs *ecs.ECS) {
	s := GetSession(ecs)
	if s == nil {
		return
	}

	open := s.Phase == session.PhasePlaying && s.Score.Complete()
	components.Door.Each(ecs.World, func(e *donburi.Entry) {
		components.Door.Get(e).Open = open
	})

	player, ok := tags.Player.First(ecs.World)
	if !ok || len(touching(player, tags.ResolvDoor)) == 0 {
		return
	}

	reqs := s.TouchDoor()
	if len(reqs) == 0 {
		return
	}
	PlaySFX(ecs, cfg.SoundDoor)
	for _, req := range reqs {
		switch req.Kind {
		case session.RequestLoadLevel:
			QueueLevelRequest(ecs, req)
		case session.RequestShowSummary:
			OpenSummary(ecs, req.Summary)
		}
	}
}

// UpdateTimer advances the run clock.
func UpdateTimer(ecs *ecs.ECS) {
	if s := GetSession(ecs); s != nil {
		s.Tick()
	}
}

// UpdateTweens advances the coin bob and the HUD pulse.
func UpdateTweens(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(cfg.C.TPS))

	components.Coin.Each(ecs.World, func(e *donburi.Entry) {
		coin := components.Coin.Get(e)
		if coin.Bob == nil {
			return
		}
		offset, _, done := coin.Bob.Update(dt)
		coin.Offset = offset
		if done {
			coin.Bob.Reset()
		}
	})

	updateScorePulse(ecs, dt)
}

func removeLevelObject(ecs *ecs.ECS, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(e)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

// GetSession returns the run's session, or nil before a run is set up.
func GetSession(ecs *ecs.ECS) *session.Session {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}
