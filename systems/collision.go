package systems

import (
	"sort"

	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/shared/gamemath"
	"github.com/automoto/movingsquare/shared/motion"
	"github.com/automoto/movingsquare/systems/factory"
	"github.com/automoto/movingsquare/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions pushes the player out of every overlapping obstacle.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)

		// ResolveAll tests overlap itself, against the body as moved by
		// earlier corrections.
		candidates := nearby(e, tags.ResolvSolid)
		obstacles := make([]motion.Obstacle, 0, len(candidates))
		for _, c := range candidates {
			obstacles = append(obstacles, components.Box.Get(c).Obstacle())
		}

		for _, contact := range motion.ResolveAll(body, obstacles) {
			playImpact(ecs, contact)
		}
		factory.SyncProbe(ecs, e)
	})
}

func playImpact(ecs *ecs.ECS, contact motion.Contact) {
	if contact.Side != motion.SideFloor && contact.Side != motion.SideCeiling {
		return
	}
	volume := motion.ImpactVolume(contact.ImpactSpeed, cfg.Audio.ImpactVolumeBase)
	if volume == 0 {
		return
	}
	PlaySFXVolume(ecs, cfg.SoundImpact, volume)
}

// nearby returns the level objects with the given resolv tag that share a
// broadphase cell with the player, ordered by entity id.
func nearby(player *donburi.Entry, tag string) []*donburi.Entry {
	obj := components.Object.Get(player)
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	seen := make(map[donburi.Entity]bool)
	var found []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || seen[entry.Entity()] {
			continue
		}
		seen[entry.Entity()] = true
		found = append(found, entry)
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Entity().Id() < found[j].Entity().Id()
	})
	return found
}

// touching narrows nearby to the objects whose boxes overlap the player's
// body.
func touching(player *donburi.Entry, tag string) []*donburi.Entry {
	body := components.Body.Get(player)
	var found []*donburi.Entry
	for _, entry := range nearby(player, tag) {
		box := components.Box.Get(entry)
		if gamemath.Overlaps(body.Pos, body.Size, box.Pos, box.Size) {
			found = append(found, entry)
		}
	}
	return found
}
