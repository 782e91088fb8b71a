package systems

import (
	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/shared/motion"
	"github.com/automoto/movingsquare/systems/factory"
	"github.com/automoto/movingsquare/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer drains the player's queued intents and integrates one tick.
func UpdatePlayer(ecs *ecs.ECS) {
	tuning := cfg.Player.Tuning()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		queue := components.Intents.Get(e)

		motion.ApplyIntents(body, queue.Pending, tuning)
		queue.Pending = queue.Pending[:0]

		motion.Integrate(body, tuning)
		factory.SyncProbe(ecs, e)
	})
}
