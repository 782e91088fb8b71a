package components

import (
	"github.com/automoto/movingsquare/shared/motion"
	"github.com/yohamta/donburi"
)

// Body is the player's integrated state.
var Body = donburi.NewComponentType[motion.Body]()

// IntentsData queues movement intents until the next physics tick.
type IntentsData struct {
	Pending []motion.Intent
}

var Intents = donburi.NewComponentType[IntentsData]()
