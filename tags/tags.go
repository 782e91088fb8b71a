package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	// LevelObject marks everything despawned when a level is replaced.
	LevelObject = donburi.NewTag().SetName("LevelObject")
	Obstacle    = donburi.NewTag().SetName("Obstacle")
	Coin        = donburi.NewTag().SetName("Coin")
	Door        = donburi.NewTag().SetName("Door")
)

// Resolv tags for broadphase queries
const (
	ResolvSolid  = "solid"
	ResolvCoin   = "coin"
	ResolvDoor   = "door"
	ResolvPlayer = "Player"
)
