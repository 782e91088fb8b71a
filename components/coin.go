package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CoinData animates a coin bobbing around its box position.
type CoinData struct {
	Bob    *gween.Sequence
	Offset float32
}

var Coin = donburi.NewComponentType[CoinData]()

// DoorData tracks whether the door would let the player through.
type DoorData struct {
	Open bool
}

var Door = donburi.NewComponentType[DoorData]()
