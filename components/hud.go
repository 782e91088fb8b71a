package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData holds the score label pulse played on coin pickup.
type HUDData struct {
	Pulse      *gween.Tween
	PulseValue float32
}

var HUD = donburi.NewComponentType[HUDData]()
