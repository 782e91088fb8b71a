package components

import (
	cfg "github.com/automoto/movingsquare/config"
	"github.com/yohamta/donburi"
)

// SFXRequest is one queued sound effect. Volume scales the configured SFX
// volume.
type SFXRequest struct {
	ID     cfg.SoundID
	Volume float64
}

// AudioData stores queued sound effects for this world (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []SFXRequest
}

var Audio = donburi.NewComponentType[AudioData]()
