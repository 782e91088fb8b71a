package systems

import (
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/automoto/movingsquare/assets"
	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
	sfxRand            = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, os.DirFS(cfg.Audio.Dir))
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
// Missing files only disable the sound.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, paths := range cfg.Sound.SFXPaths {
		for _, path := range paths {
			if err := globalAudioLoader.PreloadSFX(path); err != nil {
				log.Printf("[AUDIO] %v", err)
			}
		}
	}
}

// UpdateAudio plays the sound effects queued during the previous tick
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, req := range audioData.PendingSFX {
		playSFX(req, audioData.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(req components.SFXRequest, sfxVolume float64) {
	volume := sfxVolume * req.Volume
	if volume <= 0 {
		return
	}

	path, ok := pickSFXPath(req.ID)
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[req.ID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// pickSFXPath returns one of the files configured for a sound, chosen at
// random when there are variants.
func pickSFXPath(id cfg.SoundID) (string, bool) {
	paths := cfg.Sound.SFXPaths[id]
	switch len(paths) {
	case 0:
		return "", false
	case 1:
		return paths[0], true
	}
	return paths[sfxRand.Intn(len(paths))], true
}

// PlaySFX queues a sound effect at full volume
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	PlaySFXVolume(e, sound, 1)
}

// PlaySFXVolume queues a sound effect scaled by volume (0.0 - 1.0)
func PlaySFXVolume(e *ecs.ECS, sound cfg.SoundID, volume float64) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SFXRequest{
		ID:     sound,
		Volume: volume,
	})
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0) for worlds created
// afterwards.
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]components.SFXRequest, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
