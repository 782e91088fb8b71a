package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundImpact
	SoundCoin
	SoundDoor
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	// Dir is read from disk at runtime; missing files only disable the sound.
	Dir string
	// ImpactVolumeBase is the vertical speed that plays an impact at full volume.
	ImpactVolumeBase float64
}

// SoundConfig maps sound IDs to file paths. Sounds with several paths pick
// one at random per play.
type SoundConfig struct {
	SFXPaths          map[SoundID][]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:       44100,
		DefaultSFXVol:    1.0,
		Dir:              "assets/audio",
		ImpactVolumeBase: 20,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID][]string{
			SoundImpact: {
				"impactGeneric_light_000.ogg",
				"impactGeneric_light_001.ogg",
				"impactGeneric_light_002.ogg",
				"impactGeneric_light_003.ogg",
				"impactGeneric_light_004.ogg",
			},
			SoundCoin:         {"coin.wav"},
			SoundDoor:         {"door.wav"},
			SoundMenuNavigate: {"menu_navigate.wav"},
			SoundMenuSelect:   {"menu_select.wav"},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundMenuNavigate: 0.6,
		},
	}
}
