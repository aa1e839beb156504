package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLand
	SoundBoost
	// Player sounds
	SoundDamage
	SoundLevelComplete
	SoundGameOver
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	MusicFade       float32 // seconds
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	MenuMusic         string
	GameMusic         string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   1.0,
		MusicFade:       1.0,
	}

	Sound = SoundConfig{
		MenuMusic: "audio/music/menu.wav",
		GameMusic: "audio/music/night_run.wav",
		SFXPaths: map[SoundID]string{
			SoundJump:          "audio/sfx/jump.wav",
			SoundLand:          "audio/sfx/land.wav",
			SoundBoost:         "audio/sfx/boost.wav",
			SoundDamage:        "audio/sfx/damage.wav",
			SoundLevelComplete: "audio/sfx/level_complete.wav",
			SoundGameOver:      "audio/sfx/game_over.wav",
			SoundMenuNavigate:  "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:    "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundLand:   0.5,
			SoundDamage: 1.3,
		},
	}
}
