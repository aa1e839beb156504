package systems

import (
	"sync"

	"github.com/automoto/shadow-runner/assets"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// mixer owns the audio context and the single music track. It outlives
// scenes, so the track keeps playing across menu screens.
type mixer struct {
	once   sync.Once
	ctx    *audio.Context
	loader *assets.AudioLoader

	music *audio.Player
	track string
	fade  *gween.Tween

	musicVolume float64
	sfxVolume   float64
}

var mix = &mixer{
	musicVolume: cfg.Audio.DefaultMusicVol,
	sfxVolume:   cfg.Audio.DefaultSFXVol,
}

func (m *mixer) init() {
	m.once.Do(func() {
		m.ctx = audio.NewContext(cfg.Audio.SampleRate)
		m.loader = assets.NewAudioLoader(m.ctx)
	})
}

func (m *mixer) stop() {
	if m.music != nil {
		_ = m.music.Close()
	}
	m.music = nil
	m.track = ""
	m.fade = nil
}

func (m *mixer) stepFade() {
	if m.fade == nil || m.music == nil {
		return
	}
	vol, done := m.fade.Update(tick)
	m.music.SetVolume(float64(vol))
	if done {
		m.stop()
	}
}

func (m *mixer) playTrack(path string) {
	m.init()
	if m.track == path && m.fade == nil {
		return
	}
	m.stop()

	player, err := m.loader.LoadMusic(path)
	if err != nil {
		logging.For("audio").Warn("music skipped", "path", path, "err", err)
		return
	}
	player.SetVolume(m.musicVolume)
	player.Play()
	m.music = player
	m.track = path
}

func (m *mixer) playSFX(id cfg.SoundID) {
	if m.sfxVolume <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}
	player, err := m.loader.LoadSFX(path)
	if err != nil {
		logging.For("audio").Warn("sound effect skipped", "id", id, "err", err)
		return
	}
	vol := m.sfxVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		vol *= mult
	}
	player.SetVolume(vol)
	player.Play()
}

// PreloadAllSFX decodes every sound effect up front so the first jump does
// not stall on a decode.
func PreloadAllSFX() error {
	mix.init()
	for _, path := range cfg.Sound.SFXPaths {
		if err := mix.loader.PreloadSFX(path); err != nil {
			return err
		}
	}
	return nil
}

// UpdateAudio advances the music fade and plays the sound effects queued
// this tick.
func UpdateAudio(e *ecs.ECS) {
	mix.init()
	mix.stepFade()

	if entry, ok := components.SoundQueue.First(e.World); ok {
		q := components.SoundQueue.Get(entry)
		for _, id := range q.Pending {
			mix.playSFX(id)
		}
		q.Pending = q.Pending[:0]
	}
}

// PlayMusic loops the track at path. Asking for the track already playing
// does not restart it.
func PlayMusic(e *ecs.ECS, path string) {
	mix.playTrack(path)
}

// FadeOutMusic ramps the track down to silence and then stops it.
func FadeOutMusic(e *ecs.ECS) {
	if mix.music == nil || mix.fade != nil {
		return
	}
	mix.fade = gween.New(float32(mix.musicVolume), 0, cfg.Audio.MusicFade, ease.Linear)
}

func StopMusic(e *ecs.ECS) {
	mix.stop()
}

func PauseMusic(e *ecs.ECS) {
	if mix.music != nil {
		mix.music.Pause()
	}
}

func ResumeMusic(e *ecs.ECS) {
	if mix.music != nil {
		mix.music.Play()
	}
}

// PlaySFX queues a sound effect for the next UpdateAudio.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	entry, ok := components.SoundQueue.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SoundQueue))
	}
	q := components.SoundQueue.Get(entry)
	q.Pending = append(q.Pending, sound)
}

// SetMusicVolume sets the music volume in [0, 1]. A fade in progress keeps
// its own ramp.
func SetMusicVolume(e *ecs.ECS, volume float64) {
	mix.musicVolume = volume
	if mix.music != nil && mix.fade == nil {
		mix.music.SetVolume(volume)
	}
}

func SetSFXVolume(e *ecs.ECS, volume float64) {
	mix.sfxVolume = volume
}

func GetMusicVolume() float64 {
	return mix.musicVolume
}

func GetSFXVolume() float64 {
	return mix.sfxVolume
}
