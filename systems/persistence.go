package systems

import (
	"encoding/json"
	"time"

	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const (
	settingsKey = "settings"
	progressKey = "progress"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Fullscreen  bool    `json:"fullscreen"`
}

// SavedProgress holds best times and how far the player got.
type SavedProgress struct {
	// BestTimes maps level id to the fastest finish in milliseconds.
	BestTimes map[int]int64 `json:"bestTimes"`
	// Unlocked is the highest level id the player may start.
	Unlocked int `json:"unlocked"`
}

// itemStore is the subset of *gdata.Manager used here.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings and progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "shadow-runner",
	})
	if err != nil {
		logging.For("persistence").Warn("could not initialize persistence", "err", err)
		return err
	}
	store = m
	return nil
}

func loadItem(key string, v any) bool {
	if store == nil {
		return false
	}
	logger := logging.For("persistence")

	data, err := store.LoadItem(key)
	if err != nil {
		logger.Warn("could not load item", "key", key, "err", err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn("could not parse item", "key", key, "err", err)
		return false
	}
	return true
}

func saveItem(key string, v any) error {
	if store == nil {
		return nil
	}
	logger := logging.For("persistence")

	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("could not serialize item", "key", key, "err", err)
		return err
	}
	if err := store.SaveItem(key, data); err != nil {
		logger.Warn("could not save item", "key", key, "err", err)
		return err
	}
	return nil
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() *SavedSettings {
	return &SavedSettings{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
	}
}

// LoadSettings loads settings from disk, falling back to defaults.
func LoadSettings() *SavedSettings {
	settings := DefaultSettings()
	if !loadItem(settingsKey, settings) {
		return DefaultSettings()
	}
	return settings
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// SaveCurrentSettings writes what the settings overlay shows.
func SaveCurrentSettings(s *components.SettingsMenuData) {
	err := SaveSettings(&SavedSettings{
		MusicVolume: s.MusicVolume,
		SFXVolume:   s.SFXVolume,
		Fullscreen:  s.Fullscreen,
	})
	if err != nil {
		logging.For("settings").Warn("failed to save settings", "err", err)
	}
}

// ApplySavedSettings restores volumes and the window mode at startup,
// before any scene exists.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	mix.musicVolume = saved.MusicVolume
	mix.sfxVolume = saved.SFXVolume
	if saved.Fullscreen {
		ebiten.SetFullscreen(true)
	}
}

// LoadProgress returns the saved progress, or an empty record.
func LoadProgress() *SavedProgress {
	progress := &SavedProgress{}
	if !loadItem(progressKey, progress) {
		progress = &SavedProgress{}
	}
	if progress.BestTimes == nil {
		progress.BestTimes = make(map[int]int64)
	}
	return progress
}

// SaveProgress writes progress to disk
func SaveProgress(p *SavedProgress) error {
	return saveItem(progressKey, p)
}

// RecordLevelTime stores a finish time if it beats the previous best and
// unlocks the following level. It reports whether the time is a new best.
func (p *SavedProgress) RecordLevelTime(levelID int, d time.Duration) bool {
	if p.BestTimes == nil {
		p.BestTimes = make(map[int]int64)
	}
	if levelID+1 > p.Unlocked {
		p.Unlocked = levelID + 1
	}

	ms := d.Milliseconds()
	if best, ok := p.BestTimes[levelID]; ok && best <= ms {
		return false
	}
	p.BestTimes[levelID] = ms
	return true
}

// BestTime returns the fastest recorded finish of a level.
func (p *SavedProgress) BestTime(levelID int) (time.Duration, bool) {
	ms, ok := p.BestTimes[levelID]
	if !ok {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}
