package components

import "github.com/yohamta/donburi"

// Cursor is the highlighted row of a vertical option list.
type Cursor struct {
	Row int
}

// Step moves the cursor by delta rows, wrapping around a list of n rows.
func (c *Cursor) Step(delta, n int) {
	if n <= 0 {
		c.Row = 0
		return
	}
	c.Row = ((c.Row+delta)%n + n) % n
}

type MainMenuOption int

const (
	MainMenuPlay MainMenuOption = iota
	MainMenuLevels
	MainMenuSettings
	MainMenuExit
)

type MenuData struct {
	Cursor
	// ResumeLevel is the highest unlocked level, where Play starts.
	ResumeLevel int
}

var Menu = donburi.NewComponentType[MenuData]()

type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuRestart
	MenuSettings
	MenuLevels
	MenuExit
)

type PauseData struct {
	Cursor
	Paused bool
}

var Pause = donburi.NewComponentType[PauseData]()

type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverLevels
	GameOverMenu
)

// GameOverData is the death screen. LevelID is the level Retry restarts.
type GameOverData struct {
	Cursor
	LevelID int
}

var GameOver = donburi.NewComponentType[GameOverData]()

type SettingsMenuOption int

const (
	SettingsOptMusicVolume SettingsMenuOption = iota
	SettingsOptSFXVolume
	SettingsOptFullscreen
	SettingsOptBack
)

// SettingsMenuData is the settings overlay. It edits a copy of the saved
// settings that is written back on close.
type SettingsMenuData struct {
	Cursor
	Open      bool
	FromPause bool

	MusicVolume float64
	SFXVolume   float64
	Fullscreen  bool
}

var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
