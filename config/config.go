package config

import "image/color"

// GridSize is the edge of one level tile in pixels.
const GridSize = 16

// TPS is the fixed update rate the per-frame tunables below assume.
const TPS = 60

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpSpeed       float64
	JumpCutFactor   float64 // Upward speed kept when jump is released early
	Acceleration    float64
	AirAcceleration float64
	MaxSpeed        float64
	CoyoteFrames    int // Frames after leaving ground where a jump is still allowed

	// Health in hearts
	Health       int
	InvulnFrames int
	FlashTicks   int

	// Physics
	Gravity     float64
	Friction    float64
	AirFriction float64

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// HostileTypeConfig describes one kind of hostile entity
type HostileTypeConfig struct {
	Name   string
	Damage int  // Hearts taken on contact
	Blinds bool // Blinds the player when close

	SpriteSheetKey  string
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// HostileConfig contains hostile system configuration
type HostileConfig struct {
	Types map[string]HostileTypeConfig

	PatrolSpeed          float64 // px per frame toward the next patrol point
	TurnSpeed            float64 // px per frame right after reaching a point
	DamageIntervalFrames int     // Frames between ticks of continuous damage
	BlindRadius          float64
	BlindFrames          int
}

// BoosterConfig contains jump booster tuning
type BoosterConfig struct {
	Boost      float64 // px per frame
	Cap        float64 // px per frame
	PulseScale float64
	PulseTime  float32 // seconds
}

// SpikeConfig contains spike tuning
type SpikeConfig struct {
	Damage int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	MaxRiseSpeed float64
}

type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// LevelsMenuConfig lays out the level select grid
type LevelsMenuConfig struct {
	Title        string
	Columns      int
	ButtonWidth  int
	ButtonHeight int
	Spacing      int
	EmptyTime    string
}

// CreditsConfig holds the end screen text
type CreditsConfig struct {
	Title string
	Lines []string
}

type ScreenShakeConfig struct {
	DamageIntensity float64 // pixels
	DamageDuration  int     // frames
	DeathIntensity  float64
	DeathDuration   int
}

type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
	AspectRatio             float64
	IntroZoom               float64 // Zoom at level start, eased back to 1
	IntroZoomTime           float32 // seconds
}

type DeathConfig struct {
	DelayFrames int // Frames between dying and the game over screen
}

type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	Recover    float32 // seconds to spring back to normal
}

type HUDConfig struct {
	Margin     float64
	HeartSize  float64
	HeartGap   float64
	TimerColor color.RGBA
}

type MessageConfig struct {
	ActivationRadius float64    // Pixels to trigger message display
	BoxPadding       float64    // Padding inside message box
	BoxColor         color.RGBA // Semi-transparent background color
	TextColor        color.RGBA
	TopMargin        float64 // Distance from top of screen
	LingerFrames     int     // Frames a sign stays up after the player walks away
}

// TutorialConfig holds the first level walkthrough
type TutorialConfig struct {
	Steps        []string
	GoalText     string
	GoalFrames   int
	FadeTime     float32 // seconds for text to fade in
	IntroSeconds float64 // default lifetime of a level intro
}

type BlindnessConfig struct {
	Radius       float64 // Visible radius around the player
	EdgeSoftness float64
	Darkness     float32
}

type LoadingConfig struct {
	MinFrames int
}

type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to game
	StartLevel    int
	DrawColliders bool
}

type Config struct {
	Width  int
	Height int
	Title  string
}

var C *Config
var Player PlayerConfig
var Hostile HostileConfig
var Booster BoosterConfig
var Spike SpikeConfig
var Physics PhysicsConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var LevelsMenu LevelsMenuConfig
var Credits CreditsConfig
var ScreenShake ScreenShakeConfig
var SquashStretch SquashStretchConfig
var Death DeathConfig
var Camera CameraConfig
var HUD HUDConfig
var Message MessageConfig
var Tutorial TutorialConfig
var Blindness BlindnessConfig
var Loading LoadingConfig
var Debug DebugConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Gray         = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Night        = color.RGBA{R: 14, G: 12, B: 24, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// PerSecond converts a px/s speed into the per-frame units used above.
func PerSecond(v float64) float64 {
	return v / TPS
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Shadow Runner",
	}

	Physics = PhysicsConfig{
		Gravity:      0.35,
		MaxFallSpeed: 8.0,
		MaxRiseSpeed: -11.0,
	}

	Player = PlayerConfig{
		JumpSpeed:       6.8,
		JumpCutFactor:   0.45,
		Acceleration:    0.4,
		AirAcceleration: 0.25,
		MaxSpeed:        2.6,
		CoyoteFrames:    6,

		Health:       5,
		InvulnFrames: 45,
		FlashTicks:   8,

		Gravity:     0.35,
		Friction:    0.3,
		AirFriction: 0.08,

		FrameWidth:      24,
		FrameHeight:     24,
		CollisionWidth:  10,
		CollisionHeight: 20,
	}

	hostile := func(name, key string, damage int, blinds bool) HostileTypeConfig {
		return HostileTypeConfig{
			Name:            name,
			Damage:          damage,
			Blinds:          blinds,
			SpriteSheetKey:  key,
			FrameWidth:      GridSize,
			FrameHeight:     GridSize,
			CollisionWidth:  GridSize,
			CollisionHeight: GridSize,
		}
	}

	Hostile = HostileConfig{
		Types: map[string]HostileTypeConfig{
			"Sand_Ghoul":         hostile("Sand Ghoul", "sand_ghoul", 1, false),
			"Grave_Revenant":     hostile("Grave Revenant", "grave_revenant", 2, false),
			"Mutilated_Stumbler": hostile("Mutilated Stumbler", "mutilated_stumbler", 3, false),
			"Adept_Necromancer":  hostile("Adept Necromancer", "adept_necromancer", 1, true),
		},
		PatrolSpeed:          PerSecond(50),
		TurnSpeed:            PerSecond(75),
		DamageIntervalFrames: TPS,
		BlindRadius:          GridSize * 5,
		BlindFrames:          15 * TPS,
	}

	Booster = BoosterConfig{
		Boost:      PerSecond(500),
		Cap:        PerSecond(650),
		PulseScale: 1.35,
		PulseTime:  0.3,
	}

	Spike = SpikeConfig{
		Damage: 1,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: LightBlue,
		MenuItemHeight:    20,
		MenuItemGap:       6,
		MenuOptions:       []string{"Resume", "Restart", "Settings", "Levels Menu", "Main Menu"},
	}

	Menu = MenuConfig{
		BackgroundColor:   Night,
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "Shadow Runner",
		TitleY:            90,
		MenuStartY:        170,
		MenuItemHeight:    20,
		MenuItemGap:       8,
		MenuOptions:       []string{"Play", "Levels", "Settings", "Quit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 30, G: 6, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: LightBlue,
		TitleY:            100,
		MenuStartY:        170,
		MenuItemHeight:    20,
		MenuItemGap:       8,
		MenuOptions:       []string{"Retry", "Levels Menu", "Main Menu"},
	}

	LevelsMenu = LevelsMenuConfig{
		Title:        "Choose Level",
		Columns:      3,
		ButtonWidth:  120,
		ButtonHeight: 44,
		Spacing:      12,
		EmptyTime:    "--:--",
	}

	Credits = CreditsConfig{
		Title: "Thanks for Playing!",
		Lines: []string{
			"Shadow Runner",
			"Levels built in Tiled",
			"Made with Ebitengine",
		},
	}

	ScreenShake = ScreenShakeConfig{
		DamageIntensity: 3.0,
		DamageDuration:  12,
		DeathIntensity:  6.0,
		DeathDuration:   20,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.8,
		JumpScaleY: 1.2,
		LandScaleX: 1.2,
		LandScaleY: 0.8,
		Recover:    0.25,
	}

	Death = DeathConfig{
		DelayFrames: 45,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.12,
		LookAheadDistanceX:      48,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.5,
		AspectRatio:             16.0 / 9.0,
		IntroZoom:               1.15,
		IntroZoomTime:           0.8,
	}

	HUD = HUDConfig{
		Margin:     8,
		HeartSize:  12,
		HeartGap:   3,
		TimerColor: White,
	}

	Message = MessageConfig{
		ActivationRadius: 48,
		BoxPadding:       6,
		BoxColor:         color.RGBA{R: 0, G: 0, B: 0, A: 190},
		TextColor:        White,
		TopMargin:        40,
		LingerFrames:     60,
	}

	Tutorial = TutorialConfig{
		Steps: []string{
			"Press the `D` key to move right.",
			"Press the `A` key to move left.",
			"Press the Space Bar key to jump.",
		},
		GoalText:     "New Goal Unlocked: Reach the golden gate.",
		GoalFrames:   5 * TPS,
		FadeTime:     0.4,
		IntroSeconds: 5,
	}

	Blindness = BlindnessConfig{
		Radius:       40,
		EdgeSoftness: 24,
		Darkness:     0.96,
	}

	Loading = LoadingConfig{
		MinFrames: 30,
	}

	Debug = DebugConfig{
		SkipMenu:      false,
		StartLevel:    0,
		DrawColliders: false,
	}
}
