package systems

import (
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createRetryScene func(levelID int) interface{}, createLevelsScene, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		navigateMenu(e, input, &gameOver.Cursor, len(cfg.GameOver.MenuOptions))

		if input.JustPressed(cfg.ActionMenuSelect) {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch components.GameOverOption(gameOver.Row) {
			case components.GameOverRetry:
				FadeOutMusic(e)
				sceneChanger.ChangeScene(createRetryScene(gameOver.LevelID))
			case components.GameOverLevels:
				sceneChanger.ChangeScene(createLevelsScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := "YOU DIED"
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	drawMenuOptions(screen, cfg.GameOver.MenuOptions, gameOver.Row, cfg.GameOver.MenuStartY,
		cfg.GameOver.MenuItemHeight, cfg.GameOver.MenuItemGap, cfg.GameOver.TextColorNormal, cfg.GameOver.TextColorSelected)

	input := getOrCreateInput(e)
	drawHint(screen, getMenuHint(input.Device), cfg.GameOver.TextColorNormal)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	ent, ok := components.GameOver.First(e.World)
	if !ok {
		ent = e.World.Entry(e.World.Create(components.GameOver))
	}
	return components.GameOver.Get(ent)
}
