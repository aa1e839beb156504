package systems

import (
	"image/color"
	"os"

	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// createPlayScene starts the run at the furthest unlocked level.
func NewUpdateMenu(sceneChanger SceneChanger, createPlayScene func() interface{}, createLevelsScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		// Skip menu input if settings is open
		if IsSettingsOpen(e) {
			return
		}

		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		navigateMenu(e, input, &menu.Cursor, len(cfg.Menu.MenuOptions))

		if input.JustPressed(cfg.ActionMenuSelect) {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch components.MainMenuOption(menu.Row) {
			case components.MainMenuPlay:
				FadeOutMusic(e)
				sceneChanger.ChangeScene(createPlayScene())
			case components.MainMenuLevels:
				sceneChanger.ChangeScene(createLevelsScene())
			case components.MainMenuSettings:
				OpenSettings(e, false)
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if input.JustPressed(cfg.ActionMenuBack) {
			os.Exit(0)
		}
	}
}

// navigateMenu moves the cursor over a list of n rows on Up and Down.
func navigateMenu(e *ecs.ECS, input *components.InputData, cursor *components.Cursor, n int) {
	delta := 0
	if input.JustPressed(cfg.ActionMenuUp) {
		delta--
	}
	if input.JustPressed(cfg.ActionMenuDown) {
		delta++
	}
	if delta == 0 || n == 0 {
		return
	}
	PlaySFX(e, cfg.SoundMenuNavigate)
	cursor.Step(delta, n)
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	text.Draw(screen, cfg.Menu.Title, titleFont, centerTextX(cfg.Menu.Title, titleFont, width), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	drawMenuOptions(screen, cfg.Menu.MenuOptions, menu.Row, cfg.Menu.MenuStartY,
		cfg.Menu.MenuItemHeight, cfg.Menu.MenuItemGap, cfg.Menu.TextColorNormal, cfg.Menu.TextColorSelected)

	input := getOrCreateInput(e)
	drawHint(screen, getMenuHint(input.Device), cfg.Menu.TextColorNormal)
}

// drawMenuOptions draws a centred column of options, highlighting selected.
func drawMenuOptions(screen *ebiten.Image, options []string, selected int, startY, itemHeight, gap float64, normal, highlight color.RGBA) {
	width := float64(screen.Bounds().Dx())
	face := fonts.Bold.Get()

	for i, option := range options {
		y := startY + float64(i)*(itemHeight+gap)
		c := normal
		if i == selected {
			c = highlight
		}
		text.Draw(screen, option, face, centerTextX(option, face, width), int(y+itemHeight), c)
	}
}

// drawHint draws a navigation hint along the bottom edge.
func drawHint(screen *ebiten.Image, hint string, c color.RGBA) {
	face := fonts.Small.Get()
	width := float64(screen.Bounds().Dx())
	text.Draw(screen, hint, face, centerTextX(hint, face, width), screen.Bounds().Dy()-12, c)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.Device) string {
	switch method {
	case components.DevicePlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.DeviceXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			ResumeLevel: LoadProgress().Unlocked,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
