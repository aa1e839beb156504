package systems

import (
	"strings"

	"github.com/automoto/shadow-runner/assets"
	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/fonts"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/automoto/shadow-runner/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	introTop      = 36.0
	legendIcon    = 16.0
	legendRowGap  = 6.0
	panelInset    = 8.0
	panelPadding  = 6.0
	panelRowWidth = 4.0 // gap between an icon and its caption
)

// nextTutorialStep returns the step after the player's input this frame.
func nextTutorialStep(step components.TutorialStep, input *components.InputData) components.TutorialStep {
	switch step {
	case components.TutorialMoveRight:
		if input.Pressed(cfg.ActionMoveRight) {
			return components.TutorialMoveLeft
		}
	case components.TutorialMoveLeft:
		if input.Pressed(cfg.ActionMoveLeft) {
			return components.TutorialJump
		}
	case components.TutorialJump:
		if input.JustPressed(cfg.ActionJump) {
			return components.TutorialGoal
		}
	}
	return step
}

// tutorialText returns the text shown for a step.
func tutorialText(step components.TutorialStep) string {
	if int(step) < len(cfg.Tutorial.Steps) {
		return cfg.Tutorial.Steps[step]
	}
	if step == components.TutorialGoal {
		return cfg.Tutorial.GoalText
	}
	return ""
}

// UpdateTutorial advances the first level walkthrough.
func UpdateTutorial(ecs *ecs.ECS) {
	entry, ok := components.Tutorial.First(ecs.World)
	if !ok {
		return
	}
	tutorial := components.Tutorial.Get(entry)

	if tutorial.Step == components.TutorialGoal {
		tutorial.GoalTimer--
		if tutorial.GoalTimer <= 0 {
			tutorial.Step = components.TutorialDone
			entry.Remove()
		}
		return
	}

	next := nextTutorialStep(tutorial.Step, getOrCreateInput(ecs))
	if next == tutorial.Step {
		return
	}
	tutorial.Step = next
	if next == components.TutorialGoal {
		tutorial.GoalTimer = cfg.Tutorial.GoalFrames
	}
	factory.RestartFade(entry)
}

// DrawTutorial renders the walkthrough text and any level intro.
func DrawTutorial(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Body.Get()

	components.Tutorial.Each(ecs.World, func(e *donburi.Entry) {
		tutorial := components.Tutorial.Get(e)
		if s := tutorialText(tutorial.Step); s != "" {
			drawTextBox(screen, face, s, introTop, fadeValue(e))
		}
	})

	components.Intro.Each(ecs.World, func(e *donburi.Entry) {
		intro := components.Intro.Get(e).Intro
		if intro != nil {
			drawIntro(screen, face, intro, fadeValue(e))
		}
	})
}

func fadeValue(e *donburi.Entry) float32 {
	tw := components.Tween.Get(e)
	if tw.Tween == nil {
		return 1
	}
	if tw.Value < 0 {
		return 0
	}
	return tw.Value
}

// missingIcons remembers legend icons already reported, so a bad catalog
// entry logs once instead of every frame.
var missingIcons = map[string]bool{}

// legendImage returns the icon of a legend row, or nil when the catalog
// names an icon that does not exist. The row is then drawn as text only.
func legendImage(name string) *ebiten.Image {
	if name == "" {
		return nil
	}
	img, err := assets.IconImage(name)
	if err != nil {
		if !missingIcons[name] {
			missingIcons[name] = true
			logging.For("tutorial").Warn("legend icon not found", "icon", name, "err", err)
		}
		return nil
	}
	return img
}

// drawIntro draws an intro panel: the intro text followed by one row per
// legend entry, placed at the intro's anchor.
func drawIntro(screen *ebiten.Image, face font.Face, intro *leveldata.Intro, alpha float32) {
	lineHeight := float64(face.Metrics().Height.Ceil())

	type row struct {
		icon  *ebiten.Image
		lines []string
	}
	var rows []row
	if intro.Text != "" {
		rows = append(rows, row{lines: strings.Split(intro.Text, "\n")})
	}
	for _, entry := range intro.Legend {
		rows = append(rows, row{icon: legendImage(entry.Icon), lines: strings.Split(entry.Text, "\n")})
	}
	if len(rows) == 0 {
		return
	}

	// Measure
	width, height := 0.0, 0.0
	for i, r := range rows {
		w, h := 0.0, float64(len(r.lines))*lineHeight
		for _, line := range r.lines {
			if lw := float64(text.BoundString(face, line).Dx()); lw > w { //nolint:staticcheck // TODO: migrate to text/v2
				w = lw
			}
		}
		if r.icon != nil {
			w += legendIcon + panelRowWidth
			if h < legendIcon {
				h = legendIcon
			}
		}
		if w > width {
			width = w
		}
		height += h
		if i > 0 {
			height += legendRowGap
		}
	}
	width += panelPadding * 2
	height += panelPadding * 2

	x, y := anchorPanel(intro.Anchor, width, height,
		float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))

	vector.FillRect(screen, float32(x), float32(y), float32(width), float32(height),
		fade(cfg.Message.BoxColor, alpha), false)

	textColor := fade(cfg.Message.TextColor, alpha)
	cy := y + panelPadding
	for _, r := range rows {
		cx := x + panelPadding
		h := float64(len(r.lines)) * lineHeight
		if r.icon != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(legendIcon/float64(r.icon.Bounds().Dx()), legendIcon/float64(r.icon.Bounds().Dy()))
			op.GeoM.Translate(cx, cy)
			op.ColorScale.ScaleAlpha(alpha)
			screen.DrawImage(r.icon, op)
			cx += legendIcon + panelRowWidth
			if h < legendIcon {
				h = legendIcon
			}
		}
		for i, line := range r.lines {
			text.Draw(screen, line, face, int(cx), int(cy+lineHeight*float64(i+1)-lineHeight/4), textColor)
		}
		cy += h + legendRowGap
	}
}

// anchorPanel returns the top-left corner of a w x h panel for an anchor.
func anchorPanel(anchor string, w, h, screenW, screenH float64) (float64, float64) {
	switch anchor {
	case leveldata.AnchorTopLeft:
		return panelInset, introTop
	case leveldata.AnchorBottomLeft:
		return panelInset, screenH - h - panelInset
	case leveldata.AnchorBottom:
		return (screenW - w) / 2, screenH - h - panelInset
	case leveldata.AnchorBottomRight:
		return screenW - w - panelInset, screenH - h - panelInset
	}
	return (screenW - w) / 2, introTop
}
