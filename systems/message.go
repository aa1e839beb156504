package systems

import (
	"image/color"
	"math"
	"strings"

	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/fonts"
	"github.com/automoto/shadow-runner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for message rendering (lazy initialized)
var messageFontFace font.Face

// UpdateMessage shows the closest sign within reach of the player. A sign
// stays up for a moment after the player walks away.
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	playerCenterX := playerObj.X + playerObj.W/2
	playerCenterY := playerObj.Y + playerObj.H/2

	var closest *donburi.Entry
	closestDist := math.MaxFloat64
	components.MessagePoint.Each(ecs.World, func(entry *donburi.Entry) {
		msg := components.MessagePoint.Get(entry)
		dist := math.Hypot(playerCenterX-msg.X, playerCenterY-msg.Y)
		if dist <= cfg.Message.ActivationRadius && dist < closestDist {
			closest, closestDist = entry, dist
		}
	})

	if closest != nil {
		state.Active = closest
		state.DisplayTimer = cfg.Message.LingerFrames
		return
	}

	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Active = nil
		}
	}
}

// DrawMessage renders the active sign at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.Active == nil || !state.Active.Valid() {
		return
	}
	msg := components.MessagePoint.Get(state.Active)
	if msg.Text == "" {
		return
	}

	// Lazy initialize cached font face
	if messageFontFace == nil {
		messageFontFace = fonts.Bold.Get()
	}
	drawTextBox(screen, messageFontFace, msg.Text, cfg.Message.TopMargin, 1)
}

// drawTextBox draws centred multi-line text on a dark box. alpha fades both.
func drawTextBox(screen *ebiten.Image, face font.Face, s string, top float64, alpha float32) {
	lines := strings.Split(s, "\n")
	lineHeight := face.Metrics().Height.Ceil()

	textWidth := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > textWidth { //nolint:staticcheck // TODO: migrate to text/v2
			textWidth = w
		}
	}
	textHeight := lineHeight * len(lines)

	padding := float32(cfg.Message.BoxPadding)
	boxWidth := float32(textWidth) + padding*2
	boxHeight := float32(textHeight) + padding*2

	screenWidth := float32(screen.Bounds().Dx())
	boxX := (screenWidth - boxWidth) / 2
	boxY := float32(top)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, fade(cfg.Message.BoxColor, alpha), false)

	textColor := fade(cfg.Message.TextColor, alpha)
	for i, line := range lines {
		lineWidth := text.BoundString(face, line).Dx() //nolint:staticcheck // TODO: migrate to text/v2
		x := int(boxX) + (int(boxWidth)-lineWidth)/2
		y := int(boxY+padding) + lineHeight*(i+1) - lineHeight/4
		text.Draw(screen, line, face, x, y, textColor)
	}
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}

// ResetMessageState clears the active sign (call on level change)
func ResetMessageState(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	state.Active = nil
	state.DisplayTimer = 0
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
		components.MessageState.SetValue(entry, components.MessageStateData{})
	}
	return components.MessageState.Get(entry)
}
