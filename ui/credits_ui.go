package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CreditsUI is the screen shown after the last level.
type CreditsUI struct {
	UI *ebitenui.UI

	OnMenu   func()
	OnLevels func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewCreditsUI builds the credits screen. summary lines are shown under the
// credits, e.g. the best time of each level.
func NewCreditsUI(title string, lines, summary []string, onMenu, onLevels func()) *CreditsUI {
	ui := &CreditsUI{OnMenu: onMenu, OnLevels: onLevels}
	ui.titleFace, ui.normalFace, ui.smallFace = loadFaces()

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{14, 12, 24, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	for _, line := range lines {
		content.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &ui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{200, 200, 220, 255},
			}),
		))
	}
	for _, line := range summary {
		content.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &ui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{100, 180, 255, 255},
			}),
		))
	}

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	buttons.AddChild(navButton(&ui.normalFace, "Main Menu", ui.OnMenu))
	buttons.AddChild(navButton(&ui.normalFace, "Levels Menu", ui.OnLevels))
	content.AddChild(buttons)

	rootContainer.AddChild(content)
	ui.UI = &ebitenui.UI{Container: rootContainer}
	return ui
}
