package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/shadow-runner/logging"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelEntry is one button of the level select grid.
type LevelEntry struct {
	ID     int
	Name   string
	Best   string
	Locked bool
}

type LevelsUI struct {
	UI *ebitenui.UI

	OnSelect func(levelID int)
	OnGoBack func()

	title   string
	columns int
	buttonW int
	buttonH int
	spacing int

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// LevelsLayout sizes the level select grid.
type LevelsLayout struct {
	Title   string
	Columns int
	ButtonW int
	ButtonH int
	Spacing int
}

func NewLevelsUI(layout LevelsLayout, levels []LevelEntry, onSelect func(levelID int), onGoBack func()) *LevelsUI {
	ui := &LevelsUI{
		OnSelect: onSelect,
		OnGoBack: onGoBack,
		title:    layout.Title,
		columns:  layout.Columns,
		buttonW:  layout.ButtonW,
		buttonH:  layout.ButtonH,
		spacing:  layout.Spacing,
	}
	if ui.columns <= 0 {
		ui.columns = 1
	}
	ui.loadFonts()
	ui.buildUI(levels)
	return ui
}

func (ui *LevelsUI) loadFonts() {
	ui.titleFace, ui.normalFace, ui.smallFace = loadFaces()
}

// loadFaces returns the title, normal and small UI faces.
func loadFaces() (text.Face, text.Face, text.Face) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		logging.For("ui").Fatal("failed to load UI font", "err", err)
	}
	return &text.GoTextFace{Source: fontSource, Size: 18},
		&text.GoTextFace{Source: fontSource, Size: 12},
		&text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *LevelsUI) buildUI(levels []LevelEntry) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{14, 12, 24, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(ui.title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)
	contentContainer.AddChild(ui.buildGrid(levels))
	contentContainer.AddChild(ui.buildButtons())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *LevelsUI) buildGrid(levels []LevelEntry) *widget.Container {
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(ui.columns),
			widget.GridLayoutOpts.Spacing(ui.spacing, ui.spacing),
		)),
	)

	for _, level := range levels {
		grid.AddChild(ui.buildLevelButton(level))
	}
	return grid
}

func (ui *LevelsUI) buildLevelButton(level LevelEntry) *widget.Button {
	label := fmt.Sprintf("%d. %s\n%s", level.ID+1, level.Name, level.Best)
	if level.Locked {
		label = fmt.Sprintf("%d. Locked", level.ID+1)
	}

	id := level.ID
	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(ui.buttonW, ui.buttonH)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 50, 90, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 80, 140, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 40, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{35, 35, 45, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{100, 180, 255, 255},
			Pressed:  color.RGBA{200, 200, 220, 255},
			Disabled: color.RGBA{90, 90, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnSelect != nil {
				ui.OnSelect(id)
			}
		}),
	)
	if level.Locked {
		btn.GetWidget().Disabled = true
	}
	return btn
}

func (ui *LevelsUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	container.AddChild(navButton(&ui.normalFace, "Main Menu", ui.OnGoBack))
	return container
}

// navButton builds a button that leaves the screen.
func navButton(face *text.Face, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}
