package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay func()

	// Widget references for updates
	fullscreenButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu UI.
func NewMenuUI(bestScore uint, onPlay func(), onToggleFullscreen func(bool)) *MenuUI {
	mui := &MenuUI{
		OnPlay: onPlay,
	}

	mui.loadFonts()
	mui.buildUI(bestScore, onToggleFullscreen)

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *MenuUI) buildUI(bestScore uint, onToggleFullscreen func(bool)) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
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
		widget.LabelOpts.Text("DUCK LAUNCH", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 80, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	bestScoreLabel := widget.NewLabel(
		widget.LabelOpts.Text(bestScoreText(bestScore), &mui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(bestScoreLabel)

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 32)),
		widget.ButtonOpts.Image(mui.playButtonImage()),
		widget.ButtonOpts.Text("PLAY", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnPlay != nil {
				mui.OnPlay()
			}
		}),
	)
	contentContainer.AddChild(playButton)

	mui.fullscreenButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 32)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(fullscreenText(), &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			enabled := !ebiten.IsFullscreen()
			ebiten.SetFullscreen(enabled)
			if textWidget := mui.fullscreenButton.Text(); textWidget != nil {
				textWidget.Label = fullscreenText()
			}
			if onToggleFullscreen != nil {
				onToggleFullscreen(enabled)
			}
		}),
	)
	contentContainer.AddChild(mui.fullscreenButton)

	exitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 32)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("EXIT", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			os.Exit(0)
		}),
	)
	contentContainer.AddChild(exitButton)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Arrows: aim   Space: hold to charge, release to launch", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 140, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update advances the ebitenui widget tree. Call once per frame.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func bestScoreText(score uint) string {
	return fmt.Sprintf("Best score: %d", score)
}

func fullscreenText() string {
	if ebiten.IsFullscreen() {
		return "Fullscreen: ON"
	}
	return "Fullscreen: OFF"
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (mui *MenuUI) playButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
