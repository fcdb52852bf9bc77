package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/ducklaunch/systems"
	"github.com/automoto/ducklaunch/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu using ebitenui
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldPlay   bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.Update()

	if ms.shouldPlay {
		ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger))
		return
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	bestScore := uint(0)
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		bestScore = saved.BestScore
	}

	ms.menuUI = ui.NewMenuUI(
		bestScore,
		func() { ms.shouldPlay = true },
		func(enabled bool) {
			saved, _ := systems.LoadSettings()
			if saved == nil {
				saved = &systems.SavedSettings{}
			}
			saved.Fullscreen = enabled
			_ = systems.SaveSettings(saved)
		},
	)
}
