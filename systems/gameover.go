package systems

import (
	"fmt"

	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/automoto/ducklaunch/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates the game over menu system with scene transition
// capability.
func NewUpdateGameOver(sceneChanger SceneChanger, createGameScene, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createGameScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawGameOver renders the game over screen.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "GAME OVER"
	titleWidth := len(title) * 19
	text.Draw(screen, title, titleFont,
		int((width-float64(titleWidth))/2), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	scoreFont := fonts.Bold.Get()
	scoreLine := fmt.Sprintf("Score: %d", gameOver.FinalScore)
	scoreWidth := len(scoreLine) * 12
	text.Draw(screen, scoreLine, scoreFont,
		int((width-float64(scoreWidth))/2), int(cfg.GameOver.ScoreY), cfg.Orange)

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		textWidth := len(option) * 12
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, option, menuFont, x, int(y), textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating it
// if needed.
func GetOrCreateGameOver(ecs *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(ecs.World)
	return components.GameOver.Get(ent)
}
