package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/ducklaunch/config"
	"github.com/automoto/ducklaunch/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	finalScore   uint
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, finalScore uint) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, finalScore: finalScore}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createGameScene := func() interface{} {
		return NewGameScene(gs.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createGameScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	// Carry the run's score into the singleton the renderer reads.
	gameOver := systems.GetOrCreateGameOver(gs.ecs)
	gameOver.Triggered = true
	gameOver.FinalScore = gs.finalScore
}
