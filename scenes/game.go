package scenes

import (
	"image/color"
	"sync"
	"time"

	cfg "github.com/automoto/ducklaunch/config"
	"github.com/automoto/ducklaunch/systems"
	"github.com/automoto/ducklaunch/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs one arcade round: aim, charge, launch, score.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	simConfig    cfg.SimConfig
	once         sync.Once
	scoreSaved   bool
}

// NewGameScene creates a game scene with stock tuning. The target layout
// seed is drawn from the clock once here; the board RNG it feeds is never
// reseeded afterwards.
func NewGameScene(sc SceneChanger) *GameScene {
	c := cfg.DefaultSim()
	c.Seed = time.Now().UnixNano()
	return &GameScene{sceneChanger: sc, simConfig: c}
}

// NewGameSceneWithConfig creates a game scene with custom tuning, used by
// tests and for seeded runs.
func NewGameSceneWithConfig(sc SceneChanger, c cfg.SimConfig) *GameScene {
	return &GameScene{sceneChanger: sc, simConfig: c}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if gameOver := systems.GetOrCreateGameOver(gs.ecs); gameOver.Triggered {
		if !gs.scoreSaved {
			gs.scoreSaved = true
			systems.RecordScore(gameOver.FinalScore)
		}
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, gameOver.FinalScore))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	gs.ecs = NewGameECS(gs.sceneChanger, gs.simConfig)
}

// NewGameECS builds the gameplay world: collision space, board, duck, the
// initial target set and the first hunter, with systems registered in fixed
// frame order.
func NewGameECS(sc SceneChanger, c cfg.SimConfig) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	createGameScene := func() interface{} {
		return NewGameScene(sc)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(sc)
	}

	// Systems that always run
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdatePause(sc, createGameScene, createMenuScene))

	// Frame order is fixed: aim, flight, target resolution, enemy advance.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAim))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFlight))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTargets))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	e.AddRenderer(cfg.Default, systems.DrawBoard)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	factory.CreateSpace(e, c.Space)
	factory.CreateBoard(e, c)
	factory.CreateDuck(e, c)

	board := systems.BoardOf(e)
	for i := 0; i < c.Targets.Count; i++ {
		factory.CreateTarget(e, c, board.RNG)
	}
	factory.CreateEnemy(e, c)

	return e
}
