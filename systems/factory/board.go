package factory

import (
	"math/rand"

	"github.com/automoto/ducklaunch/archetypes"
	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoard spawns the singleton board entity carrying the run's
// configuration, the seeded RNG and the score. The RNG is created exactly
// once here and never reseeded, so one seed reproduces a whole run.
func CreateBoard(ecs *ecs.ECS, c cfg.SimConfig) *donburi.Entry {
	board := archetypes.Board.Spawn(ecs)
	components.Board.SetValue(board, components.BoardData{
		Cfg: c,
		RNG: rand.New(rand.NewSource(c.Seed)),
	})
	components.Score.SetValue(board, components.ScoreData{})
	return board
}
