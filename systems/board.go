package systems

import (
	"github.com/automoto/ducklaunch/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BoardOf fetches the singleton board entity. Scenes create it before the
// first tick, so a missing board is a programming error and panics via
// MustFirst.
func BoardOf(ecs *ecs.ECS) *components.BoardData {
	return components.Board.Get(components.Board.MustFirst(ecs.World))
}

// ScoreOf fetches the run's score, stored on the board entity.
func ScoreOf(ecs *ecs.ECS) *components.ScoreData {
	return components.Score.Get(components.Score.MustFirst(ecs.World))
}

func duckEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return components.Duck.First(ecs.World)
}
