package systems

import (
	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/automoto/ducklaunch/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a headless gameplay world: space, board and duck, no
// targets or enemies unless the test spawns them.
func newTestWorld(c cfg.SimConfig) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, c.Space)
	factory.CreateBoard(e, c)
	factory.CreateDuck(e, c)
	getOrCreateClock(e).Elapsed = 1.0 / 60
	return e
}

// holdActions replaces the current input frame, shifting the old one into
// Previous so Just* transitions behave like real polling.
func holdActions(e *ecs.ECS, actions ...cfg.ActionID) {
	in := getOrCreateInput(e)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		in.Current[a] = true
	}
}

func testDuck(e *ecs.ECS) (*components.DuckData, *components.AimData) {
	entry, _ := duckEntry(e)
	return components.Duck.Get(entry), components.Aim.Get(entry)
}

func setElapsed(e *ecs.ECS, dt float64) {
	getOrCreateClock(e).Elapsed = dt
}
