package systems

import (
	"github.com/automoto/ducklaunch/components"
	"github.com/automoto/ducklaunch/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// The game runs on ebiten's fixed tick rate.
const frameElapsed = 1.0 / 60

// UpdateClock advances the frame clock. Simulation systems read the
// timestep from here instead of polling real time, which keeps them
// steppable in tests.
func UpdateClock(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)
	clock.Elapsed = frameElapsed
	clock.Frame++
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// elapsed returns the sanitized timestep for the current frame.
func elapsed(ecs *ecs.ECS) float64 {
	return gamemath.SanitizeElapsed(getOrCreateClock(ecs).Elapsed)
}
