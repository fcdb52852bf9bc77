package factory

import (
	"math/rand"

	"github.com/automoto/ducklaunch/archetypes"
	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/automoto/ducklaunch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTarget spawns one target at a position drawn from the board RNG.
// The y coordinate is re-rolled until it clears the minimum spawn height so
// targets never appear at ground level where no arc can be aimed.
func CreateTarget(ecs *ecs.ECS, c cfg.SimConfig, rng *rand.Rand) *donburi.Entry {
	x := float64(rng.Intn(c.Targets.SpawnRange)) / c.Targets.XDivisor
	y := float64(rng.Intn(c.Targets.SpawnRange)) / c.Targets.YDivisor
	for y < c.Targets.MinSpawnY {
		y = float64(rng.Intn(c.Targets.SpawnRange)) / c.Targets.YRerollDivisor
	}

	return CreateTargetAt(ecs, c, x, y)
}

// CreateTargetAt spawns a target at an explicit position.
func CreateTargetAt(ecs *ecs.ECS, c cfg.SimConfig, x, y float64) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)
	components.Transform.SetValue(target, components.TransformData{X: x, Y: y})

	obj := newCollisionObject(ecs, c, x, y, tags.ResolvTarget)
	obj.Data = target
	components.Object.SetValue(target, components.ObjectData{Object: obj})

	return target
}
