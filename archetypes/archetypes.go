package archetypes

import (
	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/automoto/ducklaunch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Duck = newArchetype(
		tags.Duck,
		components.Duck,
		components.Aim,
		components.Object,
		components.Lives,
	)
	Target = newArchetype(
		tags.Target,
		components.Transform,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Transform,
		components.Object,
	)
	Board = newArchetype(
		components.Board,
		components.Score,
	)
	Space = newArchetype(
		components.Space,
	)
	HitFlash = newArchetype(
		components.Transform,
		components.Flash,
		components.Tween,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
