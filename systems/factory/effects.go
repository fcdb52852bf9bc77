package factory

import (
	"github.com/automoto/ducklaunch/archetypes"
	"github.com/automoto/ducklaunch/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitFlash spawns a short pop effect where a target was consumed.
// The flash scales up then back down over a tween sequence; the effects
// system removes the entity when the sequence completes.
func CreateHitFlash(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	flash := archetypes.HitFlash.Spawn(ecs)
	components.Transform.SetValue(flash, components.TransformData{X: x, Y: y})
	components.Flash.SetValue(flash, components.FlashData{Scale: 0})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1.6, 0.12, ease.OutQuad),
		gween.New(1.6, 0, 0.18, ease.InQuad),
	)
	components.Tween.Set(flash, tw)

	return flash
}
