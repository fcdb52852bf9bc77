package systems

import (
	"github.com/automoto/ducklaunch/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances hit-flash tweens and removes finished effects.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(elapsed(ecs))

	var done []*donburi.Entry
	components.Flash.Each(ecs.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		value, _, seqDone := tw.Update(dt)
		components.Flash.Get(entry).Scale = float64(value)
		if seqDone {
			done = append(done, entry)
		}
	})

	for _, entry := range done {
		ecs.World.Remove(entry.Entity())
	}
}
