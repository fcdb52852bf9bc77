package systems

import (
	"github.com/automoto/ducklaunch/components"
	"github.com/automoto/ducklaunch/gamemath"
	"github.com/automoto/ducklaunch/systems/factory"
	"github.com/automoto/ducklaunch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTargets resolves duck-target overlaps. Collisions are only tested
// while the duck is airborne. The scan collects hits first and applies
// removals afterwards so respawns can never be visited by the same pass.
//
// Each hit: remove the target, spawn a replacement (keeping the active set
// at its fixed size), bump the score, and spawn one enemy whenever the new
// score crosses a ten-point threshold. Simultaneous hits are each processed
// independently.
func UpdateTargets(ecs *ecs.ECS) {
	entry, ok := duckEntry(ecs)
	if !ok {
		return
	}
	duck := components.Duck.Get(entry)
	if !duck.Jumping {
		return
	}

	board := BoardOf(ecs)
	c := board.Cfg

	// Broadphase: candidate targets from the collision space, confirmed
	// with the exact circle test.
	var hits []*donburi.Entry
	obj := components.Object.Get(entry)
	if check := obj.Check(0, 0, tags.ResolvTarget); check != nil {
		for _, candidate := range check.ObjectsByTags(tags.ResolvTarget) {
			targetEntry, ok := candidate.Data.(*donburi.Entry)
			if !ok || !targetEntry.Valid() {
				continue
			}
			pos := components.Transform.Get(targetEntry)
			if gamemath.CirclesOverlap(duck.XPos, duck.Height, pos.X, pos.Y, c.MinRadius) {
				hits = append(hits, targetEntry)
			}
		}
	}

	if len(hits) == 0 {
		return
	}

	score := ScoreOf(ecs)
	spaceEntry := components.Space.MustFirst(ecs.World)
	space := components.Space.Get(spaceEntry)

	for _, hit := range hits {
		pos := *components.Transform.Get(hit)
		space.Remove(components.Object.Get(hit).Object)
		ecs.World.Remove(hit.Entity())

		factory.CreateTarget(ecs, c, board.RNG)
		factory.CreateHitFlash(ecs, pos.X, pos.Y)
		score.Score++

		for score.EnemiesSpawned < score.Score/c.Enemies.ScoreInterval {
			score.EnemiesSpawned++
			factory.CreateEnemy(ecs, c)
		}
	}
}

// CountTargets returns the size of the active target set.
func CountTargets(ecs *ecs.ECS) int {
	n := 0
	tags.Target.Each(ecs.World, func(*donburi.Entry) {
		n++
	})
	return n
}
