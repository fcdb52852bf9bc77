package systems

import (
	"github.com/automoto/ducklaunch/components"
	"github.com/automoto/ducklaunch/gamemath"
	"github.com/automoto/ducklaunch/systems/factory"
	"github.com/automoto/ducklaunch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies advances every hunter toward the duck and resolves contacts.
// Homing is exponential: each frame an enemy closes a fixed fraction of the
// remaining separation per axis, so it converges but never overtakes.
//
// Contact policy: the duck loses one life, any active flight is aborted, and
// a short invulnerability window opens so one swarm can't drain every life
// in consecutive frames. At zero lives the game-over flag is raised.
func UpdateEnemies(ecs *ecs.ECS) {
	entry, ok := duckEntry(ecs)
	if !ok {
		return
	}
	duck := components.Duck.Get(entry)
	c := BoardOf(ecs).Cfg
	divisor := c.Enemies.SeekDivisor * c.Enemies.Speed

	if duck.InvulnFrames > 0 {
		duck.InvulnFrames--
	}

	hit := false
	tags.Enemy.Each(ecs.World, func(enemy *donburi.Entry) {
		pos := components.Transform.Get(enemy)
		pos.X, pos.Y = gamemath.HomingStep(pos.X, pos.Y, duck.XPos, duck.Height, divisor)
		factory.MoveCollisionObject(components.Object.Get(enemy).Object, c, pos.X, pos.Y)

		if gamemath.CirclesOverlap(duck.XPos, duck.Height, pos.X, pos.Y, c.MinRadius) {
			hit = true
		}
	})

	if !hit || duck.InvulnFrames > 0 {
		return
	}

	lives := components.Lives.Get(entry)
	lives.Lives--
	duck.InvulnFrames = c.Duck.HitInvulnTime
	if duck.Jumping {
		land(entry)
	}

	if lives.Lives <= 0 {
		gameOver := GetOrCreateGameOver(ecs)
		gameOver.Triggered = true
		gameOver.FinalScore = ScoreOf(ecs).Score
	}
}
