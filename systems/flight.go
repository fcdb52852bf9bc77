package systems

import (
	"github.com/automoto/ducklaunch/components"
	"github.com/automoto/ducklaunch/gamemath"
	"github.com/automoto/ducklaunch/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlight integrates the ballistic arc while the duck is airborne:
// gravity, wall bounce, the ceiling clamp, and landing. Landing is the only
// way a flight ends here; an enemy hit can also abort it (see enemies.go).
func UpdateFlight(ecs *ecs.ECS) {
	entry, ok := duckEntry(ecs)
	if !ok {
		return
	}
	duck := components.Duck.Get(entry)
	if !duck.Jumping {
		return
	}

	c := BoardOf(ecs).Cfg
	dt := elapsed(ecs)

	duck.Height, duck.XPos, duck.VelY = gamemath.GravityStep(
		duck.Height, duck.XPos, duck.VelX, duck.VelY, c.Flight.Gravity, dt)

	duck.XPos, duck.VelX, _ = gamemath.Bounce(
		duck.XPos, duck.VelX, c.Board.MinX, c.Board.MaxX, c.Flight.WallRestitution)

	// Ceiling rule: past the apex limit the duck is forced into descent.
	if duck.Height > c.Flight.CeilingHeight {
		duck.VelY = c.Flight.CeilingFallSpeed
	}

	if duck.Height < c.Flight.LandingEpsilon {
		land(entry)
	}

	obj := components.Object.Get(entry)
	factory.MoveCollisionObject(obj.Object, c, duck.XPos, duck.Height)
}

// land snaps the duck to the ground and makes it re-chargeable: height and
// horizontal velocity zeroed, charge meter reset.
func land(entry *donburi.Entry) {
	duck := components.Duck.Get(entry)
	aim := components.Aim.Get(entry)
	duck.Height = 0
	duck.VelX = 0
	duck.Jumping = false
	aim.Power = 0
	aim.Increasing = true
}
