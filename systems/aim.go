package systems

import (
	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/automoto/ducklaunch/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAim runs the pre-launch controls: cursor rotation, the triangle-wave
// charge meter, and launch on charge release. Exactly one of the three is
// processed per frame, priority left > right > charge, so the meter freezes
// while the cursor moves.
func UpdateAim(ecs *ecs.ECS) {
	entry, ok := duckEntry(ecs)
	if !ok {
		return
	}
	duck := components.Duck.Get(entry)
	aim := components.Aim.Get(entry)
	input := getOrCreateInput(ecs)
	c := BoardOf(ecs).Cfg

	left := GetAction(input, cfg.ActionAimLeft)
	right := GetAction(input, cfg.ActionAimRight)
	charge := GetAction(input, cfg.ActionCharge)

	// The bound is part of each branch condition: holding left at the
	// minimum angle falls through so right or charge can still process.
	switch {
	case left.Pressed && aim.AngleDeg > c.Launch.MinAngleDeg:
		aim.AngleDeg--
	case right.Pressed && aim.AngleDeg < c.Launch.MaxAngleDeg:
		aim.AngleDeg++
	case charge.Pressed && !duck.Jumping:
		// The meter advances one fixed step per processed frame and
		// ping-pongs at both ends, independent of elapsed time.
		if aim.Increasing {
			aim.Power += c.Launch.PowerStep
		} else {
			aim.Power -= c.Launch.PowerStep
		}
		if aim.Power >= c.Launch.MaxPower {
			aim.Increasing = false
		} else if aim.Power <= 0 {
			aim.Increasing = true
		}
		aim.Power = gamemath.Clamp(aim.Power, 0, c.Launch.MaxPower)
	}

	// Releasing the charge key is the only way a flight begins.
	if charge.JustReleased && !duck.Jumping {
		duck.VelX, duck.VelY = gamemath.LaunchVelocity(
			aim.AngleDeg, aim.Power, c.Launch.AngleDivisor, c.Launch.PowerFactor)
		duck.Jumping = true
	}
}
