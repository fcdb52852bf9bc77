package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/ducklaunch/config"
)

func TestAimAngleStaysInBounds(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)
	_, aim := testDuck(e)

	for i := 0; i < 200; i++ {
		holdActions(e, cfg.ActionAimLeft)
		UpdateAim(e)
		if aim.AngleDeg < c.Launch.MinAngleDeg {
			t.Fatalf("angle %d fell below %d", aim.AngleDeg, c.Launch.MinAngleDeg)
		}
	}
	if aim.AngleDeg != c.Launch.MinAngleDeg {
		t.Fatalf("angle after 200 left frames = %d, want %d", aim.AngleDeg, c.Launch.MinAngleDeg)
	}

	for i := 0; i < 400; i++ {
		holdActions(e, cfg.ActionAimRight)
		UpdateAim(e)
	}
	if aim.AngleDeg != c.Launch.MaxAngleDeg {
		t.Fatalf("angle after 400 right frames = %d, want %d", aim.AngleDeg, c.Launch.MaxAngleDeg)
	}
}

func TestAimChargeTriangleWave(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)
	_, aim := testDuck(e)

	stepsUp := int(math.Round(c.Launch.MaxPower / c.Launch.PowerStep))

	// Hold charge across several full wave periods and check bounds.
	sawMax, sawMin := false, false
	for i := 0; i < stepsUp*5; i++ {
		holdActions(e, cfg.ActionCharge)
		UpdateAim(e)
		if aim.Power < 0 || aim.Power > c.Launch.MaxPower {
			t.Fatalf("power %f escaped [0, %f] at frame %d", aim.Power, c.Launch.MaxPower, i)
		}
		if aim.Power == c.Launch.MaxPower {
			sawMax = true
		}
		if sawMax && aim.Power == 0 {
			sawMin = true
		}
	}
	if !sawMax || !sawMin {
		t.Fatalf("meter did not ping-pong: sawMax=%v sawMin=%v", sawMax, sawMin)
	}
}

func TestAimLeftTakesPriorityOverCharge(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)
	_, aim := testDuck(e)

	holdActions(e, cfg.ActionAimLeft, cfg.ActionCharge)
	UpdateAim(e)

	if aim.AngleDeg != -1 {
		t.Fatalf("angle = %d, want -1 (left processed)", aim.AngleDeg)
	}
	if aim.Power != 0 {
		t.Fatalf("power = %f, want 0 (charge skipped while aiming)", aim.Power)
	}
}

func TestAimChargeAdvancesAtAngleBound(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)
	_, aim := testDuck(e)

	// Holding left at the minimum angle must fall through to the charge
	// branch instead of capturing the frame as a no-op.
	aim.AngleDeg = c.Launch.MinAngleDeg
	holdActions(e, cfg.ActionAimLeft, cfg.ActionCharge)
	UpdateAim(e)

	if aim.AngleDeg != c.Launch.MinAngleDeg {
		t.Fatalf("angle moved past the bound: %d", aim.AngleDeg)
	}
	if math.Abs(aim.Power-c.Launch.PowerStep) > 1e-9 {
		t.Fatalf("power = %f, want one step %f", aim.Power, c.Launch.PowerStep)
	}

	// Same at the maximum angle with right held.
	aim.AngleDeg = c.Launch.MaxAngleDeg
	holdActions(e, cfg.ActionAimRight, cfg.ActionCharge)
	UpdateAim(e)

	if aim.AngleDeg != c.Launch.MaxAngleDeg {
		t.Fatalf("angle moved past the bound: %d", aim.AngleDeg)
	}
	if math.Abs(aim.Power-2*c.Launch.PowerStep) > 1e-9 {
		t.Fatalf("power = %f, want two steps %f", aim.Power, 2*c.Launch.PowerStep)
	}

	// Left at the minimum bound with right also held lets right process.
	aim.AngleDeg = c.Launch.MinAngleDeg
	holdActions(e, cfg.ActionAimLeft, cfg.ActionAimRight)
	UpdateAim(e)
	if aim.AngleDeg != c.Launch.MinAngleDeg+1 {
		t.Fatalf("angle = %d, want %d (right processed)", aim.AngleDeg, c.Launch.MinAngleDeg+1)
	}
}

func TestAimReleaseLaunches(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)
	duck, aim := testDuck(e)

	aim.AngleDeg = 30
	aim.Power = 2.0

	// Hold then release the charge key.
	holdActions(e, cfg.ActionCharge)
	UpdateAim(e)
	holdActions(e)
	UpdateAim(e)

	if !duck.Jumping {
		t.Fatal("release did not start a flight")
	}
	if math.Abs(duck.VelX-1.0) > 1e-9 {
		t.Fatalf("launch vx = %f, want 1.0", duck.VelX)
	}
	// The charge frame before release clamps the meter at max power.
	wantVY := c.Launch.PowerFactor * c.Launch.MaxPower
	if math.Abs(duck.VelY-wantVY) > 1e-9 {
		t.Fatalf("launch vy = %f, want %f", duck.VelY, wantVY)
	}

	// A second release while airborne must not relaunch.
	duck.VelX, duck.VelY = 0, 0
	holdActions(e, cfg.ActionCharge)
	UpdateAim(e)
	holdActions(e)
	UpdateAim(e)
	if duck.VelX != 0 || duck.VelY != 0 {
		t.Fatal("charge release relaunched mid-flight")
	}
}
