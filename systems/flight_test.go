package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/ducklaunch/config"
)

func TestFlightLandsAndResets(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)
	duck, aim := testDuck(e)

	duck.Jumping = true
	duck.VelX = 1.0
	duck.VelY = 5.0
	aim.Power = 2.0
	setElapsed(e, 0.1)

	landed := false
	for i := 0; i < 1000; i++ {
		UpdateFlight(e)
		if !duck.Jumping {
			landed = true
			break
		}
		if duck.Height > c.Flight.CeilingHeight && duck.VelY > c.Flight.CeilingFallSpeed {
			t.Fatalf("ceiling rule not applied at height %f, vy %f", duck.Height, duck.VelY)
		}
	}
	if !landed {
		t.Fatal("flight never terminated")
	}
	if duck.Height != 0 {
		t.Fatalf("landed height = %f, want 0", duck.Height)
	}
	if duck.VelX != 0 {
		t.Fatalf("landed vx = %f, want 0", duck.VelX)
	}
	if aim.Power != 0 {
		t.Fatalf("landed power = %f, want 0", aim.Power)
	}
}

func TestFlightWallBounce(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)
	duck, _ := testDuck(e)

	duck.Jumping = true
	duck.XPos = 5.5
	duck.Height = 2.0
	duck.VelX = 1.0
	duck.VelY = 0
	setElapsed(e, 0.1)

	// One step drives xpos to 5.6, past the right wall.
	UpdateFlight(e)

	if duck.XPos != c.Board.MaxX {
		t.Fatalf("xpos after bounce = %f, want clamp to %f", duck.XPos, c.Board.MaxX)
	}
	wantVX := -1.0 * c.Flight.WallRestitution
	if math.Abs(duck.VelX-wantVX) > 1e-9 {
		t.Fatalf("vx after bounce = %f, want %f", duck.VelX, wantVX)
	}
}

func TestFlightIgnoresGroundedDuck(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)
	duck, _ := testDuck(e)

	duck.VelY = 5.0 // stale value; must not integrate while grounded
	UpdateFlight(e)

	if duck.Height != 0 || duck.XPos != c.Duck.StartX {
		t.Fatalf("grounded duck moved to (%f, %f)", duck.XPos, duck.Height)
	}
}

func TestFlightSanitizesBadElapsed(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)
	duck, _ := testDuck(e)

	duck.Jumping = true
	duck.Height = 1.0
	duck.VelX = 1.0
	duck.VelY = 1.0

	for _, dt := range []float64{math.NaN(), -0.5} {
		setElapsed(e, dt)
		UpdateFlight(e)
		if duck.Height != 1.0 || duck.XPos != c.Duck.StartX {
			t.Fatalf("elapsed %v moved the duck to (%f, %f)", dt, duck.XPos, duck.Height)
		}
	}
}
