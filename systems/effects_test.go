package systems

import (
	"testing"

	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/automoto/ducklaunch/systems/factory"
	"github.com/yohamta/donburi"
)

func TestHitFlashExpires(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)

	flash := factory.CreateHitFlash(e, 2.0, 1.5)
	if !flash.Valid() {
		t.Fatal("flash entity invalid after spawn")
	}

	grew := false
	// The whole sequence lasts well under a second; 120 frames at 1/60
	// must retire it.
	for i := 0; i < 120; i++ {
		UpdateEffects(e)
		if flash.Valid() && components.Flash.Get(flash).Scale > 0 {
			grew = true
		}
	}

	if !grew {
		t.Fatal("flash never scaled up")
	}

	count := 0
	components.Flash.Each(e.World, func(*donburi.Entry) { count++ })
	if count != 0 {
		t.Fatalf("flash entities remaining = %d, want 0", count)
	}
}
