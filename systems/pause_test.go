package systems

import (
	"testing"

	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/yohamta/donburi/ecs"
)

type fakeSceneChanger struct {
	changed interface{}
}

func (f *fakeSceneChanger) ChangeScene(scene interface{}) {
	f.changed = scene
}

func TestPauseTogglesAndFreezesGameplay(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)

	sc := &fakeSceneChanger{}
	pauseSystem := NewUpdatePause(sc, func() interface{} { return "game" }, func() interface{} { return "menu" })

	ran := false
	guarded := WithGameplayChecks(func(*ecs.ECS) { ran = true })

	holdActions(e, cfg.ActionPause)
	pauseSystem(e)
	if !GetOrCreatePause(e).IsPaused {
		t.Fatal("pause key did not pause")
	}

	guarded(e)
	if ran {
		t.Fatal("gameplay system ran while paused")
	}

	// Holding the key must not re-toggle; releasing and pressing again does.
	holdActions(e, cfg.ActionPause)
	pauseSystem(e)
	if !GetOrCreatePause(e).IsPaused {
		t.Fatal("held pause key re-toggled")
	}
	holdActions(e)
	pauseSystem(e)
	holdActions(e, cfg.ActionPause)
	pauseSystem(e)
	if GetOrCreatePause(e).IsPaused {
		t.Fatal("second press did not resume")
	}

	guarded(e)
	if !ran {
		t.Fatal("gameplay system did not run after resume")
	}

	// Exit from the pause menu changes scene.
	GetOrCreatePause(e).IsPaused = true
	GetOrCreatePause(e).SelectedOption = components.MenuExit
	holdActions(e, cfg.ActionMenuSelect)
	pauseSystem(e)
	if sc.changed != "menu" {
		t.Fatalf("exit selected %v, want menu scene", sc.changed)
	}
}

func TestGameOverGuardStopsGameplay(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)

	GetOrCreateGameOver(e).Triggered = true

	ran := false
	WithGameplayChecks(func(*ecs.ECS) { ran = true })(e)
	if ran {
		t.Fatal("gameplay system ran after game over")
	}
}
