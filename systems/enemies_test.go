package systems

import (
	"testing"

	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/automoto/ducklaunch/gamemath"
	"github.com/automoto/ducklaunch/systems/factory"
	"github.com/automoto/ducklaunch/tags"
	"github.com/yohamta/donburi"
)

func TestEnemiesHomeTowardDuck(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)
	duck, _ := testDuck(e)

	enemy := factory.CreateEnemy(e, c)
	pos := components.Transform.Get(enemy)

	prev := gamemath.Distance(pos.X, pos.Y, duck.XPos, duck.Height)
	for i := 0; i < 50; i++ {
		UpdateEnemies(e)
		d := gamemath.Distance(pos.X, pos.Y, duck.XPos, duck.Height)
		if d >= prev {
			t.Fatalf("frame %d: enemy distance %f did not shrink from %f", i, d, prev)
		}
		prev = d
		if d <= c.MinRadius {
			return // contact reached, homing verified
		}
	}
}

func TestEnemyContactCostsOneLife(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)
	entry, _ := duckEntry(e)
	duck := components.Duck.Get(entry)
	lives := components.Lives.Get(entry)

	enemy := factory.CreateEnemy(e, c)
	pos := components.Transform.Get(enemy)
	pos.X, pos.Y = duck.XPos, duck.Height

	duck.Jumping = true
	duck.VelX = 1.0
	UpdateEnemies(e)

	if lives.Lives != c.Duck.StartLives-1 {
		t.Fatalf("lives after contact = %d, want %d", lives.Lives, c.Duck.StartLives-1)
	}
	if duck.Jumping {
		t.Fatal("contact did not abort the flight")
	}
	if duck.InvulnFrames != c.Duck.HitInvulnTime {
		t.Fatalf("invuln frames = %d, want %d", duck.InvulnFrames, c.Duck.HitInvulnTime)
	}

	// Contact on the very next frame must not cost another life.
	pos.X, pos.Y = duck.XPos, duck.Height
	UpdateEnemies(e)
	if lives.Lives != c.Duck.StartLives-1 {
		t.Fatalf("invulnerable duck lost a life: %d", lives.Lives)
	}
}

func TestEnemyContactAtZeroLivesEndsRun(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)
	entry, _ := duckEntry(e)
	duck := components.Duck.Get(entry)
	lives := components.Lives.Get(entry)
	lives.Lives = 1
	ScoreOf(e).Score = 17

	enemy := factory.CreateEnemy(e, c)
	pos := components.Transform.Get(enemy)
	pos.X, pos.Y = duck.XPos, duck.Height

	UpdateEnemies(e)

	gameOver := GetOrCreateGameOver(e)
	if !gameOver.Triggered {
		t.Fatal("run did not end at zero lives")
	}
	if gameOver.FinalScore != 17 {
		t.Fatalf("final score = %d, want 17", gameOver.FinalScore)
	}
}

func TestEnemiesAreNeverRemoved(t *testing.T) {
	c := cfg.DefaultSim()
	e := newTestWorld(c)

	for i := 0; i < 3; i++ {
		factory.CreateEnemy(e, c)
	}
	for i := 0; i < 100; i++ {
		UpdateEnemies(e)
	}

	enemies := 0
	tags.Enemy.Each(e.World, func(*donburi.Entry) { enemies++ })
	if enemies != 3 {
		t.Fatalf("enemy count after 100 frames = %d, want 3", enemies)
	}
}
