package factory

import (
	"github.com/automoto/ducklaunch/archetypes"
	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/automoto/ducklaunch/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateDuck(ecs *ecs.ECS, c cfg.SimConfig) *donburi.Entry {
	duck := archetypes.Duck.Spawn(ecs)

	components.Duck.SetValue(duck, components.DuckData{
		XPos: c.Duck.StartX,
	})
	components.Aim.SetValue(duck, components.AimData{
		Increasing: true,
	})
	components.Lives.SetValue(duck, components.LivesData{
		Lives:    c.Duck.StartLives,
		MaxLives: c.Duck.StartLives,
	})

	obj := newCollisionObject(ecs, c, c.Duck.StartX, 0, tags.ResolvDuck)
	obj.Data = duck
	components.Object.SetValue(duck, components.ObjectData{Object: obj})

	return duck
}

// newCollisionObject creates a resolv broadphase box centered on a world
// position and adds it to the scene's collision space. The box spans one
// collision diameter per side so overlap candidates are never missed.
func newCollisionObject(ecs *ecs.ECS, c cfg.SimConfig, wx, wy float64, tag string) *resolv.Object {
	side := 2 * c.MinRadius * c.Space.Scale
	sx, sy := c.Space.ToSpace(wx, wy)
	obj := resolv.NewObject(sx-side/2, sy-side/2, side, side, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, side, side))

	spaceEntry := components.Space.MustFirst(ecs.World)
	components.Space.Get(spaceEntry).Add(obj)
	return obj
}

// MoveCollisionObject re-centers a broadphase box on a new world position.
func MoveCollisionObject(obj *resolv.Object, c cfg.SimConfig, wx, wy float64) {
	sx, sy := c.Space.ToSpace(wx, wy)
	obj.X = sx - obj.W/2
	obj.Y = sy - obj.H/2
	obj.Update()
}
