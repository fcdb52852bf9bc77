package factory

import (
	"github.com/automoto/ducklaunch/archetypes"
	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/automoto/ducklaunch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a hunter at the fixed swarm origin. Enemies are never
// removed once spawned.
func CreateEnemy(ecs *ecs.ECS, c cfg.SimConfig) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	components.Transform.SetValue(enemy, components.TransformData{
		X: c.Enemies.SpawnX,
		Y: c.Enemies.SpawnY,
	})

	obj := newCollisionObject(ecs, c, c.Enemies.SpawnX, c.Enemies.SpawnY, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	return enemy
}
