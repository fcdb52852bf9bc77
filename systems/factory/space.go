package factory

import (
	"github.com/automoto/ducklaunch/archetypes"
	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, sc cfg.SpaceConfig) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(sc.Width, sc.Height, sc.CellWidth, sc.CellHeight)
	components.Space.Set(space, spaceData)
	return space
}
