package config

import "github.com/yohamta/donburi/ecs"

// Render layers. Everything draws on the default layer.
const (
	Default ecs.LayerID = iota
)
