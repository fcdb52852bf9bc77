package tags

import "github.com/yohamta/donburi"

var (
	Duck   = donburi.NewTag().SetName("Duck")
	Target = donburi.NewTag().SetName("Target")
	Enemy  = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for collision broadphase
const (
	ResolvDuck   = "Duck"
	ResolvTarget = "Target"
	ResolvEnemy  = "Enemy"
)
