package components

import "github.com/yohamta/donburi"

// TransformData is a position in board units for entities that don't carry
// full kinematics (targets, enemies, one-shot effects).
type TransformData struct {
	X float64
	Y float64
}

var Transform = donburi.NewComponentType[TransformData]()
