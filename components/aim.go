package components

import "github.com/yohamta/donburi"

// AimData holds the pre-launch controls: the cursor angle in whole degrees
// and the oscillating charge power. Increasing tracks which direction the
// triangle wave is moving.
type AimData struct {
	AngleDeg   int
	Power      float64
	Increasing bool
}

var Aim = donburi.NewComponentType[AimData]()
