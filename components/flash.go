package components

import "github.com/yohamta/donburi"

// FlashData is a short-lived pop effect left behind where a target was hit.
// Scale is driven by a tween sequence and the entity is removed when the
// sequence completes.
type FlashData struct {
	Scale float64
}

var Flash = donburi.NewComponentType[FlashData]()
