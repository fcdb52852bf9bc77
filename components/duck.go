package components

import "github.com/yohamta/donburi"

// DuckData is the launchable's full kinematic state. While Jumping is false
// the duck sits on the ground at XPos and the aim systems own it; while
// Jumping is true the flight system integrates XPos/Height from the
// velocities each tick.
type DuckData struct {
	XPos    float64
	Height  float64
	VelX    float64
	VelY    float64
	Jumping bool

	// InvulnFrames counts down after an enemy hit so a single swarm
	// doesn't drain every life in consecutive frames.
	InvulnFrames int
}

var Duck = donburi.NewComponentType[DuckData]()
