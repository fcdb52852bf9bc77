package components

import "github.com/yohamta/donburi"

// ClockData carries the per-frame timestep through the simulation.
// The scene sets Elapsed once per tick so systems never read wall time.
type ClockData struct {
	Elapsed float64 // seconds for this tick, fixed at 1/60 in-game
	Frame   uint64  // ticks since the scene started
}

var Clock = donburi.NewComponentType[ClockData]()
