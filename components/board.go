package components

import (
	"math/rand"

	cfg "github.com/automoto/ducklaunch/config"
	"github.com/yohamta/donburi"
)

// BoardData is the singleton that owns the rules of the current run: the
// tunable configuration and the seeded random source every spawn draws
// from. Keeping the RNG here makes whole runs reproducible from a seed.
type BoardData struct {
	Cfg cfg.SimConfig
	RNG *rand.Rand
}

var Board = donburi.NewComponentType[BoardData]()
