package components

import "github.com/yohamta/donburi"

// ScoreData tracks targets hit this run plus the enemy spawn bookkeeping:
// EnemiesSpawned counts how many score thresholds have already produced a
// hunter so crossing a threshold spawns exactly one.
type ScoreData struct {
	Score          uint
	EnemiesSpawned uint
}

var Score = donburi.NewComponentType[ScoreData]()
