package config

import "image/color"

// BoardConfig describes the playfield extents in world units. The board is
// injected into the board entity at scene setup; simulation systems read it
// from there rather than from package globals.
type BoardConfig struct {
	MinX float64 // left wall the duck bounces off
	MaxX float64 // right wall
	// Visible extents used by the renderer to fit the board to the window.
	ViewWidth  float64
	ViewHeight float64
}

// LaunchConfig contains aim cursor and charge meter tuning.
type LaunchConfig struct {
	MinAngleDeg int // inclusive lower bound for the aim cursor
	MaxAngleDeg int // inclusive upper bound

	// The charge meter is a triangle wave: one fixed step per processed
	// frame, ping-ponging between 0 and MaxPower.
	PowerStep float64
	MaxPower  float64

	// Launch velocity on release: (angle/AngleDivisor, PowerFactor*power).
	AngleDivisor float64
	PowerFactor  float64
}

// FlightConfig contains trajectory integration tuning.
type FlightConfig struct {
	Gravity          float64 // negative, world units per second squared
	WallRestitution  float64 // horizontal speed retained after a wall bounce
	CeilingHeight    float64 // above this the duck is forced back down
	CeilingFallSpeed float64 // vertical speed applied at the ceiling
	LandingEpsilon   float64 // below this height the flight ends
}

// TargetConfig contains target field tuning.
type TargetConfig struct {
	Count int // active target cardinality, restored after every hit

	// Spawn position rolls: x = roll(SpawnRange)/XDivisor,
	// y = roll(SpawnRange)/YDivisor re-rolled via YRerollDivisor
	// until y >= MinSpawnY.
	SpawnRange     int
	XDivisor       float64
	YDivisor       float64
	YRerollDivisor float64
	MinSpawnY      float64
}

// EnemySwarmConfig contains enemy homing tuning. Enemies advance toward the
// duck by delta/(SeekDivisor*Speed) per axis per frame and are never removed.
type EnemySwarmConfig struct {
	Speed         float64
	SeekDivisor   float64
	SpawnX        float64 // fixed spawn origin for score-milestone enemies
	SpawnY        float64
	ScoreInterval uint // a new enemy appears at each multiple of this score
}

// DuckConfig contains duck tuning outside the integrator.
type DuckConfig struct {
	StartX        float64
	StartLives    int
	HitInvulnTime int // frames of invulnerability after an enemy hit
}

// SpaceConfig maps world units into the integer collision space used for
// the resolv broadphase. Collisions are confirmed with an exact circle
// test; the space only prunes candidate pairs.
type SpaceConfig struct {
	Scale      float64 // space pixels per world unit
	OffsetX    float64 // world-unit shift so all coordinates stay positive
	OffsetY    float64
	Width      int
	Height     int
	CellWidth  int
	CellHeight int
}

// ToSpace maps a world position to collision-space coordinates.
func (s SpaceConfig) ToSpace(wx, wy float64) (float64, float64) {
	return (wx + s.OffsetX) * s.Scale, (wy + s.OffsetY) * s.Scale
}

// SimConfig bundles everything the simulation needs. One value is attached
// to the board entity when a game scene starts.
type SimConfig struct {
	Board   BoardConfig
	Launch  LaunchConfig
	Flight  FlightConfig
	Targets TargetConfig
	Enemies EnemySwarmConfig
	Duck    DuckConfig
	Space   SpaceConfig

	// MinRadius is the collision threshold distance shared by the
	// target and enemy overlap tests.
	MinRadius float64

	// Seed for the board-owned target RNG. The stream is created once
	// and never reseeded, so a fixed seed reproduces a full run.
	Seed int64
}

// DefaultSim returns the stock simulation tuning.
func DefaultSim() SimConfig {
	return SimConfig{
		Board: BoardConfig{
			MinX:       -0.5,
			MaxX:       5.5,
			ViewWidth:  6.5,
			ViewHeight: 4.4,
		},
		Launch: LaunchConfig{
			MinAngleDeg:  -90,
			MaxAngleDeg:  90,
			PowerStep:    0.1,
			MaxPower:     2.0,
			AngleDivisor: 30.0,
			PowerFactor:  2.5,
		},
		Flight: FlightConfig{
			Gravity:          -4.9,
			WallRestitution:  0.8,
			CeilingHeight:    3.6,
			CeilingFallSpeed: -2.0,
			LandingEpsilon:   0.01,
		},
		Targets: TargetConfig{
			Count:          7,
			SpawnRange:     100,
			XDivisor:       20.0,
			YDivisor:       28.0,
			YRerollDivisor: 26.0,
			MinSpawnY:      1.0,
		},
		Enemies: EnemySwarmConfig{
			Speed:         0.05,
			SeekDivisor:   400.0,
			SpawnX:        0.0,
			SpawnY:        3.0,
			ScoreInterval: 10,
		},
		Duck: DuckConfig{
			StartX:        2.5,
			StartLives:    3,
			HitInvulnTime: 90,
		},
		Space: SpaceConfig{
			Scale:      64.0,
			OffsetX:    1.5,
			OffsetY:    1.0,
			Width:      576,
			Height:     384,
			CellWidth:  32,
			CellHeight: 32,
		},
		MinRadius: 0.3,
		Seed:      0,
	}
}

// HUDConfig contains HUD layout values.
type HUDConfig struct {
	Margin      float64
	HeartSize   float64
	HeartGap    float64
	MeterWidth  float64
	MeterHeight float64

	HeartColor   color.RGBA
	MeterBgColor color.RGBA
	MeterFgColor color.RGBA
}

// PauseConfig contains pause overlay configuration values.
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values.
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
}

// Global configuration instances. Only presentation-layer values live
// here; simulation tuning is injected via SimConfig.
var C *Config
var HUD HUDConfig
var Pause PauseConfig
var GameOver GameOverConfig

// Shared RGBA color constants.
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 432,
	}

	HUD = HUDConfig{
		Margin:       10,
		HeartSize:    10,
		HeartGap:     4,
		MeterWidth:   100,
		MeterHeight:  8,
		HeartColor:   Red,
		MeterBgColor: color.RGBA{R: 40, G: 40, B: 40, A: 255},
		MeterFgColor: color.RGBA{R: 40, G: 220, B: 40, A: 255},
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Restart", "Exit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        Red,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            110,
		ScoreY:            160,
		MenuStartY:        220,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}
}
