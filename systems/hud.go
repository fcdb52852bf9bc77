package systems

import (
	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the lives counter and the charge meter in the top-left
// corner. The score itself is drawn on the board with digit glyphs.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := duckEntry(ecs)
	if !ok {
		return
	}
	lives := components.Lives.Get(entry)
	aim := components.Aim.Get(entry)
	c := BoardOf(ecs).Cfg

	hud := cfg.HUD

	// Charge meter background and fill.
	vector.DrawFilledRect(screen,
		float32(hud.Margin), float32(hud.Margin),
		float32(hud.MeterWidth), float32(hud.MeterHeight),
		hud.MeterBgColor, false)

	ratio := float32(aim.Power / c.Launch.MaxPower)
	vector.DrawFilledRect(screen,
		float32(hud.Margin), float32(hud.Margin),
		float32(hud.MeterWidth)*ratio, float32(hud.MeterHeight),
		hud.MeterFgColor, false)

	// One square per remaining life under the meter.
	livesY := float32(hud.Margin + hud.MeterHeight + hud.HeartGap)
	for i := 0; i < lives.Lives; i++ {
		x := float32(hud.Margin + float64(i)*(hud.HeartSize+hud.HeartGap))
		vector.DrawFilledRect(screen, x, livesY,
			float32(hud.HeartSize), float32(hud.HeartSize),
			hud.HeartColor, false)
	}
}
