package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/ducklaunch/assets"
	"github.com/automoto/ducklaunch/components"
	cfg "github.com/automoto/ducklaunch/config"
	"github.com/automoto/ducklaunch/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Source texture for DrawTriangles: a solid white pixel sampled from the
// middle of a 3x3 image so filtering never bleeds the border.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var meshLibrary *assets.Library

// SetMeshLibrary installs the mesh library the renderers draw from. Called
// once at startup before any scene runs.
func SetMeshLibrary(lib *assets.Library) {
	meshLibrary = lib
}

// World-to-screen framing: the bottom of the view sits this many world
// units below the ground line.
const groundMargin = 0.4

// Score digits are laid out right to left from this board position.
const (
	scoreX     = 3.8
	scoreY     = 2.5
	scoreStepX = -0.1
)

// The aim cursor floats this far above the grounded duck.
const cursorLift = 0.5

// DrawBoard renders the whole playfield from simulation transforms: ground,
// targets, enemies, the duck, the aim cursor with its charge bar, hit
// flashes, and the score glyphs. It only reads component data.
func DrawBoard(ecs *ecs.ECS, screen *ebiten.Image) {
	if meshLibrary == nil {
		return
	}
	board := BoardOf(ecs)
	c := board.Cfg
	ps := pixelScale(c)

	// Ground line.
	groundY := float32(float64(cfg.C.Height) - groundMargin*ps)
	vector.DrawFilledRect(screen, 0, groundY, float32(cfg.C.Width),
		float32(cfg.C.Height)-groundY, color.RGBA{30, 60, 30, 255}, false)

	tags.Target.Each(ecs.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry)
		drawMesh(screen, c, meshLibrary.MustMesh("Egg"), pos.X, pos.Y, 1, 0)
	})

	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry)
		drawMesh(screen, c, meshLibrary.MustMesh("Cube"), pos.X, pos.Y, 1, 0)
	})

	components.Flash.Each(ecs.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry)
		scale := components.Flash.Get(entry).Scale
		if scale > 0 {
			drawMesh(screen, c, meshLibrary.MustMesh("Egg"), pos.X, pos.Y, scale, 0)
		}
	})

	if entry, ok := duckEntry(ecs); ok {
		duck := components.Duck.Get(entry)
		// Flicker while invulnerable after an enemy hit.
		if duck.InvulnFrames == 0 || (duck.InvulnFrames/4)%2 == 0 {
			drawMesh(screen, c, meshLibrary.MustMesh("Doll"), duck.XPos, duck.Height, 1, 0)
		}

		if !duck.Jumping {
			aim := components.Aim.Get(entry)
			// Bar meshes extend along +x; rotate so angle 0 points
			// straight up.
			rot := math.Pi/2 - float64(aim.AngleDeg)*math.Pi/180
			drawMesh(screen, c, meshLibrary.MustMesh("White"),
				duck.XPos, duck.Height+cursorLift, 1, rot)
			if aim.Power > 0 {
				drawMesh(screen, c, meshLibrary.MustMesh("Red"),
					duck.XPos, duck.Height+cursorLift, 1+0.6*aim.Power, rot)
			}
		}
	}

	drawScore(screen, c, ScoreOf(ecs).Score)
}

// pixelScale returns the uniform world-to-screen scale that fits both view
// extents inside the window.
func pixelScale(c cfg.SimConfig) float64 {
	return math.Min(
		float64(cfg.C.Width)/c.Board.ViewWidth,
		float64(cfg.C.Height)/c.Board.ViewHeight,
	)
}

// drawScore renders the decimal digits of the score, least significant at
// the anchor and the rest stepping left.
func drawScore(screen *ebiten.Image, c cfg.SimConfig, score uint) {
	x := scoreX
	for {
		drawMesh(screen, c, meshLibrary.Digit(int(score%10)), x, scoreY, 1, 0)
		score /= 10
		x += scoreStepX
		if score == 0 {
			return
		}
	}
}

// drawMesh projects a mesh's baked triangles from board space into screen
// space with a uniform scale and rotation about the anchor.
func drawMesh(screen *ebiten.Image, c cfg.SimConfig, m assets.Mesh, wx, wy, scale, rot float64) {
	verts := meshLibrary.Vertices(m)
	if len(verts) == 0 {
		return
	}

	ps := pixelScale(c)
	sin, cos := math.Sincos(rot)
	h := float64(cfg.C.Height)

	dst := make([]ebiten.Vertex, len(verts))
	idx := make([]uint16, len(verts))
	for i, v := range verts {
		lx := scale * (cos*float64(v.X) - sin*float64(v.Y))
		ly := scale * (sin*float64(v.X) + cos*float64(v.Y))
		worldX := wx + lx
		worldY := wy + ly

		dst[i] = ebiten.Vertex{
			DstX:   float32((worldX - c.Board.MinX) * ps),
			DstY:   float32(h - (worldY+groundMargin)*ps),
			SrcX:   1,
			SrcY:   1,
			ColorR: v.R,
			ColorG: v.G,
			ColorB: v.B,
			ColorA: v.A,
		}
		idx[i] = uint16(i)
	}

	screen.DrawTriangles(dst, idx, whiteSubImage, nil)
}
