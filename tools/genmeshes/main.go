// Command genmeshes builds assets/meshes/meshes.blob, the chunked binary
// mesh library the game embeds. All geometry is flat triangles in the XY
// plane with a +Z normal; lighting is applied at load time, not here.
//
// Run from the repository root:
//
//	go run ./tools/genmeshes
package main

import (
	"encoding/binary"
	"log"
	"math"
	"os"
)

type rgba struct{ r, g, b, a uint8 }

type mesh struct {
	name  string
	verts []vert
}

type vert struct {
	x, y  float32
	color rgba
}

const (
	segThick = 0.02
	digitW   = 0.10
	digitH   = 0.18
)

var (
	white     = rgba{255, 255, 255, 255}
	red       = rgba{220, 40, 40, 255}
	duckBody  = rgba{240, 200, 60, 255}
	duckBeak  = rgba{235, 120, 30, 255}
	eggShell  = rgba{245, 240, 225, 255}
	cubePaint = rgba{150, 40, 170, 255}
)

func main() {
	meshes := []mesh{
		bar("White", white),
		bar("Red", red),
		doll(),
		egg(),
		cube(),
	}
	for d := 0; d <= 9; d++ {
		meshes = append(meshes, digit(d))
	}

	blob := encode(meshes)
	if err := os.WriteFile("assets/meshes/meshes.blob", blob, 0o644); err != nil {
		log.Fatalf("write blob: %v", err)
	}
	log.Printf("wrote %d meshes, %d bytes", len(meshes), len(blob))
}

// bar is the aim cursor / charge meter strip: a unit-anchored horizontal
// bar that the renderer scales by charge power.
func bar(name string, c rgba) mesh {
	return mesh{name: name, verts: quad(0, -segThick, 0.5, segThick, c)}
}

// doll is the duck: a round body with a beak triangle on the right.
func doll() mesh {
	m := mesh{name: "Doll"}
	m.verts = append(m.verts, disc(0, 0, 0.15, 16, duckBody)...)
	m.verts = append(m.verts,
		vert{0.13, 0.05, duckBeak},
		vert{0.22, 0.0, duckBeak},
		vert{0.13, -0.05, duckBeak},
	)
	return m
}

// egg is the target: an upright ellipse.
func egg() mesh {
	m := mesh{name: "Egg"}
	for i := 0; i < 16; i++ {
		a0 := 2 * math.Pi * float64(i) / 16
		a1 := 2 * math.Pi * float64(i+1) / 16
		m.verts = append(m.verts,
			vert{0, 0, eggShell},
			vert{0.12 * float32(math.Cos(a0)), 0.16 * float32(math.Sin(a0)), eggShell},
			vert{0.12 * float32(math.Cos(a1)), 0.16 * float32(math.Sin(a1)), eggShell},
		)
	}
	return m
}

// cube is the enemy: a filled square.
func cube() mesh {
	return mesh{name: "Cube", verts: quad(-0.12, -0.12, 0.12, 0.12, cubePaint)}
}

// Seven-segment layout. Segments are named A..G: A top, B top-right,
// C bottom-right, D bottom, E bottom-left, F top-left, G middle. The glyph
// cell is anchored at its lower-left corner.
var digitSegments = [10]string{
	0: "ABCDEF",
	1: "BC",
	2: "ABGED",
	3: "ABGCD",
	4: "FGBC",
	5: "AFGCD",
	6: "AFGECD",
	7: "ABC",
	8: "ABCDEFG",
	9: "ABCDFG",
}

func digit(d int) mesh {
	m := mesh{name: string(rune('0' + d))}
	mid := float32(digitH / 2)
	for _, seg := range digitSegments[d] {
		var vs []vert
		switch seg {
		case 'A':
			vs = quad(0, digitH-segThick, digitW, digitH, white)
		case 'B':
			vs = quad(digitW-segThick, mid, digitW, digitH, white)
		case 'C':
			vs = quad(digitW-segThick, 0, digitW, mid, white)
		case 'D':
			vs = quad(0, 0, digitW, segThick, white)
		case 'E':
			vs = quad(0, 0, segThick, mid, white)
		case 'F':
			vs = quad(0, mid, segThick, digitH, white)
		case 'G':
			vs = quad(0, mid-segThick/2, digitW, mid+segThick/2, white)
		}
		m.verts = append(m.verts, vs...)
	}
	return m
}

func quad(x0, y0, x1, y1 float32, c rgba) []vert {
	return []vert{
		{x0, y0, c}, {x1, y0, c}, {x1, y1, c},
		{x0, y0, c}, {x1, y1, c}, {x0, y1, c},
	}
}

func disc(cx, cy, r float32, steps int, c rgba) []vert {
	var vs []vert
	for i := 0; i < steps; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(steps)
		a1 := 2 * math.Pi * float64(i+1) / float64(steps)
		vs = append(vs,
			vert{cx, cy, c},
			vert{cx + r*float32(math.Cos(a0)), cy + r*float32(math.Sin(a0)), c},
			vert{cx + r*float32(math.Cos(a1)), cy + r*float32(math.Sin(a1)), c},
		)
	}
	return vs
}

func encode(meshes []mesh) []byte {
	var dat, str, idx []byte
	cursor := uint32(0)
	for _, m := range meshes {
		nameBegin := uint32(len(str))
		str = append(str, m.name...)
		nameEnd := uint32(len(str))

		vertBegin := cursor
		for _, v := range m.verts {
			for _, f := range []float32{v.x, v.y, 0, 0, 0, 1} {
				dat = binary.LittleEndian.AppendUint32(dat, math.Float32bits(f))
			}
			dat = append(dat, v.color.r, v.color.g, v.color.b, v.color.a)
			cursor++
		}

		for _, u := range []uint32{nameBegin, nameEnd, vertBegin, cursor} {
			idx = binary.LittleEndian.AppendUint32(idx, u)
		}
	}

	var blob []byte
	for _, c := range []struct {
		tag  string
		body []byte
	}{{"dat0", dat}, {"str0", str}, {"idx0", idx}} {
		blob = append(blob, c.tag...)
		blob = binary.LittleEndian.AppendUint32(blob, uint32(len(c.body)))
		blob = append(blob, c.body...)
	}
	return blob
}
