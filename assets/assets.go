package assets

import (
	"embed"
	"encoding/binary"
	"fmt"
	"log"
	"math"
)

//go:embed meshes/meshes.blob
var meshFS embed.FS

// The mesh blob is a little-endian chunk stream. Each chunk is a 4-byte
// ASCII tag followed by a uint32 payload length:
//
//	dat0  vertex records, 28 bytes each: 3xf32 position, 3xf32 normal,
//	      4xu8 RGBA color
//	str0  concatenated name characters
//	idx0  index records, 16 bytes each: nameBegin, nameEnd, vertexBegin,
//	      vertexEnd (all uint32, half-open ranges)
//
// Index entries bind a name substring to a contiguous vertex range. Any
// duplicate name or out-of-range offset is a fatal load error.
const (
	vertexRecordSize = 28
	indexRecordSize  = 16
	chunkHeaderSize  = 8
)

// Vertex is one record from the dat0 chunk with its lighting already baked:
// R,G,B are the vertex color modulated by the fixed sky and sun lights, so
// the renderer can hand them straight to the GPU.
type Vertex struct {
	X, Y, Z    float32
	R, G, B, A float32
}

// Mesh is a handle to a contiguous vertex range inside a Library. Vertices
// are consumed three at a time as triangles.
type Mesh struct {
	First int
	Count int
}

// Library holds every mesh parsed from the blob, addressable by name.
type Library struct {
	vertices []Vertex
	meshes   map[string]Mesh
	digits   [10]Mesh
}

// RequiredMeshes lists the names the simulation renders. Load fails if any
// is missing from the blob.
var RequiredMeshes = []string{
	"White", "Red", "Doll", "Egg", "Cube",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// Fixed scene lighting baked into vertex colors at load time.
var (
	skyDir   = [3]float32{0, 1, 0}
	skyColor = [3]float32{0.2, 0.2, 0.3}
	sunDir   = normalize(-0.2, 0.2, 1)
	sunColor = [3]float32{0.81, 0.81, 0.76}
)

// Load parses the embedded mesh blob.
func Load() (*Library, error) {
	data, err := meshFS.ReadFile("meshes/meshes.blob")
	if err != nil {
		return nil, fmt.Errorf("read mesh blob: %w", err)
	}
	return Parse(data)
}

// MustLoad is Load for main-path startup where a bad blob is unrecoverable.
func MustLoad() *Library {
	lib, err := Load()
	if err != nil {
		log.Fatalf("mesh assets: %v", err)
	}
	return lib
}

// Parse decodes a mesh blob from memory.
func Parse(data []byte) (*Library, error) {
	var dat, str, idx []byte
	rest := data
	for len(rest) >= chunkHeaderSize {
		tag := string(rest[:4])
		size := binary.LittleEndian.Uint32(rest[4:8])
		body := rest[chunkHeaderSize:]
		if uint32(len(body)) < size {
			return nil, fmt.Errorf("chunk %q: payload truncated, want %d bytes have %d", tag, size, len(body))
		}
		payload := body[:size]
		switch tag {
		case "dat0":
			dat = payload
		case "str0":
			str = payload
		case "idx0":
			idx = payload
		default:
			return nil, fmt.Errorf("unknown chunk tag %q", tag)
		}
		rest = body[size:]
	}
	if len(rest) != 0 {
		log.Printf("Warning: mesh blob has %d trailing bytes", len(rest))
	}
	if dat == nil || str == nil || idx == nil {
		return nil, fmt.Errorf("mesh blob missing chunks: dat0=%v str0=%v idx0=%v", dat != nil, str != nil, idx != nil)
	}
	if len(dat)%vertexRecordSize != 0 {
		return nil, fmt.Errorf("dat0 length %d is not a multiple of %d", len(dat), vertexRecordSize)
	}
	if len(idx)%indexRecordSize != 0 {
		return nil, fmt.Errorf("idx0 length %d is not a multiple of %d", len(idx), indexRecordSize)
	}

	vertexCount := len(dat) / vertexRecordSize
	lib := &Library{
		vertices: make([]Vertex, vertexCount),
		meshes:   make(map[string]Mesh),
	}
	for i := 0; i < vertexCount; i++ {
		lib.vertices[i] = decodeVertex(dat[i*vertexRecordSize:])
	}

	for off := 0; off < len(idx); off += indexRecordSize {
		nameBegin := binary.LittleEndian.Uint32(idx[off:])
		nameEnd := binary.LittleEndian.Uint32(idx[off+4:])
		vertBegin := binary.LittleEndian.Uint32(idx[off+8:])
		vertEnd := binary.LittleEndian.Uint32(idx[off+12:])

		if nameBegin > nameEnd || nameEnd > uint32(len(str)) {
			return nil, fmt.Errorf("index entry %d: name range [%d,%d) exceeds str0 size %d", off/indexRecordSize, nameBegin, nameEnd, len(str))
		}
		if vertBegin > vertEnd || vertEnd > uint32(vertexCount) {
			return nil, fmt.Errorf("index entry %d: vertex range [%d,%d) exceeds %d vertices", off/indexRecordSize, vertBegin, vertEnd, vertexCount)
		}
		name := string(str[nameBegin:nameEnd])
		if _, dup := lib.meshes[name]; dup {
			return nil, fmt.Errorf("duplicate mesh name %q", name)
		}
		lib.meshes[name] = Mesh{
			First: int(vertBegin),
			Count: int(vertEnd - vertBegin),
		}
	}

	for _, name := range RequiredMeshes {
		if _, ok := lib.meshes[name]; !ok {
			return nil, fmt.Errorf("mesh blob missing required mesh %q", name)
		}
	}
	for d := 0; d < 10; d++ {
		lib.digits[d] = lib.meshes[string(rune('0'+d))]
	}
	return lib, nil
}

// Mesh resolves a mesh handle by exact name.
func (l *Library) Mesh(name string) (Mesh, bool) {
	m, ok := l.meshes[name]
	return m, ok
}

// MustMesh resolves a required mesh. Only valid for names in RequiredMeshes,
// which Parse has already verified exist.
func (l *Library) MustMesh(name string) Mesh {
	m, ok := l.meshes[name]
	if !ok {
		log.Fatalf("mesh %q not in library", name)
	}
	return m
}

// Digit returns the glyph mesh for a decimal digit 0-9.
func (l *Library) Digit(d int) Mesh {
	return l.digits[d]
}

// Vertices returns the lit vertex slice backing a mesh handle.
func (l *Library) Vertices(m Mesh) []Vertex {
	return l.vertices[m.First : m.First+m.Count]
}

func decodeVertex(rec []byte) Vertex {
	px := math.Float32frombits(binary.LittleEndian.Uint32(rec[0:]))
	py := math.Float32frombits(binary.LittleEndian.Uint32(rec[4:]))
	pz := math.Float32frombits(binary.LittleEndian.Uint32(rec[8:]))
	nx := math.Float32frombits(binary.LittleEndian.Uint32(rec[12:]))
	ny := math.Float32frombits(binary.LittleEndian.Uint32(rec[16:]))
	nz := math.Float32frombits(binary.LittleEndian.Uint32(rec[20:]))
	r := float32(rec[24]) / 255
	g := float32(rec[25]) / 255
	b := float32(rec[26]) / 255
	a := float32(rec[27]) / 255

	lr, lg, lb := lightColor(nx, ny, nz)
	return Vertex{
		X: px, Y: py, Z: pz,
		R: r * lr, G: g * lg, B: b * lb, A: a,
	}
}

// lightColor evaluates the fixed two-light rig for a normal: a hemisphere
// sky term (half-lambert) plus a directional sun term.
func lightColor(nx, ny, nz float32) (r, g, b float32) {
	sky := 0.5 + 0.5*dot(nx, ny, nz, skyDir)
	sun := dot(nx, ny, nz, sunDir)
	if sun < 0 {
		sun = 0
	}
	r = skyColor[0]*sky + sunColor[0]*sun
	g = skyColor[1]*sky + sunColor[1]*sun
	b = skyColor[2]*sky + sunColor[2]*sun
	return r, g, b
}

func dot(x, y, z float32, d [3]float32) float32 {
	return x*d[0] + y*d[1] + z*d[2]
}

func normalize(x, y, z float32) [3]float32 {
	l := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	return [3]float32{x / l, y / l, z / l}
}
