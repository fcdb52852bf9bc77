package assets

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

type blobEntry struct {
	name     string
	vertices [][3]float32
	normal   [3]float32
	color    [4]uint8
}

func buildBlob(t *testing.T, entries []blobEntry) []byte {
	t.Helper()

	var dat, str, idx []byte
	vertCursor := uint32(0)
	for _, e := range entries {
		nameBegin := uint32(len(str))
		str = append(str, e.name...)
		nameEnd := uint32(len(str))

		vertBegin := vertCursor
		for _, p := range e.vertices {
			for _, f := range []float32{p[0], p[1], p[2], e.normal[0], e.normal[1], e.normal[2]} {
				dat = binary.LittleEndian.AppendUint32(dat, math.Float32bits(f))
			}
			dat = append(dat, e.color[0], e.color[1], e.color[2], e.color[3])
			vertCursor++
		}

		for _, v := range []uint32{nameBegin, nameEnd, vertBegin, vertCursor} {
			idx = binary.LittleEndian.AppendUint32(idx, v)
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

func requiredEntries() []blobEntry {
	tri := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	var entries []blobEntry
	for _, name := range RequiredMeshes {
		entries = append(entries, blobEntry{
			name:     name,
			vertices: tri,
			normal:   [3]float32{0, 0, 1},
			color:    [4]uint8{255, 255, 255, 255},
		})
	}
	return entries
}

func TestParseResolvesMeshesByName(t *testing.T) {
	lib, err := Parse(buildBlob(t, requiredEntries()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m, ok := lib.Mesh("Doll")
	if !ok {
		t.Fatal("Doll not found")
	}
	if m.Count != 3 {
		t.Fatalf("Doll vertex count = %d, want 3", m.Count)
	}
	if got := len(lib.Vertices(m)); got != 3 {
		t.Fatalf("Vertices(Doll) len = %d, want 3", got)
	}
	for d := 0; d < 10; d++ {
		if lib.Digit(d).Count == 0 {
			t.Fatalf("digit %d has no vertices", d)
		}
	}
}

func TestParseBakesLighting(t *testing.T) {
	entries := requiredEntries()
	lib, err := Parse(buildBlob(t, entries))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// Normal (0,0,1) faces the sun but is orthogonal to the sky axis, so
	// the lit color is 0.5*sky + sunDot*sun on a white vertex.
	v := lib.Vertices(lib.MustMesh("White"))[0]
	sunDot := float32(1.0 / math.Sqrt(0.2*0.2+0.2*0.2+1))
	wantR := 0.5*float32(0.2) + sunDot*float32(0.81)
	if math.Abs(float64(v.R-wantR)) > 1e-5 {
		t.Fatalf("lit R = %f, want %f", v.R, wantR)
	}
	if v.A != 1 {
		t.Fatalf("alpha = %f, want 1", v.A)
	}
}

func TestParseRejectsDuplicateNames(t *testing.T) {
	entries := append(requiredEntries(), requiredEntries()[0])
	_, err := Parse(buildBlob(t, entries))
	if err == nil || !strings.Contains(err.Error(), "duplicate mesh name") {
		t.Fatalf("want duplicate-name error, got %v", err)
	}
}

func TestParseRejectsBadVertexRange(t *testing.T) {
	blob := buildBlob(t, requiredEntries())
	// Corrupt the last index entry's vertexEnd to exceed the vertex count.
	binary.LittleEndian.PutUint32(blob[len(blob)-4:], 1<<20)
	_, err := Parse(blob)
	if err == nil || !strings.Contains(err.Error(), "vertex range") {
		t.Fatalf("want vertex-range error, got %v", err)
	}
}

func TestParseRejectsMissingRequiredMesh(t *testing.T) {
	entries := requiredEntries()[1:] // drop White
	_, err := Parse(buildBlob(t, entries))
	if err == nil || !strings.Contains(err.Error(), "required mesh") {
		t.Fatalf("want missing-mesh error, got %v", err)
	}
}

func TestParseToleratesTrailingBytes(t *testing.T) {
	blob := buildBlob(t, requiredEntries())
	// Fewer bytes than a chunk header after the last chunk are not an
	// error, just noise.
	blob = append(blob, 0xde, 0xad, 0xbe)
	lib, err := Parse(blob)
	if err != nil {
		t.Fatalf("trailing bytes rejected: %v", err)
	}
	if _, ok := lib.Mesh("Doll"); !ok {
		t.Fatal("Doll missing after parse with trailing bytes")
	}
}

func TestParseRejectsTruncatedChunk(t *testing.T) {
	blob := buildBlob(t, requiredEntries())
	_, err := Parse(blob[:len(blob)-8])
	if err == nil {
		t.Fatal("want error for truncated blob")
	}
}

func TestEmbeddedBlobLoads(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("load embedded blob: %v", err)
	}
	for _, name := range RequiredMeshes {
		m := lib.MustMesh(name)
		if m.Count == 0 || m.Count%3 != 0 {
			t.Fatalf("mesh %q vertex count = %d, want non-zero multiple of 3", name, m.Count)
		}
	}
}
