package render

import (
	"testing"

	"github.com/lixenwraith/blockworld/vmath"
)

// stubVoxels is a sparse world with uniform brightness
type stubVoxels struct {
	solid      map[[3]int]bool
	brightness float32
}

func (s stubVoxels) IsTile(x, y, z int) bool      { return s.solid[[3]int{x, y, z}] }
func (s stubVoxels) IsSolidTile(x, y, z int) bool { return s.solid[[3]int{x, y, z}] }
func (s stubVoxels) Brightness(x, y, z int) float32 {
	return s.brightness
}
func (s stubVoxels) Extents() (int, int, int) { return 16, 16, 16 }

func loneBlock(brightness float32) stubVoxels {
	return stubVoxels{solid: map[[3]int]bool{{4, 4, 4}: true}, brightness: brightness}
}

func renderLayer(v Voxels, tile Tile, layer int) *MeshBuffer {
	var sink MeshBuffer
	tess := NewTesselator(&sink)
	tess.Init()
	tile.Render(tess, v, layer, 4, 4, 4)
	tess.Flush()
	return &sink
}

func TestTileLitFacesInLayerZero(t *testing.T) {
	v := loneBlock(1.0)
	if q := renderLayer(v, Tile{Tex: 1}, 0).Quads(); q != 6 {
		t.Errorf("Expected 6 lit faces in layer 0, got %d", q)
	}
	if q := renderLayer(v, Tile{Tex: 1}, 1).Quads(); q != 0 {
		t.Errorf("Expected no faces in layer 1, got %d", q)
	}
}

func TestTileDarkFacesInLayerOne(t *testing.T) {
	v := loneBlock(0.8)
	if q := renderLayer(v, Tile{Tex: 0}, 0).Quads(); q != 0 {
		t.Errorf("Expected no faces in layer 0, got %d", q)
	}
	if q := renderLayer(v, Tile{Tex: 0}, 1).Quads(); q != 6 {
		t.Errorf("Expected 6 shadowed faces in layer 1, got %d", q)
	}
}

func TestTileHiddenFaceSkipped(t *testing.T) {
	v := loneBlock(1.0)
	v.solid[[3]int{4, 5, 4}] = true
	if q := renderLayer(v, Tile{}, 0).Quads(); q != 5 {
		t.Errorf("Expected covered top face skipped, got %d faces", q)
	}
}

func TestTileShadesAndUVs(t *testing.T) {
	sink := renderLayer(loneBlock(1.0), Tile{Tex: 1}, 0)
	verts := sink.Meshes[0].Vertices

	// Face order: bottom, top, z-, z+, x-, x+
	wantShade := []float32{1, 1, 0.8, 0.8, 0.6, 0.6}
	for face, want := range wantShade {
		if got := verts[face*4].R; got != want {
			t.Errorf("Face %d: expected shade %f, got %f", face, want, got)
		}
	}

	for _, v := range verts {
		if v.U < 1.0/16-1e-6 || v.U > 2.0/16+1e-6 {
			t.Fatalf("Expected U within the second atlas column, got %f", v.U)
		}
		if v.V < 0 || v.V > 1.0/16+1e-6 {
			t.Fatalf("Expected V within the first atlas row, got %f", v.V)
		}
	}
}

func TestFacesWindOutward(t *testing.T) {
	var sink MeshBuffer
	tess := NewTesselator(&sink)
	for face := FaceBottom; face <= FaceEast; face++ {
		tess.Init()
		Tile{}.RenderFace(tess, 0, 0, 0, face)
		tess.Flush()
	}
	if len(sink.Meshes) != 6 {
		t.Fatalf("Expected 6 faces, got %d", len(sink.Meshes))
	}

	for face, m := range sink.Meshes {
		v := m.Vertices
		p0 := vmath.Vec3F{X: v[0].X, Y: v[0].Y, Z: v[0].Z}
		p1 := vmath.Vec3F{X: v[1].X, Y: v[1].Y, Z: v[1].Z}
		p2 := vmath.Vec3F{X: v[2].X, Y: v[2].Y, Z: v[2].Z}
		n := vmath.V3FCross(vmath.V3FSub(p1, p0), vmath.V3FSub(p2, p0))

		dx, dy, dz := FaceOffset(face)
		out := vmath.Vec3F{X: float32(dx), Y: float32(dy), Z: float32(dz)}
		if vmath.V3FDot(n, out) <= 0 {
			t.Errorf("Face %d: expected counter-clockwise winding seen from outside, normal %+v", face, n)
		}
	}
}

func TestTilesForGrassLine(t *testing.T) {
	ts := DefaultTiles()
	if ts.For(42, 64) != ts.Rock {
		t.Error("Expected rock at the grass line")
	}
	if ts.For(41, 64) != ts.Grass || ts.For(10, 64) != ts.Grass {
		t.Error("Expected grass away from the grass line")
	}
}

func TestRenderBoxShading(t *testing.T) {
	var sink MeshBuffer
	tess := NewTesselator(&sink)
	tess.Init()
	RenderBox(tess, 0, 0, 0, 0.6, 1.8, 0.6, 0.8, &UVRect{U0: 0, V0: 0, U1: 0.125, V1: 0.25})
	tess.Flush()

	m := sink.Meshes[0]
	if m.Quads() != 6 {
		t.Fatalf("Expected 6 faces, got %d", m.Quads())
	}
	if !m.HasTexture {
		t.Error("Expected textured box")
	}
	if got := m.Vertices[8].R; got < 0.639 || got > 0.641 {
		t.Errorf("Expected z face shade 0.8*0.8, got %f", got)
	}
}
