package render

import (
	"github.com/lixenwraith/blockworld/parameter"
)

// Voxels is the read side of the grid the mesher consults
type Voxels interface {
	IsTile(x, y, z int) bool
	IsSolidTile(x, y, z int) bool
	Brightness(x, y, z int) float32
	Extents() (width, height, depth int)
}

// Face indices shared by meshing, picking and placement
const (
	FaceBottom = iota
	FaceTop
	FaceNorth // z-
	FaceSouth // z+
	FaceWest  // x-
	FaceEast  // x+
)

// Tile is a block kind identified by its atlas column
type Tile struct {
	Tex int
}

// Tiles is the block registry; Rock marks the grass line, Grass everything else
type Tiles struct {
	Rock  Tile
	Grass Tile
}

func DefaultTiles() Tiles {
	return Tiles{Rock: Tile{Tex: 0}, Grass: Tile{Tex: 1}}
}

// For picks the tile drawn at height y in a world of the given depth
func (ts Tiles) For(y, depth int) Tile {
	if y == depth*2/3 {
		return ts.Rock
	}
	return ts.Grass
}

// faceVisible reports whether a face with shade c belongs to layer given its neighbour
func faceVisible(v Voxels, layer, nx, ny, nz int, c float32) (float32, bool) {
	br := v.Brightness(nx, ny, nz) * c
	if v.IsSolidTile(nx, ny, nz) {
		return br, false
	}
	return br, (br == c) != (layer == 1)
}

// Render emits the faces of the block at (x, y, z) that belong to layer
// Layer 0 holds lit faces, layer 1 shadowed ones
func (tl Tile) Render(t *Tesselator, v Voxels, layer, x, y, z int) {
	u0 := float32(tl.Tex) / parameter.AtlasTiles
	u1 := u0 + 1.0/parameter.AtlasTiles
	v0 := float32(0)
	v1 := v0 + 1.0/parameter.AtlasTiles

	x0, x1 := float32(x), float32(x)+1
	y0, y1 := float32(y), float32(y)+1
	z0, z1 := float32(z), float32(z)+1

	if br, ok := faceVisible(v, layer, x, y-1, z, parameter.ShadeY); ok {
		t.Color(br, br, br)
		t.Tex(u0, v1)
		t.Vertex(x0, y0, z1)
		t.Tex(u0, v0)
		t.Vertex(x0, y0, z0)
		t.Tex(u1, v0)
		t.Vertex(x1, y0, z0)
		t.Tex(u1, v1)
		t.Vertex(x1, y0, z1)
	}

	if br, ok := faceVisible(v, layer, x, y+1, z, parameter.ShadeY); ok {
		t.Color(br, br, br)
		t.Tex(u1, v1)
		t.Vertex(x1, y1, z1)
		t.Tex(u1, v0)
		t.Vertex(x1, y1, z0)
		t.Tex(u0, v0)
		t.Vertex(x0, y1, z0)
		t.Tex(u0, v1)
		t.Vertex(x0, y1, z1)
	}

	if br, ok := faceVisible(v, layer, x, y, z-1, parameter.ShadeZ); ok {
		t.Color(br, br, br)
		t.Tex(u1, v0)
		t.Vertex(x0, y1, z0)
		t.Tex(u0, v0)
		t.Vertex(x1, y1, z0)
		t.Tex(u0, v1)
		t.Vertex(x1, y0, z0)
		t.Tex(u1, v1)
		t.Vertex(x0, y0, z0)
	}

	if br, ok := faceVisible(v, layer, x, y, z+1, parameter.ShadeZ); ok {
		t.Color(br, br, br)
		t.Tex(u0, v0)
		t.Vertex(x0, y1, z1)
		t.Tex(u0, v1)
		t.Vertex(x0, y0, z1)
		t.Tex(u1, v1)
		t.Vertex(x1, y0, z1)
		t.Tex(u1, v0)
		t.Vertex(x1, y1, z1)
	}

	if br, ok := faceVisible(v, layer, x-1, y, z, parameter.ShadeX); ok {
		t.Color(br, br, br)
		t.Tex(u1, v0)
		t.Vertex(x0, y1, z1)
		t.Tex(u0, v0)
		t.Vertex(x0, y1, z0)
		t.Tex(u0, v1)
		t.Vertex(x0, y0, z0)
		t.Tex(u1, v1)
		t.Vertex(x0, y0, z1)
	}

	if br, ok := faceVisible(v, layer, x+1, y, z, parameter.ShadeX); ok {
		t.Color(br, br, br)
		t.Tex(u0, v1)
		t.Vertex(x1, y0, z1)
		t.Tex(u1, v1)
		t.Vertex(x1, y0, z0)
		t.Tex(u1, v0)
		t.Vertex(x1, y1, z0)
		t.Tex(u0, v0)
		t.Vertex(x1, y1, z1)
	}
}

// RenderFace emits one untextured face of the unit cube at (x, y, z)
func (tl Tile) RenderFace(t *Tesselator, x, y, z, face int) {
	boxFace(t, float32(x), float32(y), float32(z), float32(x)+1, float32(y)+1, float32(z)+1, face, nil)
}

// UVRect is a texture region in normalized coordinates
type UVRect struct {
	U0, V0, U1, V1 float32
}

// boxFace emits one face of an axis-aligned box, counter-clockwise seen from outside
// With uv set, corners map to (U1,V0) (U0,V0) (U0,V1) (U1,V1) in emission order
func boxFace(t *Tesselator, x0, y0, z0, x1, y1, z1 float32, face int, uv *UVRect) {
	var q [4][3]float32
	switch face {
	case FaceBottom:
		q = [4][3]float32{{x0, y0, z1}, {x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}}
	case FaceTop:
		q = [4][3]float32{{x1, y1, z1}, {x1, y1, z0}, {x0, y1, z0}, {x0, y1, z1}}
	case FaceNorth:
		q = [4][3]float32{{x0, y1, z0}, {x1, y1, z0}, {x1, y0, z0}, {x0, y0, z0}}
	case FaceSouth:
		q = [4][3]float32{{x0, y1, z1}, {x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}}
	case FaceWest:
		q = [4][3]float32{{x0, y1, z1}, {x0, y1, z0}, {x0, y0, z0}, {x0, y0, z1}}
	case FaceEast:
		q = [4][3]float32{{x1, y0, z1}, {x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}}
	default:
		return
	}
	for i, p := range q {
		if uv != nil {
			switch i {
			case 0:
				t.Tex(uv.U1, uv.V0)
			case 1:
				t.Tex(uv.U0, uv.V0)
			case 2:
				t.Tex(uv.U0, uv.V1)
			case 3:
				t.Tex(uv.U1, uv.V1)
			}
		}
		t.Vertex(p[0], p[1], p[2])
	}
}

// faceShade is the fixed directional shade of a face
func faceShade(face int) float32 {
	switch face {
	case FaceNorth, FaceSouth:
		return parameter.ShadeZ
	case FaceWest, FaceEast:
		return parameter.ShadeX
	}
	return parameter.ShadeY
}

// RenderBox emits all six faces of a box, shaded per face and scaled by br
func RenderBox(t *Tesselator, x0, y0, z0, x1, y1, z1, br float32, uv *UVRect) {
	for face := FaceBottom; face <= FaceEast; face++ {
		c := faceShade(face) * br
		t.Color(c, c, c)
		boxFace(t, x0, y0, z0, x1, y1, z1, face, uv)
	}
}

// FaceOffset returns the neighbour direction a face points to
func FaceOffset(face int) (dx, dy, dz int) {
	switch face {
	case FaceBottom:
		return 0, -1, 0
	case FaceTop:
		return 0, 1, 0
	case FaceNorth:
		return 0, 0, -1
	case FaceSouth:
		return 0, 0, 1
	case FaceWest:
		return -1, 0, 0
	case FaceEast:
		return 1, 0, 0
	}
	return 0, 0, 0
}
