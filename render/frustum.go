package render

import (
	"math"

	"github.com/lixenwraith/blockworld/physics"
	"github.com/lixenwraith/blockworld/vmath"
)

// Plane indices into Frustum.Planes
const (
	PlaneRight = iota
	PlaneLeft
	PlaneBottom
	PlaneTop
	PlaneBack
	PlaneFront
)

// Frustum holds six normalized planes (A, B, C, D) extracted from a clip matrix
type Frustum struct {
	Planes [6][4]float32
}

// CalcFrustum extracts the view volume from projection and model-view matrices
func CalcFrustum(proj, modl vmath.Mat4) Frustum {
	clip := proj.Mul(modl)
	r0, r1, r2, r3 := clip.Row(0), clip.Row(1), clip.Row(2), clip.Row(3)

	var f Frustum
	for i := 0; i < 4; i++ {
		f.Planes[PlaneRight][i] = r3[i] - r0[i]
		f.Planes[PlaneLeft][i] = r3[i] + r0[i]
		f.Planes[PlaneBottom][i] = r3[i] + r1[i]
		f.Planes[PlaneTop][i] = r3[i] - r1[i]
		f.Planes[PlaneBack][i] = r3[i] - r2[i]
		f.Planes[PlaneFront][i] = r3[i] + r2[i]
	}
	for p := range f.Planes {
		f.Planes[p] = normalizePlane(f.Planes[p])
	}
	return f
}

func normalizePlane(p [4]float32) [4]float32 {
	mag := float32(math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])))
	if mag == 0 {
		return p
	}
	return [4]float32{p[0] / mag, p[1] / mag, p[2] / mag, p[3] / mag}
}

func (f *Frustum) distance(p int, x, y, z float32) float32 {
	pl := &f.Planes[p]
	return pl[0]*x + pl[1]*y + pl[2]*z + pl[3]
}

// CubeInFrustum is false only when all eight corners lie behind one plane
func (f *Frustum) CubeInFrustum(x0, y0, z0, x1, y1, z1 float32) bool {
	for p := range f.Planes {
		if f.distance(p, x0, y0, z0) > 0 ||
			f.distance(p, x1, y0, z0) > 0 ||
			f.distance(p, x0, y1, z0) > 0 ||
			f.distance(p, x1, y1, z0) > 0 ||
			f.distance(p, x0, y0, z1) > 0 ||
			f.distance(p, x1, y0, z1) > 0 ||
			f.distance(p, x0, y1, z1) > 0 ||
			f.distance(p, x1, y1, z1) > 0 {
			continue
		}
		return false
	}
	return true
}

func (f *Frustum) AABBInFrustum(bb physics.AABB) bool {
	return f.CubeInFrustum(bb.X0, bb.Y0, bb.Z0, bb.X1, bb.Y1, bb.Z1)
}
