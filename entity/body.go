package entity

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/blockworld/parameter"
	"github.com/lixenwraith/blockworld/physics"
	"github.com/lixenwraith/blockworld/vmath"
)

// CubeSource supplies the solid unit cubes intersecting a region
type CubeSource interface {
	Cubes(bb physics.AABB) []physics.AABB
}

// World is the read-only view of the grid a body needs to move and respawn
type World interface {
	CubeSource
	Extents() (width, height, depth int)
}

// Body is the state shared by every moving thing
// BB is authoritative during Move; position is authoritative at rest and re-derives BB in SetPos
type Body struct {
	XO, YO, ZO float32 // previous tick position, for interpolation
	X, Y, Z    float32
	XD, YD, ZD float32

	YRot, XRot float32 // yaw and pitch in degrees

	BB       physics.AABB
	OnGround bool

	// HeightOffset is added to BB.Y0 to derive Y after movement
	HeightOffset float32
}

// SetPos places the body and rebuilds its collision volume around (x, y, z)
func (b *Body) SetPos(x, y, z float32) {
	b.X, b.Y, b.Z = x, y, z
	const w, h = parameter.BodyHalfWidth, parameter.BodyHalfHeight
	b.BB = physics.NewAABB(x-w, y-h, z-w, x+w, y+h, z+w)
}

// ResetPos drops the body at a random column above the world
func (b *Body) ResetPos(w World, rng *rand.Rand) {
	width, height, depth := w.Extents()
	x := rng.Float32() * float32(width)
	y := float32(depth + parameter.RespawnHeightAboveWorld)
	z := rng.Float32() * float32(height)
	b.SetPos(x, y, z)
}

// Turn applies a look delta; pitch is clamped to straight up/down
func (b *Body) Turn(xo, yo float32) {
	b.YRot = float32(float64(b.YRot) + float64(xo)*parameter.TurnSensitivity)
	b.XRot = float32(float64(b.XRot) + float64(yo)*parameter.TurnSensitivity)

	if b.XRot < -parameter.PitchLimit {
		b.XRot = -parameter.PitchLimit
	}
	if b.XRot > parameter.PitchLimit {
		b.XRot = parameter.PitchLimit
	}
}

// Snapshot stores the current position as the previous-tick position
func (b *Body) Snapshot() {
	b.XO, b.YO, b.ZO = b.X, b.Y, b.Z
}

// Interpolated returns the render position between the previous and current tick
func (b *Body) Interpolated(a float32) vmath.Vec3F {
	return vmath.V3FLerp(
		vmath.Vec3F{X: b.XO, Y: b.YO, Z: b.ZO},
		vmath.Vec3F{X: b.X, Y: b.Y, Z: b.Z},
		a,
	)
}

// InterpolatedBB returns the collision volume shifted to the interpolated position
func (b *Body) InterpolatedBB(a float32) physics.AABB {
	p := b.Interpolated(a)
	bb := b.BB
	bb.Move(p.X-b.X, p.Y-b.Y, p.Z-b.Z)
	return bb
}

// sinCosYaw converts degrees in single precision, then evaluates through sinCosRad
func sinCosYaw(deg float32) (float32, float32) {
	return sinCosRad(deg * math.Pi / 180)
}

// sinCosRad evaluates at float64 and rounds once to float32
// The result is the correctly rounded value; a single-precision sinf may differ from it by one ulp
func sinCosRad(rad float32) (float32, float32) {
	s, c := math.Sincos(float64(rad))
	return float32(s), float32(c)
}
