package engine

import (
	"github.com/lixenwraith/blockworld/entity"
	"github.com/lixenwraith/blockworld/parameter"
	"github.com/lixenwraith/blockworld/vmath"
)

// Camera derives the projection and view matrices from the player's head
type Camera struct {
	FOV, Near, Far float32
}

// Projection returns the perspective for a viewport of the given pixel size
func (c Camera) Projection(viewport [4]int) vmath.Mat4 {
	aspect := float32(1)
	if viewport[3] > 0 {
		aspect = float32(viewport[2]) / float32(viewport[3])
	}
	return vmath.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// PickProjection narrows the projection to a small window around the viewport centre
func (c Camera) PickProjection(viewport [4]int) vmath.Mat4 {
	cx := float32(viewport[0]) + float32(viewport[2])/2
	cy := float32(viewport[1]) + float32(viewport[3])/2
	pick := vmath.PickMatrix(cx, cy, parameter.PickWindow, parameter.PickWindow, viewport)
	return pick.Mul(c.Projection(viewport))
}

// View places the eye at the body's interpolated position, pulled back slightly behind the head
func (c Camera) View(b *entity.Body, a float32) vmath.Mat4 {
	p := b.Interpolated(a)
	return vmath.Translate(0, 0, parameter.CameraBackOffset).
		Mul(vmath.RotateX(b.XRot)).
		Mul(vmath.RotateY(b.YRot)).
		Mul(vmath.Translate(-p.X, -p.Y, -p.Z))
}
