package vmath

import "math"

// Mat4 is a column-major 4x4 matrix: element (row r, column c) lives at index c*4+r
type Mat4 [16]float32

// Vec4 is a homogeneous coordinate
type Vec4 struct {
	X, Y, Z, W float32
}

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m*n, so n is applied to a vector first
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = m[row]*n[c*4] +
				m[4+row]*n[c*4+1] +
				m[8+row]*n[c*4+2] +
				m[12+row]*n[c*4+3]
		}
	}
	return r
}

func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Row returns row r as a plane-ready 4-tuple
func (m Mat4) Row(r int) [4]float32 {
	return [4]float32{m[r], m[4+r], m[8+r], m[12+r]}
}

func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

func Scale(x, y, z float32) Mat4 {
	m := Identity()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// RotateX rotates about the X axis by deg degrees
func RotateX(deg float32) Mat4 {
	s, c := sinCosDeg(deg)
	m := Identity()
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
	return m
}

// RotateY rotates about the Y axis by deg degrees
func RotateY(deg float32) Mat4 {
	s, c := sinCosDeg(deg)
	m := Identity()
	m[0] = c
	m[2] = -s
	m[8] = s
	m[10] = c
	return m
}

// Perspective builds a right-handed projection looking down -Z, fovY in degrees
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1.0 / math.Tan(float64(fovY)*math.Pi/360.0))
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
	return m
}

// PickMatrix restricts drawing to a w×h window centred on (x, y) of the viewport
// Viewport is {x, y, width, height} with y measured from the bottom edge
func PickMatrix(x, y, w, h float32, viewport [4]int) Mat4 {
	vx, vy := float32(viewport[0]), float32(viewport[1])
	vw, vh := float32(viewport[2]), float32(viewport[3])
	m := Identity()
	m[0] = vw / w
	m[5] = vh / h
	m[12] = (vw - 2*(x-vx)) / w
	m[13] = (vh - 2*(y-vy)) / h
	return m
}

func sinCosDeg(deg float32) (float32, float32) {
	rad := float64(deg) * math.Pi / 180.0
	return float32(math.Sin(rad)), float32(math.Cos(rad))
}
