package render

import "github.com/lixenwraith/blockworld/vmath"

// QuadSink receives flushed quad batches; implementations that retain a mesh must copy it
type QuadSink interface {
	DrawQuads(m *Mesh)
}

// Backend is the drawing surface the world renderer targets
// Lists are compiled once and replayed; selection reports hits tagged with the name stack
type Backend interface {
	QuadSink

	// Mesh compile/replay
	GenLists(n int) int
	NewList(list int)
	EndList()
	CallList(list int)

	// Texturing; handle 0 means none
	BindTexture(tex int)
	EnableTexture(on bool)

	// Frame
	Viewport() [4]int
	Clear(r, g, b float32)

	// Fixed-function state
	SetColor(r, g, b, a float32)
	SetBlend(on bool)
	SetFog(on bool)
	SetFogParams(density, r, g, b float32)
	SetCull(on bool)

	// Camera matrices, column-major
	SetProjection(m vmath.Mat4)
	SetModelView(m vmath.Mat4)
	Projection() vmath.Mat4
	ModelView() vmath.Mat4

	// Selection mode: draws register hits against the current name stack instead of pixels
	BeginSelect()
	InitNames()
	PushName(name int32)
	PopName()
	EndSelect() []Hit
}

// Hit is one selection record: the name stack at hit time and the nearest window depth in [0, 1]
type Hit struct {
	Names []int32
	MinZ  float32
	MaxZ  float32
}
