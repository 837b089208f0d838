package render

import "github.com/lixenwraith/blockworld/parameter"

// Tesselator accumulates quads and flushes them to a sink
// Reaching the vertex cap flushes and continues; the cap is a multiple of 4 so quads never split
type Tesselator struct {
	sink QuadSink
	mesh Mesh
	max  int

	u, v    float32
	r, g, b float32
}

func NewTesselator(sink QuadSink) *Tesselator {
	return NewTesselatorCap(sink, parameter.TesselatorMaxVertices)
}

// NewTesselatorCap uses a custom vertex cap, rounded down to whole quads
func NewTesselatorCap(sink QuadSink, maxVertices int) *Tesselator {
	maxVertices -= maxVertices % 4
	if maxVertices < 4 {
		maxVertices = 4
	}
	return &Tesselator{
		sink: sink,
		max:  maxVertices,
		mesh: Mesh{Vertices: make([]Vertex, 0, min(maxVertices, 4096))},
	}
}

// SetSink redirects subsequent flushes
func (t *Tesselator) SetSink(sink QuadSink) {
	t.sink = sink
}

// Init starts a new batch with no color or texture
func (t *Tesselator) Init() {
	t.clear()
	t.mesh.HasColor = false
	t.mesh.HasTexture = false
}

func (t *Tesselator) clear() {
	t.mesh.Vertices = t.mesh.Vertices[:0]
}

// Flush hands pending vertices to the sink and clears the buffer
func (t *Tesselator) Flush() {
	if len(t.mesh.Vertices) > 0 {
		t.sink.DrawQuads(&t.mesh)
	}
	t.clear()
}

func (t *Tesselator) Tex(u, v float32) {
	t.mesh.HasTexture = true
	t.u, t.v = u, v
}

func (t *Tesselator) Color(r, g, b float32) {
	t.mesh.HasColor = true
	t.r, t.g, t.b = r, g, b
}

func (t *Tesselator) Vertex(x, y, z float32) {
	t.mesh.Vertices = append(t.mesh.Vertices, Vertex{
		X: x, Y: y, Z: z,
		U: t.u, V: t.v,
		R: t.r, G: t.g, B: t.b,
	})
	if len(t.mesh.Vertices) == t.max {
		t.Flush()
	}
}

// Pending returns the number of unflushed vertices
func (t *Tesselator) Pending() int {
	return len(t.mesh.Vertices)
}
