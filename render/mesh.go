package render

// Vertex is one textured, colored point
type Vertex struct {
	X, Y, Z float32
	U, V    float32
	R, G, B float32
}

// Mesh is a batch of quads; every four vertices form one quad
// When HasColor is false the backend's current color applies, when HasTexture is false UVs are ignored
type Mesh struct {
	Vertices   []Vertex
	HasTexture bool
	HasColor   bool
}

// Quads returns the number of complete quads
func (m *Mesh) Quads() int {
	return len(m.Vertices) / 4
}

// Clone returns a deep copy safe to retain after the source buffer is reused
func (m *Mesh) Clone() Mesh {
	v := make([]Vertex, len(m.Vertices))
	copy(v, m.Vertices)
	return Mesh{Vertices: v, HasTexture: m.HasTexture, HasColor: m.HasColor}
}

// MeshBuffer collects flushed batches for deferred upload
type MeshBuffer struct {
	Meshes []Mesh
}

func (b *MeshBuffer) DrawQuads(m *Mesh) {
	if len(m.Vertices) == 0 {
		return
	}
	b.Meshes = append(b.Meshes, m.Clone())
}

// Replay sends every collected batch to sink in order
func (b *MeshBuffer) Replay(sink QuadSink) {
	for i := range b.Meshes {
		sink.DrawQuads(&b.Meshes[i])
	}
}

// Quads counts quads across all collected batches
func (b *MeshBuffer) Quads() int {
	n := 0
	for i := range b.Meshes {
		n += b.Meshes[i].Quads()
	}
	return n
}
