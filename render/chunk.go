package render

import (
	"github.com/lixenwraith/blockworld/physics"
)

// Layers are rendered separately: 0 lit, 1 shadowed and fogged
const Layers = 2

// Chunk owns the compiled meshes for a box of voxels, one list per layer
type Chunk struct {
	BB physics.AABB

	x0, y0, z0 int
	x1, y1, z1 int

	dirty bool
	lists int

	// Staging for meshes built off the calling goroutine
	staged [Layers]MeshBuffer
}

func newChunk(b Backend, x0, y0, z0, x1, y1, z1 int) *Chunk {
	return &Chunk{
		BB:    physics.NewAABB(float32(x0), float32(y0), float32(z0), float32(x1), float32(y1), float32(z1)),
		x0:    x0,
		y0:    y0,
		z0:    z0,
		x1:    x1,
		y1:    y1,
		z1:    z1,
		dirty: true,
		lists: b.GenLists(Layers),
	}
}

// Bounds returns the voxel range covered, upper bounds exclusive
func (c *Chunk) Bounds() (x0, y0, z0, x1, y1, z1 int) {
	return c.x0, c.y0, c.z0, c.x1, c.y1, c.z1
}

func (c *Chunk) Dirty() bool {
	return c.dirty
}

func (c *Chunk) SetDirty() {
	c.dirty = true
}

// mesh tessellates both layers into the staging buffers
// Reads only the grid and writes only this chunk, so chunks may mesh concurrently
func (c *Chunk) mesh(v Voxels, tiles Tiles, t *Tesselator) {
	_, _, depth := v.Extents()
	for layer := 0; layer < Layers; layer++ {
		buf := &c.staged[layer]
		buf.Meshes = buf.Meshes[:0]
		t.SetSink(buf)
		t.Init()
		for x := c.x0; x < c.x1; x++ {
			for y := c.y0; y < c.y1; y++ {
				for z := c.z0; z < c.z1; z++ {
					if v.IsTile(x, y, z) {
						tiles.For(y, depth).Render(t, v, layer, x, y, z)
					}
				}
			}
		}
		t.Flush()
	}
}

// upload compiles the staged meshes into the backend lists and clears dirty
func (c *Chunk) upload(b Backend, tex int) {
	for layer := 0; layer < Layers; layer++ {
		b.NewList(c.lists + layer)
		b.EnableTexture(true)
		b.BindTexture(tex)
		c.staged[layer].Replay(b)
		b.EnableTexture(false)
		b.EndList()
		c.staged[layer].Meshes = nil
	}
	c.dirty = false
}

// rebuild meshes and uploads on the calling goroutine
func (c *Chunk) rebuild(b Backend, v Voxels, tiles Tiles, t *Tesselator, tex int) {
	c.mesh(v, tiles, t)
	c.upload(b, tex)
}

// Render replays the compiled list for one layer
func (c *Chunk) Render(b Backend, layer int) {
	b.CallList(c.lists + layer)
}
