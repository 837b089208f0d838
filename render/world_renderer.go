package render

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/blockworld/level"
	"github.com/lixenwraith/blockworld/parameter"
	"github.com/lixenwraith/blockworld/physics"
)

// World is the grid as seen by the renderer: readable and observable
type World interface {
	Voxels
	AddListener(l level.Listener)
}

// Options configures a WorldRenderer
type Options struct {
	// Texture is the terrain atlas handle bound while compiling chunk lists
	Texture int
	// Parallel meshes dirty visible chunks concurrently before uploading
	Parallel bool
	// RebuildsPerPass caps chunk rebuilds per Render call; zero uses the default
	RebuildsPerPass int
	// PickRadius grows the picker's volume to find candidate blocks; zero uses the default
	PickRadius float32
	Logger     *zap.Logger
}

// WorldRenderer partitions the grid into chunks and keeps their meshes current
type WorldRenderer struct {
	world   World
	backend Backend
	tiles   Tiles
	opts    Options

	chunks                    []*Chunk
	xChunks, yChunks, zChunks int
	width, height, depth      int

	// tess draws straight to the backend, meshTess stages chunk meshes
	tess     *Tesselator
	meshTess *Tesselator
	pool     sync.Pool

	stats   FrameStats
	updates int
	logger  *zap.Logger
}

// NewWorldRenderer allocates every chunk dirty and subscribes to grid events
func NewWorldRenderer(w World, b Backend, tiles Tiles, opts Options) *WorldRenderer {
	if opts.RebuildsPerPass <= 0 {
		opts.RebuildsPerPass = parameter.ChunkRebuildsPerFrame
	}
	if opts.PickRadius <= 0 {
		opts.PickRadius = parameter.PickRadius
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	width, height, depth := w.Extents()
	r := &WorldRenderer{
		world:   w,
		backend: b,
		tiles:   tiles,
		opts:    opts,
		width:   width,
		height:  height,
		depth:   depth,
		xChunks: ceilDiv(width, parameter.ChunkSize),
		yChunks: ceilDiv(depth, parameter.ChunkSize),
		zChunks: ceilDiv(height, parameter.ChunkSize),
		tess:    NewTesselator(b),
		logger:  logger,
	}
	r.meshTess = NewTesselator(nil)
	r.pool.New = func() any { return NewTesselator(nil) }

	r.chunks = make([]*Chunk, r.xChunks*r.yChunks*r.zChunks)
	for x := 0; x < r.xChunks; x++ {
		for y := 0; y < r.yChunks; y++ {
			for z := 0; z < r.zChunks; z++ {
				x0, y0, z0 := x*parameter.ChunkSize, y*parameter.ChunkSize, z*parameter.ChunkSize
				x1 := min((x+1)*parameter.ChunkSize, width)
				y1 := min((y+1)*parameter.ChunkSize, depth)
				z1 := min((z+1)*parameter.ChunkSize, height)
				r.chunks[r.chunkIndex(x, y, z)] = newChunk(b, x0, y0, z0, x1, y1, z1)
			}
		}
	}

	w.AddListener(r)
	logger.Debug("world renderer ready",
		zap.Int("chunks", len(r.chunks)),
		zap.Int("x_chunks", r.xChunks),
		zap.Int("y_chunks", r.yChunks),
		zap.Int("z_chunks", r.zChunks),
		zap.Bool("parallel", opts.Parallel),
	)
	return r
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

func (r *WorldRenderer) chunkIndex(x, y, z int) int {
	return (x+y*r.xChunks)*r.zChunks + z
}

// Chunk returns the chunk at chunk coordinates, nil when out of range
func (r *WorldRenderer) Chunk(x, y, z int) *Chunk {
	if x < 0 || y < 0 || z < 0 || x >= r.xChunks || y >= r.yChunks || z >= r.zChunks {
		return nil
	}
	return r.chunks[r.chunkIndex(x, y, z)]
}

// ChunkCounts returns the partition size along x, y and z
func (r *WorldRenderer) ChunkCounts() (x, y, z int) {
	return r.xChunks, r.yChunks, r.zChunks
}

// HandleGridEvent marks the chunks an edit may have changed
func (r *WorldRenderer) HandleGridEvent(ev level.Event) {
	switch ev.Kind {
	case level.TileChanged:
		r.SetDirty(ev.X-1, ev.Y-1, ev.Z-1, ev.X+1, ev.Y+1, ev.Z+1)
	case level.LightColumnChanged:
		r.SetDirty(ev.X-1, ev.Y0-1, ev.Z-1, ev.X+1, ev.Y1+1, ev.Z+1)
	case level.AllChanged:
		r.SetDirty(0, 0, 0, r.width, r.depth, r.height)
	}
}

// SetDirty marks every chunk overlapping the voxel box, bounds inclusive
func (r *WorldRenderer) SetDirty(x0, y0, z0, x1, y1, z1 int) {
	x0 /= parameter.ChunkSize
	y0 /= parameter.ChunkSize
	z0 /= parameter.ChunkSize
	x1 /= parameter.ChunkSize
	y1 /= parameter.ChunkSize
	z1 /= parameter.ChunkSize

	x0, y0, z0 = max(x0, 0), max(y0, 0), max(z0, 0)
	x1 = min(x1, r.xChunks-1)
	y1 = min(y1, r.yChunks-1)
	z1 = min(z1, r.zChunks-1)

	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				r.chunks[r.chunkIndex(x, y, z)].SetDirty()
			}
		}
	}
}

// Render draws one layer of every visible chunk, rebuilding dirty ones within budget
// The budget counts whole chunks, both layers rebuilt at once, not individual layer rebuilds
func (r *WorldRenderer) Render(layer int) FrameStats {
	r.stats = FrameStats{}
	frustum := CalcFrustum(r.backend.Projection(), r.backend.ModelView())

	if r.opts.Parallel {
		r.rebuildParallel(&frustum)
	}

	for _, c := range r.chunks {
		if !frustum.AABBInFrustum(c.BB) {
			r.stats.Culled++
			continue
		}
		r.stats.Visible++
		if c.dirty && r.stats.Rebuilt < r.opts.RebuildsPerPass {
			c.rebuild(r.backend, r.world, r.tiles, r.meshTess, r.opts.Texture)
			r.stats.Rebuilt++
			r.updates++
		}
		c.Render(r.backend, layer)
	}
	return r.stats
}

// rebuildParallel meshes up to the budget of dirty visible chunks concurrently
// Backend uploads stay on the calling goroutine in chunk order
func (r *WorldRenderer) rebuildParallel(frustum *Frustum) {
	var pending []*Chunk
	for _, c := range r.chunks {
		if c.dirty && frustum.AABBInFrustum(c.BB) {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 {
		return
	}

	var (
		budget atomic.Int32
		built  = make([]bool, len(pending))
		g      errgroup.Group
	)
	g.SetLimit(runtime.GOMAXPROCS(0))
	limit := int32(r.opts.RebuildsPerPass)
	for i, c := range pending {
		g.Go(func() error {
			if budget.Add(1) > limit {
				return nil
			}
			t := r.pool.Get().(*Tesselator)
			defer r.pool.Put(t)
			c.mesh(r.world, r.tiles, t)
			built[i] = true
			return nil
		})
	}
	_ = g.Wait()

	for i, c := range pending {
		if !built[i] {
			continue
		}
		c.upload(r.backend, r.opts.Texture)
		r.stats.Rebuilt++
		r.updates++
	}
}

// TakeUpdates returns chunk rebuilds since the last call and resets the count
func (r *WorldRenderer) TakeUpdates() int {
	n := r.updates
	r.updates = 0
	return n
}

// Pick submits every face of every solid block near bb for selection
// Name stack per face is x, y, z, 0, face
func (r *WorldRenderer) Pick(bb physics.AABB) {
	box := bb.Grow(r.opts.PickRadius, r.opts.PickRadius, r.opts.PickRadius)
	x0, x1 := int(box.X0), int(box.X1+1)
	y0, y1 := int(box.Y0), int(box.Y1+1)
	z0, z1 := int(box.Z0), int(box.Z1+1)

	b := r.backend
	b.InitNames()
	for x := x0; x < x1; x++ {
		b.PushName(int32(x))
		for y := y0; y < y1; y++ {
			b.PushName(int32(y))
			for z := z0; z < z1; z++ {
				b.PushName(int32(z))
				if r.world.IsSolidTile(x, y, z) {
					b.PushName(0)
					for face := FaceBottom; face <= FaceEast; face++ {
						b.PushName(int32(face))
						r.tess.Init()
						r.tiles.Rock.RenderFace(r.tess, x, y, z, face)
						r.tess.Flush()
						b.PopName()
					}
					b.PopName()
				}
				b.PopName()
			}
			b.PopName()
		}
		b.PopName()
	}
}

// RenderHit draws the pulsing highlight over the picked face; ms is wall time in milliseconds
func (r *WorldRenderer) RenderHit(h HitResult, ms int64) {
	b := r.backend
	b.SetBlend(true)
	b.SetColor(1, 1, 1, float32(math.Sin(float64(ms)/100)*0.2+0.4))
	r.tess.Init()
	r.tiles.Rock.RenderFace(r.tess, h.X, h.Y, h.Z, h.F)
	r.tess.Flush()
	b.SetBlend(false)
	b.SetColor(1, 1, 1, 1)
}

// RenderEntity draws a box, shaded by the light at its base and textured with skin from tex
func (r *WorldRenderer) RenderEntity(bb physics.AABB, tex int, skin UVRect) {
	br := r.world.Brightness(int(math.Floor(float64(bb.X0+bb.X1)/2)), int(math.Floor(float64(bb.Y0))), int(math.Floor(float64(bb.Z0+bb.Z1)/2)))

	b := r.backend
	b.EnableTexture(true)
	b.BindTexture(tex)
	r.tess.Init()
	RenderBox(r.tess, bb.X0, bb.Y0, bb.Z0, bb.X1, bb.Y1, bb.Z1, br, &skin)
	r.tess.Flush()
	b.EnableTexture(false)
}
