package level

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/blockworld/parameter"
	"github.com/lixenwraith/blockworld/physics"
)

// Grid is the voxel world: a flat block array plus a per-column light depth cache
// Width spans x, Height spans z, Depth spans y (vertical)
// Blocks are indexed (y*Height+z)*Width+x, light depths x+z*Width
type Grid struct {
	Width, Height, Depth int

	blocks      []byte
	lightDepths []int
	listeners   []Listener

	logger *zap.Logger
}

// New creates a grid filled by gen, FlatGenerator when nil, with light depths computed
func New(width, height, depth int, gen Generator) *Grid {
	g := &Grid{
		Width:       width,
		Height:      height,
		Depth:       depth,
		blocks:      make([]byte, width*height*depth),
		lightDepths: make([]int, width*height),
		logger:      zap.NewNop(),
	}

	if gen == nil {
		gen = FlatGenerator{}
	}
	gen.Fill(g.blocks, width, height, depth)

	g.CalcLightDepths(0, 0, width, height)
	return g
}

// SetLogger replaces the no-op logger used for persistence diagnostics
func (g *Grid) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g.logger = logger
}

// AddListener registers l for all subsequent mutations
func (g *Grid) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Grid) inBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < g.Width && y < g.Depth && z < g.Height
}

func (g *Grid) index(x, y, z int) int {
	return (y*g.Height+z)*g.Width + x
}

// IsTile reports whether (x, y, z) holds a solid block; out of bounds is air
func (g *Grid) IsTile(x, y, z int) bool {
	if !g.inBounds(x, y, z) {
		return false
	}
	return g.blocks[g.index(x, y, z)] == parameter.BlockSolid
}

func (g *Grid) IsSolidTile(x, y, z int) bool {
	return g.IsTile(x, y, z)
}

func (g *Grid) IsLightBlocker(x, y, z int) bool {
	return g.IsSolidTile(x, y, z)
}

// Tile returns the raw block byte, 0 when out of bounds
func (g *Grid) Tile(x, y, z int) byte {
	if !g.inBounds(x, y, z) {
		return parameter.BlockAir
	}
	return g.blocks[g.index(x, y, z)]
}

// Brightness returns the dark value below the column's light depth, lit otherwise and out of bounds
func (g *Grid) Brightness(x, y, z int) float32 {
	if !g.inBounds(x, y, z) {
		return parameter.BrightnessLit
	}
	if y < g.lightDepths[x+z*g.Width] {
		return parameter.BrightnessDark
	}
	return parameter.BrightnessLit
}

// LightDepth returns the cached light depth of column (x, z), 0 when out of bounds
func (g *Grid) LightDepth(x, z int) int {
	if x < 0 || z < 0 || x >= g.Width || z >= g.Height {
		return 0
	}
	return g.lightDepths[x+z*g.Width]
}

// Cubes returns a unit box for every solid voxel in the integer range covering bb
// Range per axis is [int(min), int(max+1)) clamped to the grid; order is x, then y, then z
func (g *Grid) Cubes(bb physics.AABB) []physics.AABB {
	x0, x1 := clampRange(int(bb.X0), int(bb.X1+1), g.Width)
	y0, y1 := clampRange(int(bb.Y0), int(bb.Y1+1), g.Depth)
	z0, z1 := clampRange(int(bb.Z0), int(bb.Z1+1), g.Height)

	var cubes []physics.AABB
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			for z := z0; z < z1; z++ {
				if g.IsSolidTile(x, y, z) {
					cubes = append(cubes, physics.NewAABB(
						float32(x), float32(y), float32(z),
						float32(x+1), float32(y+1), float32(z+1),
					))
				}
			}
		}
	}
	return cubes
}

func clampRange(lo, hi, extent int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > extent {
		hi = extent
	}
	return lo, hi
}

// SetTile writes a block, refreshes the column's light depth and notifies listeners
// Out-of-bounds writes are dropped without notification
func (g *Grid) SetTile(x, y, z int, t byte) {
	if !g.inBounds(x, y, z) {
		return
	}
	g.blocks[g.index(x, y, z)] = t
	g.CalcLightDepths(x, z, 1, 1)
	g.emit(Event{Kind: TileChanged, X: x, Y: y, Z: z})
}

// CalcLightDepths recomputes light depths over the w×h column rectangle at (x0, z0)
// Each column scans down from the top while y > 0 and not blocked, so an open column floors at 0
// Changed columns emit LightColumnChanged with the inclusive span between old and new depth
// The rectangle is clamped to the grid; columns outside it are ignored
func (g *Grid) CalcLightDepths(x0, z0, w, h int) {
	xs, xe := clampRange(x0, x0+w, g.Width)
	zs, ze := clampRange(z0, z0+h, g.Height)
	for x := xs; x < xe; x++ {
		for z := zs; z < ze; z++ {
			i := x + z*g.Width
			old := g.lightDepths[i]

			y := g.Depth - 1
			for y > 0 && !g.IsLightBlocker(x, y, z) {
				y--
			}
			g.lightDepths[i] = y

			if old != y {
				g.emit(Event{
					Kind: LightColumnChanged,
					X:    x,
					Z:    z,
					Y0:   min(old, y),
					Y1:   max(old, y),
				})
			}
		}
	}
}

// AllChanged notifies listeners that every voxel may have changed
func (g *Grid) AllChanged() {
	g.emit(Event{Kind: AllChanged})
}

func (g *Grid) emit(ev Event) {
	for _, l := range g.listeners {
		l.HandleGridEvent(ev)
	}
}

// Extents returns width (x), height (z) and depth (y)
func (g *Grid) Extents() (width, height, depth int) {
	return g.Width, g.Height, g.Depth
}
