package parameter

// Voxel grid
const (
	// BlockAir and BlockSolid are the block type bytes
	BlockAir   = 0
	BlockSolid = 1

	// Brightness values returned by the grid
	BrightnessLit  = 1.0
	BrightnessDark = 0.8

	// Default world extents: width (x), height (z), depth (y, vertical)
	DefaultWorldWidth  = 256
	DefaultWorldHeight = 256
	DefaultWorldDepth  = 64
)

// Chunking and meshing
const (
	// ChunkSize is the chunk edge length in voxels
	ChunkSize = 16

	// ChunkRebuildsPerFrame caps chunk rebuilds per render pass
	ChunkRebuildsPerFrame = 2

	// TesselatorMaxVertices flushes the vertex buffer when reached; multiple of 4 so quads never split
	TesselatorMaxVertices = 100000

	// Face shading multipliers for top/bottom, north/south, east/west faces
	ShadeY = 1.0
	ShadeZ = 0.8
	ShadeX = 0.6

	// AtlasTiles is the number of tiles per atlas row
	AtlasTiles = 16
)
