package level

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/blockworld/parameter"
)

// Generator fills a freshly allocated block array
type Generator interface {
	Fill(blocks []byte, width, height, depth int)
}

// GrassLine is the surface y of the flat world; meshing textures this layer differently
func GrassLine(depth int) int {
	return depth * 2 / 3
}

// FlatGenerator fills every voxel with y <= depth*2/3
// Note: the fill is inclusive (<=) while the texture split compares with ==; the two are independent
type FlatGenerator struct{}

func (FlatGenerator) Fill(blocks []byte, width, height, depth int) {
	line := GrassLine(depth)
	for y := 0; y < depth; y++ {
		var t byte = parameter.BlockAir
		if y <= line {
			t = parameter.BlockSolid
		}
		for z := 0; z < height; z++ {
			row := (y*height + z) * width
			for x := 0; x < width; x++ {
				blocks[row+x] = t
			}
		}
	}
}

// PerlinGenerator raises or lowers each column around the grass line using 2D Perlin noise
type PerlinGenerator struct {
	Seed int64

	// Scale maps voxel coordinates to noise space
	Scale float64

	// Amplitude is the maximum deviation from the grass line in voxels
	Amplitude float64
}

// NewPerlinGenerator uses the smoothing and octave settings proven in chunk terrain generation
func NewPerlinGenerator(seed int64) PerlinGenerator {
	return PerlinGenerator{Seed: seed, Scale: 0.03, Amplitude: 6}
}

func (p PerlinGenerator) Fill(blocks []byte, width, height, depth int) {
	alpha := 2.0  // smoothing
	beta := 2.0   // frequency
	n := int32(3) // octaves
	noise := perlin.NewPerlin(alpha, beta, n, p.Seed)

	line := GrassLine(depth)
	for z := 0; z < height; z++ {
		for x := 0; x < width; x++ {
			v := noise.Noise2D(float64(x)*p.Scale, float64(z)*p.Scale)
			top := line + int(v*p.Amplitude)
			if top >= depth {
				top = depth - 1
			}
			for y := 0; y < depth; y++ {
				var t byte = parameter.BlockAir
				if y <= top {
					t = parameter.BlockSolid
				}
				blocks[(y*height+z)*width+x] = t
			}
		}
	}
}

// GeneratorByName resolves a configured generator name
func GeneratorByName(name string, seed int64) (Generator, error) {
	switch name {
	case "", "flat":
		return FlatGenerator{}, nil
	case "perlin":
		return NewPerlinGenerator(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}
