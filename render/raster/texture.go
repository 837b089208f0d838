package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Texture is a decoded RGB image sampled with nearest filtering and wrap
type Texture struct {
	Width, Height int
	Pix           []RGB
}

// Sample returns the texel at normalized (u, v), v growing downward
func (t *Texture) Sample(u, v float32) RGB {
	x := int(math.Floor(float64(u*float32(t.Width)))) % t.Width
	y := int(math.Floor(float64(v*float32(t.Height)))) % t.Height
	if x < 0 {
		x += t.Width
	}
	if y < 0 {
		y += t.Height
	}
	return t.Pix[y*t.Width+x]
}

func textureFromImage(img image.Image) *Texture {
	b := img.Bounds()
	t := &Texture{Width: b.Dx(), Height: b.Dy(), Pix: make([]RGB, b.Dx()*b.Dy())}
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			t.Pix[y*t.Width+x] = RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
		}
	}
	return t
}

// TextureCache loads textures once per path and hands out integer handles
// Handle 0 is reserved for "no texture"
type TextureCache struct {
	mu       sync.Mutex
	textures []*Texture
	byPath   map[string]int
	logger   *zap.Logger
}

func NewTextureCache(logger *zap.Logger) *TextureCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TextureCache{
		textures: []*Texture{nil},
		byPath:   make(map[string]int),
		logger:   logger,
	}
}

// Load decodes a PNG, or generates a built-in atlas when the file does not exist
// Repeated loads of the same path return the same handle
func (c *TextureCache) Load(path string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.byPath[path]; ok {
		return h, nil
	}

	tex, err := decodePNG(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		tex = builtinTexture(filepath.Base(path))
		c.logger.Debug("texture missing, using built-in atlas", zap.String("path", path))
	case err != nil:
		return 0, err
	}

	h := len(c.textures)
	c.textures = append(c.textures, tex)
	c.byPath[path] = h
	c.logger.Debug("texture loaded",
		zap.String("path", path),
		zap.Int("handle", h),
		zap.Int("width", tex.Width),
		zap.Int("height", tex.Height),
	)
	return h, nil
}

// Get returns the texture for a handle, nil for 0 or unknown handles
func (c *TextureCache) Get(h int) *Texture {
	c.mu.Lock()
	defer c.mu.Unlock()
	if h <= 0 || h >= len(c.textures) {
		return nil
	}
	return c.textures[h]
}

func decodePNG(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return textureFromImage(img), nil
}

// builtinTexture generates a stand-in for the named asset
func builtinTexture(name string) *Texture {
	if name == "char.png" {
		return skinAtlas()
	}
	return terrainAtlas()
}

// hash2 is a small integer hash for deterministic texel noise
func hash2(x, y, seed int) int {
	h := uint32(x*374761393 + y*668265263 + seed*1103515245)
	h = (h ^ (h >> 13)) * 1274126177
	return int((h ^ (h >> 16)) & 0xff)
}

// terrainAtlas is 256x256 with 16px tiles alternating rock and grass columns
func terrainAtlas() *Texture {
	const size = 256
	t := &Texture{Width: size, Height: size, Pix: make([]RGB, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := hash2(x, y, 1) % 40
			var c RGB
			switch (x / 16) % 2 {
			case 0:
				v := uint8(100 + n)
				c = RGB{R: v, G: v, B: v}
			default:
				if y%16 < 3+hash2(x, 0, 2)%3 {
					c = RGB{R: uint8(70 + n), G: uint8(150 + n), B: uint8(40 + n/2)}
				} else {
					c = RGB{R: uint8(120 + n), G: uint8(85 + n), B: uint8(55 + n/2)}
				}
			}
			t.Pix[y*size+x] = c
		}
	}
	return t
}

// skinAtlas is a 64x32 greenish skin with a darker clothing band
func skinAtlas() *Texture {
	const w, h = 64, 32
	t := &Texture{Width: w, Height: h, Pix: make([]RGB, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := hash2(x, y, 3) % 24
			c := RGB{R: uint8(60 + n), G: uint8(130 + n), B: uint8(60 + n)}
			if y >= 16 {
				c = RGB{R: uint8(40 + n), G: uint8(60 + n), B: uint8(120 + n)}
			}
			t.Pix[y*w+x] = c
		}
	}
	return t
}
