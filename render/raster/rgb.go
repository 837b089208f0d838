package raster

// RGB is a 24-bit framebuffer color
type RGB struct {
	R, G, B uint8
}

// RGBFromHex unpacks 0xRRGGBB
func RGBFromHex(hex uint32) RGB {
	return RGB{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex)}
}

// RGBFromFloat converts [0, 1] channels, clamping out-of-range values
func RGBFromFloat(r, g, b float32) RGB {
	return RGB{R: clamp(float64(r) * 255), G: clamp(float64(g) * 255), B: clamp(float64(b) * 255)}
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// add is addition with clamping
func add(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Modulate multiplies each channel by a [0, 1] factor
func Modulate(c RGB, r, g, b float32) RGB {
	return RGB{
		R: clamp(float64(c.R) * float64(r)),
		G: clamp(float64(c.G) * float64(g)),
		B: clamp(float64(c.B) * float64(b)),
	}
}

// AddScaled adds src weighted by alpha, clamping; SRC_ALPHA, ONE blending
func AddScaled(dst, src RGB, alpha float32) RGB {
	if alpha <= 0 {
		return dst
	}
	return RGB{
		R: add(dst.R, clamp(float64(src.R)*float64(alpha))),
		G: add(dst.G, clamp(float64(src.G)*float64(alpha))),
		B: add(dst.B, clamp(float64(src.B)*float64(alpha))),
	}
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}
