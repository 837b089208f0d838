package raster

import "github.com/lixenwraith/blockworld/vmath"

// clipVert is a vertex in clip space with its interpolated attributes
type clipVert struct {
	pos     vmath.Vec4
	u, v    float32
	r, g, b float32
}

// planeDist is the signed distance to one of the six view-volume planes, inside when >= 0
func planeDist(plane int, c vmath.Vec4) float32 {
	switch plane {
	case 0:
		return c.W + c.X
	case 1:
		return c.W - c.X
	case 2:
		return c.W + c.Y
	case 3:
		return c.W - c.Y
	case 4:
		return c.W + c.Z
	default:
		return c.W - c.Z
	}
}

func lerpVert(a, b clipVert, t float32) clipVert {
	l := func(x, y float32) float32 { return x + (y-x)*t }
	return clipVert{
		pos: vmath.Vec4{
			X: l(a.pos.X, b.pos.X),
			Y: l(a.pos.Y, b.pos.Y),
			Z: l(a.pos.Z, b.pos.Z),
			W: l(a.pos.W, b.pos.W),
		},
		u: l(a.u, b.u),
		v: l(a.v, b.v),
		r: l(a.r, b.r),
		g: l(a.g, b.g),
		b: l(a.b, b.b),
	}
}

// clipPolygon clips a convex polygon against the view volume (Sutherland-Hodgman)
// poly and scratch must not share backing arrays; the result aliases one of them
func clipPolygon(poly, scratch []clipVert) []clipVert {
	for plane := 0; plane < 6; plane++ {
		if len(poly) == 0 {
			return poly
		}
		out := scratch[:0]
		for i := range poly {
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			da, db := planeDist(plane, a.pos), planeDist(plane, b.pos)
			if da >= 0 {
				out = append(out, a)
			}
			if (da >= 0) != (db >= 0) {
				out = append(out, lerpVert(a, b, da/(da-db)))
			}
		}
		poly, scratch = out, poly[:0]
	}
	return poly
}
