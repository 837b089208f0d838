package physics

// AABB is an axis-aligned bounding box used for both static voxel cubes and moving bodies
// Min corner must not exceed max corner on any axis; constructors do not enforce it
type AABB struct {
	X0, Y0, Z0 float32
	X1, Y1, Z1 float32
}

// Epsilon is slack left between resting surfaces after a clip
const Epsilon float32 = 0.0

func NewAABB(x0, y0, z0, x1, y1, z1 float32) AABB {
	return AABB{X0: x0, Y0: y0, Z0: z0, X1: x1, Y1: y1, Z1: z1}
}

// Expand grows the box toward the direction of travel on each axis only
// The result is the minimal swept volume for translating by (xa, ya, za)
func (a AABB) Expand(xa, ya, za float32) AABB {
	r := a
	if xa < 0 {
		r.X0 += xa
	}
	if xa > 0 {
		r.X1 += xa
	}
	if ya < 0 {
		r.Y0 += ya
	}
	if ya > 0 {
		r.Y1 += ya
	}
	if za < 0 {
		r.Z0 += za
	}
	if za > 0 {
		r.Z1 += za
	}
	return r
}

// Grow inflates the box symmetrically
func (a AABB) Grow(xa, ya, za float32) AABB {
	return AABB{
		X0: a.X0 - xa, Y0: a.Y0 - ya, Z0: a.Z0 - za,
		X1: a.X1 + xa, Y1: a.Y1 + ya, Z1: a.Z1 + za,
	}
}

// ClipXCollide limits xa so that c, translated along X, stops at this box's face
// Returns xa unchanged when c does not overlap this box on Y and Z
func (a AABB) ClipXCollide(c AABB, xa float32) float32 {
	if c.Y1 <= a.Y0 || c.Y0 >= a.Y1 {
		return xa
	}
	if c.Z1 <= a.Z0 || c.Z0 >= a.Z1 {
		return xa
	}
	if xa > 0 && c.X1 <= a.X0 {
		if gap := a.X0 - c.X1 - Epsilon; gap < xa {
			xa = gap
		}
	}
	if xa < 0 && c.X0 >= a.X1 {
		if gap := a.X1 - c.X0 + Epsilon; gap > xa {
			xa = gap
		}
	}
	return xa
}

// ClipYCollide limits ya so that c, translated along Y, stops at this box's face
func (a AABB) ClipYCollide(c AABB, ya float32) float32 {
	if c.X1 <= a.X0 || c.X0 >= a.X1 {
		return ya
	}
	if c.Z1 <= a.Z0 || c.Z0 >= a.Z1 {
		return ya
	}
	if ya > 0 && c.Y1 <= a.Y0 {
		if gap := a.Y0 - c.Y1 - Epsilon; gap < ya {
			ya = gap
		}
	}
	if ya < 0 && c.Y0 >= a.Y1 {
		if gap := a.Y1 - c.Y0 + Epsilon; gap > ya {
			ya = gap
		}
	}
	return ya
}

// ClipZCollide limits za so that c, translated along Z, stops at this box's face
func (a AABB) ClipZCollide(c AABB, za float32) float32 {
	if c.X1 <= a.X0 || c.X0 >= a.X1 {
		return za
	}
	if c.Y1 <= a.Y0 || c.Y0 >= a.Y1 {
		return za
	}
	if za > 0 && c.Z1 <= a.Z0 {
		if gap := a.Z0 - c.Z1 - Epsilon; gap < za {
			za = gap
		}
	}
	if za < 0 && c.Z0 >= a.Z1 {
		if gap := a.Z1 - c.Z0 + Epsilon; gap > za {
			za = gap
		}
	}
	return za
}

// Move translates the box in place
func (a *AABB) Move(xa, ya, za float32) {
	a.X0 += xa
	a.Y0 += ya
	a.Z0 += za
	a.X1 += xa
	a.Y1 += ya
	a.Z1 += za
}
