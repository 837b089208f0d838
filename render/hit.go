package render

// HitResult names the picked block face; O is the object type name, always 0 for blocks
type HitResult struct {
	X, Y, Z int
	O       int
	F       int
}

// Adjacent returns the cell a block placed against this face would occupy
func (h HitResult) Adjacent() (x, y, z int) {
	dx, dy, dz := FaceOffset(h.F)
	return h.X + dx, h.Y + dy, h.Z + dz
}

// ClosestHit selects the record with the smallest depth; earlier records win ties
// Records without a full x, y, z, type, face name stack are ignored
func ClosestHit(hits []Hit) (HitResult, bool) {
	var (
		best    HitResult
		closest float32
		found   bool
	)
	for _, h := range hits {
		if len(h.Names) < 5 {
			continue
		}
		if !found || h.MinZ < closest {
			closest = h.MinZ
			best = HitResult{
				X: int(h.Names[0]),
				Y: int(h.Names[1]),
				Z: int(h.Names[2]),
				O: int(h.Names[3]),
				F: int(h.Names[4]),
			}
			found = true
		}
	}
	return best, found
}
