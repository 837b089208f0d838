package render

// FrameStats reports one Render pass
// Rebuilt doubles as the per-pass rebuild budget counter
type FrameStats struct {
	Rebuilt int
	Visible int
	Culled  int
}

// Add accumulates another pass, used when both layers are summed per frame
func (s FrameStats) Add(o FrameStats) FrameStats {
	return FrameStats{
		Rebuilt: s.Rebuilt + o.Rebuilt,
		Visible: s.Visible + o.Visible,
		Culled:  s.Culled + o.Culled,
	}
}
