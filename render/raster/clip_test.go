package raster

import (
	"testing"

	"github.com/lixenwraith/blockworld/vmath"
)

func clipQuad(x0, y0, x1, y1 float32) []clipVert {
	return []clipVert{
		{pos: vmath.Vec4{X: x0, Y: y0, W: 1}},
		{pos: vmath.Vec4{X: x1, Y: y0, W: 1}},
		{pos: vmath.Vec4{X: x1, Y: y1, W: 1}},
		{pos: vmath.Vec4{X: x0, Y: y1, W: 1}},
	}
}

func TestClipPolygon(t *testing.T) {
	tests := []struct {
		name string
		poly []clipVert
		want int
	}{
		{"inside", clipQuad(-0.5, -0.5, 0.5, 0.5), 4},
		{"outside", clipQuad(2, 2, 3, 3), 0},
		{"straddles one plane", clipQuad(0, -0.5, 2, 0.5), 4},
		{"straddles corner", clipQuad(0, 0, 2, 2), 4},
		{"covers volume", clipQuad(-2, -2, 2, 2), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clipPolygon(tt.poly, make([]clipVert, 0, 16))
			if len(got) != tt.want {
				t.Fatalf("Expected %d vertices, got %d", tt.want, len(got))
			}
			for _, v := range got {
				if v.pos.X < -1.0001 || v.pos.X > 1.0001 || v.pos.Y < -1.0001 || v.pos.Y > 1.0001 {
					t.Errorf("Expected vertex inside view volume, got %+v", v.pos)
				}
			}
		})
	}
}

func TestClipInterpolatesAttributes(t *testing.T) {
	poly := clipQuad(0, -0.5, 2, 0.5)
	poly[1].u, poly[2].u = 1, 1

	got := clipPolygon(poly, make([]clipVert, 0, 16))
	for _, v := range got {
		if v.pos.X > 0.999 && (v.u < 0.49 || v.u > 0.51) {
			t.Errorf("Expected u=0.5 at the clipped edge, got %f", v.u)
		}
	}
}
