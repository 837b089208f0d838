package render

import "testing"

func TestClosestHit(t *testing.T) {
	tests := []struct {
		name string
		hits []Hit
		want HitResult
		ok   bool
	}{
		{"none", nil, HitResult{}, false},
		{
			"nearest wins",
			[]Hit{
				{Names: []int32{1, 2, 3, 0, 1}, MinZ: 0.5},
				{Names: []int32{4, 5, 6, 0, 2}, MinZ: 0.2},
				{Names: []int32{7, 8, 9, 0, 3}, MinZ: 0.9},
			},
			HitResult{X: 4, Y: 5, Z: 6, F: 2},
			true,
		},
		{
			"tie keeps first",
			[]Hit{
				{Names: []int32{1, 1, 1, 0, 4}, MinZ: 0.3},
				{Names: []int32{2, 2, 2, 0, 5}, MinZ: 0.3},
			},
			HitResult{X: 1, Y: 1, Z: 1, F: 4},
			true,
		},
		{
			"short stacks ignored",
			[]Hit{
				{Names: []int32{1, 2}, MinZ: 0.1},
				{Names: []int32{3, 4, 5, 0, 0}, MinZ: 0.4},
			},
			HitResult{X: 3, Y: 4, Z: 5, F: 0},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClosestHit(tt.hits)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Expected (%+v, %v), got (%+v, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestHitAdjacent(t *testing.T) {
	tests := []struct {
		face    int
		x, y, z int
	}{
		{FaceBottom, 5, 4, 5},
		{FaceTop, 5, 6, 5},
		{FaceNorth, 5, 5, 4},
		{FaceSouth, 5, 5, 6},
		{FaceWest, 4, 5, 5},
		{FaceEast, 6, 5, 5},
	}
	for _, tt := range tests {
		x, y, z := HitResult{X: 5, Y: 5, Z: 5, F: tt.face}.Adjacent()
		if x != tt.x || y != tt.y || z != tt.z {
			t.Errorf("Face %d: expected (%d, %d, %d), got (%d, %d, %d)", tt.face, tt.x, tt.y, tt.z, x, y, z)
		}
	}
}
