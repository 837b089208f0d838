package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/blockworld/level"
	"github.com/lixenwraith/blockworld/physics"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

// flatWorld is 16³ with solid ground at y <= 10, so the walkable surface is y = 11
func flatWorld() *level.Grid {
	return level.New(16, 16, 16, nil)
}

func TestMoveRestingContactSetsGrounded(t *testing.T) {
	g := flatWorld()
	b := &Body{}
	b.BB = physics.NewAABB(4.7, 11, 4.7, 5.3, 12.8, 5.3)
	b.YD = -0.005

	Move(b, g, 0, -0.005, 0)

	if b.BB.Y0 != 11 {
		t.Errorf("Expected body to stay on surface y=11, got %f", b.BB.Y0)
	}
	if !b.OnGround {
		t.Error("Expected grounded after downward move onto a block")
	}
	if b.YD != 0 {
		t.Errorf("Expected vertical velocity zeroed, got %f", b.YD)
	}
}

func TestMoveCeilingDoesNotGround(t *testing.T) {
	g := flatWorld()
	g.SetTile(5, 14, 5, 1)

	b := &Body{}
	b.BB = physics.NewAABB(4.7, 11.5, 4.7, 5.3, 13.3, 5.3)
	Move(b, g, 0, 1, 0)

	if b.OnGround {
		t.Error("Expected rising collision not to set grounded")
	}
	if !approx(b.BB.Y1, 14) {
		t.Errorf("Expected head stopped at y=14, got %f", b.BB.Y1)
	}
}

func TestMoveWallKillsOnlyThatAxis(t *testing.T) {
	g := flatWorld()
	g.SetTile(7, 11, 5, 1)

	b := &Body{XD: 2, ZD: 0.1}
	b.BB = physics.NewAABB(5.7, 11, 4.7, 6.3, 12.8, 5.3)
	Move(b, g, 2, 0, 0.1)

	if !approx(b.BB.X1, 7) {
		t.Errorf("Expected body stopped at wall x=7, got %f", b.BB.X1)
	}
	if b.XD != 0 {
		t.Errorf("Expected XD zeroed, got %f", b.XD)
	}
	if b.ZD != 0.1 {
		t.Errorf("Expected ZD untouched, got %f", b.ZD)
	}
	if !approx(b.Z, 5.1) {
		t.Errorf("Expected Z to advance to 5.1, got %f", b.Z)
	}
}

func TestMoveDerivesPositionFromVolume(t *testing.T) {
	g := flatWorld()
	b := &Body{HeightOffset: 1.62}
	b.BB = physics.NewAABB(2, 11, 2, 2.6, 12.8, 2.6)

	Move(b, g, 0, 0, 0)

	if !approx(b.X, 2.3) || !approx(b.Z, 2.3) {
		t.Errorf("Expected centre (2.3, 2.3), got (%f, %f)", b.X, b.Z)
	}
	if !approx(b.Y, 12.62) {
		t.Errorf("Expected eye at 12.62, got %f", b.Y)
	}
}

func TestMoveRelativeDeadZone(t *testing.T) {
	b := &Body{XD: 0.3, ZD: -0.2}
	MoveRelative(b, 0.05, 0.05, 0.02)

	if b.XD != 0.3 || b.ZD != -0.2 {
		t.Errorf("Expected velocity unchanged inside dead zone, got (%f, %f)", b.XD, b.ZD)
	}
}

func TestMoveRelativeRotatesAndAccumulates(t *testing.T) {
	b := &Body{}
	MoveRelative(b, 1, 0, 0.02)
	if !approx(b.XD, 0.02) || !approx(b.ZD, 0) {
		t.Errorf("Expected (0.02, 0) at yaw 0, got (%f, %f)", b.XD, b.ZD)
	}

	// Accumulates instead of replacing
	MoveRelative(b, 1, 0, 0.02)
	if !approx(b.XD, 0.04) {
		t.Errorf("Expected accumulated 0.04, got %f", b.XD)
	}

	r := &Body{YRot: 90}
	MoveRelative(r, 1, 0, 0.02)
	if !approx(r.XD, 0) || !approx(r.ZD, 0.02) {
		t.Errorf("Expected (0, 0.02) at yaw 90, got (%f, %f)", r.XD, r.ZD)
	}

	// Diagonal input is normalized to speed
	d := &Body{}
	MoveRelative(d, 1, 1, 0.02)
	mag := math.Hypot(float64(d.XD), float64(d.ZD))
	if math.Abs(mag-0.02) > 1e-6 {
		t.Errorf("Expected normalized magnitude 0.02, got %f", mag)
	}
}

func TestIntegrateFallsAndLands(t *testing.T) {
	g := flatWorld()
	b := &Body{HeightOffset: 1.62}
	b.SetPos(8, 20, 8)

	for i := 0; i < 600 && !b.OnGround; i++ {
		b.Snapshot()
		Integrate(b, g, 0, 0, false)
	}

	if !b.OnGround {
		t.Fatal("Expected body to land within 600 ticks")
	}
	if !approx(b.BB.Y0, 11) {
		t.Errorf("Expected feet on y=11, got %f", b.BB.Y0)
	}
}

func TestIntegrateJumpOnlyWhenGrounded(t *testing.T) {
	g := flatWorld()

	air := &Body{}
	air.SetPos(8, 20, 8)
	Integrate(air, g, 0, 0, true)
	if air.YD > 0 {
		t.Errorf("Expected no jump while airborne, got YD %f", air.YD)
	}

	ground := &Body{OnGround: true}
	ground.BB = physics.NewAABB(7.7, 11, 7.7, 8.3, 12.8, 8.3)
	Integrate(ground, g, 0, 0, true)
	if ground.BB.Y0 <= 11 {
		t.Errorf("Expected jump to lift body, got y0 %f", ground.BB.Y0)
	}
	if ground.OnGround {
		t.Error("Expected body airborne after jump")
	}
}

func TestTurnClampsPitch(t *testing.T) {
	b := &Body{}
	b.Turn(100, 1000)
	if b.XRot != 90 {
		t.Errorf("Expected pitch clamped to 90, got %f", b.XRot)
	}
	if !approx(b.YRot, 15) {
		t.Errorf("Expected yaw 15, got %f", b.YRot)
	}
	b.Turn(0, -5000)
	if b.XRot != -90 {
		t.Errorf("Expected pitch clamped to -90, got %f", b.XRot)
	}
}

func TestSetPosBuildsVolume(t *testing.T) {
	b := &Body{}
	b.SetPos(1, 2, 3)
	want := physics.NewAABB(0.7, 1.1, 2.7, 1.3, 2.9, 3.3)
	if !approx(b.BB.X0, want.X0) || !approx(b.BB.Y0, want.Y0) || !approx(b.BB.Z1, want.Z1) || !approx(b.BB.Y1, want.Y1) {
		t.Errorf("Expected %+v, got %+v", want, b.BB)
	}
}

func TestResetPosAboveWorld(t *testing.T) {
	g := flatWorld()
	rng := rand.New(rand.NewSource(1))
	b := &Body{}

	for i := 0; i < 50; i++ {
		b.ResetPos(g, rng)
		if b.X < 0 || b.X >= 16 || b.Z < 0 || b.Z >= 16 {
			t.Fatalf("Expected spawn inside grid columns, got (%f, %f)", b.X, b.Z)
		}
		if b.Y != 26 {
			t.Fatalf("Expected spawn at depth+10 = 26, got %f", b.Y)
		}
	}
}

func TestInterpolated(t *testing.T) {
	b := &Body{XO: 0, YO: 10, ZO: 0, X: 2, Y: 12, Z: -2}
	p := b.Interpolated(0.5)
	if p.X != 1 || p.Y != 11 || p.Z != -1 {
		t.Errorf("Expected (1, 11, -1), got %+v", p)
	}
}

func TestSinCosRadRoundsOnce(t *testing.T) {
	for _, rad := range []float32{0, 0.5, 1, math.Pi / 2, 3, -2.25, 6.2} {
		s, c := sinCosRad(rad)
		if want := float32(math.Sin(float64(rad))); s != want {
			t.Errorf("sin(%v): expected %v, got %v", rad, want, s)
		}
		if want := float32(math.Cos(float64(rad))); c != want {
			t.Errorf("cos(%v): expected %v, got %v", rad, want, c)
		}
	}
}

func TestZombieHeadingFollowsRotation(t *testing.T) {
	g := flatWorld()
	z := NewZombie(g, rand.New(rand.NewSource(3)))
	b := z.Body()
	b.SetPos(8.5, 11.9, 8.5)
	b.XD, b.YD, b.ZD = 0, 0, 0
	z.Rot, z.RotA = 0, 0
	z.rng = rand.New(rand.NewSource(3))

	z.Tick(g, Intent{})
	if b.ZD <= 0 || math.Abs(float64(b.XD)) > 1e-6 {
		t.Errorf("Expected rotation 0 to push along +z, got xd=%v zd=%v", b.XD, b.ZD)
	}
}
