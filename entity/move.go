package entity

import (
	"math"

	"github.com/lixenwraith/blockworld/parameter"
)

// Move sweeps the body by (xa, ya, za) against static cubes
// Axes resolve in fixed order Y, X, Z; each axis folds the clip over every cube
// before committing, and the next axis tests against the already-moved volume
func Move(b *Body, cubes CubeSource, xa, ya, za float32) {
	xaOrg, yaOrg, zaOrg := xa, ya, za

	obstacles := cubes.Cubes(b.BB.Expand(xa, ya, za))

	for _, c := range obstacles {
		ya = c.ClipYCollide(b.BB, ya)
	}
	b.BB.Move(0, ya, 0)

	for _, c := range obstacles {
		xa = c.ClipXCollide(b.BB, xa)
	}
	b.BB.Move(xa, 0, 0)

	for _, c := range obstacles {
		za = c.ClipZCollide(b.BB, za)
	}
	b.BB.Move(0, 0, za)

	// Only a reduced downward move lands the body; hitting a ceiling does not
	b.OnGround = yaOrg != ya && yaOrg < 0

	if xaOrg != xa {
		b.XD = 0
	}
	if yaOrg != ya {
		b.YD = 0
	}
	if zaOrg != za {
		b.ZD = 0
	}

	b.X = (b.BB.X0 + b.BB.X1) / 2
	b.Y = b.BB.Y0 + b.HeightOffset
	b.Z = (b.BB.Z0 + b.BB.Z1) / 2
}

// MoveRelative accelerates along the input direction rotated by yaw
// Input below the dead zone is ignored; otherwise velocity accumulates
func MoveRelative(b *Body, xa, za, speed float32) {
	dist := xa*xa + za*za
	if dist < parameter.MoveDeadZone {
		return
	}
	dist = speed / float32(math.Sqrt(float64(dist)))

	sin, cos := sinCosYaw(b.YRot)
	xa *= dist
	za *= dist
	b.XD += xa*cos - za*sin
	b.ZD += za*cos + xa*sin
}

// Integrate runs one tick of the shared movement pattern:
// jump, input acceleration, gravity, sweep, drag, ground friction
func Integrate(b *Body, cubes CubeSource, xa, za float32, jump bool) {
	if jump && b.OnGround {
		b.YD = parameter.JumpVelocity
	}

	speed := float32(parameter.AirSpeed)
	if b.OnGround {
		speed = parameter.GroundSpeed
	}
	MoveRelative(b, xa, za, speed)

	b.YD = float32(float64(b.YD) - parameter.Gravity)
	Move(b, cubes, b.XD, b.YD, b.ZD)

	b.XD *= parameter.HorizontalDrag
	b.YD *= parameter.VerticalDrag
	b.ZD *= parameter.HorizontalDrag

	if b.OnGround {
		b.XD *= parameter.GroundFriction
		b.ZD *= parameter.GroundFriction
	}
}
