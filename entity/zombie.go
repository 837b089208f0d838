package entity

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/blockworld/parameter"
)

// Zombie wanders with a slowly drifting heading and jumps at random
type Zombie struct {
	body Body
	rng  *rand.Rand

	Rot      float32 // heading in radians
	RotA     float32 // angular velocity
	TimeOffs float32 // animation phase
	Speed    float32 // animation rate
}

// NewZombie spawns a zombie at a random column above the world
func NewZombie(w World, rng *rand.Rand) *Zombie {
	z := &Zombie{
		rng:      rng,
		Rot:      float32(rng.Float64() * math.Pi * 2),
		TimeOffs: float32(rng.Float64()) * parameter.ZombieTimeOffsetRange,
		Speed:    1,
		RotA:     float32(rng.Float64()+1) * 0.01,
	}
	z.body.ResetPos(w, rng)
	return z
}

func (z *Zombie) Body() *Body {
	return &z.body
}

// Tick ignores the intent; zombies steer themselves
func (z *Zombie) Tick(w World, _ Intent) {
	b := &z.body
	b.Snapshot()

	z.Rot += z.RotA
	z.RotA = float32(float64(z.RotA) * parameter.ZombieTurnDamping)
	r := z.rng
	z.RotA = float32(float64(z.RotA) + (r.Float64()-r.Float64())*r.Float64()*r.Float64()*parameter.ZombieTurnJitter)

	xa, za := sinCosRad(z.Rot)
	jump := b.OnGround && r.Float64() < parameter.ZombieJumpChance

	Integrate(b, w, xa, za, jump)

	if b.Y > parameter.ZombieResetHeight {
		b.ResetPos(w, r)
	}
}

// ModelSpan returns the model's vertical extent relative to Y at time t seconds
// The walk cycle bobs the whole model by up to 5 model units
func (z *Zombie) ModelSpan(seconds float64) (float32, float32) {
	t := seconds*10*float64(z.Speed) + float64(z.TimeOffs)
	yy := -math.Abs(math.Sin(t*0.6662))*5 - 23

	// Model Y points down: feet at +24 units, head top at -8 units
	feet := -(24 + yy) * parameter.ZombieModelScale
	head := -(-8 + yy) * parameter.ZombieModelScale
	return float32(feet), float32(head)
}
