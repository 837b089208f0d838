package entity

import (
	"math/rand"

	"github.com/lixenwraith/blockworld/parameter"
)

// Player is the input-driven body carrying the camera
type Player struct {
	body Body
	rng  *rand.Rand
}

// NewPlayer spawns a player at a random column above the world
func NewPlayer(w World, rng *rand.Rand) *Player {
	p := &Player{rng: rng}
	p.body.HeightOffset = parameter.PlayerEyeHeight
	p.body.ResetPos(w, rng)
	return p
}

func (p *Player) Body() *Body {
	return &p.body
}

func (p *Player) Tick(w World, in Intent) {
	b := &p.body
	b.Snapshot()

	if in.Reset {
		b.ResetPos(w, p.rng)
	}

	Integrate(b, w, in.XA, in.ZA, in.Jump)
}
