package engine

import (
	"time"

	"github.com/lixenwraith/blockworld/parameter"
)

// Timer converts wall time into whole simulation ticks plus a render interpolation fraction
type Timer struct {
	clock          Clock
	ticksPerSecond float64
	last           time.Time

	// TimeScale speeds up or slows the simulation; 1 is real time
	TimeScale float64

	// Ticks to run this frame, at most parameter.MaxTicksPerFrame
	Ticks int
	// A is the fraction of a tick elapsed past the last whole tick; only exceeds 1 when Ticks was capped
	A float32
	// FPS is the instantaneous rate from the last frame interval
	FPS float64

	passed float64
}

func NewTimer(clock Clock, ticksPerSecond float64) *Timer {
	return &Timer{
		clock:          clock,
		ticksPerSecond: ticksPerSecond,
		last:           clock.Now(),
		TimeScale:      1,
	}
}

// AdvanceTime samples the clock and computes Ticks and A for this frame
// A stall longer than parameter.MaxTimerStep is clamped so the simulation never spirals
func (t *Timer) AdvanceTime() {
	now := t.clock.Now()
	elapsed := now.Sub(t.last)
	t.last = now

	if elapsed > parameter.MaxTimerStep {
		elapsed = parameter.MaxTimerStep
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > 0 {
		t.FPS = float64(time.Second) / float64(elapsed)
	}

	t.passed += float64(elapsed) * t.TimeScale * t.ticksPerSecond / float64(time.Second)
	t.Ticks = int(t.passed)
	if t.Ticks > parameter.MaxTicksPerFrame {
		t.Ticks = parameter.MaxTicksPerFrame
	}
	t.passed -= float64(t.Ticks)
	t.A = float32(t.passed)
}
