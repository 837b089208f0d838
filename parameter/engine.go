package parameter

import "time"

// Fixed timestep
const (
	// TicksPerSecond is the simulation rate
	TicksPerSecond = 60

	// MaxTimerStep caps elapsed time fed to the timer per frame
	MaxTimerStep = time.Second

	// MaxTicksPerFrame caps catch-up ticks per frame
	MaxTicksPerFrame = 100

	// FrameUpdateInterval paces rendering (~30 FPS, terminal output is the bottleneck)
	FrameUpdateInterval = 33 * time.Millisecond

	// DiagnosticInterval is how often fps and chunk updates are reported
	DiagnosticInterval = time.Second

	// DefaultZombieCount spawned at startup
	DefaultZombieCount = 100
)

// Input
const (
	// KeyHoldWindow keeps a key down after its last press; terminals do not report release
	KeyHoldWindow = 120 * time.Millisecond

	// LookStep is the synthetic mouse delta per look-key press
	LookStep = 20

	// InputQueueSize is the event channel buffer between the poller and the loop
	InputQueueSize = 256
)

// MouseCellScale converts one terminal cell of mouse motion to look delta units
const MouseCellScale = 8
